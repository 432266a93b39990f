package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "maplehub/internal/delivery/context"
	"maplehub/internal/domain/entity"
	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/repository"
	"maplehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// characterService implements the CharacterUsecase interface.
type characterService struct {
	characterRepo repository.CharacterRepository
	logger        *slog.Logger
}

// CharacterServiceParams holds dependencies for characterService, injected by Fx.
type CharacterServiceParams struct {
	fx.In

	CharacterRepo repository.CharacterRepository
	Logger        *slog.Logger
}

// NewCharacterService is the constructor for characterService.
func NewCharacterService(params CharacterServiceParams) usecase.CharacterUsecase {
	return &characterService{
		characterRepo: params.CharacterRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *characterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCharacters returns the caller's registered characters, newest first.
func (srv *characterService) ListCharacters(ctx context.Context, userID uuid.UUID) ([]*entity.RegisteredCharacter, error) {
	characters, err := srv.characterRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registered characters")
	}

	return characters, nil
}

// RegisterCharacter claims a character name for the caller. Conflict detection
// is delegated to the unique constraint on the name column, so concurrent
// registrations serialize there: first writer wins, the second gets a
// duplicate error regardless of call order.
func (srv *characterService) RegisterCharacter(ctx context.Context, userID uuid.UUID, characterName string) (*entity.RegisteredCharacter, error) {
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("character name is required")
	}

	character := &entity.RegisteredCharacter{
		Name:   characterName,
		UserID: userID,
	}

	if err := srv.characterRepo.Create(ctx, character); err != nil {
		if errors.Is(err, repository.ErrDuplicateCharacterName) {
			srv.log(ctx).Info("Rejected duplicate character registration",
				slog.String("characterName", characterName),
			)

			return nil, domainerrors.ErrDuplicateCharacter.WrapMessage("character name already taken")
		}

		return nil, errors.Wrap(err, "failed to register character")
	}

	srv.log(ctx).Info("Character registered",
		slog.String("characterName", characterName),
		slog.Any("userID", userID),
	)

	return character, nil
}

// UnregisterCharacter releases a registration owned by the caller. Ownership
// is checked before deletion; a mismatch leaves the record untouched.
func (srv *characterService) UnregisterCharacter(ctx context.Context, userID, characterID uuid.UUID) error {
	character, err := srv.characterRepo.FindByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return domainerrors.ErrCharacterNotFound.WrapMessage("registration does not exist")
		}

		return errors.Wrap(err, "failed to load character registration")
	}

	if character.UserID != userID {
		srv.log(ctx).Warn("Blocked unregistration by non-owner",
			slog.Any("characterID", characterID),
			slog.Any("userID", userID),
		)

		return domainerrors.ErrForbidden.WrapMessage("character belongs to another account")
	}

	if err := srv.characterRepo.Delete(ctx, characterID); err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return domainerrors.ErrCharacterNotFound.WrapMessage("registration already removed")
		}

		return errors.Wrap(err, "failed to unregister character")
	}

	return nil
}
