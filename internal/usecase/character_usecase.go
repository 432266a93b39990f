package usecase

import (
	"context"

	"maplehub/internal/domain/entity"

	"github.com/google/uuid"
)

// CharacterUsecase defines the interface for character registration operations.
type CharacterUsecase interface {
	// ListCharacters returns the caller's registered characters, newest first.
	ListCharacters(ctx context.Context, userID uuid.UUID) ([]*entity.RegisteredCharacter, error)

	// RegisterCharacter claims a character name for the caller. A name can be
	// held by at most one account at a time.
	RegisterCharacter(ctx context.Context, userID uuid.UUID, characterName string) (*entity.RegisteredCharacter, error)

	// UnregisterCharacter releases a registration owned by the caller.
	UnregisterCharacter(ctx context.Context, userID, characterID uuid.UUID) error
}
