package impl

import (
	"context"
	"testing"

	"maplehub/internal/domain/entity"
	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/repository"
	mockRepo "maplehub/internal/mocks/repository"
	"maplehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// characterServiceFixtures holds all test dependencies for character service tests.
type characterServiceFixtures struct {
	service       usecase.CharacterUsecase
	characterRepo *mockRepo.MockCharacterRepository
}

func createTestCharacterService(t *testing.T) characterServiceFixtures {
	characterRepo := mockRepo.NewMockCharacterRepository(t)

	service := NewCharacterService(CharacterServiceParams{
		CharacterRepo: characterRepo,
		Logger:        newDiscardLogger(),
	})

	return characterServiceFixtures{
		service:       service,
		characterRepo: characterRepo,
	}
}

func TestCharacterService_RegisterCharacter_Success(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.characterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegisteredCharacter")).
		Run(func(ctx context.Context, character *entity.RegisteredCharacter) {
			character.ID = uuid.New()
		}).
		Return(nil)

	character, err := fx.service.RegisterCharacter(ctx, userID, "  TestHero  ")

	require.NoError(t, err)
	require.NotNil(t, character)
	assert.Equal(t, "TestHero", character.Name)
	assert.Equal(t, userID, character.UserID)
	assert.NotEqual(t, uuid.Nil, character.ID)
}

func TestCharacterService_RegisterCharacter_EmptyName(t *testing.T) {
	fx := createTestCharacterService(t)

	character, err := fx.service.RegisterCharacter(context.Background(), uuid.New(), "   ")

	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCharacterService_RegisterCharacter_DuplicateName(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()

	fx.characterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegisteredCharacter")).
		Return(repository.ErrDuplicateCharacterName)

	character, err := fx.service.RegisterCharacter(ctx, uuid.New(), "TestHero")

	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCharacter))
}

func TestCharacterService_ListCharacters(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.RegisteredCharacter{
		{ID: uuid.New(), Name: "TestHero", UserID: userID},
		{ID: uuid.New(), Name: "AltMage", UserID: userID},
	}

	fx.characterRepo.EXPECT().FindByUser(ctx, userID).Return(stored, nil)

	characters, err := fx.service.ListCharacters(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, characters)
}

func TestCharacterService_UnregisterCharacter_Success(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()
	userID := uuid.New()
	characterID := uuid.New()

	fx.characterRepo.EXPECT().
		FindByID(ctx, characterID).
		Return(&entity.RegisteredCharacter{ID: characterID, Name: "TestHero", UserID: userID}, nil)
	fx.characterRepo.EXPECT().Delete(ctx, characterID).Return(nil)

	err := fx.service.UnregisterCharacter(ctx, userID, characterID)

	assert.NoError(t, err)
}

func TestCharacterService_UnregisterCharacter_NotFound(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()
	characterID := uuid.New()

	fx.characterRepo.EXPECT().
		FindByID(ctx, characterID).
		Return(nil, repository.ErrCharacterNotFound)

	err := fx.service.UnregisterCharacter(ctx, uuid.New(), characterID)

	assert.True(t, errors.Is(err, domainerrors.ErrCharacterNotFound))
}

func TestCharacterService_UnregisterCharacter_NotOwner(t *testing.T) {
	fx := createTestCharacterService(t)

	ctx := context.Background()
	characterID := uuid.New()

	// No Delete expectation: an ownership mismatch must leave the record alone.
	fx.characterRepo.EXPECT().
		FindByID(ctx, characterID).
		Return(&entity.RegisteredCharacter{ID: characterID, Name: "TestHero", UserID: uuid.New()}, nil)

	err := fx.service.UnregisterCharacter(ctx, uuid.New(), characterID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
