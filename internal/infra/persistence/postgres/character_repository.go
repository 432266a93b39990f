// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"maplehub/internal/domain/entity"
	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/repository"
	"maplehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// characterRepository implements the repository.CharacterRepository interface.
type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository is the constructor for characterRepository.
func NewCharacterRepository(db *gorm.DB) repository.CharacterRepository {
	return &characterRepository{
		db: db,
	}
}

// Create persists a new character registration.
func (repo *characterRepository) Create(ctx context.Context, character *entity.RegisteredCharacter) error {
	characterM := fromCharacterDomain(character)

	if err := repo.db.WithContext(ctx).Create(characterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCharacterName
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required character information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create character registration")
	}

	// Update the entity with generated values
	character.ID = characterM.ID
	character.CreatedAt = characterM.CreatedAt

	return nil
}

// FindByID retrieves a registration by its unique ID.
func (repo *characterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RegisteredCharacter, error) {
	var characterM model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&characterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCharacterNotFound
		}

		return nil, errors.Wrap(err, "failed to find character by ID")
	}

	return toCharacterDomain(&characterM), nil
}

// FindByUser retrieves all registrations owned by a user, newest first.
func (repo *characterRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RegisteredCharacter, error) {
	var characterModels []*model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&characterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find characters by user")
	}

	characters := make([]*entity.RegisteredCharacter, 0, len(characterModels))
	for _, characterM := range characterModels {
		characters = append(characters, toCharacterDomain(characterM))
	}

	return characters, nil
}

// Delete removes a registration by its unique ID.
func (repo *characterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CharacterModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete character registration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCharacterNotFound
	}

	return nil
}

// fromCharacterDomain maps a domain entity to the persistence model.
func fromCharacterDomain(character *entity.RegisteredCharacter) *model.CharacterModel {
	return &model.CharacterModel{
		ID:        character.ID,
		Name:      character.Name,
		UserID:    character.UserID,
		CreatedAt: character.CreatedAt,
	}
}

// toCharacterDomain maps a persistence model back to a pure domain entity.
func toCharacterDomain(characterM *model.CharacterModel) *entity.RegisteredCharacter {
	return &entity.RegisteredCharacter{
		ID:        characterM.ID,
		Name:      characterM.Name,
		UserID:    characterM.UserID,
		CreatedAt: characterM.CreatedAt,
	}
}
