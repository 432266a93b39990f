// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"maplehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCharacterNotFound is returned when no registered character matches the lookup.
var ErrCharacterNotFound = errors.New("registered character not found")

// ErrDuplicateCharacterName is returned when the unique constraint on the
// character name rejects an insert. The constraint is the only serialization
// point for concurrent registrations: first writer wins.
var ErrDuplicateCharacterName = errors.New("character name already registered")

// CharacterRepository defines the standard operations for registered character persistence.
type CharacterRepository interface {
	// Create persists a new registration. Returns ErrDuplicateCharacterName
	// when the name is already taken, by any user.
	Create(ctx context.Context, character *entity.RegisteredCharacter) error

	// FindByID retrieves a single registration by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RegisteredCharacter, error)

	// FindByUser retrieves all registrations owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RegisteredCharacter, error)

	// Delete removes a registration by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
