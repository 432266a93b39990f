// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can register characters.
type User struct {
	ID           uuid.UUID // Unique identifier for the account.
	Email        string    // Login identifier, unique across accounts.
	Name         string    // Display name.
	PasswordHash string    // Bcrypt hash of the account password. Never exposed to callers.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
