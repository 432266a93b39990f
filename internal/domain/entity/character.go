package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegisteredCharacter links a character name to the account that claimed it.
// A name can be held by at most one account at a time; the database enforces
// this with a unique constraint on Name.
type RegisteredCharacter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
