package model

import (
	"time"

	"github.com/google/uuid"
)

// CharacterModel mirrors the 'characters' table. The unique index on Name is
// the single consistency guarantee for concurrent registrations.
type CharacterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "characters"
}
