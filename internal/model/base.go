package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for all models
type Base struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	IsDeleted bool       `json:"-" db:"is_deleted"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// Stamp assigns a fresh id and creation timestamps.
func (b *Base) Stamp(now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now.UTC()
	b.UpdatedAt = b.CreatedAt
}

// Touch updates the modification timestamp.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now.UTC()
}

// Page holds offset pagination parameters after validation.
type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// ListMeta is returned alongside list payloads.
type ListMeta struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}
