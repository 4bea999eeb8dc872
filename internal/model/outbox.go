package model

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusProcessed OutboxStatus = "processed"
	OutboxStatusFailed    OutboxStatus = "failed"
)

// OutboxEvent is a domain event waiting to be published.
// Payload holds the JSON encoded entity.
type OutboxEvent struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	EventType    EventType    `db:"event_type" json:"event_type"`
	EntityID     uuid.UUID    `db:"entity_id" json:"entity_id"`
	Payload      string       `db:"payload" json:"payload"`
	Status       OutboxStatus `db:"status" json:"status"`
	ErrorMessage *string      `db:"error_message" json:"error_message,omitempty"`
	RetryCount   int          `db:"retry_count" json:"retry_count"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
	ProcessedAt  *time.Time   `db:"processed_at" json:"processed_at,omitempty"`
}
