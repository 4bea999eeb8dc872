package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

// Outbox rows are never soft deleted, so these queries bypass the active
// filter and address the table directly.

type outboxRepository struct {
	BaseRepository
}

func NewOutboxRepository(base BaseRepository) repository.OutboxRepository {
	return &outboxRepository{base}
}

func (r *outboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.Payload == "" {
		return fmt.Errorf("event payload cannot be empty")
	}

	now := r.now()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.Status = model.OutboxStatusPending
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `
		INSERT INTO outbox_events (
			id, event_type, entity_id, payload, status, retry_count, created_at, updated_at
		) VALUES (
			:id, :event_type, :entity_id, :payload, :status, :retry_count, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

// GetPending returns pending events, plus failed ones still under maxRetries,
// oldest first.
func (r *outboxRepository) GetPending(ctx context.Context, limit, maxRetries int) ([]*model.OutboxEvent, error) {
	query := r.db.Rebind(`
		SELECT id, event_type, entity_id, payload, status, error_message, retry_count,
		       created_at, updated_at, processed_at
		FROM outbox_events
		WHERE status = ? OR (status = ? AND retry_count < ?)
		ORDER BY created_at ASC
		LIMIT ?
	`)

	events := []*model.OutboxEvent{}
	err := r.db.SelectContext(ctx, &events, query,
		model.OutboxStatusPending, model.OutboxStatusFailed, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	return events, nil
}

func (r *outboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	now := r.now()
	query := r.db.Rebind(`
		UPDATE outbox_events
		SET status = ?, error_message = NULL, processed_at = ?, updated_at = ?
		WHERE id = ?
	`)
	res, err := r.db.ExecContext(ctx, query, model.OutboxStatusProcessed, now, now, id)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := r.db.Rebind(`
		UPDATE outbox_events
		SET status = ?, error_message = ?, retry_count = retry_count + 1, updated_at = ?
		WHERE id = ?
	`)
	res, err := r.db.ExecContext(ctx, query, model.OutboxStatusFailed, reason, r.now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

func (r *outboxRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	query := r.db.Rebind(`
		DELETE FROM outbox_events
		WHERE status = ? AND processed_at < ?
	`)
	result, err := r.db.ExecContext(ctx, query, model.OutboxStatusProcessed, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete processed events: %w", err)
	}

	return result.RowsAffected()
}
