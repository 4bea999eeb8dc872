package event

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

// Emitter records domain events in the outbox.
type Emitter interface {
	Emit(ctx context.Context, eventType model.EventType, entityID uuid.UUID, payload interface{})
}

type EventService struct {
	outboxRepo repository.OutboxRepository
}

func NewEventService(outboxRepo repository.OutboxRepository) *EventService {
	return &EventService{outboxRepo: outboxRepo}
}

// Emit appends an outbox row. The write that triggered the event has
// already committed, so failures are logged and never returned, and the
// append outlives a canceled request.
func (s *EventService) Emit(ctx context.Context, eventType model.EventType, entityID uuid.UUID, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to marshal event payload")
		return
	}

	event := &model.OutboxEvent{
		EventType: eventType,
		EntityID:  entityID,
		Payload:   string(body),
	}
	if err := s.outboxRepo.Create(context.WithoutCancel(ctx), event); err != nil {
		log.Error().Err(err).
			Str("event_type", string(eventType)).
			Str("entity_id", entityID.String()).
			Msg("failed to append outbox event")
		return
	}

	log.Debug().Str("event_id", event.ID.String()).Str("event_type", string(eventType)).Msg("outbox event recorded")
}

// Nop discards events.
type Nop struct{}

func (Nop) Emit(context.Context, model.EventType, uuid.UUID, interface{}) {}
