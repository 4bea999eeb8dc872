package messaging

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// LogBroker writes messages to the log instead of a transport. It stands in
// for redis when no broker URL is configured.
type LogBroker struct {
	logger zerolog.Logger
}

func NewLogBroker(logger zerolog.Logger) *LogBroker {
	return &LogBroker{logger: logger}
}

func (b *LogBroker) Publish(_ context.Context, channel string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	b.logger.Info().Str("channel", channel).RawJSON("message", body).Msg("event published")
	return nil
}

func (b *LogBroker) Ping(context.Context) error { return nil }

func (b *LogBroker) Close() error { return nil }
