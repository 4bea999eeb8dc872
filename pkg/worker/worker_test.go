package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore/sqlstoretest"
	"github.com/mediflow/mediflow-api/pkg/logger"
	"github.com/mediflow/mediflow-api/pkg/messaging"
	"github.com/mediflow/mediflow-api/pkg/metrics"
)

type fakeBroker struct {
	mu        sync.Mutex
	failFirst int
	calls     int
	published []messaging.Message
	channels  []string
}

func (b *fakeBroker) Publish(_ context.Context, channel string, message interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failFirst {
		return errors.New("broker unavailable")
	}
	b.published = append(b.published, message.(messaging.Message))
	b.channels = append(b.channels, channel)
	return nil
}

func (b *fakeBroker) Ping(context.Context) error { return nil }
func (b *fakeBroker) Close() error               { return nil }

func newOutbox(t *testing.T) (*sqlstore.Repositories, repository.OutboxRepository) {
	t.Helper()
	repos := sqlstoretest.Open(t)
	return repos, repos.Outbox
}

func appendEvent(t *testing.T, repo repository.OutboxRepository, typ model.EventType) *model.OutboxEvent {
	t.Helper()
	e := &model.OutboxEvent{EventType: typ, EntityID: uuid.New(), Payload: `{"ok":true}`}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func testConfig() OutboxProcessorConfig {
	return OutboxProcessorConfig{
		Channel:       "mediflow.events",
		BatchSize:     10,
		PollInterval:  time.Second,
		RetryAttempts: 2,
		RetryDelay:    0,
		MaxFailures:   3,
	}
}

func TestOutboxProcessorPublishesPending(t *testing.T) {
	_, repo := newOutbox(t)
	ctx := context.Background()
	first := appendEvent(t, repo, model.EventPatientAdmission)
	appendEvent(t, repo, model.EventPatientDischarge)

	broker := &fakeBroker{}
	m := metrics.NewMetrics("test", "worker", prometheus.NewRegistry())
	p, err := NewOutboxProcessor(repo, broker, testConfig(), logger.Nop(), m)
	require.NoError(t, err)

	n, err := p.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, broker.published, 2)
	assert.Equal(t, "mediflow.events", broker.channels[0])
	assert.Equal(t, first.ID.String(), broker.published[0].ID)
	assert.Equal(t, "patient_admission", broker.published[0].Type)
	assert.JSONEq(t, `{"ok":true}`, string(broker.published[0].Payload))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OutboxEventsProcessed))

	pending, err := repo.GetPending(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOutboxProcessorRetriesThenSucceeds(t *testing.T) {
	_, repo := newOutbox(t)
	appendEvent(t, repo, model.EventReadmission)

	broker := &fakeBroker{failFirst: 1}
	m := metrics.NewMetrics("test", "worker", prometheus.NewRegistry())
	p, err := NewOutboxProcessor(repo, broker, testConfig(), logger.Nop(), m)
	require.NoError(t, err)

	n, err := p.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxRetries.WithLabelValues("readmission")))
}

func TestOutboxProcessorMarksFailedUntilMaxFailures(t *testing.T) {
	_, repo := newOutbox(t)
	ctx := context.Background()
	appendEvent(t, repo, model.EventCostAnalysis)

	broker := &fakeBroker{failFirst: 1000}
	m := metrics.NewMetrics("test", "worker", prometheus.NewRegistry())
	cfg := testConfig()
	cfg.MaxFailures = 2
	p, err := NewOutboxProcessor(repo, broker, cfg, logger.Nop(), m)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		n, err := p.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}

	// two polls failed the event; the third poll no longer picks it up
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OutboxEventsFailed))
	assert.Equal(t, 4, broker.calls)

	pending, err := repo.GetPending(ctx, 10, cfg.MaxFailures)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOutboxProcessorConfigValidation(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = 0
	_, err := NewOutboxProcessor(nil, &fakeBroker{}, cfg, logger.Nop(), nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Channel = ""
	assert.Error(t, cfg.Validate())
	assert.NoError(t, testConfig().Validate())
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retry(ctx, 5, time.Hour, func() error {
		calls++
		return errors.New("nope")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestOutboxCleanupRemovesOldProcessed(t *testing.T) {
	_, repo := newOutbox(t)
	ctx := context.Background()
	done := appendEvent(t, repo, model.EventOutcomeTracking)
	appendEvent(t, repo, model.EventSatisfactionSurvey)
	require.NoError(t, repo.MarkProcessed(ctx, done.ID))

	m := metrics.NewMetrics("test", "worker", prometheus.NewRegistry())
	w := NewOutboxCleanupWorker(repo, time.Hour, time.Minute, logger.Nop(), m)

	rows, err := w.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	w.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	rows, err = w.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxEventsPurged))

	pending, err := repo.GetPending(ctx, 10, 3)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
