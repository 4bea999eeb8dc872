package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("mediflow", "test", reg)

	m.OutboxEventsProcessed.Inc()
	m.DatabaseOperations.WithLabelValues("get", Status(nil)).Inc()
	m.DatabaseOperations.WithLabelValues("get", Status(errors.New("boom"))).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxEventsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("get", "error")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "mediflow_test_outbox_events_processed_total")
}

func TestNewMetricsTwiceOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("mediflow", "a", prometheus.NewRegistry())
		NewMetrics("mediflow", "a", prometheus.NewRegistry())
	})
}
