package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/pkg/email"
	"github.com/mediflow/mediflow-api/pkg/logger"
	"github.com/mediflow/mediflow-api/pkg/metrics"
)

type fakeSender struct {
	sent []email.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, m email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m)
	return nil
}

var digestNow = time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)

func seedEquipment(t *testing.T, repo repository.EquipmentRepository, deptID uuid.UUID, code string, due *model.Date) {
	t.Helper()
	e := &model.Equipment{
		EquipmentCode:      code,
		Name:               "Infusion pump",
		EquipmentType:      "pump",
		DepartmentID:       deptID,
		Status:             model.EquipmentAvailable,
		NextMaintenanceDue: due,
	}
	e.Stamp(digestNow)
	require.NoError(t, repo.Create(context.Background(), e))
}

func dateRef(d model.Date) *model.Date { return &d }

func TestMaintenanceDigestSendsDueItems(t *testing.T) {
	repos, _ := newOutbox(t)
	ctx := context.Background()

	dept := &model.Department{Name: "ICU", DepartmentType: model.DepartmentICU}
	dept.Stamp(digestNow)
	require.NoError(t, repos.Departments.Create(ctx, dept))

	today := model.DateOf(digestNow)
	seedEquipment(t, repos.Equipment, dept.ID, "EQ-1", dateRef(today.AddDays(-3)))
	seedEquipment(t, repos.Equipment, dept.ID, "EQ-2", dateRef(today))
	seedEquipment(t, repos.Equipment, dept.ID, "EQ-3", dateRef(today.AddDays(5)))
	seedEquipment(t, repos.Equipment, dept.ID, "EQ-4", nil)

	sender := &fakeSender{}
	m := metrics.NewMetrics("test", "digest", prometheus.NewRegistry())
	w := NewMaintenanceDigestWorker(repos.Equipment, sender, []string{"biomed@mediflow.local"}, time.Hour, logger.Nop(), m)
	w.now = func() time.Time { return digestNow }

	n, err := w.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"biomed@mediflow.local"}, msg.To)
	assert.Contains(t, msg.Subject, "2 item(s)")
	assert.Contains(t, msg.TextBody, "EQ-1 (pump) Infusion pump, due 2024-06-07, 3 day(s) overdue")
	assert.Contains(t, msg.TextBody, "EQ-2 (pump) Infusion pump, due 2024-06-10, status available")
	assert.NotContains(t, msg.TextBody, "EQ-3")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DigestsSent))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MaintenanceDueSeen))
}

func TestMaintenanceDigestNothingDue(t *testing.T) {
	repos, _ := newOutbox(t)
	sender := &fakeSender{}
	m := metrics.NewMetrics("test", "digest", prometheus.NewRegistry())
	w := NewMaintenanceDigestWorker(repos.Equipment, sender, []string{"x@y.z"}, time.Hour, logger.Nop(), m)

	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, sender.sent)
}

func TestMaintenanceDigestSendFailure(t *testing.T) {
	repos, _ := newOutbox(t)
	ctx := context.Background()
	dept := &model.Department{Name: "Surgery", DepartmentType: model.DepartmentSurgery}
	dept.Stamp(digestNow)
	require.NoError(t, repos.Departments.Create(ctx, dept))
	seedEquipment(t, repos.Equipment, dept.ID, "EQ-9", dateRef(model.DateOf(digestNow)))

	sender := &fakeSender{err: errors.New("smtp down")}
	m := metrics.NewMetrics("test", "digest", prometheus.NewRegistry())
	w := NewMaintenanceDigestWorker(repos.Equipment, sender, []string{"x@y.z"}, time.Hour, logger.Nop(), m)
	w.now = func() time.Time { return digestNow }

	_, err := w.RunOnce(ctx)
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DigestsFailed))
}
