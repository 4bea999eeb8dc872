package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/pkg/email"
	"github.com/mediflow/mediflow-api/pkg/logger"
	"github.com/mediflow/mediflow-api/pkg/metrics"
)

// MaintenanceDigestWorker mails the list of equipment whose maintenance
// is due or overdue.
type MaintenanceDigestWorker struct {
	equipment  repository.EquipmentRepository
	sender     email.Sender
	recipients []string
	interval   time.Duration
	logger     *logger.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewMaintenanceDigestWorker(
	equipment repository.EquipmentRepository,
	sender email.Sender,
	recipients []string,
	interval time.Duration,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *MaintenanceDigestWorker {
	return &MaintenanceDigestWorker{
		equipment:  equipment,
		sender:     sender,
		recipients: recipients,
		interval:   interval,
		logger:     logger.With("maintenance_digest"),
		metrics:    metrics,
		now:        time.Now,
	}
}

func (w *MaintenanceDigestWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Starting maintenance digest", "recipients", len(w.recipients), "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error(err, "Maintenance digest failed")
			}
		}
	}
}

// RunOnce sends one digest and returns the number of items it listed.
// Nothing is sent when no equipment is due.
func (w *MaintenanceDigestWorker) RunOnce(ctx context.Context) (int, error) {
	today := model.DateOf(w.now().UTC())

	due, err := w.equipment.ListMaintenanceDue(ctx, today)
	w.metrics.DatabaseOperations.WithLabelValues("list_maintenance_due", metrics.Status(err)).Inc()
	if err != nil {
		return 0, fmt.Errorf("failed to list equipment due for maintenance: %w", err)
	}
	w.metrics.MaintenanceDueSeen.Set(float64(len(due)))
	if len(due) == 0 {
		return 0, nil
	}

	msg := email.Message{
		To:       w.recipients,
		Subject:  fmt.Sprintf("Equipment maintenance due: %d item(s) as of %s", len(due), today),
		TextBody: DigestBody(today, due),
	}
	if err := w.sender.Send(ctx, msg); err != nil {
		w.metrics.DigestsFailed.Inc()
		return 0, fmt.Errorf("failed to send maintenance digest: %w", err)
	}

	w.metrics.DigestsSent.Inc()
	w.logger.Info("Maintenance digest sent", "items", len(due))
	return len(due), nil
}

// DigestBody renders one line per item with how many days it is overdue.
func DigestBody(today model.Date, due []*model.Equipment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Equipment maintenance due as of %s\n\n", today)
	for _, e := range due {
		overdue := 0
		dueOn := ""
		if e.NextMaintenanceDue != nil {
			overdue = today.DaysSince(*e.NextMaintenanceDue)
			dueOn = e.NextMaintenanceDue.String()
		}
		fmt.Fprintf(&b, "- %s (%s) %s, due %s", e.EquipmentCode, e.EquipmentType, e.Name, dueOn)
		if overdue > 0 {
			fmt.Fprintf(&b, ", %d day(s) overdue", overdue)
		}
		fmt.Fprintf(&b, ", status %s\n", e.Status)
	}
	return b.String()
}
