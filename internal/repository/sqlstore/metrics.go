package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

// metricsRepository answers the aggregate questions behind the analytics
// endpoints. Every query, joins included, only sees active rows.
type metricsRepository struct {
	BaseRepository
}

func NewMetricsRepository(base BaseRepository) repository.MetricsRepository {
	return &metricsRepository{base}
}

func (r *metricsRepository) CountPatients(ctx context.Context) (int, error) {
	return r.count(ctx, active(patientsTable, "p"))
}

func (r *metricsRepository) CountAdmissions(ctx context.Context) (int, error) {
	return r.count(ctx, active(admissionsTable, "a"))
}

func (r *metricsRepository) BedCounts(ctx context.Context, departmentID *uuid.UUID) (model.BedCounts, error) {
	q := active(bedsTable, "b")
	if departmentID != nil {
		q.where("b.department_id = ?", *departmentID)
	}

	var counts model.BedCounts
	err := r.scalar(ctx, &counts, q, `COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN b.status = ? THEN 1 ELSE 0 END), 0) AS occupied`,
		model.BedOccupied)
	if err != nil {
		return counts, fmt.Errorf("failed to count beds: %w", err)
	}
	return counts, nil
}

func (r *metricsRepository) StaffCounts(ctx context.Context, departmentID *uuid.UUID) (model.StaffCounts, error) {
	q := active(staffTable, "s")
	if departmentID != nil {
		q.where("s.department_id = ?", *departmentID)
	}

	var counts model.StaffCounts
	err := r.scalar(ctx, &counts, q, `COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN s.is_active = TRUE THEN 1 ELSE 0 END), 0) AS active`)
	if err != nil {
		return counts, fmt.Errorf("failed to count staff: %w", err)
	}
	return counts, nil
}

func (r *metricsRepository) EquipmentCounts(ctx context.Context, departmentID *uuid.UUID, today model.Date) (model.EquipmentCounts, error) {
	q := active(equipmentTable, "e")
	if departmentID != nil {
		q.where("e.department_id = ?", *departmentID)
	}

	var counts model.EquipmentCounts
	err := r.scalar(ctx, &counts, q, `COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN e.status = ? THEN 1 ELSE 0 END), 0) AS in_use,
		COALESCE(SUM(CASE WHEN e.status = ? THEN 1 ELSE 0 END), 0) AS out_of_order,
		COALESCE(SUM(CASE WHEN e.next_maintenance_due IS NOT NULL AND e.next_maintenance_due <= ? THEN 1 ELSE 0 END), 0) AS maintenance_due`,
		model.EquipmentInUse, model.EquipmentOutOfOrder, today)
	if err != nil {
		return counts, fmt.Errorf("failed to count equipment: %w", err)
	}
	return counts, nil
}

// dischargesWithAdmission joins each discharge to its active admission.
func dischargesWithAdmission() *query {
	return active(dischargesTable, "d").join(admissionsTable, "a", "a.id = d.admission_id")
}

func (r *metricsRepository) AverageLengthOfStay(ctx context.Context, departmentID *uuid.UUID) (float64, error) {
	q := dischargesWithAdmission()
	if departmentID != nil {
		q.where("a.department_id = ?", *departmentID)
	}

	var avg float64
	if err := r.scalar(ctx, &avg, q, "COALESCE(AVG(d.length_of_stay), 0)"); err != nil {
		return 0, fmt.Errorf("failed to average length of stay: %w", err)
	}
	return avg, nil
}

// AverageSatisfaction averages overall satisfaction. Scoping by department
// goes through the survey's admission.
func (r *metricsRepository) AverageSatisfaction(ctx context.Context, departmentID *uuid.UUID) (float64, error) {
	q := active(satisfactionTable, "s")
	if departmentID != nil {
		q.join(admissionsTable, "a", "a.id = s.admission_id").
			where("a.department_id = ?", *departmentID)
	}

	var avg float64
	if err := r.scalar(ctx, &avg, q, "COALESCE(AVG(s.overall_satisfaction), 0)"); err != nil {
		return 0, fmt.Errorf("failed to average satisfaction: %w", err)
	}
	return avg, nil
}

func (r *metricsRepository) CountDischarges(ctx context.Context, filter model.DischargeCountFilter) (int, error) {
	q := dischargesWithAdmission()
	if filter.Since != nil {
		q.where("d.discharge_date >= ?", *filter.Since)
	}
	if filter.DepartmentID != nil {
		q.where("a.department_id = ?", *filter.DepartmentID)
	}
	return r.count(ctx, q)
}

func (r *metricsRepository) CountReadmissions(ctx context.Context, filter model.ReadmissionCountFilter) (int, error) {
	q := active(readmissionsTable, "r")
	if filter.Since != nil {
		q.where("r.readmission_date >= ?", *filter.Since)
	}
	if filter.MaxDaysSinceDischarge != nil {
		q.where("r.days_since_discharge <= ?", *filter.MaxDaysSinceDischarge)
	}
	if filter.DepartmentID != nil {
		q.where("r.readmission_department_id = ?", *filter.DepartmentID)
	}
	return r.count(ctx, q)
}

func (r *metricsRepository) SumDischargeCost(ctx context.Context) (float64, error) {
	var sum float64
	if err := r.scalar(ctx, &sum, dischargesWithAdmission(), "COALESCE(SUM(d.total_cost), 0)"); err != nil {
		return 0, fmt.Errorf("failed to sum discharge cost: %w", err)
	}
	return sum, nil
}

func (r *metricsRepository) SumCostAnalysisCost(ctx context.Context, departmentID *uuid.UUID) (float64, error) {
	q := active(costAnalysesTable, "c")
	if departmentID != nil {
		q.where("c.department_id = ?", *departmentID)
	}

	var sum float64
	if err := r.scalar(ctx, &sum, q, "COALESCE(SUM(c.total_cost), 0)"); err != nil {
		return 0, fmt.Errorf("failed to sum cost analyses: %w", err)
	}
	return sum, nil
}

func (r *metricsRepository) OutcomeCounts(ctx context.Context) (model.OutcomeCounts, error) {
	var counts model.OutcomeCounts
	err := r.scalar(ctx, &counts, active(outcomesTable, "o"), `COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN o.outcome_type = ? THEN 1 ELSE 0 END), 0) AS recovered,
		COALESCE(SUM(CASE WHEN o.outcome_type = ? THEN 1 ELSE 0 END), 0) AS deceased,
		COALESCE(SUM(CASE WHEN o.complications IS NOT NULL THEN 1 ELSE 0 END), 0) AS with_complications,
		COALESCE(SUM(CASE WHEN o.treatment_success = TRUE THEN 1 ELSE 0 END), 0) AS treatment_succeeded,
		COALESCE(AVG(o.recovery_time_days), 0) AS average_recovery_days`,
		model.OutcomeRecovered, model.OutcomeDeceased)
	if err != nil {
		return counts, fmt.Errorf("failed to count outcomes: %w", err)
	}
	return counts, nil
}

func (r *metricsRepository) AdmissionsPerDay(ctx context.Context, through model.Date) ([]model.DayCount, error) {
	q := active(admissionsTable, "a").where("a.admission_date <= ?", through)
	return r.perDay(ctx, q, "a.admission_date")
}

func (r *metricsRepository) DischargesPerDay(ctx context.Context, through model.Date) ([]model.DayCount, error) {
	q := dischargesWithAdmission().where("d.discharge_date <= ?", through)
	return r.perDay(ctx, q, "d.discharge_date")
}

func (r *metricsRepository) ReadmissionsPerDay(ctx context.Context, from, through model.Date) ([]model.DayCount, error) {
	q := active(readmissionsTable, "r").
		where("r.readmission_date >= ?", from).
		where("r.readmission_date <= ?", through)
	return r.perDay(ctx, q, "r.readmission_date")
}

func (r *metricsRepository) perDay(ctx context.Context, q *query, column string) ([]model.DayCount, error) {
	counts := []model.DayCount{}
	if err := r.grouped(ctx, &counts, q, column+" AS bucket, COUNT(*) AS n", column); err != nil {
		return nil, fmt.Errorf("failed to count per day: %w", err)
	}
	return counts, nil
}
