package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const costAnalysesTable = "cost_analyses"

var costAnalysisColumns = withBase(
	"department_id", "admission_id", "analysis_date", "total_cost", "staff_cost",
	"equipment_cost", "medication_cost", "facility_cost", "other_costs", "insurance_revenue",
	"patient_payment", "total_revenue", "profit_margin", "cost_per_patient_day",
	"period_start", "period_end", "patient_count", "average_length_of_stay",
)

type costAnalysisRepository struct {
	BaseRepository
}

func NewCostAnalysisRepository(base BaseRepository) repository.CostAnalysisRepository {
	return &costAnalysisRepository{base}
}

func (r *costAnalysisRepository) Create(ctx context.Context, analysis *model.CostAnalysis) error {
	if err := r.insert(ctx, costAnalysesTable, costAnalysisColumns, analysis); err != nil {
		return fmt.Errorf("failed to create cost analysis: %w", err)
	}
	return nil
}

func (r *costAnalysisRepository) Get(ctx context.Context, id uuid.UUID) (*model.CostAnalysis, error) {
	var analysis model.CostAnalysis
	if err := r.getByID(ctx, &analysis, costAnalysesTable, id); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// List returns analyses whose period lies entirely inside [Start, End].
func (r *costAnalysisRepository) List(ctx context.Context, filter model.CostAnalysisFilter) ([]*model.CostAnalysis, error) {
	q := active(costAnalysesTable, "c").
		where("c.period_start >= ?", filter.Start).
		where("c.period_end <= ?", filter.End)
	if filter.DepartmentID != nil {
		q.where("c.department_id = ?", *filter.DepartmentID)
	}

	analyses := []*model.CostAnalysis{}
	if err := r.list(ctx, &analyses, q, "c.period_start, c.analysis_date, c.id", model.Page{}); err != nil {
		return nil, fmt.Errorf("failed to list cost analyses: %w", err)
	}
	return analyses, nil
}
