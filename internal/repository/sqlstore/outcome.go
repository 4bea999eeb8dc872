package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const (
	outcomesTable     = "patient_outcomes"
	readmissionsTable = "readmissions"
	satisfactionTable = "satisfaction_scores"
)

var outcomeColumns = withBase(
	"patient_id", "admission_id", "outcome_type", "outcome_date", "recovery_time_days",
	"treatment_success", "complications", "follow_up_required", "follow_up_date", "notes",
)

var readmissionColumns = withBase(
	"patient_id", "original_admission_id", "readmission_date", "days_since_discharge",
	"readmission_reason", "readmission_department_id", "severity_score", "preventable", "notes",
)

var satisfactionColumns = withBase(
	"patient_id", "admission_id", "survey_date", "overall_satisfaction", "care_quality",
	"communication", "cleanliness", "food_quality", "staff_friendliness", "pain_management",
	"discharge_process", "would_recommend", "comments", "improvement_suggestions",
)

type outcomeRepository struct {
	BaseRepository
}

func NewOutcomeRepository(base BaseRepository) repository.OutcomeRepository {
	return &outcomeRepository{base}
}

func (r *outcomeRepository) Create(ctx context.Context, outcome *model.PatientOutcome) error {
	if err := r.insert(ctx, outcomesTable, outcomeColumns, outcome); err != nil {
		return fmt.Errorf("failed to create outcome: %w", err)
	}
	return nil
}

func (r *outcomeRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.PatientOutcome, error) {
	outcomes := []*model.PatientOutcome{}
	q := active(outcomesTable, "o").where("o.patient_id = ?", patientID)
	if err := r.list(ctx, &outcomes, q, "o.outcome_date DESC, o.created_at DESC", page); err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}
	return outcomes, nil
}

type readmissionRepository struct {
	BaseRepository
}

func NewReadmissionRepository(base BaseRepository) repository.ReadmissionRepository {
	return &readmissionRepository{base}
}

func (r *readmissionRepository) Create(ctx context.Context, readmission *model.Readmission) error {
	if err := r.insert(ctx, readmissionsTable, readmissionColumns, readmission); err != nil {
		return fmt.Errorf("failed to create readmission: %w", err)
	}
	return nil
}

func (r *readmissionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.Readmission, error) {
	readmissions := []*model.Readmission{}
	q := active(readmissionsTable, "r").where("r.patient_id = ?", patientID)
	if err := r.list(ctx, &readmissions, q, "r.readmission_date DESC, r.created_at DESC", page); err != nil {
		return nil, fmt.Errorf("failed to list readmissions: %w", err)
	}
	return readmissions, nil
}

type satisfactionRepository struct {
	BaseRepository
}

func NewSatisfactionRepository(base BaseRepository) repository.SatisfactionRepository {
	return &satisfactionRepository{base}
}

func (r *satisfactionRepository) Create(ctx context.Context, score *model.SatisfactionScore) error {
	if err := r.insert(ctx, satisfactionTable, satisfactionColumns, score); err != nil {
		return fmt.Errorf("failed to create satisfaction score: %w", err)
	}
	return nil
}

func (r *satisfactionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.SatisfactionScore, error) {
	scores := []*model.SatisfactionScore{}
	q := active(satisfactionTable, "s").where("s.patient_id = ?", patientID)
	if err := r.list(ctx, &scores, q, "s.survey_date DESC, s.created_at DESC", page); err != nil {
		return nil, fmt.Errorf("failed to list satisfaction scores: %w", err)
	}
	return scores, nil
}
