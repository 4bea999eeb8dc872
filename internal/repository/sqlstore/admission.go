package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const (
	admissionsTable = "admissions"
	dischargesTable = "discharges"
)

var admissionColumns = withBase(
	"patient_id", "admission_number", "admission_date", "admission_time", "admission_type",
	"department_id", "bed_id", "primary_diagnosis", "secondary_diagnoses", "admission_notes",
	"admitting_physician", "expected_length_of_stay",
)

var dischargeColumns = withBase(
	"admission_id", "discharge_date", "discharge_time", "discharge_status", "discharge_diagnosis",
	"discharge_instructions", "discharging_physician", "length_of_stay", "total_cost",
	"insurance_coverage", "patient_payment",
)

type admissionRepository struct {
	BaseRepository
}

func NewAdmissionRepository(base BaseRepository) repository.AdmissionRepository {
	return &admissionRepository{base}
}

func (r *admissionRepository) Create(ctx context.Context, admission *model.Admission) error {
	if err := r.insert(ctx, admissionsTable, admissionColumns, admission); err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

func (r *admissionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	var admission model.Admission
	if err := r.getByID(ctx, &admission, admissionsTable, id); err != nil {
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.Admission, error) {
	admissions := []*model.Admission{}
	q := active(admissionsTable, "a").where("a.patient_id = ?", patientID)
	if err := r.list(ctx, &admissions, q, "a.admission_date DESC, a.admission_time DESC", page); err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	return admissions, nil
}

func (r *admissionRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, active(admissionsTable, "a").where("a.admission_number = ?", number))
}

type dischargeRepository struct {
	BaseRepository
}

func NewDischargeRepository(base BaseRepository) repository.DischargeRepository {
	return &dischargeRepository{base}
}

func (r *dischargeRepository) Create(ctx context.Context, discharge *model.Discharge) error {
	if err := r.insert(ctx, dischargesTable, dischargeColumns, discharge); err != nil {
		return fmt.Errorf("failed to create discharge: %w", err)
	}
	return nil
}

func (r *dischargeRepository) GetByAdmission(ctx context.Context, admissionID uuid.UUID) (*model.Discharge, error) {
	var discharge model.Discharge
	if err := r.get(ctx, &discharge, active(dischargesTable, "d").where("d.admission_id = ?", admissionID)); err != nil {
		return nil, err
	}
	return &discharge, nil
}
