package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const patientsTable = "patients"

var patientColumns = withBase(
	"patient_code", "first_name", "last_name", "date_of_birth", "gender",
	"phone", "email", "address", "emergency_contact", "emergency_phone",
	"insurance_provider", "insurance_number", "medical_record_number",
)

var patientUpdatable = []string{
	"first_name", "last_name", "phone", "email", "address", "emergency_contact",
	"emergency_phone", "insurance_provider", "insurance_number",
}

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	if err := r.insert(ctx, patientsTable, patientColumns, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	var patient model.Patient
	if err := r.getByID(ctx, &patient, patientsTable, id); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	return r.update(ctx, patientsTable, patientUpdatable, patient)
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.softDelete(ctx, patientsTable, id)
}

// List matches Search case-insensitively against names and patient code.
func (r *patientRepository) List(ctx context.Context, filter model.PatientFilter) ([]*model.Patient, error) {
	q := active(patientsTable, "p")
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q.where("(LOWER(p.first_name) LIKE ? OR LOWER(p.last_name) LIKE ? OR LOWER(p.patient_code) LIKE ?)",
			like, like, like)
	}

	patients := []*model.Patient{}
	if err := r.list(ctx, &patients, q, "p.created_at DESC, p.id", filter.Page); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, active(patientsTable, "p").where("p.patient_code = ?", code))
}
