package sqlstore

import (
	"github.com/jmoiron/sqlx"

	"github.com/mediflow/mediflow-api/internal/repository"
)

// Repositories bundles every store implementation over one database handle.
type Repositories struct {
	Patients     repository.PatientRepository
	Admissions   repository.AdmissionRepository
	Discharges   repository.DischargeRepository
	Outcomes     repository.OutcomeRepository
	Readmissions repository.ReadmissionRepository
	Satisfaction repository.SatisfactionRepository
	Departments  repository.DepartmentRepository
	Beds         repository.BedRepository
	Staff        repository.StaffRepository
	Equipment    repository.EquipmentRepository
	CostAnalyses repository.CostAnalysisRepository
	Users        repository.UserRepository
	Outbox       repository.OutboxRepository
	Metrics      repository.MetricsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	base := NewBaseRepository(db)
	return &Repositories{
		Patients:     NewPatientRepository(base),
		Admissions:   NewAdmissionRepository(base),
		Discharges:   NewDischargeRepository(base),
		Outcomes:     NewOutcomeRepository(base),
		Readmissions: NewReadmissionRepository(base),
		Satisfaction: NewSatisfactionRepository(base),
		Departments:  NewDepartmentRepository(base),
		Beds:         NewBedRepository(base),
		Staff:        NewStaffRepository(base),
		Equipment:    NewEquipmentRepository(base),
		CostAnalyses: NewCostAnalysisRepository(base),
		Users:        NewUserRepository(base),
		Outbox:       NewOutboxRepository(base),
		Metrics:      NewMetricsRepository(base),
	}
}
