package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
)

var (
	// ErrNotFound is returned when an id does not resolve to an active record.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("record already exists")
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filter model.PatientFilter) ([]*model.Patient, error)
		ExistsByCode(ctx context.Context, code string) (bool, error)
	}

	AdmissionRepository interface {
		Create(ctx context.Context, admission *model.Admission) error
		Get(ctx context.Context, id uuid.UUID) (*model.Admission, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.Admission, error)
		ExistsByNumber(ctx context.Context, number string) (bool, error)
	}

	DischargeRepository interface {
		Create(ctx context.Context, discharge *model.Discharge) error
		GetByAdmission(ctx context.Context, admissionID uuid.UUID) (*model.Discharge, error)
	}

	OutcomeRepository interface {
		Create(ctx context.Context, outcome *model.PatientOutcome) error
		ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.PatientOutcome, error)
	}

	ReadmissionRepository interface {
		Create(ctx context.Context, readmission *model.Readmission) error
		ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.Readmission, error)
	}

	SatisfactionRepository interface {
		Create(ctx context.Context, score *model.SatisfactionScore) error
		ListByPatient(ctx context.Context, patientID uuid.UUID, page model.Page) ([]*model.SatisfactionScore, error)
	}

	DepartmentRepository interface {
		Create(ctx context.Context, department *model.Department) error
		Get(ctx context.Context, id uuid.UUID) (*model.Department, error)
		Update(ctx context.Context, department *model.Department) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filter model.DepartmentFilter) ([]*model.Department, error)
		ListAll(ctx context.Context) ([]*model.Department, error)
	}

	BedRepository interface {
		Create(ctx context.Context, bed *model.Bed) error
		Get(ctx context.Context, id uuid.UUID) (*model.Bed, error)
		Update(ctx context.Context, bed *model.Bed) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filter model.BedFilter) ([]*model.Bed, error)
		ExistsByNumber(ctx context.Context, departmentID uuid.UUID, bedNumber string, excludeID *uuid.UUID) (bool, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
		Update(ctx context.Context, staff *model.Staff) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filter model.StaffFilter) ([]*model.Staff, error)
		ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
		ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	}

	EquipmentRepository interface {
		Create(ctx context.Context, equipment *model.Equipment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
		Update(ctx context.Context, equipment *model.Equipment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
		ExistsByCode(ctx context.Context, code string) (bool, error)
		ListMaintenanceDue(ctx context.Context, asOf model.Date) ([]*model.Equipment, error)
	}

	CostAnalysisRepository interface {
		Create(ctx context.Context, analysis *model.CostAnalysis) error
		Get(ctx context.Context, id uuid.UUID) (*model.CostAnalysis, error)
		List(ctx context.Context, filter model.CostAnalysisFilter) ([]*model.CostAnalysis, error)
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByUsername(ctx context.Context, username string) (*model.User, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPending(ctx context.Context, limit, maxRetries int) ([]*model.OutboxEvent, error)
		MarkProcessed(ctx context.Context, id uuid.UUID) error
		MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}

	// MetricsRepository exposes the count/sum/average primitives the
	// metrics engine works from. All figures cover active records only.
	MetricsRepository interface {
		CountPatients(ctx context.Context) (int, error)
		CountAdmissions(ctx context.Context) (int, error)
		BedCounts(ctx context.Context, departmentID *uuid.UUID) (model.BedCounts, error)
		StaffCounts(ctx context.Context, departmentID *uuid.UUID) (model.StaffCounts, error)
		EquipmentCounts(ctx context.Context, departmentID *uuid.UUID, today model.Date) (model.EquipmentCounts, error)
		AverageLengthOfStay(ctx context.Context, departmentID *uuid.UUID) (float64, error)
		AverageSatisfaction(ctx context.Context, departmentID *uuid.UUID) (float64, error)
		CountDischarges(ctx context.Context, filter model.DischargeCountFilter) (int, error)
		CountReadmissions(ctx context.Context, filter model.ReadmissionCountFilter) (int, error)
		SumDischargeCost(ctx context.Context) (float64, error)
		SumCostAnalysisCost(ctx context.Context, departmentID *uuid.UUID) (float64, error)
		OutcomeCounts(ctx context.Context) (model.OutcomeCounts, error)
		AdmissionsPerDay(ctx context.Context, through model.Date) ([]model.DayCount, error)
		DischargesPerDay(ctx context.Context, through model.Date) ([]model.DayCount, error)
		ReadmissionsPerDay(ctx context.Context, from, through model.Date) ([]model.DayCount, error)
	}
)
