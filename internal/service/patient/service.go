package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/internal/service"
	"github.com/mediflow/mediflow-api/internal/service/event"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context, filter model.PatientFilter) ([]*model.Patient, error)

	CreateAdmission(ctx context.Context, patientID uuid.UUID, req *model.CreateAdmissionRequest) (*model.Admission, error)
	ListAdmissions(ctx context.Context, patientID uuid.UUID) ([]*model.Admission, error)
	GetAdmission(ctx context.Context, id uuid.UUID) (*model.Admission, error)
	DischargePatient(ctx context.Context, admissionID uuid.UUID, req *model.CreateDischargeRequest) (*model.Discharge, error)

	CreateOutcome(ctx context.Context, patientID uuid.UUID, req *model.CreateOutcomeRequest) (*model.PatientOutcome, error)
	ListOutcomes(ctx context.Context, patientID uuid.UUID) ([]*model.PatientOutcome, error)
	CreateReadmission(ctx context.Context, patientID uuid.UUID, req *model.CreateReadmissionRequest) (*model.Readmission, error)
	ListReadmissions(ctx context.Context, patientID uuid.UUID) ([]*model.Readmission, error)
	CreateSatisfaction(ctx context.Context, patientID uuid.UUID, req *model.CreateSatisfactionRequest) (*model.SatisfactionScore, error)
	ListSatisfaction(ctx context.Context, patientID uuid.UUID) ([]*model.SatisfactionScore, error)
}

// Repositories groups the stores the patient service writes to.
type Repositories struct {
	Patients     repository.PatientRepository
	Admissions   repository.AdmissionRepository
	Discharges   repository.DischargeRepository
	Outcomes     repository.OutcomeRepository
	Readmissions repository.ReadmissionRepository
	Satisfaction repository.SatisfactionRepository
	Departments  repository.DepartmentRepository
	Beds         repository.BedRepository
}

type Service struct {
	repos  Repositories
	events event.Emitter
	now    service.Clock
}

func NewService(repos Repositories, events event.Emitter, now service.Clock) *Service {
	if events == nil {
		events = event.Nop{}
	}
	if now == nil {
		now = service.SystemClock
	}
	return &Service{repos: repos, events: events, now: now}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	exists, err := s.repos.Patients.ExistsByCode(ctx, req.PatientCode)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("Patient ID already exists", nil)
	}

	patient := &model.Patient{
		PatientCode:         req.PatientCode,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DateOfBirth:         *req.DateOfBirth,
		Gender:              req.Gender,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		EmergencyContact:    req.EmergencyContact,
		EmergencyPhone:      req.EmergencyPhone,
		InsuranceProvider:   req.InsuranceProvider,
		InsuranceNumber:     req.InsuranceNumber,
		MedicalRecordNumber: req.MedicalRecordNumber,
	}
	patient.Stamp(s.now())

	// The unique index still catches a concurrent insert of the same code.
	if err := s.repos.Patients.Create(ctx, patient); err != nil {
		return nil, service.StoreError("Patient", "Patient ID already exists", err)
	}

	s.events.Emit(ctx, model.EventPatientRegistered, patient.ID, patient)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repos.Patients.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Patient", "", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(patient)
	patient.Touch(s.now())

	if err := s.repos.Patients.Update(ctx, patient); err != nil {
		return nil, service.StoreError("Patient", "", err)
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return service.StoreError("Patient", "", s.repos.Patients.Delete(ctx, id))
}

func (s *Service) ListPatients(ctx context.Context, filter model.PatientFilter) ([]*model.Patient, error) {
	patients, err := s.repos.Patients.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}

func (s *Service) CreateAdmission(ctx context.Context, patientID uuid.UUID, req *model.CreateAdmissionRequest) (*model.Admission, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Departments.Get(ctx, req.DepartmentID); err != nil {
		return nil, service.StoreError("Department", "", err)
	}
	if req.BedID != nil {
		bed, err := s.repos.Beds.Get(ctx, *req.BedID)
		if err != nil {
			return nil, service.StoreError("Bed", "", err)
		}
		if bed.DepartmentID != req.DepartmentID {
			return nil, apperrors.Validation("bed does not belong to the admitting department", nil)
		}
	}

	exists, err := s.repos.Admissions.ExistsByNumber(ctx, req.AdmissionNumber)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("Admission number already exists", nil)
	}

	admission := &model.Admission{
		PatientID:            patientID,
		AdmissionNumber:      req.AdmissionNumber,
		AdmissionDate:        *req.AdmissionDate,
		AdmissionTime:        req.AdmissionTime,
		AdmissionType:        req.AdmissionType,
		DepartmentID:         req.DepartmentID,
		BedID:                req.BedID,
		PrimaryDiagnosis:     req.PrimaryDiagnosis,
		SecondaryDiagnoses:   req.SecondaryDiagnoses,
		AdmissionNotes:       req.AdmissionNotes,
		AdmittingPhysician:   req.AdmittingPhysician,
		ExpectedLengthOfStay: req.ExpectedLengthOfStay,
	}
	admission.Stamp(s.now())

	if err := s.repos.Admissions.Create(ctx, admission); err != nil {
		return nil, service.StoreError("Admission", "Admission number already exists", err)
	}

	s.events.Emit(ctx, model.EventPatientAdmission, admission.ID, admission)
	return admission, nil
}

func (s *Service) ListAdmissions(ctx context.Context, patientID uuid.UUID) ([]*model.Admission, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	admissions, err := s.repos.Admissions.ListByPatient(ctx, patientID, model.Page{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return admissions, nil
}

// GetAdmission returns the admission with its discharge attached when one exists.
func (s *Service) GetAdmission(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	admission, err := s.repos.Admissions.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Admission", "", err)
	}

	discharge, err := s.repos.Discharges.GetByAdmission(ctx, id)
	switch {
	case err == nil:
		admission.Discharge = discharge
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperrors.Internal(err)
	}
	return admission, nil
}

// DischargePatient records the discharge and fixes length of stay as whole
// days between the admission and discharge dates.
func (s *Service) DischargePatient(ctx context.Context, admissionID uuid.UUID, req *model.CreateDischargeRequest) (*model.Discharge, error) {
	admission, err := s.repos.Admissions.Get(ctx, admissionID)
	if err != nil {
		return nil, service.StoreError("Admission", "", err)
	}

	_, err = s.repos.Discharges.GetByAdmission(ctx, admissionID)
	switch {
	case err == nil:
		return nil, apperrors.Conflict("Discharge record already exists for this admission", nil)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperrors.Internal(err)
	}

	dischargeDate := *req.DischargeDate
	if dischargeDate.Before(admission.AdmissionDate) {
		return nil, apperrors.Validation("discharge_date must not be before the admission date", nil)
	}

	discharge := &model.Discharge{
		AdmissionID:           admissionID,
		DischargeDate:         dischargeDate,
		DischargeTime:         req.DischargeTime,
		DischargeStatus:       req.DischargeStatus,
		DischargeDiagnosis:    req.DischargeDiagnosis,
		DischargeInstructions: req.DischargeInstructions,
		DischargingPhysician:  req.DischargingPhysician,
		LengthOfStay:          dischargeDate.DaysSince(admission.AdmissionDate),
		TotalCost:             req.TotalCost,
		InsuranceCoverage:     req.InsuranceCoverage,
		PatientPayment:        req.PatientPayment,
	}
	discharge.Stamp(s.now())

	if err := s.repos.Discharges.Create(ctx, discharge); err != nil {
		return nil, service.StoreError("Admission", "Discharge record already exists for this admission", err)
	}

	s.events.Emit(ctx, model.EventPatientDischarge, discharge.ID, discharge)
	return discharge, nil
}

// patientAdmission checks that an optional admission reference is active and
// belongs to the patient.
func (s *Service) patientAdmission(ctx context.Context, patientID uuid.UUID, admissionID *uuid.UUID) error {
	if admissionID == nil {
		return nil
	}
	admission, err := s.repos.Admissions.Get(ctx, *admissionID)
	if err != nil {
		return service.StoreError("Admission", "", err)
	}
	if admission.PatientID != patientID {
		return apperrors.Validation("admission does not belong to this patient", nil)
	}
	return nil
}

func (s *Service) CreateOutcome(ctx context.Context, patientID uuid.UUID, req *model.CreateOutcomeRequest) (*model.PatientOutcome, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.patientAdmission(ctx, patientID, req.AdmissionID); err != nil {
		return nil, err
	}

	outcome := &model.PatientOutcome{
		PatientID:        patientID,
		AdmissionID:      req.AdmissionID,
		OutcomeType:      req.OutcomeType,
		OutcomeDate:      *req.OutcomeDate,
		RecoveryTimeDays: req.RecoveryTimeDays,
		TreatmentSuccess: req.TreatmentSuccess,
		Complications:    blankToNil(req.Complications),
		FollowUpRequired: req.FollowUpRequired,
		FollowUpDate:     req.FollowUpDate,
		Notes:            req.Notes,
	}
	outcome.Stamp(s.now())

	if err := s.repos.Outcomes.Create(ctx, outcome); err != nil {
		return nil, service.StoreError("Outcome", "", err)
	}

	s.events.Emit(ctx, model.EventOutcomeTracking, outcome.ID, outcome)
	return outcome, nil
}

func (s *Service) ListOutcomes(ctx context.Context, patientID uuid.UUID) ([]*model.PatientOutcome, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	outcomes, err := s.repos.Outcomes.ListByPatient(ctx, patientID, model.Page{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return outcomes, nil
}

func (s *Service) CreateReadmission(ctx context.Context, patientID uuid.UUID, req *model.CreateReadmissionRequest) (*model.Readmission, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.patientAdmission(ctx, patientID, &req.OriginalAdmissionID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Departments.Get(ctx, req.ReadmissionDepartmentID); err != nil {
		return nil, service.StoreError("Department", "", err)
	}

	readmission := &model.Readmission{
		PatientID:               patientID,
		OriginalAdmissionID:     req.OriginalAdmissionID,
		ReadmissionDate:         *req.ReadmissionDate,
		DaysSinceDischarge:      *req.DaysSinceDischarge,
		ReadmissionReason:       req.ReadmissionReason,
		ReadmissionDepartmentID: req.ReadmissionDepartmentID,
		SeverityScore:           req.SeverityScore,
		Preventable:             req.Preventable,
		Notes:                   req.Notes,
	}
	readmission.Stamp(s.now())

	if err := s.repos.Readmissions.Create(ctx, readmission); err != nil {
		return nil, service.StoreError("Readmission", "", err)
	}

	s.events.Emit(ctx, model.EventReadmission, readmission.ID, readmission)
	return readmission, nil
}

func (s *Service) ListReadmissions(ctx context.Context, patientID uuid.UUID) ([]*model.Readmission, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	readmissions, err := s.repos.Readmissions.ListByPatient(ctx, patientID, model.Page{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return readmissions, nil
}

func (s *Service) CreateSatisfaction(ctx context.Context, patientID uuid.UUID, req *model.CreateSatisfactionRequest) (*model.SatisfactionScore, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.patientAdmission(ctx, patientID, req.AdmissionID); err != nil {
		return nil, err
	}

	score := &model.SatisfactionScore{
		PatientID:              patientID,
		AdmissionID:            req.AdmissionID,
		SurveyDate:             *req.SurveyDate,
		OverallSatisfaction:    req.OverallSatisfaction,
		CareQuality:            req.CareQuality,
		Communication:          req.Communication,
		Cleanliness:            req.Cleanliness,
		FoodQuality:            req.FoodQuality,
		StaffFriendliness:      req.StaffFriendliness,
		PainManagement:         req.PainManagement,
		DischargeProcess:       req.DischargeProcess,
		WouldRecommend:         req.WouldRecommend,
		Comments:               req.Comments,
		ImprovementSuggestions: req.ImprovementSuggestions,
	}
	score.Stamp(s.now())

	if err := s.repos.Satisfaction.Create(ctx, score); err != nil {
		return nil, service.StoreError("Satisfaction score", "", err)
	}

	s.events.Emit(ctx, model.EventSatisfactionSurvey, score.ID, score)
	return score, nil
}

func (s *Service) ListSatisfaction(ctx context.Context, patientID uuid.UUID) ([]*model.SatisfactionScore, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	scores, err := s.repos.Satisfaction.ListByPatient(ctx, patientID, model.Page{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return scores, nil
}

// blankToNil keeps empty complications text from counting as a complication.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

var _ PatientService = (*Service)(nil)
