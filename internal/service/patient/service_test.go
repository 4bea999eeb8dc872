package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore/sqlstoretest"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

type recordedEvent struct {
	Type     model.EventType
	EntityID uuid.UUID
}

type recordingEmitter struct {
	events []recordedEvent
}

func (r *recordingEmitter) Emit(_ context.Context, t model.EventType, id uuid.UUID, _ interface{}) {
	r.events = append(r.events, recordedEvent{Type: t, EntityID: id})
}

type fixture struct {
	svc    *Service
	repos  *sqlstore.Repositories
	events *recordingEmitter
	dept   *model.Department
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := sqlstoretest.Open(t)
	events := &recordingEmitter{}
	svc := NewService(Repositories{
		Patients:     repos.Patients,
		Admissions:   repos.Admissions,
		Discharges:   repos.Discharges,
		Outcomes:     repos.Outcomes,
		Readmissions: repos.Readmissions,
		Satisfaction: repos.Satisfaction,
		Departments:  repos.Departments,
		Beds:         repos.Beds,
	}, events, func() time.Time { return fixedNow })

	dept := &model.Department{Name: "Cardiology", DepartmentType: model.DepartmentCardiology, TotalBeds: 4}
	dept.Stamp(fixedNow)
	require.NoError(t, repos.Departments.Create(context.Background(), dept))

	return &fixture{svc: svc, repos: repos, events: events, dept: dept}
}

func date(y int, m time.Month, d int) *model.Date {
	v := model.NewDate(y, m, d)
	return &v
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func (f *fixture) createPatient(t *testing.T, code string) *model.Patient {
	t.Helper()
	p, err := f.svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		PatientCode: code,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: date(1985, time.December, 10),
		Gender:      model.GenderFemale,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) admit(t *testing.T, patientID uuid.UUID, number string, on *model.Date) *model.Admission {
	t.Helper()
	a, err := f.svc.CreateAdmission(context.Background(), patientID, &model.CreateAdmissionRequest{
		AdmissionNumber:    number,
		AdmissionDate:      on,
		AdmissionTime:      "23:45",
		AdmissionType:      model.AdmissionTypeEmergency,
		DepartmentID:       f.dept.ID,
		PrimaryDiagnosis:   "chest pain",
		AdmittingPhysician: "Dr. House",
	})
	require.NoError(t, err)
	return a
}

func dischargeReq(on *model.Date) *model.CreateDischargeRequest {
	cost := 1250.5
	return &model.CreateDischargeRequest{
		DischargeDate:        on,
		DischargeTime:        "00:15",
		DischargeStatus:      model.DischargeStatusHome,
		DischargeDiagnosis:   "stable",
		DischargingPhysician: "Dr. House",
		TotalCost:            &cost,
	}
}

func TestCreatePatient(t *testing.T) {
	f := newFixture(t)
	p := f.createPatient(t, "P-001")

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, fixedNow, p.CreatedAt)
	require.Len(t, f.events.events, 1)
	assert.Equal(t, model.EventPatientRegistered, f.events.events[0].Type)

	_, err := f.svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		PatientCode: "P-001", FirstName: "B", LastName: "C",
		DateOfBirth: date(1990, time.January, 1), Gender: model.GenderMale,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
}

func TestUpdatePatientOnlyChangesSuppliedFields(t *testing.T) {
	f := newFixture(t)
	p := f.createPatient(t, "P-002")

	updated, err := f.svc.UpdatePatient(context.Background(), p.ID, &model.UpdatePatientRequest{
		Phone: strPtr("555-0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)

	got, err := f.svc.GetPatient(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", *got.Phone)
	assert.Equal(t, "Lovelace", got.LastName)
}

func TestDeletePatient(t *testing.T) {
	f := newFixture(t)
	p := f.createPatient(t, "P-003")
	ctx := context.Background()

	require.NoError(t, f.svc.DeletePatient(ctx, p.ID))

	_, err := f.svc.GetPatient(ctx, p.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))

	err = f.svc.DeletePatient(ctx, p.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))

	list, err := f.svc.ListPatients(ctx, model.PatientFilter{Page: model.Page{Limit: 20}})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateAdmissionReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-010")

	req := func() *model.CreateAdmissionRequest {
		return &model.CreateAdmissionRequest{
			AdmissionNumber:    "A-1",
			AdmissionDate:      date(2024, time.May, 1),
			AdmissionTime:      "08:00",
			AdmissionType:      model.AdmissionTypeElective,
			DepartmentID:       f.dept.ID,
			PrimaryDiagnosis:   "x",
			AdmittingPhysician: "Dr. Who",
		}
	}

	t.Run("unknown patient", func(t *testing.T) {
		_, err := f.svc.CreateAdmission(ctx, uuid.New(), req())
		require.Error(t, err)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Patient not found", appErr.Message)
	})

	t.Run("unknown department", func(t *testing.T) {
		r := req()
		r.DepartmentID = uuid.New()
		_, err := f.svc.CreateAdmission(ctx, p.ID, r)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Department not found", appErr.Message)
	})

	t.Run("bed from another department", func(t *testing.T) {
		other := &model.Department{Name: "ICU", DepartmentType: model.DepartmentICU}
		other.Stamp(fixedNow)
		require.NoError(t, f.repos.Departments.Create(ctx, other))
		bed := &model.Bed{DepartmentID: other.ID, BedNumber: "1", RoomNumber: "1", BedType: "icu", Status: model.BedAvailable}
		bed.Stamp(fixedNow)
		require.NoError(t, f.repos.Beds.Create(ctx, bed))

		r := req()
		r.BedID = &bed.ID
		_, err := f.svc.CreateAdmission(ctx, p.ID, r)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
	})

	t.Run("duplicate number", func(t *testing.T) {
		_, err := f.svc.CreateAdmission(ctx, p.ID, req())
		require.NoError(t, err)
		_, err = f.svc.CreateAdmission(ctx, p.ID, req())
		assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
	})
}

func TestDischargeLengthOfStay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-020")
	a := f.admit(t, p.ID, "A-20", date(2024, time.April, 28))

	d, err := f.svc.DischargePatient(ctx, a.ID, dischargeReq(date(2024, time.May, 3)))
	require.NoError(t, err)
	assert.Equal(t, 5, d.LengthOfStay)

	got, err := f.svc.GetAdmission(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Discharge)
	assert.Equal(t, d.ID, got.Discharge.ID)
	assert.Equal(t, 5, got.Discharge.LengthOfStay)

	_, err = f.svc.DischargePatient(ctx, a.ID, dischargeReq(date(2024, time.May, 4)))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))

	types := []model.EventType{}
	for _, e := range f.events.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []model.EventType{
		model.EventPatientRegistered, model.EventPatientAdmission, model.EventPatientDischarge,
	}, types)
}

func TestDischargeSameDayAndBeforeAdmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-021")

	sameDay := f.admit(t, p.ID, "A-21", date(2024, time.May, 10))
	d, err := f.svc.DischargePatient(ctx, sameDay.ID, dischargeReq(date(2024, time.May, 10)))
	require.NoError(t, err)
	assert.Equal(t, 0, d.LengthOfStay)

	early := f.admit(t, p.ID, "A-22", date(2024, time.May, 10))
	_, err = f.svc.DischargePatient(ctx, early.ID, dischargeReq(date(2024, time.May, 9)))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))

	_, err = f.svc.DischargePatient(ctx, uuid.New(), dischargeReq(date(2024, time.May, 9)))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestGetAdmissionWithoutDischarge(t *testing.T) {
	f := newFixture(t)
	p := f.createPatient(t, "P-022")
	a := f.admit(t, p.ID, "A-23", date(2024, time.May, 1))

	got, err := f.svc.GetAdmission(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Discharge)
}

func TestListAdmissionsNewestFirst(t *testing.T) {
	f := newFixture(t)
	p := f.createPatient(t, "P-030")
	f.admit(t, p.ID, "A-30", date(2024, time.January, 1))
	f.admit(t, p.ID, "A-31", date(2024, time.March, 1))

	list, err := f.svc.ListAdmissions(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A-31", list[0].AdmissionNumber)

	_, err = f.svc.ListAdmissions(context.Background(), uuid.New())
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestCreateOutcomeNormalizesComplications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-040")

	o, err := f.svc.CreateOutcome(ctx, p.ID, &model.CreateOutcomeRequest{
		OutcomeType:   model.OutcomeRecovered,
		OutcomeDate:   date(2024, time.May, 2),
		Complications: strPtr("  "),
	})
	require.NoError(t, err)
	assert.Nil(t, o.Complications)

	o, err = f.svc.CreateOutcome(ctx, p.ID, &model.CreateOutcomeRequest{
		OutcomeType:      model.OutcomeImproved,
		OutcomeDate:      date(2024, time.May, 3),
		RecoveryTimeDays: intPtr(4),
		Complications:    strPtr("wound infection"),
	})
	require.NoError(t, err)
	require.NotNil(t, o.Complications)

	list, err := f.svc.ListOutcomes(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, model.OutcomeImproved, list[0].OutcomeType)
}

func TestCreateOutcomeRejectsForeignAdmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createPatient(t, "P-041")
	other := f.createPatient(t, "P-042")
	a := f.admit(t, owner.ID, "A-41", date(2024, time.May, 1))

	_, err := f.svc.CreateOutcome(ctx, other.ID, &model.CreateOutcomeRequest{
		AdmissionID: &a.ID,
		OutcomeType: model.OutcomeRecovered,
		OutcomeDate: date(2024, time.May, 2),
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
}

func TestCreateReadmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-050")
	a := f.admit(t, p.ID, "A-50", date(2024, time.April, 1))

	req := &model.CreateReadmissionRequest{
		OriginalAdmissionID:     a.ID,
		ReadmissionDate:         date(2024, time.April, 20),
		DaysSinceDischarge:      intPtr(12),
		ReadmissionReason:       model.ReadmissionInfection,
		ReadmissionDepartmentID: f.dept.ID,
	}
	r, err := f.svc.CreateReadmission(ctx, p.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 12, r.DaysSinceDischarge)

	list, err := f.svc.ListReadmissions(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	req.ReadmissionDepartmentID = uuid.New()
	_, err = f.svc.CreateReadmission(ctx, p.ID, req)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Department not found", appErr.Message)

	req.ReadmissionDepartmentID = f.dept.ID
	req.OriginalAdmissionID = uuid.New()
	_, err = f.svc.CreateReadmission(ctx, p.ID, req)
	appErr, ok = apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Admission not found", appErr.Message)
}

func TestCreateSatisfaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPatient(t, "P-060")

	s, err := f.svc.CreateSatisfaction(ctx, p.ID, &model.CreateSatisfactionRequest{
		SurveyDate:          date(2024, time.May, 5),
		OverallSatisfaction: 4,
		CareQuality:         intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.OverallSatisfaction)

	list, err := f.svc.ListSatisfaction(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, *list[0].CareQuality)

	_, err = f.svc.CreateSatisfaction(ctx, uuid.New(), &model.CreateSatisfactionRequest{
		SurveyDate: date(2024, time.May, 5), OverallSatisfaction: 3,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	assert.Equal(t, model.EventSatisfactionSurvey, f.events.events[len(f.events.events)-1].Type)
}
