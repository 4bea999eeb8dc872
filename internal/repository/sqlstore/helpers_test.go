package sqlstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/config"
	"github.com/mediflow/mediflow-api/internal/model"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, config.DatabaseConfig{URL: "sqlite://:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return NewRepositories(db)
}

func seedDepartment(t *testing.T, repos *Repositories, name string) *model.Department {
	t.Helper()
	d := &model.Department{Name: name, DepartmentType: model.DepartmentGeneral, TotalBeds: 10, AvailableBeds: 10}
	d.Stamp(testNow)
	require.NoError(t, repos.Departments.Create(context.Background(), d))
	return d
}

func seedPatient(t *testing.T, repos *Repositories, code, first, last string) *model.Patient {
	t.Helper()
	p := &model.Patient{
		PatientCode: code,
		FirstName:   first,
		LastName:    last,
		DateOfBirth: model.NewDate(1980, time.May, 4),
		Gender:      model.GenderFemale,
	}
	p.Stamp(testNow)
	require.NoError(t, repos.Patients.Create(context.Background(), p))
	return p
}

var admissionSeq int

func seedAdmission(t *testing.T, repos *Repositories, patientID, departmentID uuid.UUID, on model.Date) *model.Admission {
	t.Helper()
	admissionSeq++
	a := &model.Admission{
		PatientID:          patientID,
		AdmissionNumber:    fmt.Sprintf("ADM-%04d", admissionSeq),
		AdmissionDate:      on,
		AdmissionTime:      "08:15",
		AdmissionType:      model.AdmissionTypeElective,
		DepartmentID:       departmentID,
		PrimaryDiagnosis:   "observation",
		AdmittingPhysician: "Dr. Grey",
	}
	a.Stamp(testNow)
	require.NoError(t, repos.Admissions.Create(context.Background(), a))
	return a
}

func seedDischarge(t *testing.T, repos *Repositories, admission *model.Admission, on model.Date, cost float64) *model.Discharge {
	t.Helper()
	d := &model.Discharge{
		AdmissionID:          admission.ID,
		DischargeDate:        on,
		DischargeTime:        "16:00",
		DischargeStatus:      model.DischargeStatusHome,
		DischargeDiagnosis:   "resolved",
		DischargingPhysician: "Dr. Grey",
		LengthOfStay:         on.DaysSince(admission.AdmissionDate),
		TotalCost:            &cost,
	}
	d.Stamp(testNow)
	require.NoError(t, repos.Discharges.Create(context.Background(), d))
	return d
}

func seedBed(t *testing.T, repos *Repositories, departmentID uuid.UUID, number string, status model.BedStatus) *model.Bed {
	t.Helper()
	b := &model.Bed{DepartmentID: departmentID, BedNumber: number, RoomNumber: "101", BedType: "standard", Status: status}
	b.Stamp(testNow)
	require.NoError(t, repos.Beds.Create(context.Background(), b))
	return b
}
