package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/model"
)

func TestMetricsRepository_BedCountsIgnoreDeletedRows(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	dept := seedDepartment(t, repos, "General")
	other := seedDepartment(t, repos, "ICU")

	seedBed(t, repos, dept.ID, "B1", model.BedOccupied)
	seedBed(t, repos, dept.ID, "B2", model.BedAvailable)
	seedBed(t, repos, other.ID, "B1", model.BedOccupied)
	gone := seedBed(t, repos, dept.ID, "B3", model.BedOccupied)
	require.NoError(t, repos.Beds.Delete(ctx, gone.ID))

	all, err := repos.Metrics.BedCounts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, model.BedCounts{Total: 3, Occupied: 2}, all)

	scoped, err := repos.Metrics.BedCounts(ctx, &dept.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BedCounts{Total: 2, Occupied: 1}, scoped)
}

func TestMetricsRepository_EmptyStore(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	n, err := repos.Metrics.CountPatients(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	los, err := repos.Metrics.AverageLengthOfStay(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, los)

	sat, err := repos.Metrics.AverageSatisfaction(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, sat)

	cost, err := repos.Metrics.SumDischargeCost(ctx)
	require.NoError(t, err)
	assert.Zero(t, cost)

	outcomes, err := repos.Metrics.OutcomeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeCounts{}, outcomes)

	eq, err := repos.Metrics.EquipmentCounts(ctx, nil, model.NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, model.EquipmentCounts{}, eq)
}

func TestMetricsRepository_DischargeAggregatesSkipDeletedAdmissions(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	dept := seedDepartment(t, repos, "General")
	p := seedPatient(t, repos, "P-001", "Ada", "Lovelace")

	kept := seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.March, 1))
	seedDischarge(t, repos, kept, model.NewDate(2024, time.March, 5), 1000)

	dropped := seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.March, 2))
	seedDischarge(t, repos, dropped, model.NewDate(2024, time.March, 12), 5000)
	require.NoError(t, repos.Admissions.(*admissionRepository).softDelete(ctx, admissionsTable, dropped.ID))

	los, err := repos.Metrics.AverageLengthOfStay(ctx, &dept.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, los, 0.0001)

	cost, err := repos.Metrics.SumDischargeCost(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, cost, 0.0001)

	since := model.NewDate(2024, time.March, 3)
	n, err := repos.Metrics.CountDischarges(ctx, model.DischargeCountFilter{Since: &since})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	admissions, err := repos.Metrics.CountAdmissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, admissions)
}

func TestMetricsRepository_ReadmissionCounts(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	dept := seedDepartment(t, repos, "General")
	p := seedPatient(t, repos, "P-001", "Ada", "Lovelace")
	adm := seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.January, 1))

	for _, r := range []struct {
		on   model.Date
		days int
	}{
		{model.NewDate(2024, time.March, 10), 12},
		{model.NewDate(2024, time.March, 10), 45},
		{model.NewDate(2024, time.March, 12), 3},
		{model.NewDate(2024, time.January, 20), 5},
	} {
		rec := &model.Readmission{
			PatientID:               p.ID,
			OriginalAdmissionID:     adm.ID,
			ReadmissionDate:         r.on,
			DaysSinceDischarge:      r.days,
			ReadmissionReason:       model.ReadmissionInfection,
			ReadmissionDepartmentID: dept.ID,
		}
		rec.Stamp(testNow)
		require.NoError(t, repos.Readmissions.Create(ctx, rec))
	}

	since := model.NewDate(2024, time.February, 14)
	maxDays := 30
	n, err := repos.Metrics.CountReadmissions(ctx, model.ReadmissionCountFilter{Since: &since, MaxDaysSinceDischarge: &maxDays})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repos.Metrics.CountReadmissions(ctx, model.ReadmissionCountFilter{DepartmentID: &dept.ID})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	perDay, err := repos.Metrics.ReadmissionsPerDay(ctx, model.NewDate(2024, time.March, 1), model.NewDate(2024, time.March, 31))
	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{
		{Day: model.NewDate(2024, time.March, 10), Count: 2},
		{Day: model.NewDate(2024, time.March, 12), Count: 1},
	}, perDay)
}

func TestMetricsRepository_AdmissionsAndDischargesPerDay(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	dept := seedDepartment(t, repos, "General")
	p := seedPatient(t, repos, "P-001", "Ada", "Lovelace")

	a1 := seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.March, 1))
	seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.March, 1))
	seedAdmission(t, repos, p.ID, dept.ID, model.NewDate(2024, time.March, 20))
	seedDischarge(t, repos, a1, model.NewDate(2024, time.March, 4), 0)

	admissions, err := repos.Metrics.AdmissionsPerDay(ctx, model.NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{{Day: model.NewDate(2024, time.March, 1), Count: 2}}, admissions)

	discharges, err := repos.Metrics.DischargesPerDay(ctx, model.NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{{Day: model.NewDate(2024, time.March, 4), Count: 1}}, discharges)
}

func TestMetricsRepository_OutcomeCounts(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	p := seedPatient(t, repos, "P-001", "Ada", "Lovelace")

	yes, no := true, false
	complication := "wound infection"
	five, nine := 5, 9
	rows := []*model.PatientOutcome{
		{OutcomeType: model.OutcomeRecovered, TreatmentSuccess: &yes, RecoveryTimeDays: &five},
		{OutcomeType: model.OutcomeRecovered, TreatmentSuccess: &yes, RecoveryTimeDays: &nine},
		{OutcomeType: model.OutcomeDeceased, TreatmentSuccess: &no, Complications: &complication},
		{OutcomeType: model.OutcomeImproved},
	}
	for _, o := range rows {
		o.PatientID = p.ID
		o.OutcomeDate = model.NewDate(2024, time.March, 1)
		o.Stamp(testNow)
		require.NoError(t, repos.Outcomes.Create(ctx, o))
	}

	counts, err := repos.Metrics.OutcomeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.Recovered)
	assert.Equal(t, 1, counts.Deceased)
	assert.Equal(t, 1, counts.WithComplications)
	assert.Equal(t, 2, counts.TreatmentSucceeded)
	assert.InDelta(t, 7.0, counts.AverageRecoveryDays, 0.0001)
}

func TestMetricsRepository_EquipmentCounts(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	dept := seedDepartment(t, repos, "Radiology")
	today := model.NewDate(2024, time.March, 15)

	specs := []struct {
		code   string
		status model.EquipmentStatus
		due    *model.Date
	}{
		{"EQ1", model.EquipmentInUse, ptrDate(today)},
		{"EQ2", model.EquipmentInUse, nil},
		{"EQ3", model.EquipmentOutOfOrder, ptrDate(today.AddDays(3))},
		{"EQ4", model.EquipmentAvailable, ptrDate(today.AddDays(-10))},
	}
	for _, s := range specs {
		e := &model.Equipment{
			EquipmentCode:      s.code,
			Name:               "Pump",
			EquipmentType:      "infusion",
			DepartmentID:       dept.ID,
			Status:             s.status,
			NextMaintenanceDue: s.due,
		}
		e.Stamp(testNow)
		require.NoError(t, repos.Equipment.Create(ctx, e))
	}

	counts, err := repos.Metrics.EquipmentCounts(ctx, &dept.ID, today)
	require.NoError(t, err)
	assert.Equal(t, model.EquipmentCounts{Total: 4, InUse: 2, OutOfOrder: 1, MaintenanceDue: 2}, counts)
}
