package kpi

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mediflow/mediflow-api/internal/model"
)

func TestDashboard(t *testing.T) {
	got := Dashboard(DashboardInput{
		Patients:            12,
		Admissions:          30,
		Beds:                model.BedCounts{Total: 10, Occupied: 3},
		AverageLengthOfStay: 4.3333333,
		AverageSatisfaction: 4.125,
		RecentDischarges:    20,
		RecentReadmissions:  3,
		Revenue:             100000,
		Cost:                60000,
	})

	assert.Equal(t, model.DashboardMetrics{
		TotalPatients:        12,
		TotalAdmissions:      30,
		CurrentOccupancyRate: 30.0,
		AverageLengthOfStay:  4.33,
		ReadmissionRate:      15.0,
		PatientSatisfaction:  4.12,
		TotalRevenue:         100000,
		TotalCosts:           60000,
		ProfitMargin:         40.0,
	}, got)
}

func TestDashboard_EmptyStore(t *testing.T) {
	got := Dashboard(DashboardInput{})

	assert.Equal(t, model.DashboardMetrics{}, got)
}

func TestDashboard_NoRevenue(t *testing.T) {
	got := Dashboard(DashboardInput{Cost: 60000})

	assert.Equal(t, 0.0, got.ProfitMargin)
	assert.Equal(t, 60000.0, got.TotalCosts)
}

func TestDepartmentPerformance(t *testing.T) {
	dept := &model.Department{Name: "Cardiology"}
	dept.ID = uuid.New()

	got := DepartmentPerformance(dept, DepartmentInput{
		Beds:                model.BedCounts{Total: 8, Occupied: 6},
		Staff:               model.StaffCounts{Total: 4, Active: 3},
		AverageLengthOfStay: 5.5,
		AverageSatisfaction: 3.666666,
		Discharges:          40,
		Readmissions:        2,
		Cost:                12345.678,
	})

	assert.Equal(t, dept.ID, got.DepartmentID)
	assert.Equal(t, "Cardiology", got.DepartmentName)
	assert.Equal(t, 75.0, got.OccupancyRate)
	assert.Equal(t, 5.5, got.AverageLengthOfStay)
	assert.Equal(t, 5.0, got.ReadmissionRate)
	assert.Equal(t, 3.67, got.PatientSatisfaction)
	assert.Equal(t, 12345.68, got.CostEfficiency)
	assert.Equal(t, 75.0, got.StaffUtilization)
}

func TestOutcomeSummary(t *testing.T) {
	got := OutcomeSummary(model.OutcomeCounts{
		Total:               50,
		Recovered:           25,
		Deceased:            10,
		WithComplications:   5,
		TreatmentSucceeded:  30,
		AverageRecoveryDays: 12.456,
	})

	assert.Equal(t, model.PatientOutcomeSummary{
		TotalPatients:        50,
		RecoveryRate:         50.0,
		MortalityRate:        20.0,
		ComplicationRate:     10.0,
		AverageRecoveryTime:  12.46,
		TreatmentSuccessRate: 60.0,
	}, got)

	assert.Equal(t, model.PatientOutcomeSummary{}, OutcomeSummary(model.OutcomeCounts{}))
}

func TestResourceUtilization(t *testing.T) {
	got := ResourceUtilization(
		model.BedCounts{Total: 20, Occupied: 5},
		model.StaffCounts{Total: 0, Active: 0},
		model.EquipmentCounts{Total: 3, InUse: 1, OutOfOrder: 1, MaintenanceDue: 2},
	)

	assert.Equal(t, model.ResourceUtilization{
		BedOccupancyRate:         25.0,
		StaffUtilizationRate:     0,
		EquipmentUtilizationRate: 33.33,
		MaintenanceDueCount:      2,
		EquipmentOutOfOrderCount: 1,
	}, got)
}

func TestDepartmentUtilization(t *testing.T) {
	dept := &model.Department{Name: "ICU"}
	dept.ID = uuid.New()

	got := DepartmentUtilization(dept,
		model.BedCounts{Total: 4, Occupied: 4},
		model.StaffCounts{Total: 5, Active: 4},
		model.EquipmentCounts{Total: 0},
	)

	assert.Equal(t, 100.0, got.BedUtilization)
	assert.Equal(t, 80.0, got.StaffUtilization)
	assert.Equal(t, 0.0, got.EquipmentUtilization)
	assert.Equal(t, 4, got.OccupiedBeds)
	assert.Equal(t, 4, got.ActiveStaff)
	assert.Equal(t, "ICU", got.DepartmentName)
}

func TestCostReport(t *testing.T) {
	period := model.ReportPeriod{
		StartDate: model.NewDate(2024, time.January, 1),
		EndDate:   model.NewDate(2024, time.March, 31),
	}
	revenue := 5000.0
	rows := []*model.CostAnalysis{
		{TotalCost: 1000.10, TotalRevenue: &revenue},
		{TotalCost: 2000.20},
	}

	got := CostReport(period, rows)

	assert.Equal(t, period, got.Period)
	assert.Equal(t, 3000.3, got.TotalCost)
	assert.Equal(t, 5000.0, got.TotalRevenue)
	assert.Equal(t, 1999.7, got.TotalProfit)
	assert.Equal(t, 39.99, got.ProfitMargin)
	assert.Len(t, got.CostAnalyses, 2)
}

func TestCostReport_NoRows(t *testing.T) {
	got := CostReport(model.ReportPeriod{}, nil)

	assert.Zero(t, got.TotalCost)
	assert.Zero(t, got.ProfitMargin)
	assert.NotNil(t, got.CostAnalyses)
	assert.Empty(t, got.CostAnalyses)
}
