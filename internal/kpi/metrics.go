package kpi

import (
	"github.com/mediflow/mediflow-api/internal/model"
)

// DashboardInput holds the store aggregates behind the dashboard.
// Recent* counts cover the trailing 30-day window.
type DashboardInput struct {
	Patients            int
	Admissions          int
	Beds                model.BedCounts
	AverageLengthOfStay float64
	AverageSatisfaction float64
	RecentDischarges    int
	RecentReadmissions  int
	Revenue             float64
	Cost                float64
}

// ReadmissionWindowDays bounds both the dashboard window and the
// days-since-discharge cut-off of a counted readmission.
const ReadmissionWindowDays = 30

// Dashboard derives the headline metrics. Revenue is the discharge cost sum
// and cost the cost-analysis sum.
func Dashboard(in DashboardInput) model.DashboardMetrics {
	return model.DashboardMetrics{
		TotalPatients:        in.Patients,
		TotalAdmissions:      in.Admissions,
		CurrentOccupancyRate: Rate(in.Beds.Occupied, in.Beds.Total),
		AverageLengthOfStay:  Round2(in.AverageLengthOfStay),
		ReadmissionRate:      Rate(in.RecentReadmissions, in.RecentDischarges),
		PatientSatisfaction:  Round2(in.AverageSatisfaction),
		TotalRevenue:         Round2(in.Revenue),
		TotalCosts:           Round2(in.Cost),
		ProfitMargin:         Margin(in.Revenue, in.Cost),
	}
}

// DepartmentInput holds one department's aggregates. Discharges are joined
// through the department's admissions; Readmissions target the department.
type DepartmentInput struct {
	Beds                model.BedCounts
	Staff               model.StaffCounts
	AverageLengthOfStay float64
	AverageSatisfaction float64
	Discharges          int
	Readmissions        int
	Cost                float64
}

func DepartmentPerformance(dept *model.Department, in DepartmentInput) model.DepartmentPerformance {
	return model.DepartmentPerformance{
		DepartmentID:        dept.ID,
		DepartmentName:      dept.Name,
		OccupancyRate:       Rate(in.Beds.Occupied, in.Beds.Total),
		AverageLengthOfStay: Round2(in.AverageLengthOfStay),
		ReadmissionRate:     Rate(in.Readmissions, in.Discharges),
		PatientSatisfaction: Round2(in.AverageSatisfaction),
		CostEfficiency:      Round2(in.Cost),
		StaffUtilization:    Rate(in.Staff.Active, in.Staff.Total),
	}
}

// OutcomeSummary expresses each outcome class as a share of all outcome
// records. Average recovery time only counts records that report one.
func OutcomeSummary(c model.OutcomeCounts) model.PatientOutcomeSummary {
	return model.PatientOutcomeSummary{
		TotalPatients:        c.Total,
		RecoveryRate:         Rate(c.Recovered, c.Total),
		MortalityRate:        Rate(c.Deceased, c.Total),
		ComplicationRate:     Rate(c.WithComplications, c.Total),
		AverageRecoveryTime:  Round2(c.AverageRecoveryDays),
		TreatmentSuccessRate: Rate(c.TreatmentSucceeded, c.Total),
	}
}

func ResourceUtilization(beds model.BedCounts, staff model.StaffCounts, equipment model.EquipmentCounts) model.ResourceUtilization {
	return model.ResourceUtilization{
		BedOccupancyRate:         Rate(beds.Occupied, beds.Total),
		StaffUtilizationRate:     Rate(staff.Active, staff.Total),
		EquipmentUtilizationRate: Rate(equipment.InUse, equipment.Total),
		MaintenanceDueCount:      equipment.MaintenanceDue,
		EquipmentOutOfOrderCount: equipment.OutOfOrder,
	}
}

func DepartmentUtilization(dept *model.Department, beds model.BedCounts, staff model.StaffCounts, equipment model.EquipmentCounts) model.DepartmentUtilization {
	return model.DepartmentUtilization{
		DepartmentID:         dept.ID,
		DepartmentName:       dept.Name,
		BedUtilization:       Rate(beds.Occupied, beds.Total),
		StaffUtilization:     Rate(staff.Active, staff.Total),
		EquipmentUtilization: Rate(equipment.InUse, equipment.Total),
		TotalBeds:            beds.Total,
		OccupiedBeds:         beds.Occupied,
		TotalStaff:           staff.Total,
		ActiveStaff:          staff.Active,
		TotalEquipment:       equipment.Total,
		InUseEquipment:       equipment.InUse,
	}
}

// CostReport totals the analyses of a period. Rows without revenue add
// nothing to revenue.
func CostReport(period model.ReportPeriod, rows []*model.CostAnalysis) model.CostAnalysisReport {
	var cost, revenue float64
	for _, r := range rows {
		cost += r.TotalCost
		if r.TotalRevenue != nil {
			revenue += *r.TotalRevenue
		}
	}
	if rows == nil {
		rows = []*model.CostAnalysis{}
	}

	profit := revenue - cost
	return model.CostAnalysisReport{
		Period:       period,
		TotalCost:    Round2(cost),
		TotalRevenue: Round2(revenue),
		TotalProfit:  Round2(profit),
		ProfitMargin: Ratio(profit, revenue),
		CostAnalyses: rows,
	}
}
