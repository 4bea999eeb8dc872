package model

import (
	"github.com/google/uuid"
)

type CostAnalysis struct {
	Base
	DepartmentID        *uuid.UUID `db:"department_id" json:"department_id,omitempty"`
	AdmissionID         *uuid.UUID `db:"admission_id" json:"admission_id,omitempty"`
	AnalysisDate        Date       `db:"analysis_date" json:"analysis_date"`
	TotalCost           float64    `db:"total_cost" json:"total_cost"`
	StaffCost           *float64   `db:"staff_cost" json:"staff_cost,omitempty"`
	EquipmentCost       *float64   `db:"equipment_cost" json:"equipment_cost,omitempty"`
	MedicationCost      *float64   `db:"medication_cost" json:"medication_cost,omitempty"`
	FacilityCost        *float64   `db:"facility_cost" json:"facility_cost,omitempty"`
	OtherCosts          *float64   `db:"other_costs" json:"other_costs,omitempty"`
	InsuranceRevenue    *float64   `db:"insurance_revenue" json:"insurance_revenue,omitempty"`
	PatientPayment      *float64   `db:"patient_payment" json:"patient_payment,omitempty"`
	TotalRevenue        *float64   `db:"total_revenue" json:"total_revenue,omitempty"`
	ProfitMargin        *float64   `db:"profit_margin" json:"profit_margin,omitempty"`
	CostPerPatientDay   *float64   `db:"cost_per_patient_day" json:"cost_per_patient_day,omitempty"`
	PeriodStart         Date       `db:"period_start" json:"period_start"`
	PeriodEnd           Date       `db:"period_end" json:"period_end"`
	PatientCount        *int       `db:"patient_count" json:"patient_count,omitempty"`
	AverageLengthOfStay *float64   `db:"average_length_of_stay" json:"average_length_of_stay,omitempty"`
}

type CreateCostAnalysisRequest struct {
	DepartmentID        *uuid.UUID `json:"department_id"`
	AdmissionID         *uuid.UUID `json:"admission_id"`
	AnalysisDate        *Date      `json:"analysis_date" binding:"required"`
	TotalCost           *float64   `json:"total_cost" binding:"required,min=0"`
	StaffCost           *float64   `json:"staff_cost" binding:"omitempty,min=0"`
	EquipmentCost       *float64   `json:"equipment_cost" binding:"omitempty,min=0"`
	MedicationCost      *float64   `json:"medication_cost" binding:"omitempty,min=0"`
	FacilityCost        *float64   `json:"facility_cost" binding:"omitempty,min=0"`
	OtherCosts          *float64   `json:"other_costs" binding:"omitempty,min=0"`
	InsuranceRevenue    *float64   `json:"insurance_revenue" binding:"omitempty,min=0"`
	PatientPayment      *float64   `json:"patient_payment" binding:"omitempty,min=0"`
	TotalRevenue        *float64   `json:"total_revenue" binding:"omitempty,min=0"`
	ProfitMargin        *float64   `json:"profit_margin" binding:"omitempty,min=-100,max=100"`
	CostPerPatientDay   *float64   `json:"cost_per_patient_day" binding:"omitempty,min=0"`
	PeriodStart         *Date      `json:"period_start" binding:"required"`
	PeriodEnd           *Date      `json:"period_end" binding:"required"`
	PatientCount        *int       `json:"patient_count" binding:"omitempty,min=0"`
	AverageLengthOfStay *float64   `json:"average_length_of_stay" binding:"omitempty,min=0"`
}

type CostAnalysisFilter struct {
	Start        Date
	End          Date
	DepartmentID *uuid.UUID
}

// Metric response shapes.

type DashboardMetrics struct {
	TotalPatients        int     `json:"total_patients"`
	TotalAdmissions      int     `json:"total_admissions"`
	CurrentOccupancyRate float64 `json:"current_occupancy_rate"`
	AverageLengthOfStay  float64 `json:"average_length_of_stay"`
	ReadmissionRate      float64 `json:"readmission_rate"`
	PatientSatisfaction  float64 `json:"patient_satisfaction_score"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalCosts           float64 `json:"total_costs"`
	ProfitMargin         float64 `json:"profit_margin"`
}

type TrendPoint struct {
	Date       Date    `json:"date"`
	Value      float64 `json:"value"`
	MetricName string  `json:"metric_name"`
}

type DepartmentPerformance struct {
	DepartmentID        uuid.UUID `json:"department_id"`
	DepartmentName      string    `json:"department_name"`
	OccupancyRate       float64   `json:"occupancy_rate"`
	AverageLengthOfStay float64   `json:"average_length_of_stay"`
	ReadmissionRate     float64   `json:"readmission_rate"`
	PatientSatisfaction float64   `json:"patient_satisfaction"`
	CostEfficiency      float64   `json:"cost_efficiency"`
	StaffUtilization    float64   `json:"staff_utilization"`
}

type PatientOutcomeSummary struct {
	TotalPatients        int     `json:"total_patients"`
	RecoveryRate         float64 `json:"recovery_rate"`
	MortalityRate        float64 `json:"mortality_rate"`
	ComplicationRate     float64 `json:"complication_rate"`
	AverageRecoveryTime  float64 `json:"average_recovery_time"`
	TreatmentSuccessRate float64 `json:"treatment_success_rate"`
}

type ResourceUtilization struct {
	BedOccupancyRate         float64 `json:"bed_occupancy_rate"`
	StaffUtilizationRate     float64 `json:"staff_utilization_rate"`
	EquipmentUtilizationRate float64 `json:"equipment_utilization_rate"`
	MaintenanceDueCount      int     `json:"maintenance_due_count"`
	EquipmentOutOfOrderCount int     `json:"equipment_out_of_order_count"`
}

type DepartmentUtilization struct {
	DepartmentID         uuid.UUID `json:"department_id"`
	DepartmentName       string    `json:"department_name"`
	BedUtilization       float64   `json:"bed_utilization"`
	StaffUtilization     float64   `json:"staff_utilization"`
	EquipmentUtilization float64   `json:"equipment_utilization"`
	TotalBeds            int       `json:"total_beds"`
	OccupiedBeds         int       `json:"occupied_beds"`
	TotalStaff           int       `json:"total_staff"`
	ActiveStaff          int       `json:"active_staff"`
	TotalEquipment       int       `json:"total_equipment"`
	InUseEquipment       int       `json:"in_use_equipment"`
}

type ReportPeriod struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

type CostAnalysisReport struct {
	Period       ReportPeriod    `json:"period"`
	TotalCost    float64         `json:"total_cost"`
	TotalRevenue float64         `json:"total_revenue"`
	TotalProfit  float64         `json:"total_profit"`
	ProfitMargin float64         `json:"profit_margin"`
	CostAnalyses []*CostAnalysis `json:"cost_analyses"`
}

// Store aggregates consumed by the metrics engine.

type BedCounts struct {
	Total    int `db:"total"`
	Occupied int `db:"occupied"`
}

type StaffCounts struct {
	Total  int `db:"total"`
	Active int `db:"active"`
}

type EquipmentCounts struct {
	Total          int `db:"total"`
	InUse          int `db:"in_use"`
	OutOfOrder     int `db:"out_of_order"`
	MaintenanceDue int `db:"maintenance_due"`
}

type OutcomeCounts struct {
	Total               int     `db:"total"`
	Recovered           int     `db:"recovered"`
	Deceased            int     `db:"deceased"`
	WithComplications   int     `db:"with_complications"`
	TreatmentSucceeded  int     `db:"treatment_succeeded"`
	AverageRecoveryDays float64 `db:"average_recovery_days"`
}

// DayCount is the number of records falling on one calendar day.
type DayCount struct {
	Day   Date `db:"bucket"`
	Count int  `db:"n"`
}

type DischargeCountFilter struct {
	Since        *Date
	DepartmentID *uuid.UUID
}

type ReadmissionCountFilter struct {
	Since                 *Date
	MaxDaysSinceDischarge *int
	DepartmentID          *uuid.UUID
}
