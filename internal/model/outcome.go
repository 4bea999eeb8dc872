package model

import (
	"github.com/google/uuid"
)

type PatientOutcome struct {
	Base
	PatientID        uuid.UUID   `db:"patient_id" json:"patient_id"`
	AdmissionID      *uuid.UUID  `db:"admission_id" json:"admission_id,omitempty"`
	OutcomeType      OutcomeType `db:"outcome_type" json:"outcome_type"`
	OutcomeDate      Date        `db:"outcome_date" json:"outcome_date"`
	RecoveryTimeDays *int        `db:"recovery_time_days" json:"recovery_time_days,omitempty"`
	TreatmentSuccess *bool       `db:"treatment_success" json:"treatment_success,omitempty"`
	Complications    *string     `db:"complications" json:"complications,omitempty"`
	FollowUpRequired bool        `db:"follow_up_required" json:"follow_up_required"`
	FollowUpDate     *Date       `db:"follow_up_date" json:"follow_up_date,omitempty"`
	Notes            *string     `db:"notes" json:"notes,omitempty"`
}

type CreateOutcomeRequest struct {
	AdmissionID      *uuid.UUID  `json:"admission_id"`
	OutcomeType      OutcomeType `json:"outcome_type" binding:"required,oneof=recovered improved unchanged worsened deceased"`
	OutcomeDate      *Date       `json:"outcome_date" binding:"required"`
	RecoveryTimeDays *int        `json:"recovery_time_days" binding:"omitempty,min=0"`
	TreatmentSuccess *bool       `json:"treatment_success"`
	Complications    *string     `json:"complications"`
	FollowUpRequired bool        `json:"follow_up_required"`
	FollowUpDate     *Date       `json:"follow_up_date"`
	Notes            *string     `json:"notes"`
}

type Readmission struct {
	Base
	PatientID               uuid.UUID         `db:"patient_id" json:"patient_id"`
	OriginalAdmissionID     uuid.UUID         `db:"original_admission_id" json:"original_admission_id"`
	ReadmissionDate         Date              `db:"readmission_date" json:"readmission_date"`
	DaysSinceDischarge      int               `db:"days_since_discharge" json:"days_since_discharge"`
	ReadmissionReason       ReadmissionReason `db:"readmission_reason" json:"readmission_reason"`
	ReadmissionDepartmentID uuid.UUID         `db:"readmission_department_id" json:"readmission_department_id"`
	SeverityScore           *int              `db:"severity_score" json:"severity_score,omitempty"`
	Preventable             *bool             `db:"preventable" json:"preventable,omitempty"`
	Notes                   *string           `db:"notes" json:"notes,omitempty"`
}

type CreateReadmissionRequest struct {
	OriginalAdmissionID     uuid.UUID         `json:"original_admission_id" binding:"required"`
	ReadmissionDate         *Date             `json:"readmission_date" binding:"required"`
	DaysSinceDischarge      *int              `json:"days_since_discharge" binding:"required,min=0"`
	ReadmissionReason       ReadmissionReason `json:"readmission_reason" binding:"required,oneof=infection complication relapse other"`
	ReadmissionDepartmentID uuid.UUID         `json:"readmission_department_id" binding:"required"`
	SeverityScore           *int              `json:"severity_score" binding:"omitempty,min=1,max=10"`
	Preventable             *bool             `json:"preventable"`
	Notes                   *string           `json:"notes"`
}

type SatisfactionScore struct {
	Base
	PatientID              uuid.UUID  `db:"patient_id" json:"patient_id"`
	AdmissionID            *uuid.UUID `db:"admission_id" json:"admission_id,omitempty"`
	SurveyDate             Date       `db:"survey_date" json:"survey_date"`
	OverallSatisfaction    int        `db:"overall_satisfaction" json:"overall_satisfaction"`
	CareQuality            *int       `db:"care_quality" json:"care_quality,omitempty"`
	Communication          *int       `db:"communication" json:"communication,omitempty"`
	Cleanliness            *int       `db:"cleanliness" json:"cleanliness,omitempty"`
	FoodQuality            *int       `db:"food_quality" json:"food_quality,omitempty"`
	StaffFriendliness      *int       `db:"staff_friendliness" json:"staff_friendliness,omitempty"`
	PainManagement         *int       `db:"pain_management" json:"pain_management,omitempty"`
	DischargeProcess       *int       `db:"discharge_process" json:"discharge_process,omitempty"`
	WouldRecommend         *bool      `db:"would_recommend" json:"would_recommend,omitempty"`
	Comments               *string    `db:"comments" json:"comments,omitempty"`
	ImprovementSuggestions *string    `db:"improvement_suggestions" json:"improvement_suggestions,omitempty"`
}

type CreateSatisfactionRequest struct {
	AdmissionID            *uuid.UUID `json:"admission_id"`
	SurveyDate             *Date      `json:"survey_date" binding:"required"`
	OverallSatisfaction    int        `json:"overall_satisfaction" binding:"required,min=1,max=5"`
	CareQuality            *int       `json:"care_quality" binding:"omitempty,min=1,max=5"`
	Communication          *int       `json:"communication" binding:"omitempty,min=1,max=5"`
	Cleanliness            *int       `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	FoodQuality            *int       `json:"food_quality" binding:"omitempty,min=1,max=5"`
	StaffFriendliness      *int       `json:"staff_friendliness" binding:"omitempty,min=1,max=5"`
	PainManagement         *int       `json:"pain_management" binding:"omitempty,min=1,max=5"`
	DischargeProcess       *int       `json:"discharge_process" binding:"omitempty,min=1,max=5"`
	WouldRecommend         *bool      `json:"would_recommend"`
	Comments               *string    `json:"comments"`
	ImprovementSuggestions *string    `json:"improvement_suggestions"`
}
