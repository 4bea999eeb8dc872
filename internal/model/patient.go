package model

import (
	"github.com/google/uuid"
)

type Patient struct {
	Base
	PatientCode         string  `db:"patient_code" json:"patient_id"`
	FirstName           string  `db:"first_name" json:"first_name"`
	LastName            string  `db:"last_name" json:"last_name"`
	DateOfBirth         Date    `db:"date_of_birth" json:"date_of_birth"`
	Gender              Gender  `db:"gender" json:"gender"`
	Phone               *string `db:"phone" json:"phone,omitempty"`
	Email               *string `db:"email" json:"email,omitempty"`
	Address             *string `db:"address" json:"address,omitempty"`
	EmergencyContact    *string `db:"emergency_contact" json:"emergency_contact,omitempty"`
	EmergencyPhone      *string `db:"emergency_phone" json:"emergency_phone,omitempty"`
	InsuranceProvider   *string `db:"insurance_provider" json:"insurance_provider,omitempty"`
	InsuranceNumber     *string `db:"insurance_number" json:"insurance_number,omitempty"`
	MedicalRecordNumber *string `db:"medical_record_number" json:"medical_record_number,omitempty"`
}

type CreatePatientRequest struct {
	PatientCode         string  `json:"patient_id" binding:"required,max=50"`
	FirstName           string  `json:"first_name" binding:"required,max=100"`
	LastName            string  `json:"last_name" binding:"required,max=100"`
	DateOfBirth         *Date   `json:"date_of_birth" binding:"required"`
	Gender              Gender  `json:"gender" binding:"required,oneof=male female other unknown"`
	Phone               *string `json:"phone" binding:"omitempty,max=20"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Address             *string `json:"address"`
	EmergencyContact    *string `json:"emergency_contact" binding:"omitempty,max=200"`
	EmergencyPhone      *string `json:"emergency_phone" binding:"omitempty,max=20"`
	InsuranceProvider   *string `json:"insurance_provider" binding:"omitempty,max=200"`
	InsuranceNumber     *string `json:"insurance_number" binding:"omitempty,max=100"`
	MedicalRecordNumber *string `json:"medical_record_number" binding:"omitempty,max=100"`
}

type UpdatePatientRequest struct {
	FirstName         *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName          *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Phone             *string `json:"phone" binding:"omitempty,max=20"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Address           *string `json:"address"`
	EmergencyContact  *string `json:"emergency_contact" binding:"omitempty,max=200"`
	EmergencyPhone    *string `json:"emergency_phone" binding:"omitempty,max=20"`
	InsuranceProvider *string `json:"insurance_provider" binding:"omitempty,max=200"`
	InsuranceNumber   *string `json:"insurance_number" binding:"omitempty,max=100"`
}

// Apply copies the supplied fields onto p.
func (r *UpdatePatientRequest) Apply(p *Patient) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.Phone != nil {
		p.Phone = r.Phone
	}
	if r.Email != nil {
		p.Email = r.Email
	}
	if r.Address != nil {
		p.Address = r.Address
	}
	if r.EmergencyContact != nil {
		p.EmergencyContact = r.EmergencyContact
	}
	if r.EmergencyPhone != nil {
		p.EmergencyPhone = r.EmergencyPhone
	}
	if r.InsuranceProvider != nil {
		p.InsuranceProvider = r.InsuranceProvider
	}
	if r.InsuranceNumber != nil {
		p.InsuranceNumber = r.InsuranceNumber
	}
}

type PatientFilter struct {
	Search string
	Page   Page
}

type Admission struct {
	Base
	PatientID            uuid.UUID     `db:"patient_id" json:"patient_id"`
	AdmissionNumber      string        `db:"admission_number" json:"admission_number"`
	AdmissionDate        Date          `db:"admission_date" json:"admission_date"`
	AdmissionTime        string        `db:"admission_time" json:"admission_time"`
	AdmissionType        AdmissionType `db:"admission_type" json:"admission_type"`
	DepartmentID         uuid.UUID     `db:"department_id" json:"department_id"`
	BedID                *uuid.UUID    `db:"bed_id" json:"bed_id,omitempty"`
	PrimaryDiagnosis     string        `db:"primary_diagnosis" json:"primary_diagnosis"`
	SecondaryDiagnoses   *string       `db:"secondary_diagnoses" json:"secondary_diagnoses,omitempty"`
	AdmissionNotes       *string       `db:"admission_notes" json:"admission_notes,omitempty"`
	AdmittingPhysician   string        `db:"admitting_physician" json:"admitting_physician"`
	ExpectedLengthOfStay *int          `db:"expected_length_of_stay" json:"expected_length_of_stay,omitempty"`
	Discharge            *Discharge    `db:"-" json:"discharge,omitempty"`
}

type CreateAdmissionRequest struct {
	AdmissionNumber      string        `json:"admission_number" binding:"required,max=50"`
	AdmissionDate        *Date         `json:"admission_date" binding:"required"`
	AdmissionTime        string        `json:"admission_time" binding:"required,clocktime"`
	AdmissionType        AdmissionType `json:"admission_type" binding:"required,oneof=emergency elective urgent transfer"`
	DepartmentID         uuid.UUID     `json:"department_id" binding:"required"`
	BedID                *uuid.UUID    `json:"bed_id"`
	PrimaryDiagnosis     string        `json:"primary_diagnosis" binding:"required"`
	SecondaryDiagnoses   *string       `json:"secondary_diagnoses"`
	AdmissionNotes       *string       `json:"admission_notes"`
	AdmittingPhysician   string        `json:"admitting_physician" binding:"required,max=200"`
	ExpectedLengthOfStay *int          `json:"expected_length_of_stay" binding:"omitempty,min=1"`
}

type Discharge struct {
	Base
	AdmissionID           uuid.UUID       `db:"admission_id" json:"admission_id"`
	DischargeDate         Date            `db:"discharge_date" json:"discharge_date"`
	DischargeTime         string          `db:"discharge_time" json:"discharge_time"`
	DischargeStatus       DischargeStatus `db:"discharge_status" json:"discharge_status"`
	DischargeDiagnosis    string          `db:"discharge_diagnosis" json:"discharge_diagnosis"`
	DischargeInstructions *string         `db:"discharge_instructions" json:"discharge_instructions,omitempty"`
	DischargingPhysician  string          `db:"discharging_physician" json:"discharging_physician"`
	LengthOfStay          int             `db:"length_of_stay" json:"length_of_stay"`
	TotalCost             *float64        `db:"total_cost" json:"total_cost,omitempty"`
	InsuranceCoverage     *float64        `db:"insurance_coverage" json:"insurance_coverage,omitempty"`
	PatientPayment        *float64        `db:"patient_payment" json:"patient_payment,omitempty"`
}

type CreateDischargeRequest struct {
	DischargeDate         *Date           `json:"discharge_date" binding:"required"`
	DischargeTime         string          `json:"discharge_time" binding:"required,clocktime"`
	DischargeStatus       DischargeStatus `json:"discharge_status" binding:"required,oneof=home transfer ama deceased other"`
	DischargeDiagnosis    string          `json:"discharge_diagnosis" binding:"required"`
	DischargeInstructions *string         `json:"discharge_instructions"`
	DischargingPhysician  string          `json:"discharging_physician" binding:"required,max=200"`
	TotalCost             *float64        `json:"total_cost" binding:"omitempty,min=0"`
	InsuranceCoverage     *float64        `json:"insurance_coverage" binding:"omitempty,min=0"`
	PatientPayment        *float64        `json:"patient_payment" binding:"omitempty,min=0"`
}
