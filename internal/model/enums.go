package model

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

type AdmissionType string

const (
	AdmissionTypeEmergency AdmissionType = "emergency"
	AdmissionTypeElective  AdmissionType = "elective"
	AdmissionTypeUrgent    AdmissionType = "urgent"
	AdmissionTypeTransfer  AdmissionType = "transfer"
)

type DischargeStatus string

const (
	DischargeStatusHome     DischargeStatus = "home"
	DischargeStatusTransfer DischargeStatus = "transfer"
	DischargeStatusAMA      DischargeStatus = "ama"
	DischargeStatusDeceased DischargeStatus = "deceased"
	DischargeStatusOther    DischargeStatus = "other"
)

type OutcomeType string

const (
	OutcomeRecovered OutcomeType = "recovered"
	OutcomeImproved  OutcomeType = "improved"
	OutcomeUnchanged OutcomeType = "unchanged"
	OutcomeWorsened  OutcomeType = "worsened"
	OutcomeDeceased  OutcomeType = "deceased"
)

type ReadmissionReason string

const (
	ReadmissionInfection    ReadmissionReason = "infection"
	ReadmissionComplication ReadmissionReason = "complication"
	ReadmissionRelapse      ReadmissionReason = "relapse"
	ReadmissionOther        ReadmissionReason = "other"
)

type DepartmentType string

const (
	DepartmentEmergency  DepartmentType = "emergency"
	DepartmentSurgery    DepartmentType = "surgery"
	DepartmentCardiology DepartmentType = "cardiology"
	DepartmentNeurology  DepartmentType = "neurology"
	DepartmentOncology   DepartmentType = "oncology"
	DepartmentPediatrics DepartmentType = "pediatrics"
	DepartmentICU        DepartmentType = "icu"
	DepartmentGeneral    DepartmentType = "general"
)

type BedStatus string

const (
	BedAvailable   BedStatus = "available"
	BedOccupied    BedStatus = "occupied"
	BedMaintenance BedStatus = "maintenance"
	BedOutOfOrder  BedStatus = "out_of_order"
)

type StaffRole string

const (
	StaffDoctor        StaffRole = "doctor"
	StaffNurse         StaffRole = "nurse"
	StaffTechnician    StaffRole = "technician"
	StaffAdministrator StaffRole = "administrator"
	StaffSupport       StaffRole = "support"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in_use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentOutOfOrder  EquipmentStatus = "out_of_order"
)

// EventType names the domain events appended to the outbox.
type EventType string

const (
	EventPatientRegistered  EventType = "patient_registered"
	EventPatientAdmission   EventType = "patient_admission"
	EventPatientDischarge   EventType = "patient_discharge"
	EventReadmission        EventType = "readmission"
	EventOutcomeTracking    EventType = "outcome_tracking"
	EventSatisfactionSurvey EventType = "satisfaction_survey"
	EventCostAnalysis       EventType = "cost_analysis"
)
