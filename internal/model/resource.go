package model

import (
	"github.com/google/uuid"
)

type Department struct {
	Base
	Name             string         `db:"name" json:"name"`
	DepartmentType   DepartmentType `db:"department_type" json:"department_type"`
	Description      *string        `db:"description" json:"description,omitempty"`
	HeadOfDepartment *string        `db:"head_of_department" json:"head_of_department,omitempty"`
	TotalBeds        int            `db:"total_beds" json:"total_beds"`
	AvailableBeds    int            `db:"available_beds" json:"available_beds"`
	CostPerDay       *float64       `db:"cost_per_day" json:"cost_per_day,omitempty"`
}

type CreateDepartmentRequest struct {
	Name             string         `json:"name" binding:"required,max=100"`
	DepartmentType   DepartmentType `json:"department_type" binding:"required,oneof=emergency surgery cardiology neurology oncology pediatrics icu general"`
	Description      *string        `json:"description"`
	HeadOfDepartment *string        `json:"head_of_department" binding:"omitempty,max=200"`
	TotalBeds        int            `json:"total_beds" binding:"min=0"`
	AvailableBeds    int            `json:"available_beds" binding:"min=0"`
	CostPerDay       *float64       `json:"cost_per_day" binding:"omitempty,min=0"`
}

type UpdateDepartmentRequest struct {
	Name             *string         `json:"name" binding:"omitempty,min=1,max=100"`
	DepartmentType   *DepartmentType `json:"department_type" binding:"omitempty,oneof=emergency surgery cardiology neurology oncology pediatrics icu general"`
	Description      *string         `json:"description"`
	HeadOfDepartment *string         `json:"head_of_department" binding:"omitempty,max=200"`
	TotalBeds        *int            `json:"total_beds" binding:"omitempty,min=0"`
	AvailableBeds    *int            `json:"available_beds" binding:"omitempty,min=0"`
	CostPerDay       *float64        `json:"cost_per_day" binding:"omitempty,min=0"`
}

func (r *UpdateDepartmentRequest) Apply(d *Department) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.DepartmentType != nil {
		d.DepartmentType = *r.DepartmentType
	}
	if r.Description != nil {
		d.Description = r.Description
	}
	if r.HeadOfDepartment != nil {
		d.HeadOfDepartment = r.HeadOfDepartment
	}
	if r.TotalBeds != nil {
		d.TotalBeds = *r.TotalBeds
	}
	if r.AvailableBeds != nil {
		d.AvailableBeds = *r.AvailableBeds
	}
	if r.CostPerDay != nil {
		d.CostPerDay = r.CostPerDay
	}
}

type DepartmentFilter struct {
	DepartmentType DepartmentType
	Page           Page
}

type Bed struct {
	Base
	DepartmentID   uuid.UUID `db:"department_id" json:"department_id"`
	BedNumber      string    `db:"bed_number" json:"bed_number"`
	RoomNumber     string    `db:"room_number" json:"room_number"`
	BedType        string    `db:"bed_type" json:"bed_type"`
	Status         BedStatus `db:"status" json:"status"`
	LastCleaned    *Date     `db:"last_cleaned" json:"last_cleaned,omitempty"`
	MaintenanceDue *Date     `db:"maintenance_due" json:"maintenance_due,omitempty"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
}

type CreateBedRequest struct {
	DepartmentID   uuid.UUID `json:"department_id" binding:"required"`
	BedNumber      string    `json:"bed_number" binding:"required,max=20"`
	RoomNumber     string    `json:"room_number" binding:"required,max=20"`
	BedType        string    `json:"bed_type" binding:"required,max=50"`
	Status         BedStatus `json:"status" binding:"omitempty,oneof=available occupied maintenance out_of_order"`
	LastCleaned    *Date     `json:"last_cleaned"`
	MaintenanceDue *Date     `json:"maintenance_due"`
	Notes          *string   `json:"notes"`
}

type UpdateBedRequest struct {
	BedNumber      *string    `json:"bed_number" binding:"omitempty,min=1,max=20"`
	RoomNumber     *string    `json:"room_number" binding:"omitempty,min=1,max=20"`
	BedType        *string    `json:"bed_type" binding:"omitempty,min=1,max=50"`
	Status         *BedStatus `json:"status" binding:"omitempty,oneof=available occupied maintenance out_of_order"`
	LastCleaned    *Date      `json:"last_cleaned"`
	MaintenanceDue *Date      `json:"maintenance_due"`
	Notes          *string    `json:"notes"`
}

func (r *UpdateBedRequest) Apply(b *Bed) {
	if r.BedNumber != nil {
		b.BedNumber = *r.BedNumber
	}
	if r.RoomNumber != nil {
		b.RoomNumber = *r.RoomNumber
	}
	if r.BedType != nil {
		b.BedType = *r.BedType
	}
	if r.Status != nil {
		b.Status = *r.Status
	}
	if r.LastCleaned != nil {
		b.LastCleaned = r.LastCleaned
	}
	if r.MaintenanceDue != nil {
		b.MaintenanceDue = r.MaintenanceDue
	}
	if r.Notes != nil {
		b.Notes = r.Notes
	}
}

type BedFilter struct {
	DepartmentID *uuid.UUID
	Status       BedStatus
	Page         Page
}

type Staff struct {
	Base
	EmployeeID     string    `db:"employee_id" json:"employee_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Email          string    `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Role           StaffRole `db:"role" json:"role"`
	DepartmentID   uuid.UUID `db:"department_id" json:"department_id"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	LicenseNumber  *string   `db:"license_number" json:"license_number,omitempty"`
	HireDate       Date      `db:"hire_date" json:"hire_date"`
	Salary         *float64  `db:"salary" json:"salary,omitempty"`
	ShiftPattern   *string   `db:"shift_pattern" json:"shift_pattern,omitempty"`
	IsActive       bool      `db:"is_active" json:"is_active"`
}

type CreateStaffRequest struct {
	EmployeeID     string    `json:"employee_id" binding:"required,max=50"`
	FirstName      string    `json:"first_name" binding:"required,max=100"`
	LastName       string    `json:"last_name" binding:"required,max=100"`
	Email          string    `json:"email" binding:"required,email"`
	Phone          *string   `json:"phone" binding:"omitempty,max=20"`
	Role           StaffRole `json:"role" binding:"required,oneof=doctor nurse technician administrator support"`
	DepartmentID   uuid.UUID `json:"department_id" binding:"required"`
	Specialization *string   `json:"specialization" binding:"omitempty,max=100"`
	LicenseNumber  *string   `json:"license_number" binding:"omitempty,max=100"`
	HireDate       *Date     `json:"hire_date" binding:"required"`
	Salary         *float64  `json:"salary" binding:"omitempty,min=0"`
	ShiftPattern   *string   `json:"shift_pattern" binding:"omitempty,max=50"`
	IsActive       *bool     `json:"is_active"`
}

type UpdateStaffRequest struct {
	FirstName      *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName       *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	Phone          *string    `json:"phone" binding:"omitempty,max=20"`
	Role           *StaffRole `json:"role" binding:"omitempty,oneof=doctor nurse technician administrator support"`
	DepartmentID   *uuid.UUID `json:"department_id"`
	Specialization *string    `json:"specialization" binding:"omitempty,max=100"`
	LicenseNumber  *string    `json:"license_number" binding:"omitempty,max=100"`
	Salary         *float64   `json:"salary" binding:"omitempty,min=0"`
	ShiftPattern   *string    `json:"shift_pattern" binding:"omitempty,max=50"`
	IsActive       *bool      `json:"is_active"`
}

func (r *UpdateStaffRequest) Apply(s *Staff) {
	if r.FirstName != nil {
		s.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		s.LastName = *r.LastName
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.Phone != nil {
		s.Phone = r.Phone
	}
	if r.Role != nil {
		s.Role = *r.Role
	}
	if r.DepartmentID != nil {
		s.DepartmentID = *r.DepartmentID
	}
	if r.Specialization != nil {
		s.Specialization = r.Specialization
	}
	if r.LicenseNumber != nil {
		s.LicenseNumber = r.LicenseNumber
	}
	if r.Salary != nil {
		s.Salary = r.Salary
	}
	if r.ShiftPattern != nil {
		s.ShiftPattern = r.ShiftPattern
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

type StaffFilter struct {
	DepartmentID *uuid.UUID
	Role         StaffRole
	IsActive     *bool
	Page         Page
}

type Equipment struct {
	Base
	EquipmentCode      string          `db:"equipment_code" json:"equipment_id"`
	Name               string          `db:"name" json:"name"`
	Model              *string         `db:"model" json:"model,omitempty"`
	Manufacturer       *string         `db:"manufacturer" json:"manufacturer,omitempty"`
	EquipmentType      string          `db:"equipment_type" json:"equipment_type"`
	DepartmentID       uuid.UUID       `db:"department_id" json:"department_id"`
	Status             EquipmentStatus `db:"status" json:"status"`
	PurchaseDate       *Date           `db:"purchase_date" json:"purchase_date,omitempty"`
	WarrantyExpiry     *Date           `db:"warranty_expiry" json:"warranty_expiry,omitempty"`
	LastMaintenance    *Date           `db:"last_maintenance" json:"last_maintenance,omitempty"`
	NextMaintenanceDue *Date           `db:"next_maintenance_due" json:"next_maintenance_due,omitempty"`
	MaintenanceCost    *float64        `db:"maintenance_cost" json:"maintenance_cost,omitempty"`
	UsageHours         int             `db:"usage_hours" json:"usage_hours"`
	MaxUsageHours      *int            `db:"max_usage_hours" json:"max_usage_hours,omitempty"`
	Location           *string         `db:"location" json:"location,omitempty"`
	Notes              *string         `db:"notes" json:"notes,omitempty"`
}

type CreateEquipmentRequest struct {
	EquipmentCode      string          `json:"equipment_id" binding:"required,max=50"`
	Name               string          `json:"name" binding:"required,max=200"`
	Model              *string         `json:"model" binding:"omitempty,max=100"`
	Manufacturer       *string         `json:"manufacturer" binding:"omitempty,max=100"`
	EquipmentType      string          `json:"equipment_type" binding:"required,max=100"`
	DepartmentID       uuid.UUID       `json:"department_id" binding:"required"`
	Status             EquipmentStatus `json:"status" binding:"omitempty,oneof=available in_use maintenance out_of_order"`
	PurchaseDate       *Date           `json:"purchase_date"`
	WarrantyExpiry     *Date           `json:"warranty_expiry"`
	LastMaintenance    *Date           `json:"last_maintenance"`
	NextMaintenanceDue *Date           `json:"next_maintenance_due"`
	MaintenanceCost    *float64        `json:"maintenance_cost" binding:"omitempty,min=0"`
	UsageHours         int             `json:"usage_hours" binding:"min=0"`
	MaxUsageHours      *int            `json:"max_usage_hours" binding:"omitempty,min=0"`
	Location           *string         `json:"location" binding:"omitempty,max=200"`
	Notes              *string         `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name               *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Model              *string          `json:"model" binding:"omitempty,max=100"`
	Manufacturer       *string          `json:"manufacturer" binding:"omitempty,max=100"`
	EquipmentType      *string          `json:"equipment_type" binding:"omitempty,min=1,max=100"`
	DepartmentID       *uuid.UUID       `json:"department_id"`
	Status             *EquipmentStatus `json:"status" binding:"omitempty,oneof=available in_use maintenance out_of_order"`
	LastMaintenance    *Date            `json:"last_maintenance"`
	NextMaintenanceDue *Date            `json:"next_maintenance_due"`
	MaintenanceCost    *float64         `json:"maintenance_cost" binding:"omitempty,min=0"`
	UsageHours         *int             `json:"usage_hours" binding:"omitempty,min=0"`
	MaxUsageHours      *int             `json:"max_usage_hours" binding:"omitempty,min=0"`
	Location           *string          `json:"location" binding:"omitempty,max=200"`
	Notes              *string          `json:"notes"`
}

func (r *UpdateEquipmentRequest) Apply(e *Equipment) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Model != nil {
		e.Model = r.Model
	}
	if r.Manufacturer != nil {
		e.Manufacturer = r.Manufacturer
	}
	if r.EquipmentType != nil {
		e.EquipmentType = *r.EquipmentType
	}
	if r.DepartmentID != nil {
		e.DepartmentID = *r.DepartmentID
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.LastMaintenance != nil {
		e.LastMaintenance = r.LastMaintenance
	}
	if r.NextMaintenanceDue != nil {
		e.NextMaintenanceDue = r.NextMaintenanceDue
	}
	if r.MaintenanceCost != nil {
		e.MaintenanceCost = r.MaintenanceCost
	}
	if r.UsageHours != nil {
		e.UsageHours = *r.UsageHours
	}
	if r.MaxUsageHours != nil {
		e.MaxUsageHours = r.MaxUsageHours
	}
	if r.Location != nil {
		e.Location = r.Location
	}
	if r.Notes != nil {
		e.Notes = r.Notes
	}
}

type EquipmentFilter struct {
	DepartmentID  *uuid.UUID
	EquipmentType string
	Status        EquipmentStatus
	Page          Page
}
