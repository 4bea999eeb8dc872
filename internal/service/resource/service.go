package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/kpi"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/internal/service"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

type ResourceService interface {
	CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req *model.UpdateDepartmentRequest) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	ListDepartments(ctx context.Context, filter model.DepartmentFilter) ([]*model.Department, error)
	DepartmentUtilization(ctx context.Context, id uuid.UUID) (*model.DepartmentUtilization, error)

	CreateBed(ctx context.Context, req *model.CreateBedRequest) (*model.Bed, error)
	GetBed(ctx context.Context, id uuid.UUID) (*model.Bed, error)
	UpdateBed(ctx context.Context, id uuid.UUID, req *model.UpdateBedRequest) (*model.Bed, error)
	DeleteBed(ctx context.Context, id uuid.UUID) error
	ListBeds(ctx context.Context, filter model.BedFilter) ([]*model.Bed, error)

	CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*model.Staff, error)
	UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.Staff, error)
	DeleteStaff(ctx context.Context, id uuid.UUID) error
	ListStaff(ctx context.Context, filter model.StaffFilter) ([]*model.Staff, error)

	CreateEquipment(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, req *model.UpdateEquipmentRequest) (*model.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	ListEquipment(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error)
}

type Repositories struct {
	Departments repository.DepartmentRepository
	Beds        repository.BedRepository
	Staff       repository.StaffRepository
	Equipment   repository.EquipmentRepository
	Metrics     repository.MetricsRepository
}

type Service struct {
	repos Repositories
	now   service.Clock
}

func NewService(repos Repositories, now service.Clock) *Service {
	if now == nil {
		now = service.SystemClock
	}
	return &Service{repos: repos, now: now}
}

// Departments

func (s *Service) CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	dept := &model.Department{
		Name:             req.Name,
		DepartmentType:   req.DepartmentType,
		Description:      req.Description,
		HeadOfDepartment: req.HeadOfDepartment,
		TotalBeds:        req.TotalBeds,
		AvailableBeds:    req.AvailableBeds,
		CostPerDay:       req.CostPerDay,
	}
	dept.Stamp(s.now())

	if err := s.repos.Departments.Create(ctx, dept); err != nil {
		return nil, service.StoreError("Department", "", err)
	}
	return dept, nil
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	dept, err := s.repos.Departments.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Department", "", err)
	}
	return dept, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id uuid.UUID, req *model.UpdateDepartmentRequest) (*model.Department, error) {
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(dept)
	dept.Touch(s.now())

	if err := s.repos.Departments.Update(ctx, dept); err != nil {
		return nil, service.StoreError("Department", "", err)
	}
	return dept, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return service.StoreError("Department", "", s.repos.Departments.Delete(ctx, id))
}

func (s *Service) ListDepartments(ctx context.Context, filter model.DepartmentFilter) ([]*model.Department, error) {
	depts, err := s.repos.Departments.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return depts, nil
}

func (s *Service) DepartmentUtilization(ctx context.Context, id uuid.UUID) (*model.DepartmentUtilization, error) {
	dept, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	beds, err := s.repos.Metrics.BedCounts(ctx, &id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	staff, err := s.repos.Metrics.StaffCounts(ctx, &id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	equipment, err := s.repos.Metrics.EquipmentCounts(ctx, &id, model.DateOf(s.now()))
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	util := kpi.DepartmentUtilization(dept, beds, staff, equipment)
	return &util, nil
}

// activeDepartment checks a department reference on create or move.
func (s *Service) activeDepartment(ctx context.Context, id uuid.UUID) error {
	_, err := s.GetDepartment(ctx, id)
	return err
}

// Beds

func (s *Service) CreateBed(ctx context.Context, req *model.CreateBedRequest) (*model.Bed, error) {
	if err := s.activeDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.repos.Beds.ExistsByNumber(ctx, req.DepartmentID, req.BedNumber, nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("Bed number already exists in this department", nil)
	}

	status := req.Status
	if status == "" {
		status = model.BedAvailable
	}
	bed := &model.Bed{
		DepartmentID:   req.DepartmentID,
		BedNumber:      req.BedNumber,
		RoomNumber:     req.RoomNumber,
		BedType:        req.BedType,
		Status:         status,
		LastCleaned:    req.LastCleaned,
		MaintenanceDue: req.MaintenanceDue,
		Notes:          req.Notes,
	}
	bed.Stamp(s.now())

	if err := s.repos.Beds.Create(ctx, bed); err != nil {
		return nil, service.StoreError("Bed", "Bed number already exists in this department", err)
	}
	return bed, nil
}

func (s *Service) GetBed(ctx context.Context, id uuid.UUID) (*model.Bed, error) {
	bed, err := s.repos.Beds.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Bed", "", err)
	}
	return bed, nil
}

func (s *Service) UpdateBed(ctx context.Context, id uuid.UUID, req *model.UpdateBedRequest) (*model.Bed, error) {
	bed, err := s.GetBed(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BedNumber != nil && *req.BedNumber != bed.BedNumber {
		exists, err := s.repos.Beds.ExistsByNumber(ctx, bed.DepartmentID, *req.BedNumber, &bed.ID)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if exists {
			return nil, apperrors.Conflict("Bed number already exists in this department", nil)
		}
	}

	req.Apply(bed)
	bed.Touch(s.now())

	if err := s.repos.Beds.Update(ctx, bed); err != nil {
		return nil, service.StoreError("Bed", "Bed number already exists in this department", err)
	}
	return bed, nil
}

func (s *Service) DeleteBed(ctx context.Context, id uuid.UUID) error {
	return service.StoreError("Bed", "", s.repos.Beds.Delete(ctx, id))
}

func (s *Service) ListBeds(ctx context.Context, filter model.BedFilter) ([]*model.Bed, error) {
	beds, err := s.repos.Beds.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return beds, nil
}

// Staff

func (s *Service) CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	if err := s.activeDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.repos.Staff.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("Employee ID already exists", nil)
	}
	if err := s.checkStaffEmail(ctx, req.Email, nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	staff := &model.Staff{
		EmployeeID:     req.EmployeeID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           req.Role,
		DepartmentID:   req.DepartmentID,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		HireDate:       *req.HireDate,
		Salary:         req.Salary,
		ShiftPattern:   req.ShiftPattern,
		IsActive:       isActive,
	}
	staff.Stamp(s.now())

	if err := s.repos.Staff.Create(ctx, staff); err != nil {
		return nil, service.StoreError("Staff member", "Employee ID or email already exists", err)
	}
	return staff, nil
}

func (s *Service) checkStaffEmail(ctx context.Context, email string, excludeID *uuid.UUID) error {
	exists, err := s.repos.Staff.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if exists {
		return apperrors.Conflict("Email already exists", nil)
	}
	return nil
}

func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.repos.Staff.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Staff member", "", err)
	}
	return staff, nil
}

func (s *Service) UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.Staff, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != staff.Email {
		if err := s.checkStaffEmail(ctx, *req.Email, &staff.ID); err != nil {
			return nil, err
		}
	}
	if req.DepartmentID != nil && *req.DepartmentID != staff.DepartmentID {
		if err := s.activeDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	req.Apply(staff)
	staff.Touch(s.now())

	if err := s.repos.Staff.Update(ctx, staff); err != nil {
		return nil, service.StoreError("Staff member", "Email already exists", err)
	}
	return staff, nil
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	return service.StoreError("Staff member", "", s.repos.Staff.Delete(ctx, id))
}

func (s *Service) ListStaff(ctx context.Context, filter model.StaffFilter) ([]*model.Staff, error) {
	staff, err := s.repos.Staff.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return staff, nil
}

// Equipment

func (s *Service) CreateEquipment(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error) {
	if err := s.activeDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.repos.Equipment.ExistsByCode(ctx, req.EquipmentCode)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("Equipment ID already exists", nil)
	}

	status := req.Status
	if status == "" {
		status = model.EquipmentAvailable
	}
	equipment := &model.Equipment{
		EquipmentCode:      req.EquipmentCode,
		Name:               req.Name,
		Model:              req.Model,
		Manufacturer:       req.Manufacturer,
		EquipmentType:      req.EquipmentType,
		DepartmentID:       req.DepartmentID,
		Status:             status,
		PurchaseDate:       req.PurchaseDate,
		WarrantyExpiry:     req.WarrantyExpiry,
		LastMaintenance:    req.LastMaintenance,
		NextMaintenanceDue: req.NextMaintenanceDue,
		MaintenanceCost:    req.MaintenanceCost,
		UsageHours:         req.UsageHours,
		MaxUsageHours:      req.MaxUsageHours,
		Location:           req.Location,
		Notes:              req.Notes,
	}
	equipment.Stamp(s.now())

	if err := s.repos.Equipment.Create(ctx, equipment); err != nil {
		return nil, service.StoreError("Equipment", "Equipment ID already exists", err)
	}
	return equipment, nil
}

func (s *Service) GetEquipment(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	equipment, err := s.repos.Equipment.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Equipment", "", err)
	}
	return equipment, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id uuid.UUID, req *model.UpdateEquipmentRequest) (*model.Equipment, error) {
	equipment, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil && *req.DepartmentID != equipment.DepartmentID {
		if err := s.activeDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	req.Apply(equipment)
	equipment.Touch(s.now())

	if err := s.repos.Equipment.Update(ctx, equipment); err != nil {
		return nil, service.StoreError("Equipment", "", err)
	}
	return equipment, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return service.StoreError("Equipment", "", s.repos.Equipment.Delete(ctx, id))
}

func (s *Service) ListEquipment(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error) {
	equipment, err := s.repos.Equipment.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return equipment, nil
}

var _ ResourceService = (*Service)(nil)
