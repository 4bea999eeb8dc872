package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const staffTable = "staff"

var staffUpdatable = []string{
	"first_name", "last_name", "email", "phone", "role", "department_id",
	"specialization", "license_number", "salary", "shift_pattern", "is_active",
}

var staffColumns = withBase(append([]string{"employee_id", "hire_date"}, staffUpdatable...)...)

type staffRepository struct {
	BaseRepository
}

func NewStaffRepository(base BaseRepository) repository.StaffRepository {
	return &staffRepository{base}
}

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	if err := r.insert(ctx, staffTable, staffColumns, staff); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	if err := r.getByID(ctx, &staff, staffTable, id); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff) error {
	return r.update(ctx, staffTable, staffUpdatable, staff)
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.softDelete(ctx, staffTable, id)
}

func (r *staffRepository) List(ctx context.Context, filter model.StaffFilter) ([]*model.Staff, error) {
	q := active(staffTable, "s")
	if filter.DepartmentID != nil {
		q.where("s.department_id = ?", *filter.DepartmentID)
	}
	if filter.Role != "" {
		q.where("s.role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		q.where("s.is_active = ?", *filter.IsActive)
	}

	staff := []*model.Staff{}
	if err := r.list(ctx, &staff, q, "s.last_name, s.first_name, s.id", filter.Page); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.exists(ctx, active(staffTable, "s").where("s.employee_id = ?", employeeID))
}

func (r *staffRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := active(staffTable, "s").where("s.email = ?", email)
	if excludeID != nil {
		q.where("s.id <> ?", *excludeID)
	}
	return r.exists(ctx, q)
}
