package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const departmentsTable = "departments"

var departmentUpdatable = []string{
	"name", "department_type", "description", "head_of_department",
	"total_beds", "available_beds", "cost_per_day",
}

var departmentColumns = withBase(departmentUpdatable...)

type departmentRepository struct {
	BaseRepository
}

func NewDepartmentRepository(base BaseRepository) repository.DepartmentRepository {
	return &departmentRepository{base}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	if err := r.insert(ctx, departmentsTable, departmentColumns, department); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *departmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	var department model.Department
	if err := r.getByID(ctx, &department, departmentsTable, id); err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	return r.update(ctx, departmentsTable, departmentUpdatable, department)
}

func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.softDelete(ctx, departmentsTable, id)
}

func (r *departmentRepository) List(ctx context.Context, filter model.DepartmentFilter) ([]*model.Department, error) {
	q := active(departmentsTable, "d")
	if filter.DepartmentType != "" {
		q.where("d.department_type = ?", filter.DepartmentType)
	}

	departments := []*model.Department{}
	if err := r.list(ctx, &departments, q, "d.name, d.id", filter.Page); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (r *departmentRepository) ListAll(ctx context.Context) ([]*model.Department, error) {
	return r.List(ctx, model.DepartmentFilter{})
}
