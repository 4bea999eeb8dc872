package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const bedsTable = "beds"

var bedUpdatable = []string{
	"bed_number", "room_number", "bed_type", "status", "last_cleaned", "maintenance_due", "notes",
}

var bedColumns = withBase(append([]string{"department_id"}, bedUpdatable...)...)

type bedRepository struct {
	BaseRepository
}

func NewBedRepository(base BaseRepository) repository.BedRepository {
	return &bedRepository{base}
}

func (r *bedRepository) Create(ctx context.Context, bed *model.Bed) error {
	if err := r.insert(ctx, bedsTable, bedColumns, bed); err != nil {
		return fmt.Errorf("failed to create bed: %w", err)
	}
	return nil
}

func (r *bedRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bed, error) {
	var bed model.Bed
	if err := r.getByID(ctx, &bed, bedsTable, id); err != nil {
		return nil, err
	}
	return &bed, nil
}

func (r *bedRepository) Update(ctx context.Context, bed *model.Bed) error {
	return r.update(ctx, bedsTable, bedUpdatable, bed)
}

func (r *bedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.softDelete(ctx, bedsTable, id)
}

func (r *bedRepository) List(ctx context.Context, filter model.BedFilter) ([]*model.Bed, error) {
	q := active(bedsTable, "b")
	if filter.DepartmentID != nil {
		q.where("b.department_id = ?", *filter.DepartmentID)
	}
	if filter.Status != "" {
		q.where("b.status = ?", filter.Status)
	}

	beds := []*model.Bed{}
	if err := r.list(ctx, &beds, q, "b.room_number, b.bed_number, b.id", filter.Page); err != nil {
		return nil, fmt.Errorf("failed to list beds: %w", err)
	}
	return beds, nil
}

// ExistsByNumber reports whether an active bed in the department already
// uses bedNumber, ignoring excludeID when set.
func (r *bedRepository) ExistsByNumber(ctx context.Context, departmentID uuid.UUID, bedNumber string, excludeID *uuid.UUID) (bool, error) {
	q := active(bedsTable, "b").
		where("b.department_id = ?", departmentID).
		where("b.bed_number = ?", bedNumber)
	if excludeID != nil {
		q.where("b.id <> ?", *excludeID)
	}
	return r.exists(ctx, q)
}
