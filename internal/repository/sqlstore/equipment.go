package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
)

const equipmentTable = "equipment"

var equipmentUpdatable = []string{
	"name", "model", "manufacturer", "equipment_type", "department_id", "status",
	"last_maintenance", "next_maintenance_due", "maintenance_cost", "usage_hours",
	"max_usage_hours", "location", "notes",
}

var equipmentColumns = withBase(append(
	[]string{"equipment_code", "purchase_date", "warranty_expiry"}, equipmentUpdatable...)...)

type equipmentRepository struct {
	BaseRepository
}

func NewEquipmentRepository(base BaseRepository) repository.EquipmentRepository {
	return &equipmentRepository{base}
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *model.Equipment) error {
	if err := r.insert(ctx, equipmentTable, equipmentColumns, equipment); err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return nil
}

func (r *equipmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.getByID(ctx, &equipment, equipmentTable, id); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *model.Equipment) error {
	return r.update(ctx, equipmentTable, equipmentUpdatable, equipment)
}

func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.softDelete(ctx, equipmentTable, id)
}

func (r *equipmentRepository) List(ctx context.Context, filter model.EquipmentFilter) ([]*model.Equipment, error) {
	q := active(equipmentTable, "e")
	if filter.DepartmentID != nil {
		q.where("e.department_id = ?", *filter.DepartmentID)
	}
	if filter.EquipmentType != "" {
		q.where("e.equipment_type = ?", filter.EquipmentType)
	}
	if filter.Status != "" {
		q.where("e.status = ?", filter.Status)
	}

	equipment := []*model.Equipment{}
	if err := r.list(ctx, &equipment, q, "e.name, e.id", filter.Page); err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return equipment, nil
}

func (r *equipmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, active(equipmentTable, "e").where("e.equipment_code = ?", code))
}

// ListMaintenanceDue returns equipment whose next maintenance falls on or before asOf.
func (r *equipmentRepository) ListMaintenanceDue(ctx context.Context, asOf model.Date) ([]*model.Equipment, error) {
	q := active(equipmentTable, "e").
		where("e.next_maintenance_due IS NOT NULL").
		where("e.next_maintenance_due <= ?", asOf)

	equipment := []*model.Equipment{}
	if err := r.list(ctx, &equipment, q, "e.next_maintenance_due, e.name", model.Page{}); err != nil {
		return nil, fmt.Errorf("failed to list equipment due for maintenance: %w", err)
	}
	return equipment, nil
}
