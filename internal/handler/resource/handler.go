package resource

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/service/resource"
)

var (
	departmentTypes = []string{"emergency", "surgery", "cardiology", "neurology", "oncology", "pediatrics", "icu", "general"}
	bedStatuses     = []string{"available", "occupied", "maintenance", "out_of_order"}
	staffRoles      = []string{"doctor", "nurse", "technician", "administrator", "support"}
	equipStatuses   = []string{"available", "in_use", "maintenance", "out_of_order"}
)

type Handler struct {
	service resource.ResourceService
}

func NewHandler(service resource.ResourceService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard handler.Guard) {
	read := guard(model.CapabilityRead)
	manage := guard(model.CapabilityManage)

	departments := r.Group("/departments")
	{
		departments.POST("", manage, h.CreateDepartment)
		departments.GET("", read, h.ListDepartments)
		departments.GET("/:id", read, h.GetDepartment)
		departments.PUT("/:id", manage, h.UpdateDepartment)
		departments.DELETE("/:id", manage, h.DeleteDepartment)
		departments.GET("/:id/utilization", read, h.DepartmentUtilization)
	}

	beds := r.Group("/beds")
	{
		beds.POST("", manage, h.CreateBed)
		beds.GET("", read, h.ListBeds)
		beds.GET("/:id", read, h.GetBed)
		beds.PUT("/:id", manage, h.UpdateBed)
		beds.DELETE("/:id", manage, h.DeleteBed)
	}

	staff := r.Group("/staff")
	{
		staff.POST("", manage, h.CreateStaff)
		staff.GET("", read, h.ListStaff)
		staff.GET("/:id", read, h.GetStaff)
		staff.PUT("/:id", manage, h.UpdateStaff)
		staff.DELETE("/:id", manage, h.DeleteStaff)
	}

	equipment := r.Group("/equipment")
	{
		equipment.POST("", manage, h.CreateEquipment)
		equipment.GET("", read, h.ListEquipment)
		equipment.GET("/:id", read, h.GetEquipment)
		equipment.PUT("/:id", manage, h.UpdateEquipment)
		equipment.DELETE("/:id", manage, h.DeleteEquipment)
	}
}

// Departments

func (h *Handler) CreateDepartment(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	dept, err := h.service.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, dept)
}

func (h *Handler) ListDepartments(c *gin.Context) {
	page, ok := handler.Page(c)
	if !ok {
		return
	}
	deptType, ok := handler.QueryEnum(c, "department_type", departmentTypes...)
	if !ok {
		return
	}

	depts, err := h.service.ListDepartments(c.Request.Context(), model.DepartmentFilter{
		DepartmentType: model.DepartmentType(deptType),
		Page:           page,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.List(c, depts, page, len(depts))
}

func (h *Handler) GetDepartment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	dept, err := h.service.GetDepartment(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, dept)
}

func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateDepartmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	dept, err := h.service.UpdateDepartment(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, dept)
}

func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDepartment(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.NoContent(c)
}

func (h *Handler) DepartmentUtilization(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	util, err := h.service.DepartmentUtilization(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, util)
}

// Beds

func (h *Handler) CreateBed(c *gin.Context) {
	var req model.CreateBedRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	bed, err := h.service.CreateBed(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, bed)
}

func (h *Handler) ListBeds(c *gin.Context) {
	page, ok := handler.Page(c)
	if !ok {
		return
	}
	deptID, ok := handler.QueryUUID(c, "department_id")
	if !ok {
		return
	}
	status, ok := handler.QueryEnum(c, "status", bedStatuses...)
	if !ok {
		return
	}

	beds, err := h.service.ListBeds(c.Request.Context(), model.BedFilter{
		DepartmentID: deptID,
		Status:       model.BedStatus(status),
		Page:         page,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.List(c, beds, page, len(beds))
}

func (h *Handler) GetBed(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	bed, err := h.service.GetBed(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, bed)
}

func (h *Handler) UpdateBed(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateBedRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	bed, err := h.service.UpdateBed(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, bed)
}

func (h *Handler) DeleteBed(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBed(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.NoContent(c)
}

// Staff

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	staff, err := h.service.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, staff)
}

func (h *Handler) ListStaff(c *gin.Context) {
	page, ok := handler.Page(c)
	if !ok {
		return
	}
	deptID, ok := handler.QueryUUID(c, "department_id")
	if !ok {
		return
	}
	role, ok := handler.QueryEnum(c, "role", staffRoles...)
	if !ok {
		return
	}
	isActive, ok := handler.QueryBool(c, "is_active")
	if !ok {
		return
	}

	staff, err := h.service.ListStaff(c.Request.Context(), model.StaffFilter{
		DepartmentID: deptID,
		Role:         model.StaffRole(role),
		IsActive:     isActive,
		Page:         page,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.List(c, staff, page, len(staff))
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	staff, err := h.service.GetStaff(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, staff)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateStaffRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	staff, err := h.service.UpdateStaff(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, staff)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.NoContent(c)
}

// Equipment

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req model.CreateEquipmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	equipment, err := h.service.CreateEquipment(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, equipment)
}

func (h *Handler) ListEquipment(c *gin.Context) {
	page, ok := handler.Page(c)
	if !ok {
		return
	}
	deptID, ok := handler.QueryUUID(c, "department_id")
	if !ok {
		return
	}
	status, ok := handler.QueryEnum(c, "status", equipStatuses...)
	if !ok {
		return
	}

	equipment, err := h.service.ListEquipment(c.Request.Context(), model.EquipmentFilter{
		DepartmentID:  deptID,
		EquipmentType: strings.TrimSpace(c.Query("equipment_type")),
		Status:        model.EquipmentStatus(status),
		Page:          page,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.List(c, equipment, page, len(equipment))
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	equipment, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, equipment)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateEquipmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	equipment, err := h.service.UpdateEquipment(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, equipment)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.NoContent(c)
}
