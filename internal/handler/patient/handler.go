package patient

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/service/patient"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard handler.Guard) {
	read := guard(model.CapabilityRead)
	manage := guard(model.CapabilityManage)

	patients := r.Group("/patients")
	{
		patients.POST("", manage, h.CreatePatient)
		patients.GET("", read, h.ListPatients)
		patients.GET("/:id", read, h.GetPatient)
		patients.PUT("/:id", manage, h.UpdatePatient)
		patients.DELETE("/:id", manage, h.DeletePatient)

		patients.POST("/:id/admissions", manage, h.CreateAdmission)
		patients.GET("/:id/admissions", read, h.ListAdmissions)

		patients.POST("/:id/outcomes", manage, h.CreateOutcome)
		patients.GET("/:id/outcomes", read, h.ListOutcomes)

		patients.POST("/:id/readmissions", manage, h.CreateReadmission)
		patients.GET("/:id/readmissions", read, h.ListReadmissions)

		patients.POST("/:id/satisfaction", guard(model.CapabilityRecordFeedback), h.CreateSatisfaction)
		patients.GET("/:id/satisfaction", read, h.ListSatisfaction)
	}

	admissions := r.Group("/admissions")
	{
		admissions.GET("/:id", read, h.GetAdmission)
		admissions.POST("/:id/discharge", manage, h.DischargePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	p, err := h.service.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, p)
}

func (h *Handler) ListPatients(c *gin.Context) {
	page, ok := handler.Page(c)
	if !ok {
		return
	}

	patients, err := h.service.ListPatients(c.Request.Context(), model.PatientFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.List(c, patients, page, len(patients))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, p)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdatePatientRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	p, err := h.service.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, p)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.NoContent(c)
}

func (h *Handler) CreateAdmission(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.CreateAdmissionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	admission, err := h.service.CreateAdmission(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, admission)
}

func (h *Handler) ListAdmissions(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	admissions, err := h.service.ListAdmissions(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, admissions)
}

func (h *Handler) GetAdmission(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	admission, err := h.service.GetAdmission(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, admission)
}

func (h *Handler) DischargePatient(c *gin.Context) {
	admissionID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.CreateDischargeRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	discharge, err := h.service.DischargePatient(c.Request.Context(), admissionID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, discharge)
}

func (h *Handler) CreateOutcome(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.CreateOutcomeRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	outcome, err := h.service.CreateOutcome(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, outcome)
}

func (h *Handler) ListOutcomes(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	outcomes, err := h.service.ListOutcomes(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, outcomes)
}

func (h *Handler) CreateReadmission(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.CreateReadmissionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	readmission, err := h.service.CreateReadmission(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, readmission)
}

func (h *Handler) ListReadmissions(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	readmissions, err := h.service.ListReadmissions(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, readmissions)
}

func (h *Handler) CreateSatisfaction(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.CreateSatisfactionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	score, err := h.service.CreateSatisfaction(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, score)
}

func (h *Handler) ListSatisfaction(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	scores, err := h.service.ListSatisfaction(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, scores)
}
