package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/kpi"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/service/analytics"
)

type Handler struct {
	service analytics.AnalyticsService
}

func NewHandler(service analytics.AnalyticsService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard handler.Guard) {
	read := guard(model.CapabilityRead)

	g := r.Group("/analytics")
	{
		g.GET("/dashboard", read, h.Dashboard)
		g.GET("/trends/occupancy", read, h.OccupancyTrend)
		g.GET("/trends/readmissions", read, h.ReadmissionTrend)
		g.GET("/departments/performance", read, h.DepartmentPerformance)
		g.GET("/patient-outcomes", read, h.OutcomeSummary)
		g.GET("/resource-utilization", read, h.ResourceUtilization)
		g.GET("/cost-analysis", read, h.CostAnalysis)
		g.POST("/cost-analyses", guard(model.CapabilityManage), h.CreateCostAnalysis)
		g.GET("/cost-analyses/:id", read, h.GetCostAnalysis)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	metrics, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, metrics)
}

func (h *Handler) trendDays(c *gin.Context) (int, bool) {
	return handler.QueryInt(c, "days", kpi.DefaultTrendDays, kpi.MinTrendDays, kpi.MaxTrendDays)
}

func (h *Handler) OccupancyTrend(c *gin.Context) {
	days, ok := h.trendDays(c)
	if !ok {
		return
	}

	points, err := h.service.OccupancyTrend(c.Request.Context(), days)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, points)
}

func (h *Handler) ReadmissionTrend(c *gin.Context) {
	days, ok := h.trendDays(c)
	if !ok {
		return
	}

	points, err := h.service.ReadmissionTrend(c.Request.Context(), days)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, points)
}

func (h *Handler) DepartmentPerformance(c *gin.Context) {
	perf, err := h.service.DepartmentPerformance(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, perf)
}

func (h *Handler) OutcomeSummary(c *gin.Context) {
	summary, err := h.service.OutcomeSummary(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, summary)
}

func (h *Handler) ResourceUtilization(c *gin.Context) {
	util, err := h.service.ResourceUtilization(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, util)
}

func (h *Handler) CostAnalysis(c *gin.Context) {
	start, ok := handler.QueryDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := handler.QueryDate(c, "end_date")
	if !ok {
		return
	}
	deptID, ok := handler.QueryUUID(c, "department_id")
	if !ok {
		return
	}

	report, err := h.service.CostAnalysis(c.Request.Context(), start, end, deptID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, report)
}

func (h *Handler) CreateCostAnalysis(c *gin.Context) {
	var req model.CreateCostAnalysisRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	analysis, err := h.service.CreateCostAnalysis(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.Created(c, analysis)
}

func (h *Handler) GetCostAnalysis(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	analysis, err := h.service.GetCostAnalysis(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, analysis)
}
