package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/kpi"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/internal/service"
	"github.com/mediflow/mediflow-api/internal/service/event"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*model.DashboardMetrics, error)
	OccupancyTrend(ctx context.Context, days int) ([]model.TrendPoint, error)
	ReadmissionTrend(ctx context.Context, days int) ([]model.TrendPoint, error)
	DepartmentPerformance(ctx context.Context) ([]model.DepartmentPerformance, error)
	OutcomeSummary(ctx context.Context) (*model.PatientOutcomeSummary, error)
	ResourceUtilization(ctx context.Context) (*model.ResourceUtilization, error)
	CostAnalysis(ctx context.Context, start, end model.Date, departmentID *uuid.UUID) (*model.CostAnalysisReport, error)
	CreateCostAnalysis(ctx context.Context, req *model.CreateCostAnalysisRequest) (*model.CostAnalysis, error)
	GetCostAnalysis(ctx context.Context, id uuid.UUID) (*model.CostAnalysis, error)
}

type Repositories struct {
	Metrics      repository.MetricsRepository
	Departments  repository.DepartmentRepository
	CostAnalyses repository.CostAnalysisRepository
	Admissions   repository.AdmissionRepository
}

type Service struct {
	repos  Repositories
	events event.Emitter
	now    service.Clock
}

func NewService(repos Repositories, events event.Emitter, now service.Clock) *Service {
	if events == nil {
		events = event.Nop{}
	}
	if now == nil {
		now = service.SystemClock
	}
	return &Service{repos: repos, events: events, now: now}
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

func (s *Service) Dashboard(ctx context.Context) (*model.DashboardMetrics, error) {
	var (
		in  kpi.DashboardInput
		err error
	)
	m := s.repos.Metrics
	since := s.today().AddDays(-kpi.ReadmissionWindowDays)
	window := kpi.ReadmissionWindowDays

	if in.Patients, err = m.CountPatients(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.Admissions, err = m.CountAdmissions(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.Beds, err = m.BedCounts(ctx, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.AverageLengthOfStay, err = m.AverageLengthOfStay(ctx, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.AverageSatisfaction, err = m.AverageSatisfaction(ctx, nil); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.RecentDischarges, err = m.CountDischarges(ctx, model.DischargeCountFilter{Since: &since}); err != nil {
		return nil, apperrors.Internal(err)
	}
	in.RecentReadmissions, err = m.CountReadmissions(ctx, model.ReadmissionCountFilter{
		Since:                 &since,
		MaxDaysSinceDischarge: &window,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.Revenue, err = m.SumDischargeCost(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if in.Cost, err = m.SumCostAnalysisCost(ctx, nil); err != nil {
		return nil, apperrors.Internal(err)
	}

	metrics := kpi.Dashboard(in)
	return &metrics, nil
}

func checkDays(days int) error {
	if days < kpi.MinTrendDays || days > kpi.MaxTrendDays {
		return apperrors.Validation(fmt.Sprintf("days must be between %d and %d", kpi.MinTrendDays, kpi.MaxTrendDays), nil)
	}
	return nil
}

func (s *Service) OccupancyTrend(ctx context.Context, days int) ([]model.TrendPoint, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	today := s.today()
	_, last := kpi.TrendWindow(today, days)

	beds, err := s.repos.Metrics.BedCounts(ctx, nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	admissions, err := s.repos.Metrics.AdmissionsPerDay(ctx, last)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	discharges, err := s.repos.Metrics.DischargesPerDay(ctx, last)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return kpi.OccupancyTrend(today, days, beds.Total, admissions, discharges), nil
}

func (s *Service) ReadmissionTrend(ctx context.Context, days int) ([]model.TrendPoint, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	today := s.today()
	first, last := kpi.TrendWindow(today, days)

	perDay, err := s.repos.Metrics.ReadmissionsPerDay(ctx, first, last)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return kpi.ReadmissionTrend(today, days, perDay), nil
}

func (s *Service) DepartmentPerformance(ctx context.Context) ([]model.DepartmentPerformance, error) {
	depts, err := s.repos.Departments.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := make([]model.DepartmentPerformance, 0, len(depts))
	for _, dept := range depts {
		in, err := s.departmentInput(ctx, dept.ID)
		if err != nil {
			return nil, apperrors.Internal(fmt.Errorf("department %s: %w", dept.ID, err))
		}
		result = append(result, kpi.DepartmentPerformance(dept, in))
	}
	return result, nil
}

func (s *Service) departmentInput(ctx context.Context, id uuid.UUID) (kpi.DepartmentInput, error) {
	var (
		in  kpi.DepartmentInput
		err error
	)
	m := s.repos.Metrics

	if in.Beds, err = m.BedCounts(ctx, &id); err != nil {
		return in, err
	}
	if in.Staff, err = m.StaffCounts(ctx, &id); err != nil {
		return in, err
	}
	if in.AverageLengthOfStay, err = m.AverageLengthOfStay(ctx, &id); err != nil {
		return in, err
	}
	if in.AverageSatisfaction, err = m.AverageSatisfaction(ctx, &id); err != nil {
		return in, err
	}
	if in.Discharges, err = m.CountDischarges(ctx, model.DischargeCountFilter{DepartmentID: &id}); err != nil {
		return in, err
	}
	if in.Readmissions, err = m.CountReadmissions(ctx, model.ReadmissionCountFilter{DepartmentID: &id}); err != nil {
		return in, err
	}
	in.Cost, err = m.SumCostAnalysisCost(ctx, &id)
	return in, err
}

func (s *Service) OutcomeSummary(ctx context.Context) (*model.PatientOutcomeSummary, error) {
	counts, err := s.repos.Metrics.OutcomeCounts(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	summary := kpi.OutcomeSummary(counts)
	return &summary, nil
}

func (s *Service) ResourceUtilization(ctx context.Context) (*model.ResourceUtilization, error) {
	m := s.repos.Metrics

	beds, err := m.BedCounts(ctx, nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	staff, err := m.StaffCounts(ctx, nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	equipment, err := m.EquipmentCounts(ctx, nil, s.today())
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	util := kpi.ResourceUtilization(beds, staff, equipment)
	return &util, nil
}

func (s *Service) CostAnalysis(ctx context.Context, start, end model.Date, departmentID *uuid.UUID) (*model.CostAnalysisReport, error) {
	if end.Before(start) {
		return nil, apperrors.Validation("end_date must not be before start_date", nil)
	}

	rows, err := s.repos.CostAnalyses.List(ctx, model.CostAnalysisFilter{
		Start:        start,
		End:          end,
		DepartmentID: departmentID,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	report := kpi.CostReport(model.ReportPeriod{StartDate: start, EndDate: end}, rows)
	return &report, nil
}

func (s *Service) CreateCostAnalysis(ctx context.Context, req *model.CreateCostAnalysisRequest) (*model.CostAnalysis, error) {
	if req.PeriodEnd.Before(*req.PeriodStart) {
		return nil, apperrors.Validation("period_end must not be before period_start", nil)
	}
	if req.DepartmentID != nil {
		if _, err := s.repos.Departments.Get(ctx, *req.DepartmentID); err != nil {
			return nil, service.StoreError("Department", "", err)
		}
	}
	if req.AdmissionID != nil {
		if _, err := s.repos.Admissions.Get(ctx, *req.AdmissionID); err != nil {
			return nil, service.StoreError("Admission", "", err)
		}
	}

	analysis := &model.CostAnalysis{
		DepartmentID:        req.DepartmentID,
		AdmissionID:         req.AdmissionID,
		AnalysisDate:        *req.AnalysisDate,
		TotalCost:           *req.TotalCost,
		StaffCost:           req.StaffCost,
		EquipmentCost:       req.EquipmentCost,
		MedicationCost:      req.MedicationCost,
		FacilityCost:        req.FacilityCost,
		OtherCosts:          req.OtherCosts,
		InsuranceRevenue:    req.InsuranceRevenue,
		PatientPayment:      req.PatientPayment,
		TotalRevenue:        req.TotalRevenue,
		ProfitMargin:        req.ProfitMargin,
		CostPerPatientDay:   req.CostPerPatientDay,
		PeriodStart:         *req.PeriodStart,
		PeriodEnd:           *req.PeriodEnd,
		PatientCount:        req.PatientCount,
		AverageLengthOfStay: req.AverageLengthOfStay,
	}
	analysis.Stamp(s.now())

	if err := s.repos.CostAnalyses.Create(ctx, analysis); err != nil {
		return nil, service.StoreError("Cost analysis", "", err)
	}

	s.events.Emit(ctx, model.EventCostAnalysis, analysis.ID, analysis)
	return analysis, nil
}

func (s *Service) GetCostAnalysis(ctx context.Context, id uuid.UUID) (*model.CostAnalysis, error) {
	analysis, err := s.repos.CostAnalyses.Get(ctx, id)
	if err != nil {
		return nil, service.StoreError("Cost analysis", "", err)
	}
	return analysis, nil
}

var _ AnalyticsService = (*Service)(nil)
