package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	opportunityRepo portsrepo.RecordReader[domain.Opportunity]
	contractRepo    portsrepo.RecordReader[domain.ServiceContract]
	settingsRepo    portsrepo.SettingsRepositoryFacade
}

// NewReportingService creates the dashboard aggregator. Every view reads whole
// tables and reduces them in memory.
func NewReportingService(
	opportunityRepo portsrepo.RecordReader[domain.Opportunity],
	contractRepo portsrepo.RecordReader[domain.ServiceContract],
	settingsRepo portsrepo.SettingsRepositoryFacade,
) portssvc.ReportingService {
	return &reportingService{
		opportunityRepo: opportunityRepo,
		contractRepo:    contractRepo,
		settingsRepo:    settingsRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) opportunities(ctx context.Context) ([]domain.Opportunity, error) {
	rows, err := s.opportunityRepo.ListAll(ctx, domain.ListQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to read sales funnel", nil)
		return nil, fmt.Errorf("read sales funnel: %w", err)
	}
	return rows, nil
}

func (s *reportingService) contracts(ctx context.Context) ([]domain.ServiceContract, error) {
	rows, err := s.contractRepo.ListAll(ctx, domain.ListQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to read service contracts", nil)
		return nil, fmt.Errorf("read service contracts: %w", err)
	}
	return rows, nil
}

func (s *reportingService) salesTargets(ctx context.Context) ([]domain.TeamTargetSetting, error) {
	rows, err := s.settingsRepo.ListByType(ctx, domain.SettingSalesFunnel)
	if err != nil {
		s.LogError(ctx, err, "Failed to read sales targets", nil)
		return nil, fmt.Errorf("read sales targets: %w", err)
	}
	return domain.TeamTargets(rows), nil
}

func (s *reportingService) DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	rows, err := s.opportunities(ctx)
	if err != nil {
		return nil, err
	}
	metrics := domain.SummarizeFunnel(rows)
	return &metrics, nil
}

// TeamTargets compares each configured team target with the team's Closed and Won value.
func (s *reportingService) TeamTargets(ctx context.Context) ([]domain.TeamTargetProgress, error) {
	var (
		targets []domain.TeamTargetSetting
		rows    []domain.Opportunity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		targets, err = s.salesTargets(gctx)
		return err
	})
	g.Go(func() (err error) {
		rows, err = s.opportunities(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return domain.TeamProgress(targets, rows), nil
}

func (s *reportingService) FunnelConversions(ctx context.Context) ([]domain.FunnelConversion, error) {
	rows, err := s.opportunities(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FunnelConversions(rows), nil
}

func (s *reportingService) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	rows, err := s.opportunities(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MonthlyTrends(rows), nil
}

func (s *reportingService) TopClients(ctx context.Context, limit int) ([]domain.ClientValue, error) {
	rows, err := s.opportunities(ctx)
	if err != nil {
		return nil, err
	}
	return domain.TopClients(rows, limit), nil
}

func (s *reportingService) ServiceContractMetrics(ctx context.Context) (*domain.ServiceContractMetrics, error) {
	rows, err := s.contracts(ctx)
	if err != nil {
		return nil, err
	}
	metrics := domain.SummarizeContracts(rows)
	return &metrics, nil
}

// Overview issues the three reads concurrently and reduces them once. The
// first failing read cancels the others and is returned.
func (s *reportingService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	var (
		opps      []domain.Opportunity
		contracts []domain.ServiceContract
		targets   []domain.TeamTargetSetting
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		opps, err = s.opportunities(gctx)
		return err
	})
	g.Go(func() (err error) {
		contracts, err = s.contracts(gctx)
		return err
	})
	g.Go(func() (err error) {
		targets, err = s.salesTargets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{
		Metrics:          domain.SummarizeFunnel(opps),
		TeamTargets:      domain.TeamProgress(targets, opps),
		Funnel:           domain.FunnelConversions(opps),
		MonthlyTrends:    domain.MonthlyTrends(opps),
		TopClients:       domain.TopClients(opps, domain.DefaultTopClients),
		ServiceContracts: domain.SummarizeContracts(contracts),
	}, nil
}
