package handlers_test

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OpportunityService ---
type MockOpportunityService struct {
	mock.Mock
}

func (m *MockOpportunityService) List(ctx context.Context, q domain.ListQuery) (*domain.Page[domain.Opportunity], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Opportunity]), args.Error(1)
}
func (m *MockOpportunityService) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityService) Create(ctx context.Context, actorID string, rec domain.Opportunity) (*domain.Opportunity, error) {
	args := m.Called(ctx, actorID, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityService) Update(ctx context.Context, actorID, id string, patch domain.Patch[domain.Opportunity]) (*domain.Opportunity, error) {
	args := m.Called(ctx, actorID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityService) Delete(ctx context.Context, actorID, id string) error {
	return m.Called(ctx, actorID, id).Error(0)
}
func (m *MockOpportunityService) MoveStage(ctx context.Context, actorID, id string, stage domain.Stage) (*domain.Opportunity, error) {
	args := m.Called(ctx, actorID, id, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityService) KanbanColumns(ctx context.Context) (domain.KanbanColumns, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.KanbanColumns), args.Error(1)
}

var _ portssvc.OpportunitySvcFacade = (*MockOpportunityService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockNotificationService) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationService) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

type MockNotificationChecker struct {
	mock.Mock
}

func (m *MockNotificationChecker) CheckUpcoming(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.NotificationCheckerSvc = (*MockNotificationChecker)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSalesTargets(ctx context.Context) ([]domain.TeamTargetSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamTargetSetting), args.Error(1)
}
func (m *MockSettingsService) GetServiceContractTargets(ctx context.Context) ([]domain.TeamTargetSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamTargetSetting), args.Error(1)
}
func (m *MockSettingsService) GetStageProbabilities(ctx context.Context) ([]domain.StageProbability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StageProbability), args.Error(1)
}
func (m *MockSettingsService) GetAll(ctx context.Context) (*domain.AllSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllSettings), args.Error(1)
}
func (m *MockSettingsService) SetTeamTarget(ctx context.Context, actorID string, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error) {
	args := m.Called(ctx, actorID, settingType, team, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}
func (m *MockSettingsService) SetStageProbability(ctx context.Context, actorID string, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error) {
	args := m.Called(ctx, actorID, settingType, stage, probability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardMetrics), args.Error(1)
}
func (m *MockReportingService) TeamTargets(ctx context.Context) ([]domain.TeamTargetProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamTargetProgress), args.Error(1)
}
func (m *MockReportingService) FunnelConversions(ctx context.Context) ([]domain.FunnelConversion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FunnelConversion), args.Error(1)
}
func (m *MockReportingService) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}
func (m *MockReportingService) TopClients(ctx context.Context, limit int) ([]domain.ClientValue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientValue), args.Error(1)
}
func (m *MockReportingService) ServiceContractMetrics(ctx context.Context) (*domain.ServiceContractMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceContractMetrics), args.Error(1)
}
func (m *MockReportingService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardOverview), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
