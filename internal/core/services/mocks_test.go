package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository is a mock of the generic record store.
type MockRecordRepository[T any] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordRepository[T]) List(ctx context.Context, q domain.ListQuery) ([]T, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]T), args.Int(1), args.Error(2)
}

func (m *MockRecordRepository[T]) ListAll(ctx context.Context, q domain.ListQuery) ([]T, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRecordRepository[T]) Insert(ctx context.Context, rec T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(T) *T); ok {
		return echo(rec), args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, rec T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(T) *T); ok {
		return echo(rec), args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOpportunityRepository struct {
	MockRecordRepository[domain.Opportunity]
}

func (m *MockOpportunityRepository) UpdateStage(ctx context.Context, id string, stage domain.Stage, progress decimal.Decimal, now time.Time) (*domain.Opportunity, error) {
	args := m.Called(ctx, id, stage, progress, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}

type MockSalaryRepository struct {
	MockRecordRepository[domain.Salary]
}

func (m *MockSalaryRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, now time.Time) (*domain.Salary, error) {
	args := m.Called(ctx, id, status, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

type MockStockRepository struct {
	MockRecordRepository[domain.StockItem]
}

func (m *MockStockRepository) AdjustQuantity(ctx context.Context, id string, delta int, restocked *domain.Date, now time.Time) (*domain.StockItem, error) {
	args := m.Called(ctx, id, delta, restocked, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) ListByType(ctx context.Context, settingType domain.SettingType) ([]domain.Setting, error) {
	args := m.Called(ctx, settingType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingsRepository) UpsertTeamTarget(ctx context.Context, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error) {
	args := m.Called(ctx, settingType, team, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingsRepository) UpsertStageProbability(ctx context.Context, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error) {
	args := m.Called(ctx, settingType, stage, probability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertByEmail(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeRecordAction(ctx context.Context, actorID string, ownerID *string) error {
	return m.Called(ctx, actorID, ownerID).Error(0)
}

func (m *MockAuthorizer) AuthorizeAdmin(ctx context.Context, actorID string) error {
	return m.Called(ctx, actorID).Error(0)
}

// recordingPublisher collects every published path.
type recordingPublisher struct {
	mu    sync.Mutex
	paths []string
}

func (p *recordingPublisher) Publish(paths ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, paths...)
}

func (p *recordingPublisher) Published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...)
}

type trackedEvent struct {
	distinctID string
	event      string
	props      map[string]any
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (t *recordingTracker) Enqueue(distinctID, event string, props map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, trackedEvent{distinctID, event, props})
}

// echo returns the stored record unchanged, like a RETURNING clause.
func echo[T any](rec T) *T { return &rec }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) ExistsSince(ctx context.Context, userID, relatedType, relatedID string, since time.Time) (bool, error) {
	args := m.Called(ctx, userID, relatedType, relatedID, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) Insert(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(domain.Notification) *domain.Notification); ok {
		return echo(n), args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID string, now time.Time) error {
	return m.Called(ctx, id, userID, now).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockPushSubscriptionRepository struct {
	mock.Mock
}

func (m *MockPushSubscriptionRepository) Upsert(ctx context.Context, sub domain.PushSubscription) (*domain.PushSubscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(domain.PushSubscription) *domain.PushSubscription); ok {
		return echo(sub), args.Error(1)
	}
	return args.Get(0).(*domain.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepository) FindByUser(ctx context.Context, userID string) (*domain.PushSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepository) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *domain.Date {
	d := mustDate(s)
	return &d
}
