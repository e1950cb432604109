package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustQuantity_PositiveChangeRecordsRestock(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStockRepository)
	publisher := &recordingPublisher{}
	svc := services.NewStockService(repo, services.WithRevalidation(publisher))

	today := domain.Today()
	repo.On("FindByID", ctx, "sku-1").Return(&domain.StockItem{ID: "sku-1", Quantity: 3}, nil).Once()
	repo.On("AdjustQuantity", ctx, "sku-1", 5, mock.MatchedBy(func(d *domain.Date) bool {
		return d != nil && d.Equal(today.Time)
	}), mock.AnythingOfType("time.Time")).Return(&domain.StockItem{ID: "sku-1", Quantity: 8}, nil).Once()

	item, err := svc.AdjustQuantity(ctx, "actor-1", "sku-1", 5)

	require.NoError(t, err)
	assert.Equal(t, 8, item.Quantity)
	assert.Equal(t, []string{services.PathStock, services.PathDashboard}, publisher.Published())
	repo.AssertExpectations(t)
}

func TestAdjustQuantity_NegativeResultRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStockRepository)
	publisher := &recordingPublisher{}
	svc := services.NewStockService(repo, services.WithRevalidation(publisher))

	repo.On("FindByID", ctx, "sku-1").Return(&domain.StockItem{ID: "sku-1", Quantity: 2}, nil).Once()

	_, err := svc.AdjustQuantity(ctx, "actor-1", "sku-1", -5)

	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, publisher.Published())
	repo.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustQuantity_ConcurrentDrainRejectedByRepository(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStockRepository)
	publisher := &recordingPublisher{}
	svc := services.NewStockService(repo, services.WithRevalidation(publisher))

	// The read still sees 6 units, but another adjustment drained the row before the update.
	repo.On("FindByID", ctx, "sku-1").Return(&domain.StockItem{ID: "sku-1", Quantity: 6}, nil).Once()
	repo.On("AdjustQuantity", ctx, "sku-1", -5, (*domain.Date)(nil), mock.Anything).
		Return(nil, domain.ErrNegativeQuantity).Once()

	_, err := svc.AdjustQuantity(ctx, "actor-1", "sku-1", -5)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, publisher.Published())
	repo.AssertExpectations(t)
}

func TestStockUpdate_RecomputesTotalValue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStockRepository)
	svc := services.NewStockService(repo)

	stored := &domain.StockItem{ID: "sku-1", ProductName: "Detector", Quantity: 2, UnitPrice: decPtr("10"), TotalValue: decPtr("20")}
	repo.On("FindByID", ctx, "sku-1").Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(s domain.StockItem) bool {
		return s.TotalValue != nil && s.TotalValue.Equal(decimal.NewFromInt(70)) && !s.UpdatedAt.IsZero()
	})).Return(echo[domain.StockItem], nil).Once()

	updated, err := svc.Update(ctx, "actor-1", "sku-1", domain.PatchFunc[domain.StockItem](func(s *domain.StockItem) {
		s.Quantity = 7
		s.TotalValue = decPtr("1")
	}))

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), updated.UpdatedAt, time.Minute)
	repo.AssertExpectations(t)
}

func TestStockSummary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStockRepository)
	svc := services.NewStockService(repo)

	threshold := 5
	repo.On("ListAll", ctx, domain.ListQuery{}).Return([]domain.StockItem{
		{ProductName: "A", Quantity: 3, MinStockLevel: &threshold, TotalValue: decPtr("30")},
		{ProductName: "B", Quantity: 10, TotalValue: decPtr("100")},
	}, nil).Once()

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 13, summary.TotalQuantity)
	assert.Equal(t, 1, summary.LowStockItems)
}
