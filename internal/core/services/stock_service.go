package services

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

type stockService struct {
	*recordService[domain.StockItem, *domain.StockItem]
	stockRepo portsrepo.StockRepositoryFacade
}

func NewStockService(repo portsrepo.StockRepositoryFacade, opts ...RecordOption) portssvc.StockSvcFacade {
	return &stockService{
		recordService: newRecordService[domain.StockItem, *domain.StockItem](
			"stock", repo, []string{PathStock, PathDashboard}, opts...),
		stockRepo: repo,
	}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) Summary(ctx context.Context) (*domain.StockSummary, error) {
	rows, err := s.listAll(ctx, domain.ListQuery{})
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeStock(rows)
	return &summary, nil
}

func (s *stockService) AdjustQuantity(ctx context.Context, actorID, id string, change int) (*domain.StockItem, error) {
	existing, err := s.loadForWrite(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	// The repository re-checks under the row lock; this rejects the obvious case early.
	if _, err := domain.AdjustedQuantity(existing.Quantity, change); err != nil {
		s.LogDebug(ctx, "Stock adjustment rejected", map[string]any{"id": id, "quantity": existing.Quantity, "change": change})
		return nil, err
	}
	now := s.now()
	var restocked *domain.Date
	if change > 0 {
		today := domain.NewDate(now)
		restocked = &today
	}

	updated, err := s.stockRepo.AdjustQuantity(ctx, id, change, restocked, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust stock quantity", map[string]any{"id": id, "change": change})
		return nil, err
	}
	s.LogInfo(ctx, "Stock quantity adjusted", map[string]any{"id": id, "change": change, "quantity": updated.Quantity})
	s.publish()
	return updated, nil
}
