package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// lowStockPredicate matches items whose quantity has fallen to a positive threshold.
const lowStockPredicate = "min_stock_level IS NOT NULL AND min_stock_level > 0 AND quantity <= min_stock_level"

var stockSchema = tableSchema[domain.StockItem]{
	table:  "stock",
	entity: "stock item",
	selectColumns: []string{
		"id", "product_name", "sku", "category", "quantity", "unit_price", "total_value",
		"min_stock_level", "location", "supplier", "last_restock_date", "notes",
		"created_by", "created_at", "updated_at",
	},
	insertColumns: []string{
		"id", "product_name", "sku", "category", "quantity", "unit_price", "total_value",
		"min_stock_level", "location", "supplier", "last_restock_date", "notes",
		"created_by", "created_at", "updated_at",
	},
	insertValues: func(s *domain.StockItem) []any {
		return []any{
			s.ID, s.ProductName, s.SKU, s.Category, s.Quantity, s.UnitPrice, s.TotalValue,
			s.MinStockLevel, s.Location, s.Supplier, s.LastRestockDate, s.Notes,
			s.CreatedBy, s.CreatedAt, s.UpdatedAt,
		}
	},
	updateColumns: []string{
		"product_name", "sku", "category", "quantity", "unit_price", "total_value",
		"min_stock_level", "location", "supplier", "last_restock_date", "notes", "updated_at",
	},
	updateValues: func(s *domain.StockItem) []any {
		return []any{
			s.ProductName, s.SKU, s.Category, s.Quantity, s.UnitPrice, s.TotalValue,
			s.MinStockLevel, s.Location, s.Supplier, s.LastRestockDate, s.Notes, s.UpdatedAt,
		}
	},
	recordID:      func(s *domain.StockItem) string { return s.ID },
	searchColumns: []string{"product_name", "sku", "supplier"},
	filters: map[string]string{
		"category": "category",
	},
	flags: map[string]string{
		"lowStock": lowStockPredicate,
	},
	orderBy: "product_name ASC, id",
}

type stockRepository struct {
	*recordTable[domain.StockItem]
}

func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &stockRepository{recordTable: newRecordTable(pool, stockSchema)}
}

var _ portsrepo.StockRepositoryFacade = (*stockRepository)(nil)

// AdjustQuantity applies delta only when the result stays non-negative.
// When no row is updated the item is re-read to tell a missing row from a rejected change.
func (r *stockRepository) AdjustQuantity(ctx context.Context, id string, delta int, restocked *domain.Date, now time.Time) (*domain.StockItem, error) {
	query := fmt.Sprintf(`
		UPDATE stock
		SET quantity = quantity + $2,
			total_value = unit_price * (quantity + $2),
			last_restock_date = COALESCE($3, last_restock_date),
			updated_at = $4
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING %s`, r.columns())
	item, err := r.one(ctx, query, []any{id, delta, restocked, now}, "stock item "+id)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, domain.ErrNegativeQuantity
}
