package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// StockCategory is the product line of a stock item.
type StockCategory string

const (
	StockFAS    StockCategory = "FAS"
	StockPAS    StockCategory = "PAS"
	StockCCTV   StockCategory = "CCTV"
	StockAccess StockCategory = "Access"
	StockOther  StockCategory = "Бусад"
)

func (c StockCategory) IsValid() bool {
	switch c {
	case StockFAS, StockPAS, StockCCTV, StockAccess, StockOther:
		return true
	}
	return false
}

// ErrNegativeQuantity is returned when an adjustment would take stock below zero.
var ErrNegativeQuantity = fmt.Errorf("%w: quantity cannot become negative", apperrors.ErrValidation)

// StockItem is a warehouse product line (table stock).
type StockItem struct {
	ID              string           `db:"id" json:"id"`
	ProductName     string           `db:"product_name" json:"productName" validate:"required"`
	SKU             *string          `db:"sku" json:"sku"`
	Category        *StockCategory   `db:"category" json:"category" validate:"omitempty,stock_category"`
	Quantity        int              `db:"quantity" json:"quantity" validate:"gte=0"`
	UnitPrice       *decimal.Decimal `db:"unit_price" json:"unitPrice" validate:"omitempty,gte=0"`
	TotalValue      *decimal.Decimal `db:"total_value" json:"totalValue"`
	MinStockLevel   *int             `db:"min_stock_level" json:"minStockLevel" validate:"omitempty,gte=0"`
	Location        *string          `db:"location" json:"location"`
	Supplier        *string          `db:"supplier" json:"supplier"`
	LastRestockDate *Date            `db:"last_restock_date" json:"lastRestockDate"`
	Notes           *string          `db:"notes" json:"notes"`
	AuditFields
}

func (s *StockItem) RecordID() string { return s.ID }

func (s *StockItem) Stamp(id, actorID string, now time.Time) {
	s.ID = id
	s.stamp(actorID, now)
}

func (s *StockItem) Touch(now time.Time) { s.UpdatedAt = now }

// Derive recomputes total_value from quantity and unit price.
func (s *StockItem) Derive() {
	s.TotalValue = TotalStockValue(s.Quantity, s.UnitPrice)
}

func (s *StockItem) OwnerID() *string { return s.CreatedBy }

// IsLowStock reports whether the item has a positive threshold and is at or below it.
func (s StockItem) IsLowStock() bool {
	return s.MinStockLevel != nil && *s.MinStockLevel > 0 && s.Quantity <= *s.MinStockLevel
}

// AdjustedQuantity returns the quantity after applying change, or ErrNegativeQuantity.
func AdjustedQuantity(current, change int) (int, error) {
	next := current + change
	if next < 0 {
		return current, ErrNegativeQuantity
	}
	return next, nil
}
