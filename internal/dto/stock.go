package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type StockListParams struct {
	PageParams
	Category string `form:"category" binding:"omitempty,stock_category"`
	LowStock bool   `form:"lowStock"`
}

func (p StockListParams) ToListQuery() (domain.ListQuery, error) {
	q, err := p.query()
	if err != nil {
		return q, err
	}
	q = q.WithFilter("category", p.Category)
	if p.LowStock {
		q.Flags = []string{"lowStock"}
	}
	return q, nil
}

// CreateStockItemRequest is the body of POST /stock. totalValue is derived.
type CreateStockItemRequest struct {
	ProductName   string                `json:"productName" binding:"required"`
	SKU           *string               `json:"sku"`
	Category      *domain.StockCategory `json:"category" binding:"omitempty,stock_category"`
	Quantity      int                   `json:"quantity" binding:"gte=0"`
	UnitPrice     *decimal.Decimal      `json:"unitPrice" swaggertype:"number"`
	MinStockLevel *int                  `json:"minStockLevel" binding:"omitempty,gte=0"`
	Location      *string               `json:"location"`
	Supplier      *string               `json:"supplier"`
	LastRestock   *domain.Date          `json:"lastRestockDate" swaggertype:"string"`
	Notes         *string               `json:"notes"`
}

func (r CreateStockItemRequest) ToDomain() domain.StockItem {
	return domain.StockItem{
		ProductName:     r.ProductName,
		SKU:             r.SKU,
		Category:        r.Category,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		MinStockLevel:   r.MinStockLevel,
		Location:        r.Location,
		Supplier:        r.Supplier,
		LastRestockDate: r.LastRestock,
		Notes:           r.Notes,
	}
}

type UpdateStockItemRequest struct {
	ProductName   *string               `json:"productName" binding:"omitempty,min=1"`
	SKU           *string               `json:"sku"`
	Category      *domain.StockCategory `json:"category" binding:"omitempty,stock_category"`
	Quantity      *int                  `json:"quantity" binding:"omitempty,gte=0"`
	UnitPrice     *decimal.Decimal      `json:"unitPrice" swaggertype:"number"`
	MinStockLevel *int                  `json:"minStockLevel" binding:"omitempty,gte=0"`
	Location      *string               `json:"location"`
	Supplier      *string               `json:"supplier"`
	LastRestock   *domain.Date          `json:"lastRestockDate" swaggertype:"string"`
	Notes         *string               `json:"notes"`
}

func (r UpdateStockItemRequest) Patch() domain.Patch[domain.StockItem] {
	return domain.PatchFunc[domain.StockItem](func(s *domain.StockItem) {
		set(&s.ProductName, r.ProductName)
		setPtr(&s.SKU, r.SKU)
		setPtr(&s.Category, r.Category)
		set(&s.Quantity, r.Quantity)
		setPtr(&s.UnitPrice, r.UnitPrice)
		setPtr(&s.MinStockLevel, r.MinStockLevel)
		setPtr(&s.Location, r.Location)
		setPtr(&s.Supplier, r.Supplier)
		setPtr(&s.LastRestockDate, r.LastRestock)
		setPtr(&s.Notes, r.Notes)
	})
}

// AdjustStockRequest is the body of POST /stock/{id}/adjust. A negative
// change removes stock; the result may not drop below zero.
type AdjustStockRequest struct {
	QuantityChange *int `json:"quantityChange" binding:"required"`
}
