package domain_test

import (
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestAdjustedQuantity(t *testing.T) {
	got, err := domain.AdjustedQuantity(5, -5)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = domain.AdjustedQuantity(3, -5)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 3, got)
}

func TestStockItem_IsLowStock(t *testing.T) {
	tests := []struct {
		name string
		item domain.StockItem
		want bool
	}{
		{"no threshold", domain.StockItem{Quantity: 0}, false},
		{"zero threshold", domain.StockItem{Quantity: 0, MinStockLevel: intPtr(0)}, false},
		{"at threshold", domain.StockItem{Quantity: 5, MinStockLevel: intPtr(5)}, true},
		{"above threshold", domain.StockItem{Quantity: 6, MinStockLevel: intPtr(5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsLowStock())
		})
	}
}
