package handlers

import (
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type stockHandler struct {
	recordEndpoints[domain.StockItem]
	stockService portssvc.StockSvcFacade
}

func registerStockRoutes(rg *gin.RouterGroup, svc portssvc.StockSvcFacade) {
	h := &stockHandler{
		recordEndpoints: recordEndpoints[domain.StockItem]{svc: svc, name: "stock item"},
		stockService:    svc,
	}

	stock := rg.Group("/stock")
	{
		stock.GET("", h.listStock)
		stock.POST("", h.createItem)
		stock.GET("/summary", h.getSummary)
		stock.GET("/:id", h.getItem)
		stock.PUT("/:id", h.updateItem)
		stock.DELETE("/:id", h.deleteItem)
		stock.POST("/:id/adjust", h.adjustQuantity)
	}
}

// listStock godoc
// @Summary List stock items
// @Tags stock
// @Produce json
// @Param category query string false "Category"
// @Param lowStock query bool false "Only items at or below their minimum level"
// @Param search query string false "Substring of product name, SKU or supplier"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse[domain.StockItem]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	h.list(c, &dto.StockListParams{})
}

// getSummary godoc
// @Summary Stock totals
// @Tags stock
// @Produce json
// @Success 200 {object} domain.StockSummary
// @Security BearerAuth
// @Router /stock/summary [get]
func (h *stockHandler) getSummary(c *gin.Context) {
	summary, err := h.stockService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "summarize stock")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getItem godoc
// @Summary Get a stock item
// @Tags stock
// @Produce json
// @Param id path string true "Stock item ID"
// @Success 200 {object} domain.StockItem
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [get]
func (h *stockHandler) getItem(c *gin.Context) {
	h.get(c)
}

// createItem godoc
// @Summary Create a stock item
// @Description The total value is always computed by the server
// @Tags stock
// @Accept json
// @Produce json
// @Param item body dto.CreateStockItemRequest true "Stock item"
// @Success 201 {object} domain.StockItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock [post]
func (h *stockHandler) createItem(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToDomain())
}

// updateItem godoc
// @Summary Update a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param item body dto.UpdateStockItemRequest true "Fields to change"
// @Success 200 {object} domain.StockItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [put]
func (h *stockHandler) updateItem(c *gin.Context) {
	var req dto.UpdateStockItemRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.Patch())
}

// deleteItem godoc
// @Summary Delete a stock item
// @Tags stock
// @Param id path string true "Stock item ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [delete]
func (h *stockHandler) deleteItem(c *gin.Context) {
	h.delete(c)
}

// adjustQuantity godoc
// @Summary Adjust the quantity on hand
// @Description Adds a signed change to the quantity. A positive change records a restock today.
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param change body dto.AdjustStockRequest true "Quantity change"
// @Success 200 {object} domain.StockItem
// @Failure 400 {object} ErrorResponse "Result would be negative"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id}/adjust [post]
func (h *stockHandler) adjustQuantity(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	item, err := h.stockService.AdjustQuantity(c.Request.Context(), actorID, c.Param("id"), *req.QuantityChange)
	if err != nil {
		respondError(c, err, "adjust stock quantity")
		return
	}
	c.JSON(http.StatusOK, item)
}
