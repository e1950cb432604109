package handlers

import (
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	recordEndpoints[domain.Expense]
	expenseService portssvc.ExpenseSvcFacade
}

func registerExpenseRoutes(rg *gin.RouterGroup, svc portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{
		recordEndpoints: recordEndpoints[domain.Expense]{svc: svc, name: "expense"},
		expenseService:  svc,
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/summary", h.getSummary)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param category query string false "Category"
// @Param startDate query string false "First expense date (YYYY-MM-DD)"
// @Param endDate query string false "Last expense date (YYYY-MM-DD)"
// @Param search query string false "Substring of description or vendor"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse[domain.Expense]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	h.list(c, &dto.ExpenseListParams{})
}

// getSummary godoc
// @Summary Expense totals
// @Description Total amount, amount per category and count, optionally within a date range
// @Tags expenses
// @Produce json
// @Param startDate query string false "First expense date (YYYY-MM-DD)"
// @Param endDate query string false "Last expense date (YYYY-MM-DD)"
// @Success 200 {object} domain.ExpenseSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/summary [get]
func (h *expenseHandler) getSummary(c *gin.Context) {
	var params dto.ExpenseSummaryParams
	if !bindQuery(c, &params) {
		return
	}
	period, err := params.Period()
	if err != nil {
		respondError(c, err, "summarize expenses")
		return
	}
	summary, err := h.expenseService.Summary(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "summarize expenses")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} domain.Expense
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	h.get(c)
}

// createExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToDomain())
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.Patch())
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	h.delete(c)
}
