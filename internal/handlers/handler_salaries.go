package handlers

import (
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type salaryHandler struct {
	recordEndpoints[domain.Salary]
	salaryService portssvc.SalarySvcFacade
}

func registerSalaryRoutes(rg *gin.RouterGroup, svc portssvc.SalarySvcFacade) {
	h := &salaryHandler{
		recordEndpoints: recordEndpoints[domain.Salary]{svc: svc, name: "salary"},
		salaryService:   svc,
	}

	salaries := rg.Group("/salaries")
	{
		salaries.GET("", h.listSalaries)
		salaries.POST("", h.createSalary)
		salaries.GET("/summary", h.getSummary)
		salaries.GET("/:id", h.getSalary)
		salaries.PUT("/:id", h.updateSalary)
		salaries.DELETE("/:id", h.deleteSalary)
		salaries.PATCH("/:id/status", h.updateStatus)
	}
}

// listSalaries godoc
// @Summary List salary records
// @Tags salaries
// @Produce json
// @Param status query string false "Payment status" Enums(Pending, Paid, Cancelled)
// @Param paymentMonth query string false "Payment month (YYYY-MM)"
// @Param search query string false "Substring of employee name or position"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse[domain.Salary]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries [get]
func (h *salaryHandler) listSalaries(c *gin.Context) {
	h.list(c, &dto.SalaryListParams{})
}

// getSummary godoc
// @Summary Payroll totals
// @Tags salaries
// @Produce json
// @Param paymentMonth query string false "Payment month (YYYY-MM)"
// @Success 200 {object} domain.SalarySummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/summary [get]
func (h *salaryHandler) getSummary(c *gin.Context) {
	var params dto.SalarySummaryParams
	if !bindQuery(c, &params) {
		return
	}
	summary, err := h.salaryService.Summary(c.Request.Context(), params.PaymentMonth)
	if err != nil {
		respondError(c, err, "summarize salaries")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getSalary godoc
// @Summary Get a salary record
// @Tags salaries
// @Produce json
// @Param id path string true "Salary ID"
// @Success 200 {object} domain.Salary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id} [get]
func (h *salaryHandler) getSalary(c *gin.Context) {
	h.get(c)
}

// createSalary godoc
// @Summary Create a salary record
// @Description The net salary is always computed by the server
// @Tags salaries
// @Accept json
// @Produce json
// @Param salary body dto.CreateSalaryRequest true "Salary"
// @Success 201 {object} domain.Salary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries [post]
func (h *salaryHandler) createSalary(c *gin.Context) {
	var req dto.CreateSalaryRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToDomain())
}

// updateSalary godoc
// @Summary Update a salary record
// @Tags salaries
// @Accept json
// @Produce json
// @Param id path string true "Salary ID"
// @Param salary body dto.UpdateSalaryRequest true "Fields to change"
// @Success 200 {object} domain.Salary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id} [put]
func (h *salaryHandler) updateSalary(c *gin.Context) {
	var req dto.UpdateSalaryRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.Patch())
}

// deleteSalary godoc
// @Summary Delete a salary record
// @Tags salaries
// @Param id path string true "Salary ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id} [delete]
func (h *salaryHandler) deleteSalary(c *gin.Context) {
	h.delete(c)
}

// updateStatus godoc
// @Summary Change the payment status
// @Tags salaries
// @Accept json
// @Produce json
// @Param id path string true "Salary ID"
// @Param status body dto.UpdateSalaryStatusRequest true "New status"
// @Success 200 {object} domain.Salary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/{id}/status [patch]
func (h *salaryHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateSalaryStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	updated, err := h.salaryService.UpdateStatus(c.Request.Context(), actorID, c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondError(c, err, "update payment status")
		return
	}
	c.JSON(http.StatusOK, updated)
}
