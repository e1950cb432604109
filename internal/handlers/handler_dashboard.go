package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the summary aggregates shown on the dashboard.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.ReportingService) {
	h := &dashboardHandler{reportingService: svc}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getOverview)
		dashboard.GET("/metrics", h.getMetrics)
		dashboard.GET("/team-targets", h.getTeamTargets)
		dashboard.GET("/funnel", h.getFunnel)
		dashboard.GET("/monthly-trends", h.getMonthlyTrends)
		dashboard.GET("/top-clients", h.getTopClients)
		dashboard.GET("/service-contracts", h.getServiceContracts)
	}
}

// getOverview godoc
// @Summary Whole dashboard
// @Description Every dashboard view computed from one concurrent read of the funnel, contracts and targets
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardOverview
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getOverview(c *gin.Context) {
	overview, err := h.reportingService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// getMetrics godoc
// @Summary Funnel metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardMetrics
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (h *dashboardHandler) getMetrics(c *gin.Context) {
	metrics, err := h.reportingService.DashboardMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "load dashboard metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// getTeamTargets godoc
// @Summary Team target progress
// @Description Closed and Won value per team against its yearly target. Teams without a target are omitted.
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.TeamTargetProgress
// @Security BearerAuth
// @Router /dashboard/team-targets [get]
func (h *dashboardHandler) getTeamTargets(c *gin.Context) {
	progress, err := h.reportingService.TeamTargets(c.Request.Context())
	if err != nil {
		respondError(c, err, "load team targets")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// getFunnel godoc
// @Summary Funnel conversion
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.FunnelConversion
// @Security BearerAuth
// @Router /dashboard/funnel [get]
func (h *dashboardHandler) getFunnel(c *gin.Context) {
	funnel, err := h.reportingService.FunnelConversions(c.Request.Context())
	if err != nil {
		respondError(c, err, "load funnel conversions")
		return
	}
	c.JSON(http.StatusOK, funnel)
}

// getMonthlyTrends godoc
// @Summary Monthly trends
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.MonthlyTrend
// @Security BearerAuth
// @Router /dashboard/monthly-trends [get]
func (h *dashboardHandler) getMonthlyTrends(c *gin.Context) {
	trends, err := h.reportingService.MonthlyTrends(c.Request.Context())
	if err != nil {
		respondError(c, err, "load monthly trends")
		return
	}
	c.JSON(http.StatusOK, trends)
}

// getTopClients godoc
// @Summary Top clients by value
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of clients" default(10)
// @Success 200 {array} domain.ClientValue
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/top-clients [get]
func (h *dashboardHandler) getTopClients(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, apperrors.NewBadRequestError("limit must be a non-negative integer"), "load top clients")
			return
		}
		limit = n
	}
	clients, err := h.reportingService.TopClients(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "load top clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// getServiceContracts godoc
// @Summary Service contract metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.ServiceContractMetrics
// @Security BearerAuth
// @Router /dashboard/service-contracts [get]
func (h *dashboardHandler) getServiceContracts(c *gin.Context) {
	metrics, err := h.reportingService.ServiceContractMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "load service contract metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}
