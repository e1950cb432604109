package handlers

import (
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// salesFunnelHandler handles HTTP requests for opportunities and the kanban board.
type salesFunnelHandler struct {
	recordEndpoints[domain.Opportunity]
	opportunityService portssvc.OpportunitySvcFacade
}

func newSalesFunnelHandler(svc portssvc.OpportunitySvcFacade) *salesFunnelHandler {
	return &salesFunnelHandler{
		recordEndpoints:    recordEndpoints[domain.Opportunity]{svc: svc, name: "opportunity"},
		opportunityService: svc,
	}
}

func registerSalesFunnelRoutes(rg *gin.RouterGroup, svc portssvc.OpportunitySvcFacade) {
	h := newSalesFunnelHandler(svc)

	funnel := rg.Group("/sales-funnel")
	{
		funnel.GET("", h.listOpportunities)
		funnel.POST("", h.createOpportunity)
		funnel.GET("/kanban", h.getKanban)
		funnel.GET("/:id", h.getOpportunity)
		funnel.PUT("/:id", h.updateOpportunity)
		funnel.DELETE("/:id", h.deleteOpportunity)
		funnel.PATCH("/:id/stage", h.moveStage)
	}
}

// listOpportunities godoc
// @Summary List opportunities
// @Description Lists sales funnel opportunities, newest first
// @Tags sales-funnel
// @Produce json
// @Param stage query string false "Stage" Enums(Cold, Warm, Hot, Won, Closed, Lost)
// @Param team query string false "Team"
// @Param status query string false "Status"
// @Param search query string false "Substring of client name or work info"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse[domain.Opportunity]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel [get]
func (h *salesFunnelHandler) listOpportunities(c *gin.Context) {
	h.list(c, &dto.OpportunityListParams{})
}

// getOpportunity godoc
// @Summary Get an opportunity
// @Tags sales-funnel
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} domain.Opportunity
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel/{id} [get]
func (h *salesFunnelHandler) getOpportunity(c *gin.Context) {
	h.get(c)
}

// createOpportunity godoc
// @Summary Create an opportunity
// @Description The price without VAT and the progress to won are computed by the server
// @Tags sales-funnel
// @Accept json
// @Produce json
// @Param opportunity body dto.CreateOpportunityRequest true "Opportunity"
// @Success 201 {object} domain.Opportunity
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel [post]
func (h *salesFunnelHandler) createOpportunity(c *gin.Context) {
	var req dto.CreateOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToDomain())
}

// updateOpportunity godoc
// @Summary Update an opportunity
// @Description Changes the fields present in the body. Use the stage endpoint to move stages.
// @Tags sales-funnel
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param opportunity body dto.UpdateOpportunityRequest true "Fields to change"
// @Success 200 {object} domain.Opportunity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel/{id} [put]
func (h *salesFunnelHandler) updateOpportunity(c *gin.Context) {
	var req dto.UpdateOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.Patch())
}

// deleteOpportunity godoc
// @Summary Delete an opportunity
// @Tags sales-funnel
// @Param id path string true "Opportunity ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel/{id} [delete]
func (h *salesFunnelHandler) deleteOpportunity(c *gin.Context) {
	h.delete(c)
}

// moveStage godoc
// @Summary Move an opportunity to another stage
// @Description Sets the stage and its progress to won. Used by kanban drops.
// @Tags sales-funnel
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param stage body dto.MoveStageRequest true "Target stage"
// @Success 200 {object} domain.Opportunity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales-funnel/{id}/stage [patch]
func (h *salesFunnelHandler) moveStage(c *gin.Context) {
	var req dto.MoveStageRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	moved, err := h.opportunityService.MoveStage(c.Request.Context(), actorID, c.Param("id"), req.Stage)
	if err != nil {
		respondError(c, err, "move opportunity stage")
		return
	}
	c.JSON(http.StatusOK, moved)
}

// getKanban godoc
// @Summary Kanban board
// @Description Every opportunity grouped into the six stage columns, newest first
// @Tags sales-funnel
// @Produce json
// @Success 200 {object} map[string][]domain.Opportunity
// @Security BearerAuth
// @Router /sales-funnel/kanban [get]
func (h *salesFunnelHandler) getKanban(c *gin.Context) {
	cols, err := h.opportunityService.KanbanColumns(c.Request.Context())
	if err != nil {
		respondError(c, err, "load kanban board")
		return
	}
	c.JSON(http.StatusOK, cols)
}
