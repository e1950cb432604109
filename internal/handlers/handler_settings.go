package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, svc portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: svc}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getAll)
		settings.GET("/sales-targets", h.getSalesTargets)
		settings.GET("/service-contract-targets", h.getServiceContractTargets)
		settings.GET("/stage-probabilities", h.getStageProbabilities)
		settings.PUT("/targets", h.putTeamTarget)
		settings.PUT("/stage-probabilities", h.putStageProbability)
	}
}

// getAll godoc
// @Summary All settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.AllSettings
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getAll(c *gin.Context) {
	all, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, all)
}

// getSalesTargets godoc
// @Summary Sales team targets
// @Tags settings
// @Produce json
// @Success 200 {array} domain.TeamTargetSetting
// @Security BearerAuth
// @Router /settings/sales-targets [get]
func (h *settingsHandler) getSalesTargets(c *gin.Context) {
	targets, err := h.settingsService.GetSalesTargets(c.Request.Context())
	if err != nil {
		respondError(c, err, "load sales targets")
		return
	}
	c.JSON(http.StatusOK, targets)
}

// getServiceContractTargets godoc
// @Summary Service contract team targets
// @Tags settings
// @Produce json
// @Success 200 {array} domain.TeamTargetSetting
// @Security BearerAuth
// @Router /settings/service-contract-targets [get]
func (h *settingsHandler) getServiceContractTargets(c *gin.Context) {
	targets, err := h.settingsService.GetServiceContractTargets(c.Request.Context())
	if err != nil {
		respondError(c, err, "load service contract targets")
		return
	}
	c.JSON(http.StatusOK, targets)
}

// getStageProbabilities godoc
// @Summary Stage win probabilities
// @Tags settings
// @Produce json
// @Success 200 {array} domain.StageProbability
// @Security BearerAuth
// @Router /settings/stage-probabilities [get]
func (h *settingsHandler) getStageProbabilities(c *gin.Context) {
	probabilities, err := h.settingsService.GetStageProbabilities(c.Request.Context())
	if err != nil {
		respondError(c, err, "load stage probabilities")
		return
	}
	c.JSON(http.StatusOK, probabilities)
}

// putTeamTarget godoc
// @Summary Set a team target
// @Description Admin only
// @Tags settings
// @Accept json
// @Produce json
// @Param target body dto.TeamTargetRequest true "Team target"
// @Success 200 {object} domain.Setting
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/targets [put]
func (h *settingsHandler) putTeamTarget(c *gin.Context) {
	var req dto.TeamTargetRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	saved, err := h.settingsService.SetTeamTarget(c.Request.Context(), actorID, req.SettingType, req.Team, req.Target)
	if err != nil {
		respondError(c, err, "save team target")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// putStageProbability godoc
// @Summary Set a stage probability
// @Description Admin only. The probability is a fraction between 0 and 1.
// @Tags settings
// @Accept json
// @Produce json
// @Param probability body dto.StageProbabilityRequest true "Stage probability"
// @Success 200 {object} domain.Setting
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/stage-probabilities [put]
func (h *settingsHandler) putStageProbability(c *gin.Context) {
	var req dto.StageProbabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	saved, err := h.settingsService.SetStageProbability(c.Request.Context(), actorID, req.SettingType, req.Stage, req.Probability)
	if err != nil {
		respondError(c, err, "save stage probability")
		return
	}
	c.JSON(http.StatusOK, saved)
}
