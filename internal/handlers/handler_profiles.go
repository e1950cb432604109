package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, svc portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: svc}

	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.list)
		profiles.GET("/me", h.me)
	}
}

// me godoc
// @Summary Signed-in profile
// @Tags profiles
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *profileHandler) me(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	p, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// list godoc
// @Summary List profiles
// @Description Every profile, used to pick an assignee
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.Profile
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) list(c *gin.Context) {
	items, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err, "list profiles")
		return
	}
	c.JSON(http.StatusOK, items)
}
