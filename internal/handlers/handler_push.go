package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type pushHandler struct {
	pushService portssvc.PushSvcFacade
}

func registerPushRoutes(rg *gin.RouterGroup, svc portssvc.PushSvcFacade) {
	h := &pushHandler{pushService: svc}

	push := rg.Group("/push")
	{
		push.GET("/vapid-public-key", h.vapidPublicKey)
		push.GET("/status", h.status)
		push.POST("/subscribe", h.subscribe)
		push.DELETE("/subscribe", h.unsubscribe)
		push.POST("/test", h.sendTest)
	}
}

// vapidPublicKey godoc
// @Summary VAPID public key
// @Description The application server key browsers need to subscribe. Empty when push is not configured.
// @Tags push
// @Produce json
// @Success 200 {object} dto.VAPIDKeyResponse
// @Security BearerAuth
// @Router /push/vapid-public-key [get]
func (h *pushHandler) vapidPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VAPIDKeyResponse{PublicKey: h.pushService.VAPIDPublicKey()})
}

// status godoc
// @Summary Push subscription status
// @Tags push
// @Produce json
// @Success 200 {object} dto.SubscriptionStatusResponse
// @Security BearerAuth
// @Router /push/status [get]
func (h *pushHandler) status(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	subscribed, err := h.pushService.SubscriptionStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load push subscription status")
		return
	}
	c.JSON(http.StatusOK, dto.SubscriptionStatusResponse{Subscribed: subscribed, Ready: h.pushService.Ready()})
}

// subscribe godoc
// @Summary Subscribe to push
// @Description Stores the browser subscription, replacing any previous one of the user
// @Tags push
// @Accept json
// @Produce json
// @Param subscription body dto.SubscribeRequest true "Browser PushSubscription"
// @Success 200 {object} domain.PushSubscription
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /push/subscribe [post]
func (h *pushHandler) subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	sub, err := h.pushService.Subscribe(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, err, "subscribe to push")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// unsubscribe godoc
// @Summary Unsubscribe from push
// @Tags push
// @Success 204
// @Security BearerAuth
// @Router /push/subscribe [delete]
func (h *pushHandler) unsubscribe(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	if err := h.pushService.Unsubscribe(c.Request.Context(), userID); err != nil {
		respondError(c, err, "unsubscribe from push")
		return
	}
	c.Status(http.StatusNoContent)
}

// sendTest godoc
// @Summary Send a test notification
// @Tags push
// @Produce json
// @Success 201 {object} domain.Notification
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /push/test [post]
func (h *pushHandler) sendTest(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.pushService.SendTestNotification(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "send test notification")
		return
	}
	c.JSON(http.StatusCreated, n)
}
