package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, svc portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: svc}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.list)
		notifications.POST("", h.create)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PATCH("/read-all", h.markAllRead)
		notifications.PATCH("/:id/read", h.markRead)
		notifications.DELETE("/:id", h.delete)
	}
}

// list godoc
// @Summary List notifications
// @Description The 50 most recent notifications of the signed-in user, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) list(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	items, err := h.notificationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "list notifications")
		return
	}
	c.JSON(http.StatusOK, items)
}

// unreadCount godoc
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "count unread notifications")
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: n})
}

// create godoc
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} domain.Notification
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.notificationService.Create(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		respondError(c, err, "create notification")
		return
	}
	c.JSON(http.StatusCreated, n)
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	if err := h.notificationService.MarkAsRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "mark notification as read")
		return
	}
	c.Status(http.StatusNoContent)
}

// markAllRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.MarkAllReadResponse
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	updated, err := h.notificationService.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "mark notifications as read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

// delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *notificationHandler) delete(c *gin.Context) {
	userID, ok := actorFrom(c)
	if !ok {
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}

// registerNotificationCheckRoute exposes the checker outside the auth group so
// an external scheduler can trigger it.
func registerNotificationCheckRoute(r *gin.Engine, checker portssvc.NotificationCheckerSvc, rateLimit gin.HandlerFunc) {
	r.POST("/api/notifications/check", rateLimit, func(c *gin.Context) {
		checkNotifications(c, checker)
	})
}

// checkNotifications godoc
// @Summary Run the deadline checker
// @Description Creates one notification per assignee for contracts ending and deals closing within the next 7 days, at most once per record per day
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.CheckNotificationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/check [post]
func checkNotifications(c *gin.Context, checker portssvc.NotificationCheckerSvc) {
	created, err := checker.CheckUpcoming(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error().Err(err).Msg("Notification check failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.CheckNotificationsResponse{
		Success:              true,
		NotificationsCreated: created,
		Message:              fmt.Sprintf("Created %d notifications", created),
	})
}
