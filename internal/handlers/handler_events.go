package handlers

import (
	"io"
	"time"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const eventsKeepAlive = 30 * time.Second

type eventsHandler struct {
	hub       portssvc.RevalidationHub
	keepAlive time.Duration
}

func registerEventRoutes(rg *gin.RouterGroup, hub portssvc.RevalidationHub) {
	h := &eventsHandler{hub: hub, keepAlive: eventsKeepAlive}
	rg.GET("/events", h.stream)
}

// stream godoc
// @Summary Revalidation events
// @Description Server-sent events. Each "revalidate" event carries a view path (for example /sales-funnel) whose data changed.
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Security BearerAuth
// @Router /events [get]
func (h *eventsHandler) stream(c *gin.Context) {
	paths, cancel := h.hub.Subscribe()
	defer cancel()

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Debug().Msg("Revalidation stream opened")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case path, ok := <-paths:
			if !ok {
				return false
			}
			c.SSEvent("revalidate", path)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
	logger.Debug().Msg("Revalidation stream closed")
}
