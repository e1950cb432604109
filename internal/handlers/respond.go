package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error to its status. Internal failures are
// reported with a generic message naming the action.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		logger.Warn().Err(err).Int("status", status).Msgf("Failed to %s", action)
		c.JSON(status, ErrorResponse{Error: appErr.Message})
	case status >= http.StatusInternalServerError:
		logger.Error().Err(err).Msgf("Failed to %s", action)
		c.JSON(status, ErrorResponse{Error: "Failed to " + action})
	default:
		logger.Warn().Err(err).Int("status", status).Msgf("Failed to %s", action)
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}

// actorFrom returns the authenticated profile id, writing a 401 when there is none.
func actorFrom(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error().Msg("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn().Err(err).Msg("Failed to bind JSON body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn().Err(err).Msg("Failed to bind query parameters")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
