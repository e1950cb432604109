package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// googleOAuthHandler signs users in with a Google authorization code obtained by the frontend.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	profileService     portssvc.ProfileSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// registerGoogleOAuthRoutes registers the public sign-in routes, limited to 5 requests per minute per IP.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuthHandler,
		profileService:     services.Profile,
		tokenService:       services.TokenService,
	}

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth", limitergin.NewMiddleware(ipLimiter))
	{
		auth.POST("/google/exchange-code", h.exchangeCode)
	}
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code for an access token
// @Description Validates the Google ID token, creates the profile on first sign-in and returns an application JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to exchange authorization code with Google")
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		if msg := strings.ToLower(err.Error()); strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error().Msg("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn().Err(err).Msg("Google ID token validation failed")
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	info := domain.GoogleUserInfo{ID: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.Name, _ = payload.Claims["name"].(string)
	info.Picture, _ = payload.Claims["picture"].(string)
	info.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)

	profile, err := h.profileService.SignIn(ctx, info)
	if err != nil {
		respondError(c, err, "sign in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, profile)
	if err != nil {
		logger.Error().Err(err).Str("profile_id", profile.ID).Msg("Failed to generate application access token")
		appErr := apperrors.NewInternalServerError("Failed to generate access token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Info().Str("profile_id", profile.ID).Msg("Profile signed in with Google")
	c.JSON(http.StatusOK, gin.H{
		"data": dto.ExchangeCodeResponse{Token: token, ExpiresAt: expiresAt, Profile: profile},
	})
}
