package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
)

// ExchangeCodeRequest carries the Google authorization code obtained by the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse is the application token issued after Google sign-in.
type ExchangeCodeResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   *domain.Profile `json:"profile"`
}
