package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TeamTargetRequest sets the yearly target of one team.
type TeamTargetRequest struct {
	SettingType domain.SettingType `json:"settingType" binding:"required" example:"sales_funnel"`
	Team        string             `json:"team" binding:"required"`
	Target      decimal.Decimal    `json:"target" swaggertype:"number"`
}

// StageProbabilityRequest sets the win probability of a stage, as a fraction between 0 and 1.
type StageProbabilityRequest struct {
	SettingType domain.SettingType `json:"settingType" binding:"required" example:"sales_funnel"`
	Stage       string             `json:"stage" binding:"required,stage"`
	Probability decimal.Decimal    `json:"probability" swaggertype:"number" example:"0.7"`
}
