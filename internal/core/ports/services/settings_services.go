package services

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsReaderSvc exposes the configured targets and probabilities.
type SettingsReaderSvc interface {
	GetSalesTargets(ctx context.Context) ([]domain.TeamTargetSetting, error)
	GetServiceContractTargets(ctx context.Context) ([]domain.TeamTargetSetting, error)
	GetStageProbabilities(ctx context.Context) ([]domain.StageProbability, error)
	GetAll(ctx context.Context) (*domain.AllSettings, error)
}

// SettingsWriterSvc changes settings; only admins may call it.
type SettingsWriterSvc interface {
	SetTeamTarget(ctx context.Context, actorID string, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error)
	SetStageProbability(ctx context.Context, actorID string, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error)
}

type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}

// RecordAuthorizerSvc applies the row-level policy to mutations.
type RecordAuthorizerSvc interface {
	// AuthorizeRecordAction fails with apperrors.ErrForbidden when actorID may not modify a record owned by ownerID.
	AuthorizeRecordAction(ctx context.Context, actorID string, ownerID *string) error
	// AuthorizeAdmin fails with apperrors.ErrForbidden unless actorID is an admin.
	AuthorizeAdmin(ctx context.Context, actorID string) error
}

// ProfileSvcFacade manages application users.
type ProfileSvcFacade interface {
	RecordAuthorizerSvc

	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	// SignIn creates or refreshes the profile of a verified Google identity.
	SignIn(ctx context.Context, info domain.GoogleUserInfo) (*domain.Profile, error)
}
