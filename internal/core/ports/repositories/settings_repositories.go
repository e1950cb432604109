package repositories

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsRepositoryFacade reads and writes the sparse settings table.
type SettingsRepositoryFacade interface {
	// ListByType returns every settings row of the given type in insertion order.
	ListByType(ctx context.Context, settingType domain.SettingType) ([]domain.Setting, error)

	UpsertTeamTarget(ctx context.Context, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error)

	UpsertStageProbability(ctx context.Context, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error)
}

// ProfileReader defines read operations for user profiles.
type ProfileReader interface {
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	// UpsertByEmail creates the profile on first sign-in and refreshes the name afterwards.
	UpsertByEmail(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
