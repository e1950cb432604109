package pgsql

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const settingsColumns = `id, setting_type, stage_name, probability, team_name, target_2026`

type settingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &settingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepository)(nil)

func (r *settingsRepository) ListByType(ctx context.Context, settingType domain.SettingType) ([]domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+settingsColumns+`
		FROM settings
		WHERE setting_type = $1
		ORDER BY created_at, id`, settingType)
	if err != nil {
		return nil, translateError(err, "list settings")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Setting])
	if err != nil {
		return nil, translateError(err, "scan settings")
	}
	return items, nil
}

// UpsertTeamTarget relies on the partial unique index over (setting_type, team_name).
func (r *settingsRepository) UpsertTeamTarget(ctx context.Context, settingType domain.SettingType, team string, target decimal.Decimal) (*domain.Setting, error) {
	query := `
		INSERT INTO settings (id, setting_type, team_name, target_2026)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_type, team_name) WHERE team_name IS NOT NULL
		DO UPDATE SET target_2026 = EXCLUDED.target_2026, updated_at = now()
		RETURNING ` + settingsColumns
	return r.upsert(ctx, query, uuid.NewString(), settingType, team, target)
}

// UpsertStageProbability relies on the partial unique index over (setting_type, stage_name).
func (r *settingsRepository) UpsertStageProbability(ctx context.Context, settingType domain.SettingType, stage string, probability decimal.Decimal) (*domain.Setting, error) {
	query := `
		INSERT INTO settings (id, setting_type, stage_name, probability)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_type, stage_name) WHERE stage_name IS NOT NULL
		DO UPDATE SET probability = EXCLUDED.probability, updated_at = now()
		RETURNING ` + settingsColumns
	return r.upsert(ctx, query, uuid.NewString(), settingType, stage, probability)
}

func (r *settingsRepository) upsert(ctx context.Context, query string, args ...any) (*domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "upsert setting")
	}
	s, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Setting])
	if err != nil {
		return nil, translateError(err, "upsert setting")
	}
	return s, nil
}
