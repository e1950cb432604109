package pgsql

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, email, full_name, role, team, created_at`

type profileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &profileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*profileRepository)(nil)

func (r *profileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, "find profile")
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Profile])
	if err != nil {
		return nil, translateError(err, "profile "+id)
	}
	return p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at, id`)
	if err != nil {
		return nil, translateError(err, "list profiles")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Profile])
	if err != nil {
		return nil, translateError(err, "scan profiles")
	}
	return items, nil
}

// UpsertByEmail keeps the stored id, role and team of an existing profile.
func (r *profileRepository) UpsertByEmail(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, `
		INSERT INTO profiles (id, email, full_name, role, team, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET full_name = COALESCE(EXCLUDED.full_name, profiles.full_name)
		RETURNING `+profileColumns,
		p.ID, p.Email, p.FullName, p.Role, p.Team, p.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "upsert profile")
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Profile])
	if err != nil {
		return nil, translateError(err, "upsert profile")
	}
	return saved, nil
}
