package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pushSubscriptionColumns = `id, user_id, endpoint, p256dh, auth, created_at`

type pushSubscriptionRepository struct {
	BaseRepository
}

func newPgxPushSubscriptionRepository(pool *pgxpool.Pool) portsrepo.PushSubscriptionRepositoryFacade {
	return &pushSubscriptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PushSubscriptionRepositoryFacade = (*pushSubscriptionRepository)(nil)

// Upsert replaces the user's existing endpoint, if any.
func (r *pushSubscriptionRepository) Upsert(ctx context.Context, sub domain.PushSubscription) (*domain.PushSubscription, error) {
	query := `
		INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET endpoint = EXCLUDED.endpoint, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
		RETURNING ` + pushSubscriptionColumns
	rows, err := r.Pool.Query(ctx, query, sub.ID, sub.UserID, sub.Endpoint, sub.P256dh, sub.Auth, sub.CreatedAt)
	if err != nil {
		return nil, translateError(err, "upsert push subscription")
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.PushSubscription])
	if err != nil {
		return nil, translateError(err, "upsert push subscription")
	}
	return saved, nil
}

func (r *pushSubscriptionRepository) FindByUser(ctx context.Context, userID string) (*domain.PushSubscription, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+pushSubscriptionColumns+` FROM push_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, translateError(err, "find push subscription")
	}
	sub, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.PushSubscription])
	if err != nil {
		return nil, translateError(err, "push subscription for user "+userID)
	}
	return sub, nil
}

func (r *pushSubscriptionRepository) DeleteByUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM push_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return translateError(err, "delete push subscription")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: push subscription for user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}
