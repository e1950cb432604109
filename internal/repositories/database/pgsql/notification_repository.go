package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `id, user_id, title, message, type, link, related_id, related_type,
	is_read, is_push_sent, scheduled_for, created_at, read_at`

// notificationExistsSinceQuery matches reminders about the same record created at or after since.
const notificationExistsSinceQuery = `
	SELECT EXISTS (
		SELECT 1 FROM notifications
		WHERE user_id = $1 AND related_type = $2 AND related_id = $3 AND created_at >= $4
	)`

type notificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &notificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*notificationRepository)(nil)

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, translateError(err, "list notifications")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.Notification])
	if err != nil {
		return nil, translateError(err, "scan notifications")
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return items, nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, "find notification")
	}
	n, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Notification])
	if err != nil {
		return nil, translateError(err, "notification "+id)
	}
	return n, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID,
	).Scan(&count)
	if err != nil {
		return 0, translateError(err, "count unread notifications")
	}
	return count, nil
}

func (r *notificationRepository) ExistsSince(ctx context.Context, userID, relatedType, relatedID string, since time.Time) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, notificationExistsSinceQuery, userID, relatedType, relatedID, since).Scan(&exists)
	if err != nil {
		return false, translateError(err, "check existing notification")
	}
	return exists, nil
}

func (r *notificationRepository) Insert(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, link, related_id, related_type,
			is_read, is_push_sent, scheduled_for, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + notificationColumns
	rows, err := r.Pool.Query(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Link, n.RelatedID, n.RelatedType,
		n.IsRead, n.IsPushSent, n.ScheduledFor, n.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "insert notification")
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Notification])
	if err != nil {
		return nil, translateError(err, "insert notification")
	}
	return saved, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND user_id = $2`, id, userID, now)
	if err != nil {
		return translateError(err, "mark notification read")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, id)
	}
	return nil
}

// MarkAllRead only touches unread rows, so repeating it reports zero changes.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string, now time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = $2
		WHERE user_id = $1 AND is_read = FALSE`, userID, now)
	if err != nil {
		return 0, translateError(err, "mark all notifications read")
	}
	return tag.RowsAffected(), nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return translateError(err, "delete notification")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, id)
	}
	return nil
}
