package services_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
)

// memoryNotificationRepository keeps notifications in a slice and applies the
// same predicates as the SQL implementation.
type memoryNotificationRepository struct {
	rows []domain.Notification
}

var _ portsrepo.NotificationRepositoryFacade = (*memoryNotificationRepository)(nil)

func (r *memoryNotificationRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.Notification, error) {
	out := []domain.Notification{}
	for _, n := range r.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryNotificationRepository) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			n := r.rows[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, id)
}

func (r *memoryNotificationRepository) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range r.rows {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memoryNotificationRepository) ExistsSince(_ context.Context, userID, relatedType, relatedID string, since time.Time) (bool, error) {
	for _, n := range r.rows {
		if n.UserID == userID &&
			n.RelatedType != nil && *n.RelatedType == relatedType &&
			n.RelatedID != nil && *n.RelatedID == relatedID &&
			!n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryNotificationRepository) Insert(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	r.rows = append(r.rows, n)
	return &n, nil
}

func (r *memoryNotificationRepository) MarkRead(_ context.Context, id, userID string, now time.Time) error {
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].UserID == userID {
			r.rows[i].IsRead = true
			if r.rows[i].ReadAt == nil {
				r.rows[i].ReadAt = &now
			}
			return nil
		}
	}
	return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, id)
}

func (r *memoryNotificationRepository) MarkAllRead(_ context.Context, userID string, now time.Time) (int64, error) {
	var changed int64
	for i := range r.rows {
		if r.rows[i].UserID == userID && !r.rows[i].IsRead {
			r.rows[i].IsRead = true
			r.rows[i].ReadAt = &now
			changed++
		}
	}
	return changed, nil
}

func (r *memoryNotificationRepository) Delete(_ context.Context, id, userID string) error {
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, id)
}
