package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
)

// NotificationReader defines read operations for user notifications.
type NotificationReader interface {
	// ListByUser returns the user's most recent notifications, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	FindByID(ctx context.Context, id string) (*domain.Notification, error)

	CountUnread(ctx context.Context, userID string) (int, error)

	// ExistsSince reports whether the user already has a notification about the
	// related record created at or after since.
	ExistsSince(ctx context.Context, userID, relatedType, relatedID string, since time.Time) (bool, error)
}

// NotificationWriter defines write operations for user notifications.
type NotificationWriter interface {
	Insert(ctx context.Context, n domain.Notification) (*domain.Notification, error)

	// MarkRead marks one of the user's notifications as read.
	MarkRead(ctx context.Context, id, userID string, now time.Time) error

	// MarkAllRead marks every unread notification of the user; returns the rows changed.
	MarkAllRead(ctx context.Context, userID string, now time.Time) (int64, error)

	Delete(ctx context.Context, id, userID string) error
}

type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}

// PushSubscriptionRepositoryFacade stores at most one push endpoint per user.
type PushSubscriptionRepositoryFacade interface {
	Upsert(ctx context.Context, sub domain.PushSubscription) (*domain.PushSubscription, error)
	FindByUser(ctx context.Context, userID string) (*domain.PushSubscription, error)
	DeleteByUser(ctx context.Context, userID string) error
}
