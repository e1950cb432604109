package services

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
)

// NotificationSvcFacade manages a user's own notifications.
type NotificationSvcFacade interface {
	// ListForUser returns the latest 50 notifications, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, id string) error
	// MarkAllAsRead returns how many notifications changed; repeating it changes none.
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, id string) error
}

// NotificationCheckerSvc scans for upcoming close dates and creates reminders.
type NotificationCheckerSvc interface {
	// CheckUpcoming runs one scan over every profile and returns the number of notifications created.
	CheckUpcoming(ctx context.Context) (int, error)
}

// PushSvcFacade owns push subscriptions and the periodic reminder scan.
type PushSvcFacade interface {
	// Init reports whether push delivery is configured.
	Init(ctx context.Context) bool
	Ready() bool
	VAPIDPublicKey() string

	Subscribe(ctx context.Context, userID string, sub domain.PushSubscription) (*domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, userID string) error
	SubscriptionStatus(ctx context.Context, userID string) (bool, error)
	SendTestNotification(ctx context.Context, userID string) (*domain.Notification, error)

	// SchedulePeriodicSync starts the background reminder scan; calling it twice is a no-op.
	SchedulePeriodicSync(ctx context.Context)
	// Teardown stops the background scan and waits for it to exit.
	Teardown()
}

// RevalidationPublisher announces that cached views of the given paths are stale.
type RevalidationPublisher interface {
	Publish(paths ...string)
}

// RevalidationHub fans revalidation events out to subscribers.
type RevalidationHub interface {
	RevalidationPublisher
	// Subscribe returns a channel of stale paths and a function that cancels the subscription.
	Subscribe() (<-chan string, func())
}
