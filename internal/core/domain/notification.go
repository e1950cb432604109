package domain

import "time"

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationAlert    NotificationType = "alert"
	NotificationInfo     NotificationType = "info"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationReminder, NotificationAlert, NotificationInfo:
		return true
	}
	return false
}

// Related record kinds a notification can point at.
const (
	RelatedServiceContract = "service_contract"
	RelatedSalesFunnel     = "sales_funnel"
)

// Notification is a user-scoped message (table notifications).
type Notification struct {
	ID           string           `db:"id" json:"id"`
	UserID       string           `db:"user_id" json:"userId" validate:"required"`
	Title        string           `db:"title" json:"title" validate:"required"`
	Message      string           `db:"message" json:"message" validate:"required"`
	Type         NotificationType `db:"type" json:"type" validate:"notification_type"`
	Link         *string          `db:"link" json:"link"`
	RelatedID    *string          `db:"related_id" json:"relatedId"`
	RelatedType  *string          `db:"related_type" json:"relatedType"`
	IsRead       bool             `db:"is_read" json:"isRead"`
	IsPushSent   bool             `db:"is_push_sent" json:"isPushSent"`
	ScheduledFor *time.Time       `db:"scheduled_for" json:"scheduledFor"`
	CreatedAt    time.Time        `db:"created_at" json:"createdAt"`
	ReadAt       *time.Time       `db:"read_at" json:"readAt"`
}

// NotificationDedupWindow is how long a reminder for the same record suppresses another.
const NotificationDedupWindow = 24 * time.Hour

// UpcomingWindowDays is how far ahead close dates are scanned for reminders.
const UpcomingWindowDays = 7

// PushSubscription is a browser push endpoint registered by a user (table push_subscriptions).
type PushSubscription struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Endpoint  string    `db:"endpoint" json:"endpoint"`
	P256dh    string    `db:"p256dh" json:"p256dh"`
	Auth      string    `db:"auth" json:"auth"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
