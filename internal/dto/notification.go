package dto

import "github.com/SscSPs/sales_crm_backend/internal/core/domain"

// CreateNotificationRequest creates a notification for the signed-in user.
type CreateNotificationRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Message     string                  `json:"message" binding:"required"`
	Type        domain.NotificationType `json:"type" binding:"omitempty,notification_type"`
	Link        *string                 `json:"link"`
	RelatedID   *string                 `json:"relatedId"`
	RelatedType *string                 `json:"relatedType"`
}

func (r CreateNotificationRequest) ToDomain(userID string) domain.Notification {
	return domain.Notification{
		UserID:      userID,
		Title:       r.Title,
		Message:     r.Message,
		Type:        r.Type,
		Link:        r.Link,
		RelatedID:   r.RelatedID,
		RelatedType: r.RelatedType,
	}
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// CheckNotificationsResponse is returned by POST /api/notifications/check.
type CheckNotificationsResponse struct {
	Success              bool   `json:"success"`
	NotificationsCreated int    `json:"notificationsCreated"`
	Message              string `json:"message"`
}

// PushKeys are the encryption keys of a browser PushSubscription.
type PushKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// SubscribeRequest mirrors the JSON form of a browser PushSubscription.
type SubscribeRequest struct {
	Endpoint string   `json:"endpoint" binding:"required,url"`
	Keys     PushKeys `json:"keys"`
}

func (r SubscribeRequest) ToDomain() domain.PushSubscription {
	return domain.PushSubscription{Endpoint: r.Endpoint, P256dh: r.Keys.P256dh, Auth: r.Keys.Auth}
}

type SubscriptionStatusResponse struct {
	Subscribed bool `json:"subscribed"`
	Ready      bool `json:"ready"`
}

type VAPIDKeyResponse struct {
	PublicKey string `json:"publicKey"`
}
