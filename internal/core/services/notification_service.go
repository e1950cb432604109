package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// notificationListLimit is how many notifications a user sees at once.
const notificationListLimit = 50

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	validate         *validator.Validate
}

// NotificationServiceOption is a functional option for configuring the notification service
type NotificationServiceOption func(*notificationService)

func WithNotificationTracker(t EventTracker) NotificationServiceOption {
	return func(s *notificationService) { s.Tracker = t }
}

func NewNotificationService(repo portsrepo.NotificationRepositoryFacade, opts ...NotificationServiceOption) portssvc.NotificationSvcFacade {
	s := &notificationService{notificationRepo: repo, validate: domain.NewValidator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	items, err := s.notificationRepo.ListByUser(ctx, userID, notificationListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", map[string]any{"user_id": userID})
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return items, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, apperrors.ErrUnauthenticated
	}
	return s.notificationRepo.CountUnread(ctx, userID)
}

// Create stores a new unread notification. Type defaults to info.
func (s *notificationService) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = s.now()
	n.IsRead = false
	n.ReadAt = nil
	if n.Type == "" {
		n.Type = domain.NotificationInfo
	}
	if err := domain.ValidateRecord(s.validate, n); err != nil {
		return nil, err
	}

	saved, err := s.notificationRepo.Insert(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to create notification", map[string]any{"user_id": n.UserID})
		return nil, err
	}
	s.track(n.UserID, "notification_created", map[string]any{"type": string(n.Type)})
	return saved, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, id string) error {
	if userID == "" {
		return apperrors.ErrUnauthenticated
	}
	return s.notificationRepo.MarkRead(ctx, id, userID, s.now())
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.ErrUnauthenticated
	}
	changed, err := s.notificationRepo.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark notifications read", map[string]any{"user_id": userID})
		return 0, err
	}
	return changed, nil
}

func (s *notificationService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return apperrors.ErrUnauthenticated
	}
	return s.notificationRepo.Delete(ctx, id, userID)
}
