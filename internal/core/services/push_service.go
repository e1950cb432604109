package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	testNotificationTitle   = "Тест мэдэгдэл"
	testNotificationMessage = "Энэ бол тест мэдэгдэл юм"
)

// pushService owns browser push subscriptions and the periodic reminder scan.
// It is built once in main and injected where needed.
type pushService struct {
	BaseService
	vapidPublicKey string
	interval       time.Duration

	subscriptionRepo portsrepo.PushSubscriptionRepositoryFacade
	notifications    portssvc.NotificationSvcFacade
	checker          portssvc.NotificationCheckerSvc

	mu     sync.Mutex
	ready  bool
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPushService(
	vapidPublicKey string,
	interval time.Duration,
	subscriptionRepo portsrepo.PushSubscriptionRepositoryFacade,
	notifications portssvc.NotificationSvcFacade,
	checker portssvc.NotificationCheckerSvc,
) portssvc.PushSvcFacade {
	if interval <= 0 {
		interval = time.Hour
	}
	return &pushService{
		vapidPublicKey:   vapidPublicKey,
		interval:         interval,
		subscriptionRepo: subscriptionRepo,
		notifications:    notifications,
		checker:          checker,
	}
}

var _ portssvc.PushSvcFacade = (*pushService)(nil)

func (s *pushService) Init(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = s.vapidPublicKey != ""
	if !s.ready {
		s.GetLogger(ctx).Warn().Msg("VAPID public key not configured, push delivery disabled")
	}
	return s.ready
}

func (s *pushService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *pushService) VAPIDPublicKey() string { return s.vapidPublicKey }

func (s *pushService) Subscribe(ctx context.Context, userID string, sub domain.PushSubscription) (*domain.PushSubscription, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if !s.Ready() {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "push notifications are not configured", nil)
	}
	if strings.TrimSpace(sub.Endpoint) == "" || sub.P256dh == "" || sub.Auth == "" {
		return nil, fmt.Errorf("%w: endpoint, p256dh and auth are required", apperrors.ErrValidation)
	}
	sub.ID = uuid.NewString()
	sub.UserID = userID
	sub.CreatedAt = s.now()

	saved, err := s.subscriptionRepo.Upsert(ctx, sub)
	if err != nil {
		s.LogError(ctx, err, "Failed to save push subscription", map[string]any{"user_id": userID})
		return nil, err
	}
	return saved, nil
}

func (s *pushService) Unsubscribe(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.ErrUnauthenticated
	}
	return s.subscriptionRepo.DeleteByUser(ctx, userID)
}

func (s *pushService) SubscriptionStatus(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, apperrors.ErrUnauthenticated
	}
	_, err := s.subscriptionRepo.FindByUser(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// SendTestNotification stores an info notification for the user.
func (s *pushService) SendTestNotification(ctx context.Context, userID string) (*domain.Notification, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.notifications.Create(ctx, domain.Notification{
		UserID:  userID,
		Title:   testNotificationTitle,
		Message: testNotificationMessage,
		Type:    domain.NotificationInfo,
	})
}

func (s *pushService) SchedulePeriodicSync(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(runCtx, s.done)
}

func (s *pushService) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger := log.With().Str("component", "notification_scheduler").Logger()
	logger.Info().Dur("interval", s.interval).Msg("Periodic notification check started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Periodic notification check stopped")
			return
		case <-ticker.C:
			created, err := s.checker.CheckUpcoming(logger.WithContext(ctx))
			if err != nil {
				logger.Error().Err(err).Msg("Periodic notification check failed")
				continue
			}
			logger.Debug().Int("notifications_created", created).Msg("Periodic notification check ran")
		}
	}
}

func (s *pushService) Teardown() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
