package services_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countingChecker counts scans and signals each one on ran.
type countingChecker struct {
	calls atomic.Int32
	ran   chan struct{}
}

func (c *countingChecker) CheckUpcoming(ctx context.Context) (int, error) {
	c.calls.Add(1)
	select {
	case c.ran <- struct{}{}:
	default:
	}
	return 0, nil
}

var validSubscription = domain.PushSubscription{Endpoint: "https://push.example/abc", P256dh: "key", Auth: "secret"}

func TestPushService_SubscribeRequiresVAPIDKey(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPushService("", time.Hour, new(MockPushSubscriptionRepository), nil, nil)

	assert.False(t, svc.Init(ctx))
	assert.False(t, svc.Ready())

	_, err := svc.Subscribe(ctx, "u1", validSubscription)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
}

func TestPushService_Subscribe(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPushSubscriptionRepository)
	repo.On("Upsert", ctx, mock.MatchedBy(func(s domain.PushSubscription) bool {
		return s.UserID == "u1" && s.ID != "" && s.Endpoint == validSubscription.Endpoint
	})).Return(echo[domain.PushSubscription], nil).Once()
	svc := services.NewPushService("BPublicKey", time.Hour, repo, nil, nil)
	require.True(t, svc.Init(ctx))
	assert.Equal(t, "BPublicKey", svc.VAPIDPublicKey())

	saved, err := svc.Subscribe(ctx, "u1", validSubscription)
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.UserID)

	_, err = svc.Subscribe(ctx, "u1", domain.PushSubscription{Endpoint: "https://push.example/abc"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Subscribe(ctx, "", validSubscription)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestPushService_SubscriptionStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPushSubscriptionRepository)
	repo.On("FindByUser", ctx, "u1").Return(&domain.PushSubscription{UserID: "u1"}, nil).Once()
	repo.On("FindByUser", ctx, "u2").Return(nil, apperrors.ErrNotFound).Once()
	repo.On("FindByUser", ctx, "u3").Return(nil, errors.New("boom")).Once()
	svc := services.NewPushService("key", time.Hour, repo, nil, nil)

	ok, err := svc.SubscriptionStatus(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.SubscriptionStatus(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.SubscriptionStatus(ctx, "u3")
	assert.Error(t, err)
}

func TestPushService_SendTestNotification(t *testing.T) {
	ctx := context.Background()
	notifRepo := new(MockNotificationRepository)
	notifRepo.On("Insert", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "u1" && n.Title == "Тест мэдэгдэл" && n.Message == "Энэ бол тест мэдэгдэл юм" && n.Type == domain.NotificationInfo
	})).Return(echo[domain.Notification], nil).Once()
	svc := services.NewPushService("key", time.Hour, nil, services.NewNotificationService(notifRepo), nil)

	n, err := svc.SendTestNotification(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Тест мэдэгдэл", n.Title)
	notifRepo.AssertExpectations(t)
}

func TestPushService_PeriodicSyncRunsUntilTeardown(t *testing.T) {
	checker := &countingChecker{ran: make(chan struct{}, 1)}
	svc := services.NewPushService("key", 5*time.Millisecond, nil, nil, checker)

	svc.SchedulePeriodicSync(context.Background())
	svc.SchedulePeriodicSync(context.Background())

	select {
	case <-checker.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic check never ran")
	}

	svc.Teardown()
	after := checker.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, checker.calls.Load())

	svc.Teardown()
}
