package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

const (
	contractReminderTitle = "Гэрээ дуусах дөхөж байна"
	salesReminderTitle    = "Борлуулалт хаах хугацаа дөхөж байна"
)

// notificationChecker creates reminders for contracts and hot or warm deals
// whose close date falls within the next week.
type notificationChecker struct {
	BaseService
	profileRepo      portsrepo.ProfileReader
	contractRepo     portsrepo.RecordReader[domain.ServiceContract]
	opportunityRepo  portsrepo.RecordReader[domain.Opportunity]
	notificationRepo portsrepo.NotificationRepositoryFacade
}

type NotificationCheckerOption func(*notificationChecker)

// WithCheckerClock replaces the clock used to compute the reminder window.
func WithCheckerClock(now func() time.Time) NotificationCheckerOption {
	return func(c *notificationChecker) { c.Now = now }
}

func WithCheckerTracker(t EventTracker) NotificationCheckerOption {
	return func(c *notificationChecker) { c.Tracker = t }
}

func NewNotificationChecker(
	profileRepo portsrepo.ProfileReader,
	contractRepo portsrepo.RecordReader[domain.ServiceContract],
	opportunityRepo portsrepo.RecordReader[domain.Opportunity],
	notificationRepo portsrepo.NotificationRepositoryFacade,
	opts ...NotificationCheckerOption,
) portssvc.NotificationCheckerSvc {
	c := &notificationChecker{
		profileRepo:      profileRepo,
		contractRepo:     contractRepo,
		opportunityRepo:  opportunityRepo,
		notificationRepo: notificationRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.NotificationCheckerSvc = (*notificationChecker)(nil)

// CheckUpcoming fails only when the profile list cannot be read. Errors for a
// single user or record are logged and the scan moves on.
func (c *notificationChecker) CheckUpcoming(ctx context.Context) (int, error) {
	profiles, err := c.profileRepo.List(ctx)
	if err != nil {
		c.LogError(ctx, err, "Failed to fetch users for notification check", nil)
		return 0, fmt.Errorf("fetch users: %w", err)
	}

	now := c.now()
	today := domain.NewDate(now)
	window := domain.DateRange{From: &today, To: ptrDate(today.AddDays(domain.UpcomingWindowDays))}
	since := now.Add(-domain.NotificationDedupWindow)

	created := 0
	for _, p := range profiles {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		created += c.checkUser(ctx, p.ID, now, since, window)
	}

	c.LogInfo(ctx, "Notification check finished", map[string]any{
		"users": len(profiles), "notifications_created": created,
	})
	if created > 0 {
		c.track("system", "notifications_created", map[string]any{"count": created})
	}
	return created, nil
}

func (c *notificationChecker) checkUser(ctx context.Context, userID string, now, since time.Time, window domain.DateRange) int {
	created := 0

	contracts, err := c.contractRepo.ListAll(ctx, domain.ListQuery{
		Ranges: map[string]domain.DateRange{"closeDate": window},
	})
	if err != nil {
		c.LogError(ctx, err, "Failed to fetch contracts for notification check", map[string]any{"user_id": userID})
		return created
	}
	for _, contract := range contracts {
		if contract.CloseDate == nil {
			continue
		}
		days := daysUntil(*contract.CloseDate, now)
		n := domain.Notification{
			UserID:      userID,
			Title:       contractReminderTitle,
			Message:     fmt.Sprintf("%s - %d хоногийн дараа дуусна", contract.ClientName, days),
			Type:        domain.NotificationReminder,
			RelatedType: ptrString(domain.RelatedServiceContract),
			RelatedID:   ptrString(contract.ID),
			Link:        ptrString("/service-contracts/" + contract.ID),
		}
		if c.remind(ctx, n, now, since) {
			created++
		}
	}

	deals, err := c.opportunityRepo.ListAll(ctx, domain.ListQuery{
		AnyOf:  map[string][]string{"stage": {string(domain.StageHot), string(domain.StageWarm)}},
		Ranges: map[string]domain.DateRange{"closeDate": window},
	})
	if err != nil {
		c.LogError(ctx, err, "Failed to fetch sales items for notification check", map[string]any{"user_id": userID})
		return created
	}
	for _, deal := range deals {
		n := domain.Notification{
			UserID:      userID,
			Title:       salesReminderTitle,
			Message:     fmt.Sprintf("%s - хаах хугацаа ойрхон байна", deal.ClientName),
			Type:        domain.NotificationReminder,
			RelatedType: ptrString(domain.RelatedSalesFunnel),
			RelatedID:   ptrString(deal.ID),
			Link:        ptrString("/sales-funnel/" + deal.ID),
		}
		if c.remind(ctx, n, now, since) {
			created++
		}
	}
	return created
}

// remind inserts n unless the user already got a notification about the same record since the cutoff.
func (c *notificationChecker) remind(ctx context.Context, n domain.Notification, now, since time.Time) bool {
	exists, err := c.notificationRepo.ExistsSince(ctx, n.UserID, *n.RelatedType, *n.RelatedID, since)
	if err != nil {
		c.LogError(ctx, err, "Failed to check existing notification", map[string]any{
			"user_id": n.UserID, "related_id": *n.RelatedID,
		})
		return false
	}
	if exists {
		return false
	}

	n.ID = uuid.NewString()
	n.CreatedAt = now
	if _, err := c.notificationRepo.Insert(ctx, n); err != nil {
		c.LogError(ctx, err, "Failed to create reminder notification", map[string]any{
			"user_id": n.UserID, "related_id": *n.RelatedID,
		})
		return false
	}
	return true
}

// daysUntil rounds the time left until the start of closeDate up to whole days.
func daysUntil(closeDate domain.Date, now time.Time) int {
	days := int(math.Ceil(closeDate.Time.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func ptrString(s string) *string { return &s }

func ptrDate(d domain.Date) *domain.Date { return &d }
