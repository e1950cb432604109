package services

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// tracker may be nil when analytics are disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker EventTracker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Profiles first: the profile service is the row-level authorizer of every other service.
	container.Profile = NewProfileService(repos.ProfileRepo)
	authorizer := container.Profile.(portssvc.RecordAuthorizerSvc)

	container.Revalidation = NewRevalidationHub()

	recordOpts := []RecordOption{
		WithRecordAuthorizer(authorizer),
		WithRevalidation(container.Revalidation),
		WithValidator(domain.NewValidator()),
		WithEventTracker(tracker),
	}

	container.Opportunity = NewOpportunityService(repos.OpportunityRepo,
		domain.TransitionPolicyByName(cfg.StageTransitionPolicy), recordOpts...)
	container.ServiceContract = NewServiceContractService(repos.ServiceContractRepo, recordOpts...)
	container.Expense = NewExpenseService(repos.ExpenseRepo, recordOpts...)
	container.Salary = NewSalaryService(repos.SalaryRepo, recordOpts...)
	container.Stock = NewStockService(repos.StockRepo, recordOpts...)

	container.Reporting = NewReportingService(repos.OpportunityRepo, repos.ServiceContractRepo, repos.SettingsRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, WithSettingsAuthorizer(authorizer))

	container.Notification = NewNotificationService(repos.NotificationRepo, WithNotificationTracker(tracker))
	container.NotificationChecker = NewNotificationChecker(
		repos.ProfileRepo, repos.ServiceContractRepo, repos.OpportunityRepo, repos.NotificationRepo,
		WithCheckerTracker(tracker),
	)
	container.Push = NewPushService(cfg.VAPIDPublicKey, cfg.NotificationCheckInterval,
		repos.PushSubscriptionRepo, container.Notification, container.NotificationChecker)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
