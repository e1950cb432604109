package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OpportunityRepo      OpportunityRepositoryFacade
	ServiceContractRepo  ServiceContractRepositoryFacade
	ExpenseRepo          ExpenseRepositoryFacade
	SalaryRepo           SalaryRepositoryFacade
	StockRepo            StockRepositoryFacade
	NotificationRepo     NotificationRepositoryFacade
	PushSubscriptionRepo PushSubscriptionRepositoryFacade
	SettingsRepo         SettingsRepositoryFacade
	ProfileRepo          ProfileRepositoryFacade
}
