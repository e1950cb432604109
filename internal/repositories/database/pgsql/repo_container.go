package pgsql

import (
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OpportunityRepo:      newPgxOpportunityRepository(dbPool),
		ServiceContractRepo:  newPgxServiceContractRepository(dbPool),
		ExpenseRepo:          newPgxExpenseRepository(dbPool),
		SalaryRepo:           newPgxSalaryRepository(dbPool),
		StockRepo:            newPgxStockRepository(dbPool),
		NotificationRepo:     newPgxNotificationRepository(dbPool),
		PushSubscriptionRepo: newPgxPushSubscriptionRepository(dbPool),
		SettingsRepo:         newPgxSettingsRepository(dbPool),
		ProfileRepo:          newPgxProfileRepository(dbPool),
	}
}
