package services

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
)

// RecordReaderSvc defines read operations shared by every record type.
type RecordReaderSvc[T any] interface {
	// List returns one page of matching records with the total match count.
	List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)

	// GetByID retrieves a record; apperrors.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*T, error)
}

// RecordWriterSvc defines write operations shared by every record type.
// actorID is the authenticated profile; an empty actor is rejected.
type RecordWriterSvc[T any] interface {
	// Create stamps identity and audit columns, computes derived fields and persists the record.
	Create(ctx context.Context, actorID string, rec T) (*T, error)

	// Update merges patch into the stored record and recomputes derived fields.
	Update(ctx context.Context, actorID, id string, patch domain.Patch[T]) (*T, error)

	// Delete hard-deletes the record.
	Delete(ctx context.Context, actorID, id string) error
}

// RecordSvcFacade combines the generic record reader and writer.
type RecordSvcFacade[T any] interface {
	RecordReaderSvc[T]
	RecordWriterSvc[T]
}

// OpportunitySvcFacade manages the sales funnel.
type OpportunitySvcFacade interface {
	RecordSvcFacade[domain.Opportunity]

	// MoveStage sets the stage and its progress signal, subject to the transition policy.
	MoveStage(ctx context.Context, actorID, id string, stage domain.Stage) (*domain.Opportunity, error)

	// KanbanColumns returns every opportunity grouped into the six board columns.
	KanbanColumns(ctx context.Context) (domain.KanbanColumns, error)
}

type ServiceContractSvcFacade interface {
	RecordSvcFacade[domain.ServiceContract]
}

type ExpenseSvcFacade interface {
	RecordSvcFacade[domain.Expense]

	Summary(ctx context.Context, period domain.DateRange) (*domain.ExpenseSummary, error)
}

type SalarySvcFacade interface {
	RecordSvcFacade[domain.Salary]

	// Summary totals salaries, optionally limited to one YYYY-MM payment month.
	Summary(ctx context.Context, paymentMonth string) (*domain.SalarySummary, error)

	UpdateStatus(ctx context.Context, actorID, id string, status domain.PaymentStatus) (*domain.Salary, error)
}

type StockSvcFacade interface {
	RecordSvcFacade[domain.StockItem]

	Summary(ctx context.Context) (*domain.StockSummary, error)

	// AdjustQuantity applies a signed quantity change; a positive change records a restock today.
	AdjustQuantity(ctx context.Context, actorID, id string, change int) (*domain.StockItem, error)
}

// ReportingService computes the dashboard aggregates.
type ReportingService interface {
	DashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
	TeamTargets(ctx context.Context) ([]domain.TeamTargetProgress, error)
	FunnelConversions(ctx context.Context) ([]domain.FunnelConversion, error)
	MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	TopClients(ctx context.Context, limit int) ([]domain.ClientValue, error)
	ServiceContractMetrics(ctx context.Context) (*domain.ServiceContractMetrics, error)

	// Overview computes every view above concurrently.
	Overview(ctx context.Context) (*domain.DashboardOverview, error)
}
