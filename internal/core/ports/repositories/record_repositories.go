package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordReader defines read operations shared by every record table.
type RecordReader[T any] interface {
	// FindByID retrieves a row by id; apperrors.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// List returns one page of matching rows plus the total match count.
	List(ctx context.Context, q domain.ListQuery) ([]T, int, error)

	// ListAll returns every matching row in the table's default order, ignoring paging.
	ListAll(ctx context.Context, q domain.ListQuery) ([]T, error)
}

// RecordWriter defines write operations shared by every record table.
type RecordWriter[T any] interface {
	Insert(ctx context.Context, rec T) (*T, error)

	// Update overwrites the mutable columns; apperrors.ErrNotFound when the row is gone.
	Update(ctx context.Context, rec T) (*T, error)

	// Delete hard-deletes a row; apperrors.ErrNotFound when no row was affected.
	Delete(ctx context.Context, id string) error
}

// RecordRepositoryFacade combines the generic reader and writer.
type RecordRepositoryFacade[T any] interface {
	RecordReader[T]
	RecordWriter[T]
}

// OpportunityRepositoryFacade is the sales funnel store.
type OpportunityRepositoryFacade interface {
	RecordRepositoryFacade[domain.Opportunity]

	// UpdateStage sets only stage, progress_to_won and updated_at.
	UpdateStage(ctx context.Context, id string, stage domain.Stage, progress decimal.Decimal, now time.Time) (*domain.Opportunity, error)
}

type ServiceContractRepositoryFacade interface {
	RecordRepositoryFacade[domain.ServiceContract]
}

type ExpenseRepositoryFacade interface {
	RecordRepositoryFacade[domain.Expense]
}

type SalaryRepositoryFacade interface {
	RecordRepositoryFacade[domain.Salary]

	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, now time.Time) (*domain.Salary, error)
}

type StockRepositoryFacade interface {
	RecordRepositoryFacade[domain.StockItem]

	// AdjustQuantity adds delta to the quantity in a single statement and
	// recomputes total_value. It fails with domain.ErrNegativeQuantity,
	// leaving the row untouched, when the result would be below zero.
	AdjustQuantity(ctx context.Context, id string, delta int, restocked *domain.Date, now time.Time) (*domain.StockItem, error)
}
