package services

import (
	"context"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

type expenseService struct {
	*recordService[domain.Expense, *domain.Expense]
}

func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, opts ...RecordOption) portssvc.ExpenseSvcFacade {
	return &expenseService{
		recordService: newRecordService[domain.Expense, *domain.Expense](
			"expenses", repo, []string{PathExpenses, PathDashboard}, opts...),
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// Summary totals expenses by category, optionally bounded by expense date.
func (s *expenseService) Summary(ctx context.Context, period domain.DateRange) (*domain.ExpenseSummary, error) {
	q := domain.ListQuery{}
	if period.From != nil || period.To != nil {
		q.Ranges = map[string]domain.DateRange{"expenseDate": period}
	}
	rows, err := s.listAll(ctx, q)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeExpenses(rows)
	return &summary, nil
}
