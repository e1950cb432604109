package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

type salaryService struct {
	*recordService[domain.Salary, *domain.Salary]
	salaryRepo portsrepo.SalaryRepositoryFacade
}

func NewSalaryService(repo portsrepo.SalaryRepositoryFacade, opts ...RecordOption) portssvc.SalarySvcFacade {
	return &salaryService{
		recordService: newRecordService[domain.Salary, *domain.Salary](
			"salaries", repo, []string{PathSalary, PathDashboard}, opts...),
		salaryRepo: repo,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) Summary(ctx context.Context, paymentMonth string) (*domain.SalarySummary, error) {
	if paymentMonth != "" {
		if err := s.validate.Var(paymentMonth, "yyyymm"); err != nil {
			return nil, fmt.Errorf("%w: payment month must be YYYY-MM", apperrors.ErrValidation)
		}
	}
	rows, err := s.listAll(ctx, domain.ListQuery{}.WithFilter("paymentMonth", paymentMonth))
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeSalaries(rows)
	return &summary, nil
}

// UpdateStatus changes only payment_status.
func (s *salaryService) UpdateStatus(ctx context.Context, actorID, id string, status domain.PaymentStatus) (*domain.Salary, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, status)
	}
	if _, err := s.loadForWrite(ctx, actorID, id); err != nil {
		return nil, err
	}
	updated, err := s.salaryRepo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update salary status", map[string]any{"id": id, "status": status})
		return nil, err
	}
	s.publish()
	return updated, nil
}
