package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var salarySchema = tableSchema[domain.Salary]{
	table:  "salaries",
	entity: "salary",
	selectColumns: []string{
		"id", "employee_name", "position", "base_salary", "bonus", "deductions", "net_salary",
		"payment_date", "payment_month", "payment_status", "notes", "created_by", "created_at", "updated_at",
	},
	insertColumns: []string{
		"id", "employee_name", "position", "base_salary", "bonus", "deductions", "net_salary",
		"payment_date", "payment_month", "payment_status", "notes", "created_by", "created_at", "updated_at",
	},
	insertValues: func(s *domain.Salary) []any {
		return []any{
			s.ID, s.EmployeeName, s.Position, s.BaseSalary, s.Bonus, s.Deductions, s.NetSalary,
			s.PaymentDate, s.PaymentMonth, s.PaymentStatus, s.Notes, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
		}
	},
	updateColumns: []string{
		"employee_name", "position", "base_salary", "bonus", "deductions", "net_salary",
		"payment_date", "payment_month", "payment_status", "notes", "updated_at",
	},
	updateValues: func(s *domain.Salary) []any {
		return []any{
			s.EmployeeName, s.Position, s.BaseSalary, s.Bonus, s.Deductions, s.NetSalary,
			s.PaymentDate, s.PaymentMonth, s.PaymentStatus, s.Notes, s.UpdatedAt,
		}
	},
	recordID:      func(s *domain.Salary) string { return s.ID },
	searchColumns: []string{"employee_name", "position"},
	filters: map[string]string{
		"status":       "payment_status",
		"paymentMonth": "payment_month",
	},
	ranges: map[string]string{
		"paymentDate": "payment_date",
	},
	orderBy: "payment_date DESC, id",
}

type salaryRepository struct {
	*recordTable[domain.Salary]
}

func newPgxSalaryRepository(pool *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &salaryRepository{recordTable: newRecordTable(pool, salarySchema)}
}

var _ portsrepo.SalaryRepositoryFacade = (*salaryRepository)(nil)

func (r *salaryRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, now time.Time) (*domain.Salary, error) {
	query := fmt.Sprintf(`
		UPDATE salaries
		SET payment_status = $2, updated_at = $3
		WHERE id = $1
		RETURNING %s`, r.columns())
	return r.one(ctx, query, []any{id, status, now}, "salary "+id)
}
