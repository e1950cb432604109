package pgsql

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var expenseSchema = tableSchema[domain.Expense]{
	table:  "expenses",
	entity: "expense",
	selectColumns: []string{
		"id", "description", "category", "amount", "expense_date", "vendor",
		"receipt_number", "notes", "created_by", "created_at", "updated_at",
	},
	insertColumns: []string{
		"id", "description", "category", "amount", "expense_date", "vendor",
		"receipt_number", "notes", "created_by", "created_at", "updated_at",
	},
	insertValues: func(e *domain.Expense) []any {
		return []any{
			e.ID, e.Description, e.Category, e.Amount, e.ExpenseDate, e.Vendor,
			e.ReceiptNumber, e.Notes, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
		}
	},
	updateColumns: []string{
		"description", "category", "amount", "expense_date", "vendor",
		"receipt_number", "notes", "updated_at",
	},
	updateValues: func(e *domain.Expense) []any {
		return []any{
			e.Description, e.Category, e.Amount, e.ExpenseDate, e.Vendor,
			e.ReceiptNumber, e.Notes, e.UpdatedAt,
		}
	},
	recordID:      func(e *domain.Expense) string { return e.ID },
	searchColumns: []string{"description", "vendor"},
	filters: map[string]string{
		"category": "category",
	},
	ranges: map[string]string{
		"expenseDate": "expense_date",
	},
	orderBy: "expense_date DESC, id",
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return newRecordTable(pool, expenseSchema)
}
