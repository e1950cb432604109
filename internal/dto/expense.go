package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ExpenseListParams struct {
	PageParams
	Category  string `form:"category" binding:"omitempty,expense_category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (p ExpenseListParams) ToListQuery() (domain.ListQuery, error) {
	q, err := p.query()
	if err != nil {
		return q, err
	}
	q = q.WithFilter("category", p.Category)
	period, ok, err := parseRange(p.StartDate, p.EndDate)
	if err != nil {
		return q, err
	}
	if ok {
		q.Ranges = map[string]domain.DateRange{"expenseDate": period}
	}
	return q, nil
}

// ExpenseSummaryParams bounds GET /expenses/summary; both ends are optional.
type ExpenseSummaryParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (p ExpenseSummaryParams) Period() (domain.DateRange, error) {
	period, _, err := parseRange(p.StartDate, p.EndDate)
	return period, err
}

type CreateExpenseRequest struct {
	Description   string                 `json:"description" binding:"required"`
	Category      domain.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Amount        decimal.Decimal        `json:"amount" swaggertype:"number"`
	ExpenseDate   domain.Date            `json:"expenseDate" swaggertype:"string" example:"2026-01-15"`
	Vendor        *string                `json:"vendor"`
	ReceiptNumber *string                `json:"receiptNumber"`
	Notes         *string                `json:"notes"`
}

func (r CreateExpenseRequest) ToDomain() domain.Expense {
	return domain.Expense{
		Description:   r.Description,
		Category:      r.Category,
		Amount:        r.Amount,
		ExpenseDate:   r.ExpenseDate,
		Vendor:        r.Vendor,
		ReceiptNumber: r.ReceiptNumber,
		Notes:         r.Notes,
	}
}

type UpdateExpenseRequest struct {
	Description   *string                 `json:"description" binding:"omitempty,min=1"`
	Category      *domain.ExpenseCategory `json:"category" binding:"omitempty,expense_category"`
	Amount        *decimal.Decimal        `json:"amount" swaggertype:"number"`
	ExpenseDate   *domain.Date            `json:"expenseDate" swaggertype:"string"`
	Vendor        *string                 `json:"vendor"`
	ReceiptNumber *string                 `json:"receiptNumber"`
	Notes         *string                 `json:"notes"`
}

func (r UpdateExpenseRequest) Patch() domain.Patch[domain.Expense] {
	return domain.PatchFunc[domain.Expense](func(e *domain.Expense) {
		set(&e.Description, r.Description)
		set(&e.Category, r.Category)
		set(&e.Amount, r.Amount)
		set(&e.ExpenseDate, r.ExpenseDate)
		setPtr(&e.Vendor, r.Vendor)
		setPtr(&e.ReceiptNumber, r.ReceiptNumber)
		setPtr(&e.Notes, r.Notes)
	})
}
