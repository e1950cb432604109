package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	ExpenseOffice    ExpenseCategory = "Оффис"
	ExpenseEquipment ExpenseCategory = "Тоног төхөөрөмж"
	ExpenseTransport ExpenseCategory = "Тээвэр"
	ExpenseMarketing ExpenseCategory = "Маркетинг"
	ExpenseOther     ExpenseCategory = "Бусад"
)

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseOffice, ExpenseEquipment, ExpenseTransport, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}

// Expense is a single company expense (table expenses).
type Expense struct {
	ID            string          `db:"id" json:"id"`
	Description   string          `db:"description" json:"description" validate:"required"`
	Category      ExpenseCategory `db:"category" json:"category" validate:"expense_category"`
	Amount        decimal.Decimal `db:"amount" json:"amount" validate:"gte=1"`
	ExpenseDate   Date            `db:"expense_date" json:"expenseDate" validate:"required"`
	Vendor        *string         `db:"vendor" json:"vendor"`
	ReceiptNumber *string         `db:"receipt_number" json:"receiptNumber"`
	Notes         *string         `db:"notes" json:"notes"`
	AuditFields
}

func (e *Expense) RecordID() string { return e.ID }

func (e *Expense) Stamp(id, actorID string, now time.Time) {
	e.ID = id
	e.stamp(actorID, now)
}

func (e *Expense) Touch(now time.Time) { e.UpdatedAt = now }

func (e *Expense) Derive() {}

func (e *Expense) OwnerID() *string { return e.CreatedBy }
