package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payout state of a salary record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

// Salary is one payroll entry for an employee (table salaries).
type Salary struct {
	ID            string           `db:"id" json:"id"`
	EmployeeName  string           `db:"employee_name" json:"employeeName" validate:"required"`
	Position      *string          `db:"position" json:"position"`
	BaseSalary    decimal.Decimal  `db:"base_salary" json:"baseSalary" validate:"gte=1"`
	Bonus         *decimal.Decimal `db:"bonus" json:"bonus"`
	Deductions    *decimal.Decimal `db:"deductions" json:"deductions"`
	NetSalary     decimal.Decimal  `db:"net_salary" json:"netSalary"`
	PaymentDate   Date             `db:"payment_date" json:"paymentDate" validate:"required"`
	PaymentMonth  string           `db:"payment_month" json:"paymentMonth" validate:"yyyymm"`
	PaymentStatus PaymentStatus    `db:"payment_status" json:"paymentStatus" validate:"payment_status"`
	Notes         *string          `db:"notes" json:"notes"`
	AuditFields
}

func (s *Salary) RecordID() string { return s.ID }

func (s *Salary) Stamp(id, actorID string, now time.Time) {
	s.ID = id
	s.stamp(actorID, now)
	if s.PaymentStatus == "" {
		s.PaymentStatus = PaymentPending
	}
}

func (s *Salary) Touch(now time.Time) { s.UpdatedAt = now }

// Derive recomputes net_salary; a client-supplied value is never kept.
func (s *Salary) Derive() {
	s.NetSalary = NetSalary(s.BaseSalary, s.Bonus, s.Deductions)
}

func (s *Salary) OwnerID() *string { return s.CreatedBy }
