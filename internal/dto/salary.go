package dto

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type SalaryListParams struct {
	PageParams
	Status       string `form:"status" binding:"omitempty,payment_status"`
	PaymentMonth string `form:"paymentMonth" binding:"omitempty,yyyymm"`
}

func (p SalaryListParams) ToListQuery() (domain.ListQuery, error) {
	q, err := p.query()
	if err != nil {
		return q, err
	}
	return q.WithFilter("status", p.Status).WithFilter("paymentMonth", p.PaymentMonth), nil
}

type SalarySummaryParams struct {
	PaymentMonth string `form:"paymentMonth" binding:"omitempty,yyyymm"`
}

// CreateSalaryRequest is the body of POST /salaries. A netSalary sent by the
// client is ignored; the server always recomputes it.
type CreateSalaryRequest struct {
	EmployeeName  string               `json:"employeeName" binding:"required"`
	Position      *string              `json:"position"`
	BaseSalary    decimal.Decimal      `json:"baseSalary" swaggertype:"number"`
	Bonus         *decimal.Decimal     `json:"bonus" swaggertype:"number"`
	Deductions    *decimal.Decimal     `json:"deductions" swaggertype:"number"`
	PaymentDate   domain.Date          `json:"paymentDate" swaggertype:"string" example:"2026-01-25"`
	PaymentMonth  string               `json:"paymentMonth" binding:"required,yyyymm" example:"2026-01"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,payment_status"`
	Notes         *string              `json:"notes"`
}

func (r CreateSalaryRequest) ToDomain() domain.Salary {
	return domain.Salary{
		EmployeeName:  r.EmployeeName,
		Position:      r.Position,
		BaseSalary:    r.BaseSalary,
		Bonus:         r.Bonus,
		Deductions:    r.Deductions,
		PaymentDate:   r.PaymentDate,
		PaymentMonth:  r.PaymentMonth,
		PaymentStatus: r.PaymentStatus,
		Notes:         r.Notes,
	}
}

type UpdateSalaryRequest struct {
	EmployeeName  *string               `json:"employeeName" binding:"omitempty,min=1"`
	Position      *string               `json:"position"`
	BaseSalary    *decimal.Decimal      `json:"baseSalary" swaggertype:"number"`
	Bonus         *decimal.Decimal      `json:"bonus" swaggertype:"number"`
	Deductions    *decimal.Decimal      `json:"deductions" swaggertype:"number"`
	PaymentDate   *domain.Date          `json:"paymentDate" swaggertype:"string"`
	PaymentMonth  *string               `json:"paymentMonth" binding:"omitempty,yyyymm"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,payment_status"`
	Notes         *string               `json:"notes"`
}

func (r UpdateSalaryRequest) Patch() domain.Patch[domain.Salary] {
	return domain.PatchFunc[domain.Salary](func(s *domain.Salary) {
		set(&s.EmployeeName, r.EmployeeName)
		setPtr(&s.Position, r.Position)
		set(&s.BaseSalary, r.BaseSalary)
		setPtr(&s.Bonus, r.Bonus)
		setPtr(&s.Deductions, r.Deductions)
		set(&s.PaymentDate, r.PaymentDate)
		set(&s.PaymentMonth, r.PaymentMonth)
		set(&s.PaymentStatus, r.PaymentStatus)
		setPtr(&s.Notes, r.Notes)
	})
}

type UpdateSalaryStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required,payment_status"`
}
