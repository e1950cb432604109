package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord_Expense(t *testing.T) {
	v := domain.NewValidator()
	date, err := domain.ParseDate("2026-02-01")
	require.NoError(t, err)

	valid := domain.Expense{
		Description: "Printer paper",
		Category:    domain.ExpenseOffice,
		Amount:      dec("15000"),
		ExpenseDate: date,
	}
	assert.NoError(t, domain.ValidateRecord(v, &valid))

	badCategory := valid
	badCategory.Category = "Food"
	assert.ErrorIs(t, domain.ValidateRecord(v, &badCategory), apperrors.ErrValidation)

	zeroAmount := valid
	zeroAmount.Amount = dec("0")
	assert.ErrorIs(t, domain.ValidateRecord(v, &zeroAmount), apperrors.ErrValidation)

	noDate := valid
	noDate.ExpenseDate = domain.Date{}
	assert.ErrorIs(t, domain.ValidateRecord(v, &noDate), apperrors.ErrValidation)
}

func TestValidateRecord_ContractStage(t *testing.T) {
	v := domain.NewValidator()
	c := domain.ServiceContract{ClientName: "Khan Bank", Stage: domain.StageCold}
	assert.ErrorIs(t, domain.ValidateRecord(v, &c), apperrors.ErrValidation)

	c.Stage = domain.StageWarm
	assert.NoError(t, domain.ValidateRecord(v, &c))
}

func TestValidateRecord_SalaryMonth(t *testing.T) {
	v := domain.NewValidator()
	date, _ := domain.ParseDate("2026-01-31")
	s := domain.Salary{
		EmployeeName:  "Bat",
		BaseSalary:    dec("1500000"),
		PaymentDate:   date,
		PaymentMonth:  "2026-13",
		PaymentStatus: domain.PaymentPending,
	}
	assert.ErrorIs(t, domain.ValidateRecord(v, &s), apperrors.ErrValidation)

	s.PaymentMonth = "2026-01"
	assert.NoError(t, domain.ValidateRecord(v, &s))
}

func TestDate_JSON(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-04-09"`), &d))
	assert.Equal(t, "2026-04-09", d.String())
	assert.Equal(t, "2026-04", d.YearMonth())

	require.NoError(t, json.Unmarshal([]byte(`"2026-04-09T22:15:00Z"`), &d))
	assert.Equal(t, "2026-04-09", d.String())

	out, err := json.Marshal(d.AddDays(30))
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-05-09"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"09/04/2026"`), &d))
}
