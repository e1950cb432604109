package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// enumValidators maps custom validation tags to the closed value sets they check.
var enumValidators = map[string]func(string) bool{
	"stage":             func(s string) bool { return Stage(s).IsValid() },
	"contract_stage":    func(s string) bool { return Stage(s).IsContractStage() },
	"deal_status":       func(s string) bool { return DealStatus(s).IsValid() },
	"team":              func(s string) bool { return Team(s).IsValid() },
	"expense_category":  func(s string) bool { return ExpenseCategory(s).IsValid() },
	"stock_category":    func(s string) bool { return StockCategory(s).IsValid() },
	"payment_status":    func(s string) bool { return PaymentStatus(s).IsValid() },
	"notification_type": func(s string) bool { return NotificationType(s).IsValid() },
	"profile_role":      func(s string) bool { return ProfileRole(s).IsValid() },
	"yyyymm":            yearMonthPattern.MatchString,
}

// RegisterValidations installs the domain tags and type adapters on v.
// It is used both for gin's binding engine and for the services' own validator.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, Date{})
	for tag, check := range enumValidators {
		check := check
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// ValidateRecord checks rec against its validate tags and reports failures as ErrValidation.
func ValidateRecord(v *validator.Validate, rec any) error {
	err := v.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(Date); ok {
		if d.IsZero() {
			return ""
		}
		return d.String()
	}
	return nil
}
