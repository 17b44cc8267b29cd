// Package validator wraps go-playground/validator for single-value checks
// used by the explicit form validation functions.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"budgettracker/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	return v
}

// Check reports whether value satisfies the validator tag expression.
func Check(value interface{}, tag string) bool {
	return validate.Var(value, tag) == nil
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	p := models.BudgetPeriod(fl.Field().String())
	for _, period := range models.BudgetPeriods {
		if p == period {
			return true
		}
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	m := models.PaymentMethod(fl.Field().String())
	for _, method := range models.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
