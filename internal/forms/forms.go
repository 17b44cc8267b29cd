// Package forms binds submitted form values and validates them into
// service inputs. Every form reports one message per violated rule, in
// field order, so a rejected submission can be re-rendered as entered.
package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
	"budgettracker/internal/validator"
)

const dateLayout = "2006-01-02"

var (
	minAmount = decimal.RequireFromString("0.01")
	maxAmount = decimal.RequireFromString("9999999999.99")
)

// checker accumulates field errors in the order rules are evaluated.
type checker struct {
	errs []apperrors.FieldError
}

func (c *checker) check(ok bool, field, message string) bool {
	if !ok {
		c.errs = append(c.errs, apperrors.FieldError{Field: field, Message: message})
	}
	return ok
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return apperrors.Validation(c.errs)
}

// lengthBetween reports whether s has between min and max characters.
func lengthBetween(s string, min, max int) bool {
	return validator.Check(s, "min="+strconv.Itoa(min)+",max="+strconv.Itoa(max))
}

func maxLength(s string, max int) bool {
	return validator.Check(s, "max="+strconv.Itoa(max))
}

// parseDate accepts a calendar date or an RFC3339 timestamp and returns the
// calendar day it names at UTC midnight.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return models.Day(t), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return models.Day(t), true
	}
	return time.Time{}, false
}

// parseAmount parses a positive money amount rounded to cents.
func parseAmount(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	amount = amount.Round(2)
	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatDate renders a stored date back into the form's date layout.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
