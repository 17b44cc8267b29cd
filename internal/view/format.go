// Package view holds the presentation helpers and JSON view models that
// handlers render. Everything here is a pure function of its inputs.
package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// BudgetURL is the detail page of a budget.
func BudgetURL(id string) string { return "/budget/budget/" + id }

// CategoryURL is the detail page of a category.
func CategoryURL(id string) string { return "/budget/category/" + id }

// ExpenseURL is the detail page of an expense.
func ExpenseURL(id string) string { return "/budget/expense/" + id }

// EditURL is the edit form below a detail URL.
func EditURL(detailURL string) string { return detailURL + "/edit" }

// DeleteURL is the delete action below a detail URL.
func DeleteURL(detailURL string) string { return detailURL + "/delete" }

// FormatAmount renders money as dollars with thousands separators,
// e.g. "$1,234.50" or "-$50.00".
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount.Abs().Round(2).InexactFloat64())
}

// FormatDate renders a calendar day like "Jan 2, 2006".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006")
}

// ISODate renders a calendar day as YYYY-MM-DD.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// MonthLabel renders the month of t like "January 2006".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// PaymentMethodLabel turns a stored payment method into display text.
func PaymentMethodLabel(method string) string {
	switch method {
	case "cash":
		return "Cash"
	case "credit_card":
		return "Credit Card"
	case "debit_card":
		return "Debit Card"
	case "bank_transfer":
		return "Bank Transfer"
	case "other":
		return "Other"
	default:
		return method
	}
}
