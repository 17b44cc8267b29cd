package forms

import (
	"strings"
	"time"

	"budgettracker/internal/models"
	"budgettracker/internal/services"
	"budgettracker/internal/uuid"
	"budgettracker/internal/validator"
)

// ExpenseForm is the expense create/edit submission.
type ExpenseForm struct {
	Description   string `form:"description" json:"description"`
	Amount        string `form:"amount" json:"amount"`
	Date          string `form:"date" json:"date"`
	Category      string `form:"category" json:"category"`
	Notes         string `form:"notes" json:"notes"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
	ReceiptURL    string `form:"receipt_url" json:"receipt_url"`
}

// NewExpenseForm returns a cash expense form dated today.
func NewExpenseForm(now time.Time) ExpenseForm {
	return ExpenseForm{
		Date:          FormatDate(models.Day(now)),
		PaymentMethod: string(models.PaymentMethodCash),
	}
}

// ExpenseFormFrom fills the form from a stored expense.
func ExpenseFormFrom(expense *models.Expense) ExpenseForm {
	return ExpenseForm{
		Description:   expense.Description,
		Amount:        expense.Amount.StringFixed(2),
		Date:          FormatDate(expense.Date),
		Category:      expense.CategoryID,
		Notes:         expense.Notes,
		PaymentMethod: string(expense.PaymentMethod),
		ReceiptURL:    expense.ReceiptURL,
	}
}

// Validate checks the submission and returns the service input. An empty
// date means today and an empty payment method means cash.
func (f *ExpenseForm) Validate(now time.Time) (services.ExpenseInput, error) {
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Notes = strings.TrimSpace(f.Notes)
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
	f.ReceiptURL = strings.TrimSpace(f.ReceiptURL)
	if strings.TrimSpace(f.Date) == "" {
		f.Date = FormatDate(models.Day(now))
	}
	if f.PaymentMethod == "" {
		f.PaymentMethod = string(models.PaymentMethodCash)
	}

	var c checker
	c.check(lengthBetween(f.Description, 1, 200), "description", "Description must be between 1 and 200 characters")
	amount, ok := parseAmount(f.Amount)
	c.check(ok, "amount", "Amount must be a positive number")
	date, ok := parseDate(f.Date)
	c.check(ok, "date", "Invalid date")
	c.check(uuid.IsValid(f.Category), "category", "Invalid category selected")
	c.check(maxLength(f.Notes, 500), "notes", "Notes must not exceed 500 characters")
	c.check(validator.Check(f.PaymentMethod, "payment_method"), "payment_method", "Invalid payment method")
	if f.ReceiptURL != "" {
		c.check(validator.Check(f.ReceiptURL, "url,max=500"), "receipt_url", "Receipt URL must be a valid URL")
	}
	if err := c.err(); err != nil {
		return services.ExpenseInput{}, err
	}

	return services.ExpenseInput{
		CategoryID:    f.Category,
		Description:   f.Description,
		Amount:        amount,
		Date:          date,
		Notes:         f.Notes,
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		ReceiptURL:    f.ReceiptURL,
	}, nil
}
