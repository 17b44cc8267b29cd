package forms

import (
	"strings"
	"time"

	"budgettracker/internal/models"
	"budgettracker/internal/services"
	"budgettracker/internal/uuid"
	"budgettracker/internal/validator"
)

// BudgetForm is the budget create submission.
type BudgetForm struct {
	Name      string `form:"name" json:"name"`
	Amount    string `form:"amount" json:"amount"`
	Period    string `form:"period" json:"period"`
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
	Category  string `form:"category" json:"category"`
}

// NewBudgetForm returns a monthly budget form covering the month of now.
func NewBudgetForm(now time.Time) BudgetForm {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return BudgetForm{
		Period:    string(models.BudgetPeriodMonthly),
		StartDate: FormatDate(start),
		EndDate:   FormatDate(start.AddDate(0, 1, -1)),
	}
}

// Validate checks the submission and returns the service input. Ownership
// of the selected category is verified by the budget service.
func (f *BudgetForm) Validate() (services.BudgetInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Period = strings.TrimSpace(f.Period)
	f.Category = strings.TrimSpace(f.Category)
	if f.Period == "" {
		f.Period = string(models.BudgetPeriodMonthly)
	}

	var c checker
	c.check(lengthBetween(f.Name, 1, 100), "name", "Budget name must be between 1 and 100 characters")
	amount, ok := parseAmount(f.Amount)
	c.check(ok, "amount", "Amount must be a positive number")
	c.check(validator.Check(f.Period, "budget_period"), "period", "Invalid period selected")
	start, startOK := parseDate(f.StartDate)
	c.check(startOK, "start_date", "Invalid start date")
	end, endOK := parseDate(f.EndDate)
	if c.check(endOK, "end_date", "Invalid end date") && startOK {
		c.check(end.After(start), "end_date", "End date must be after start date")
	}
	c.check(uuid.IsValid(f.Category), "category", "Invalid category selected")
	if err := c.err(); err != nil {
		return services.BudgetInput{}, err
	}

	return services.BudgetInput{
		CategoryID: f.Category,
		Name:       f.Name,
		Amount:     amount,
		Period:     models.BudgetPeriod(f.Period),
		StartDate:  start,
		EndDate:    end,
	}, nil
}
