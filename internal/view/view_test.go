package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgettracker/internal/models"
	"budgettracker/internal/pagination"
	"budgettracker/internal/services"
)

func TestURLs(t *testing.T) {
	assert.Equal(t, "/budget/budget/b1", BudgetURL("b1"))
	assert.Equal(t, "/budget/category/c1", CategoryURL("c1"))
	assert.Equal(t, "/budget/expense/e1", ExpenseURL("e1"))
	assert.Equal(t, "/budget/expense/e1/edit", EditURL(ExpenseURL("e1")))
	assert.Equal(t, "/budget/category/c1/delete", DeleteURL(CategoryURL("c1")))
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":        "$0.00",
		"0.5":      "$0.50",
		"12.345":   "$12.35",
		"1234.5":   "$1,234.50",
		"1000000":  "$1,000,000.00",
		"-50":      "-$50.00",
		"-1234.56": "-$1,234.56",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)))
		})
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 9, 2024", FormatDate(d))
	assert.Equal(t, "2024-03-09", ISODate(d))
	assert.Equal(t, "March 2024", MonthLabel(d))
	assert.Empty(t, FormatDate(time.Time{}))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25.0%", FormatPercent(25))
	assert.Equal(t, "33.3%", FormatPercent(100.0/3))
	assert.Equal(t, "100.0%", FormatPercent(100))
}

func TestNewBudget(t *testing.T) {
	bp := services.BudgetProgress{
		Budget: models.Budget{
			Base:      models.Base{ID: "b1"},
			Name:      "Food",
			Amount:    decimal.NewFromInt(100),
			Period:    models.BudgetPeriodMonthly,
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Category:  models.Category{Base: models.Base{ID: "c1"}, Name: "Groceries"},
		},
		Progress: services.ComputeProgress(decimal.NewFromInt(100), decimal.NewFromInt(150)),
	}

	v := NewBudget(bp)
	assert.Equal(t, "/budget/budget/b1", v.URL)
	assert.Equal(t, "-50.00", v.Remaining)
	assert.Equal(t, "-$50.00", v.FormattedRemaining)
	assert.Equal(t, "100.0%", v.FormattedProgress)
	assert.True(t, v.OverBudget)
	require.NotNil(t, v.Category)
	assert.Equal(t, "/budget/category/c1", v.Category.URL)
}

func TestNewExpensePage(t *testing.T) {
	page := pagination.NewPageResponse([]models.Expense{{Base: models.Base{ID: "e1"}, Amount: decimal.NewFromInt(3)}}, 2, 45)
	v := NewExpensePage(&page)
	assert.Equal(t, 2, v.CurrentPage)
	assert.Equal(t, int64(45), v.TotalExpenses)
	assert.True(t, v.HasNext)
	assert.True(t, v.HasPrev)
	assert.Equal(t, 3, v.NextPage)
	assert.Equal(t, 1, v.PrevPage)
	assert.Nil(t, v.Expenses[0].Category)
}

func TestNewDashboard_ChartData(t *testing.T) {
	d := &services.Dashboard{
		Month: services.MonthOf(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)),
		TopCategories: []services.CategorySpend{
			{CategoryID: "c1", Name: "Rent", Color: "#111111", Total: decimal.NewFromInt(800), Count: 1},
			{CategoryID: "c2", Name: "Food", Color: "#222222", Total: decimal.RequireFromString("100.5"), Count: 2},
		},
	}

	v := NewDashboard("alice", d)
	assert.Equal(t, "May 2024", v.CurrentMonth)
	assert.Equal(t, []string{"Rent", "Food"}, v.ChartData.Labels)
	assert.Equal(t, []float64{800, 100.5}, v.ChartData.Data)
	assert.Equal(t, []string{"#111111", "#222222"}, v.ChartData.Colors)
	assert.Equal(t, "/budget/category/c2", v.ExpensesByCategory[1].Category.URL)
	assert.Equal(t, "0.00", v.Stats.TotalMonthlyExpenses)
}

func TestOptions(t *testing.T) {
	assert.Equal(t, Option{Value: "weekly", Label: "Weekly"}, PeriodOptions()[0])
	assert.Equal(t, Option{Value: "bank_transfer", Label: "Bank Transfer"}, PaymentMethodOptions()[3])
}
