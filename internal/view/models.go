package view

import (
	"strings"

	"budgettracker/internal/models"
	"budgettracker/internal/pagination"
	"budgettracker/internal/services"
)

// Link is a labelled URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Category is the rendered form of a category.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	URL          string `json:"url"`
	EditURL      string `json:"edit_url"`
	DeleteURL    string `json:"delete_url"`
	ExpenseCount *int64 `json:"expense_count,omitempty"`
	BudgetCount  *int64 `json:"budget_count,omitempty"`
}

// NewCategory renders a category.
func NewCategory(c models.Category) Category {
	url := CategoryURL(c.ID)
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		URL:         url,
		EditURL:     EditURL(url),
		DeleteURL:   DeleteURL(url),
	}
}

// NewCategoryWithStats renders a category with its reference counts.
func NewCategoryWithStats(c services.CategoryWithStats) Category {
	out := NewCategory(c.Category)
	out.ExpenseCount = &c.ExpenseCount
	out.BudgetCount = &c.BudgetCount
	return out
}

// Expense is the rendered form of an expense.
type Expense struct {
	ID                 string    `json:"id"`
	Description        string    `json:"description"`
	Amount             string    `json:"amount"`
	FormattedAmount    string    `json:"formatted_amount"`
	Date               string    `json:"date"`
	FormattedDate      string    `json:"formatted_date"`
	Notes              string    `json:"notes,omitempty"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	ReceiptURL         string    `json:"receipt_url,omitempty"`
	Category           *Category `json:"category,omitempty"`
	URL                string    `json:"url"`
	EditURL            string    `json:"edit_url"`
	DeleteURL          string    `json:"delete_url"`
}

// NewExpense renders an expense, including its category when loaded.
func NewExpense(e models.Expense) Expense {
	url := ExpenseURL(e.ID)
	out := Expense{
		ID:                 e.ID,
		Description:        e.Description,
		Amount:             e.Amount.StringFixed(2),
		FormattedAmount:    FormatAmount(e.Amount),
		Date:               ISODate(e.Date),
		FormattedDate:      FormatDate(e.Date),
		Notes:              e.Notes,
		PaymentMethod:      string(e.PaymentMethod),
		PaymentMethodLabel: PaymentMethodLabel(string(e.PaymentMethod)),
		ReceiptURL:         e.ReceiptURL,
		URL:                url,
		EditURL:            EditURL(url),
		DeleteURL:          DeleteURL(url),
	}
	if e.Category.ID != "" {
		c := NewCategory(e.Category)
		out.Category = &c
	}
	return out
}

// NewExpenses renders a list of expenses.
func NewExpenses(expenses []models.Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = NewExpense(e)
	}
	return out
}

// Budget is the rendered form of a budget and its progress.
type Budget struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Period             string    `json:"period"`
	Amount             string    `json:"amount"`
	FormattedAmount    string    `json:"formatted_amount"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	FormattedStartDate string    `json:"formatted_start_date"`
	FormattedEndDate   string    `json:"formatted_end_date"`
	IsActive           bool      `json:"is_active"`
	Category           *Category `json:"category,omitempty"`
	Spent              string    `json:"spent"`
	FormattedSpent     string    `json:"formatted_spent"`
	Remaining          string    `json:"remaining"`
	FormattedRemaining string    `json:"formatted_remaining"`
	Progress           float64   `json:"progress"`
	FormattedProgress  string    `json:"formatted_progress"`
	OverBudget         bool      `json:"over_budget"`
	URL                string    `json:"url"`
}

// NewBudget renders a budget with its computed progress.
func NewBudget(bp services.BudgetProgress) Budget {
	b := bp.Budget
	out := Budget{
		ID:                 b.ID,
		Name:               b.Name,
		Period:             string(b.Period),
		Amount:             b.Amount.StringFixed(2),
		FormattedAmount:    FormatAmount(b.Amount),
		StartDate:          ISODate(b.StartDate),
		EndDate:            ISODate(b.EndDate),
		FormattedStartDate: FormatDate(b.StartDate),
		FormattedEndDate:   FormatDate(b.EndDate),
		IsActive:           b.IsActive,
		Spent:              bp.Spent.StringFixed(2),
		FormattedSpent:     FormatAmount(bp.Spent),
		Remaining:          bp.Remaining.StringFixed(2),
		FormattedRemaining: FormatAmount(bp.Remaining),
		Progress:           bp.Percent,
		FormattedProgress:  FormatPercent(bp.Percent),
		OverBudget:         bp.Remaining.IsNegative(),
		URL:                BudgetURL(b.ID),
	}
	if b.Category.ID != "" {
		c := NewCategory(b.Category)
		out.Category = &c
	}
	return out
}

// NewBudgets renders a list of budgets.
func NewBudgets(budgets []services.BudgetProgress) []Budget {
	out := make([]Budget, len(budgets))
	for i, b := range budgets {
		out[i] = NewBudget(b)
	}
	return out
}

// BudgetDetail is the rendered budget detail page.
type BudgetDetail struct {
	Budget        Budget    `json:"budget"`
	Expenses      []Expense `json:"expenses"`
	DaysRemaining int       `json:"days_remaining"`
}

// NewBudgetDetail renders a budget detail.
func NewBudgetDetail(d *services.BudgetDetail) BudgetDetail {
	return BudgetDetail{
		Budget:        NewBudget(d.BudgetProgress),
		Expenses:      NewExpenses(d.Expenses),
		DaysRemaining: d.DaysRemaining,
	}
}

// CategoryDetail is the rendered category detail page.
type CategoryDetail struct {
	Category            Category  `json:"category"`
	RecentExpenses      []Expense `json:"recent_expenses"`
	Budgets             []Budget  `json:"budgets"`
	TotalSpent          string    `json:"total_spent"`
	FormattedTotalSpent string    `json:"formatted_total_spent"`
}

// NewCategoryDetail renders a category detail.
func NewCategoryDetail(d *services.CategoryDetail) CategoryDetail {
	return CategoryDetail{
		Category:            NewCategory(d.Category),
		RecentExpenses:      NewExpenses(d.RecentExpenses),
		Budgets:             NewBudgets(d.Budgets),
		TotalSpent:          d.TotalSpent.StringFixed(2),
		FormattedTotalSpent: FormatAmount(d.TotalSpent),
	}
}

// ExpensePage is one page of the expense list.
type ExpensePage struct {
	Expenses      []Expense `json:"expenses"`
	CurrentPage   int       `json:"current_page"`
	TotalPages    int       `json:"total_pages"`
	HasNext       bool      `json:"has_next"`
	HasPrev       bool      `json:"has_prev"`
	NextPage      int       `json:"next_page"`
	PrevPage      int       `json:"prev_page"`
	TotalExpenses int64     `json:"total_expenses"`
}

// NewExpensePage renders a page of expenses.
func NewExpensePage(page *pagination.PageResponse[models.Expense]) ExpensePage {
	return ExpensePage{
		Expenses:      NewExpenses(page.Data),
		CurrentPage:   page.CurrentPage,
		TotalPages:    page.TotalPages,
		HasNext:       page.HasNext,
		HasPrev:       page.HasPrev,
		NextPage:      page.NextPage,
		PrevPage:      page.PrevPage,
		TotalExpenses: page.TotalItems,
	}
}

// ChartData feeds the spending-by-category chart.
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// CategorySpend is one row of the spending-by-category breakdown.
type CategorySpend struct {
	Category       Link   `json:"category"`
	Color          string `json:"color"`
	Total          string `json:"total"`
	FormattedTotal string `json:"formatted_total"`
	Count          int64  `json:"count"`
}

// Stats are the headline dashboard figures.
type Stats struct {
	TotalMonthlyExpenses string `json:"total_monthly_expenses"`
	FormattedMonthly     string `json:"formatted_monthly_expenses"`
	ExpenseCount         int64  `json:"expense_count"`
	CategoryCount        int64  `json:"category_count"`
	BudgetCount          int64  `json:"budget_count"`
	TotalBudgetAmount    string `json:"total_budget_amount"`
	RemainingBudget      string `json:"remaining_budget"`
}

// Dashboard is the rendered dashboard.
type Dashboard struct {
	User               string          `json:"user"`
	CurrentMonth       string          `json:"current_month"`
	Stats              Stats           `json:"stats"`
	Budgets            []Budget        `json:"budgets"`
	ExpensesByCategory []CategorySpend `json:"expenses_by_category"`
	RecentExpenses     []Expense       `json:"recent_expenses"`
	ChartData          ChartData       `json:"chart_data"`
}

// NewDashboard renders the dashboard for the named user.
func NewDashboard(username string, d *services.Dashboard) Dashboard {
	out := Dashboard{
		User:         username,
		CurrentMonth: MonthLabel(d.Month.Start),
		Stats: Stats{
			TotalMonthlyExpenses: d.TotalMonthlyExpenses.StringFixed(2),
			FormattedMonthly:     FormatAmount(d.TotalMonthlyExpenses),
			ExpenseCount:         d.ExpenseCount,
			CategoryCount:        d.CategoryCount,
			BudgetCount:          d.ActiveBudgetCount,
			TotalBudgetAmount:    d.TotalBudgetAmount.StringFixed(2),
			RemainingBudget:      d.RemainingBudget.StringFixed(2),
		},
		Budgets:            NewBudgets(d.Budgets),
		ExpensesByCategory: make([]CategorySpend, len(d.TopCategories)),
		RecentExpenses:     NewExpenses(d.RecentExpenses),
		ChartData: ChartData{
			Labels: make([]string, len(d.TopCategories)),
			Data:   make([]float64, len(d.TopCategories)),
			Colors: make([]string, len(d.TopCategories)),
		},
	}

	for i, c := range d.TopCategories {
		out.ExpensesByCategory[i] = CategorySpend{
			Category:       Link{Label: c.Name, URL: CategoryURL(c.CategoryID)},
			Color:          c.Color,
			Total:          c.Total.StringFixed(2),
			FormattedTotal: FormatAmount(c.Total),
			Count:          c.Count,
		}
		out.ChartData.Labels[i] = c.Name
		out.ChartData.Data[i] = c.Total.Round(2).InexactFloat64()
		out.ChartData.Colors[i] = c.Color
	}
	return out
}

// Option is a select option on a form.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions lists categories for a select input.
func CategoryOptions(categories []models.Category) []Option {
	out := make([]Option, len(categories))
	for i, c := range categories {
		out[i] = Option{Value: c.ID, Label: c.Name}
	}
	return out
}

// PeriodOptions lists the budget periods.
func PeriodOptions() []Option {
	out := make([]Option, len(models.BudgetPeriods))
	for i, p := range models.BudgetPeriods {
		label := string(p)
		out[i] = Option{Value: label, Label: titleCase(label)}
	}
	return out
}

// PaymentMethodOptions lists the payment methods.
func PaymentMethodOptions() []Option {
	out := make([]Option, len(models.PaymentMethods))
	for i, m := range models.PaymentMethods {
		out[i] = Option{Value: string(m), Label: PaymentMethodLabel(string(m))}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
