package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgettracker/internal/models"
	"budgettracker/internal/pagination"
)

// UserServicer defines the contract for registration and credential checks.
type UserServicer interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// SessionServicer defines the contract for server-side login sessions.
type SessionServicer interface {
	Create(ctx context.Context, userID *string, returnTo string) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	SetReturnTo(ctx context.Context, id, returnTo string) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// CategoryInput carries validated category fields.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

// CategoryWithStats is a category plus the number of records referencing it.
type CategoryWithStats struct {
	models.Category
	ExpenseCount int64 `json:"expense_count"`
	BudgetCount  int64 `json:"budget_count"`
}

// CategoryDetail is a category with its recent activity and lifetime spend.
type CategoryDetail struct {
	Category       models.Category  `json:"category"`
	RecentExpenses []models.Expense `json:"recent_expenses"`
	Budgets        []BudgetProgress `json:"budgets"`
	TotalSpent     decimal.Decimal  `json:"total_spent"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID string, input CategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	ListCategoriesWithStats(ctx context.Context, userID string) ([]CategoryWithStats, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	GetCategoryDetail(ctx context.Context, userID, categoryID string) (*CategoryDetail, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// BudgetInput carries validated budget fields.
type BudgetInput struct {
	CategoryID string
	Name       string
	Amount     decimal.Decimal
	Period     models.BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetProgress contains spending vs budget data for a budget's window.
type BudgetProgress struct {
	Budget models.Budget `json:"budget"`
	Progress
}

// BudgetDetail is a budget's progress with the expenses inside its window.
type BudgetDetail struct {
	BudgetProgress
	Expenses      []models.Expense `json:"expenses"`
	DaysRemaining int              `json:"days_remaining"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, userID string, input BudgetInput) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]BudgetProgress, error)
	GetBudgetDetail(ctx context.Context, userID, budgetID string, now time.Time) (*BudgetDetail, error)
}

// ExpenseInput carries validated expense fields.
type ExpenseInput struct {
	CategoryID    string
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	Notes         string
	PaymentMethod models.PaymentMethod
	ReceiptURL    string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID string, input ExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(ctx context.Context, userID, expenseID string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// Dashboard is the summary shown on the landing page.
type Dashboard struct {
	Month                DateRange        `json:"month"`
	TotalMonthlyExpenses decimal.Decimal  `json:"total_monthly_expenses"`
	ExpenseCount         int64            `json:"expense_count"`
	CategoryCount        int64            `json:"category_count"`
	ActiveBudgetCount    int64            `json:"active_budget_count"`
	TotalBudgetAmount    decimal.Decimal  `json:"total_budget_amount"`
	RemainingBudget      decimal.Decimal  `json:"remaining_budget"`
	Budgets              []BudgetProgress `json:"budgets"`
	TopCategories        []CategorySpend  `json:"top_categories"`
	RecentExpenses       []models.Expense `json:"recent_expenses"`
}

// DashboardServicer builds the dashboard summary.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
