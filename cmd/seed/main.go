package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgettracker/internal/config"
	"budgettracker/internal/database"
	"budgettracker/internal/logger"
	"budgettracker/internal/models"
	"budgettracker/internal/services"
)

const (
	demoUsername = "demo"
	demoPassword = "password123"
	demoExpenses = 20
)

const usage = "usage: seed [--force]"

type demoCategory struct {
	name         string
	description  string
	color        string
	descriptions []string
}

var demoCategories = []demoCategory{
	{"Food & Dining", "Groceries, restaurants, takeout", "#FF6B6B",
		[]string{"Grocery shopping", "Lunch at cafe", "Pizza delivery", "Coffee shop", "Restaurant dinner"}},
	{"Transportation", "Gas, public transport, car maintenance", "#4ECDC4",
		[]string{"Gas station", "Bus fare", "Uber ride", "Car maintenance", "Parking fee"}},
	{"Shopping", "Clothing, electronics, household items", "#45B7D1",
		[]string{"Online purchase", "Clothing store", "Electronics", "Home supplies", "Gift purchase"}},
	{"Entertainment", "Movies, games, subscriptions", "#96CEB4",
		[]string{"Movie tickets", "Streaming service", "Concert tickets", "Video game", "Book purchase"}},
	{"Bills & Utilities", "Rent, electricity, internet, phone", "#FFEAA7",
		[]string{"Electricity bill", "Internet bill", "Phone bill", "Water bill", "Rent payment"}},
	{"Healthcare", "Medical expenses, pharmacy, insurance", "#DDA0DD",
		[]string{"Pharmacy", "Doctor visit", "Dental checkup", "Health insurance", "Vitamins"}},
	{"Education", "Books, courses, training", "#98D8C8",
		[]string{"Online course", "Textbook", "Workshop fee", "Certification", "Training materials"}},
	{"Travel", "Vacation, business trips, hotels", "#F7DC6F",
		[]string{"Hotel booking", "Flight ticket", "Travel insurance", "Vacation expense", "Business trip"}},
}

type demoBudget struct {
	name     string
	category string
	amount   string
}

var demoBudgets = []demoBudget{
	{"Monthly Food Budget", "Food & Dining", "500"},
	{"Transportation Budget", "Transportation", "200"},
	{"Entertainment Budget", "Entertainment", "150"},
}

var demoPaymentMethods = []models.PaymentMethod{
	models.PaymentMethodCash,
	models.PaymentMethodCreditCard,
	models.PaymentMethodDebitCard,
}

// summary counts the rows a seed run created.
type summary struct {
	Users      int
	Categories int
	Budgets    int
	Expenses   int
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(args []string) error {
	force, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Env == "production" && !force {
		return errors.New("refusing to wipe a production database without --force")
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	now := time.Now().UTC()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	sum, err := seed(context.Background(), dbManager.DB(), now, rng)
	if err != nil {
		return err
	}

	logger.Get().Infow("Demo data created",
		"username", demoUsername,
		"users", sum.Users,
		"categories", sum.Categories,
		"budgets", sum.Budgets,
		"expenses", sum.Expenses,
	)
	return nil
}

func parseArgs(args []string) (bool, error) {
	switch {
	case len(args) == 0:
		return false, nil
	case len(args) == 1 && args[0] == "--force":
		return true, nil
	default:
		return false, errors.New(usage)
	}
}

// seed wipes every table and loads the demo account: the user, its
// categories, budgets for the month containing now and expenses dated
// between the first of that month and now.
func seed(ctx context.Context, db *gorm.DB, now time.Time, rng *rand.Rand, opts ...services.UserOption) (summary, error) {
	var sum summary

	if err := clearTables(ctx, db); err != nil {
		return sum, err
	}

	user, err := services.NewUserService(db, opts...).Register(ctx, demoUsername, demoPassword)
	if err != nil {
		return sum, fmt.Errorf("failed to create demo user: %w", err)
	}
	sum.Users++

	categorySvc := services.NewCategoryService(db)
	categoryIDs := make(map[string]string, len(demoCategories))
	for _, c := range demoCategories {
		category, err := categorySvc.CreateCategory(ctx, user.ID, services.CategoryInput{
			Name:        c.name,
			Description: c.description,
			Color:       c.color,
		})
		if err != nil {
			return sum, fmt.Errorf("failed to create category %q: %w", c.name, err)
		}
		categoryIDs[c.name] = category.ID
		sum.Categories++
	}

	month := services.MonthOf(now)
	budgetSvc := services.NewBudgetService(db)
	for _, b := range demoBudgets {
		if _, err := budgetSvc.CreateBudget(ctx, user.ID, services.BudgetInput{
			CategoryID: categoryIDs[b.category],
			Name:       b.name,
			Amount:     decimal.RequireFromString(b.amount),
			Period:     models.BudgetPeriodMonthly,
			StartDate:  month.Start,
			EndDate:    month.End,
		}); err != nil {
			return sum, fmt.Errorf("failed to create budget %q: %w", b.name, err)
		}
		sum.Budgets++
	}

	expenseSvc := services.NewExpenseService(db)
	for range demoExpenses {
		c := demoCategories[rng.IntN(len(demoCategories))]
		if _, err := expenseSvc.CreateExpense(ctx, user.ID, services.ExpenseInput{
			CategoryID:    categoryIDs[c.name],
			Description:   c.descriptions[rng.IntN(len(c.descriptions))],
			Amount:        decimal.New(1000+rng.Int64N(10000), -2),
			Date:          month.Start.AddDate(0, 0, rng.IntN(now.Day())),
			PaymentMethod: demoPaymentMethods[rng.IntN(len(demoPaymentMethods))],
		}); err != nil {
			return sum, fmt.Errorf("failed to create expense: %w", err)
		}
		sum.Expenses++
	}

	return sum, nil
}

// clearTables deletes all rows, children before parents.
func clearTables(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.AuditLog{},
		&models.Expense{},
		&models.Budget{},
		&models.Category{},
		&models.Session{},
		&models.User{},
	} {
		if err := tx.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}
