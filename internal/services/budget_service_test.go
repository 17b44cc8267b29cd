package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"budgettracker/internal/models"
	"budgettracker/internal/testutil"
	"budgettracker/internal/uuid"
)

func budgetInput(categoryID, amount string, start, end time.Time) BudgetInput {
	return BudgetInput{
		CategoryID: categoryID,
		Name:       "Groceries",
		Amount:     decimal.RequireFromString(amount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  start,
		EndDate:    end,
	}
}

func TestCreateBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		budget, err := svc.CreateBudget(ctx, user.ID, budgetInput(cat.ID, "500", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31)))
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected budget ID")
		}
		if !budget.IsActive {
			t.Error("expected budget to be active")
		}
		if budget.Category.ID != cat.ID {
			t.Errorf("expected category %s attached, got %q", cat.ID, budget.Category.ID)
		}
	})

	t.Run("end_not_after_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.CreateBudget(ctx, user.ID, budgetInput(cat.ID, "500", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 1)))
		testutil.AssertFieldError(t, err, "end_date", "End date must be after start date")

		var count int64
		db.Model(&models.Budget{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no budget stored, got %d", count)
		}
	})

	t.Run("foreign_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, other.ID)

		_, err := svc.CreateBudget(ctx, user.ID, budgetInput(cat.ID, "500", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31)))
		testutil.AssertFieldError(t, err, "category", "Invalid category selected")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(ctx, user.ID, budgetInput(uuid.New(), "500", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31)))
		testutil.AssertFieldError(t, err, "category", "Invalid category selected")
	})
}

func TestListBudgets(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, user.ID)
	otherCat := testutil.CreateTestCategory(t, db, other.ID)

	older := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "500", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31))
	newer := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "0", testutil.Date(2024, 4, 1), testutil.Date(2024, 4, 30))
	testutil.CreateTestBudget(t, db, other.ID, otherCat.ID, "10", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31))

	// Both window edges count; the day after does not.
	testutil.CreateTestExpense(t, db, user.ID, cat.ID, "100", testutil.Date(2024, 3, 1))
	testutil.CreateTestExpense(t, db, user.ID, cat.ID, "25", time.Date(2024, 3, 31, 22, 0, 0, 0, time.UTC))
	testutil.CreateTestExpense(t, db, user.ID, cat.ID, "999", testutil.Date(2024, 4, 1))
	testutil.CreateTestExpense(t, db, other.ID, otherCat.ID, "7", testutil.Date(2024, 3, 5))

	list, err := svc.ListBudgets(ctx, user.ID)
	testutil.AssertNoError(t, err)

	if len(list) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(list))
	}
	if list[0].Budget.ID != newer.ID || list[1].Budget.ID != older.ID {
		t.Errorf("expected newest first")
	}

	march := list[1]
	if march.Spent.String() != "125" || march.Remaining.String() != "375" || march.Percent != 25 {
		t.Errorf("expected spent 125, remaining 375, 25%%; got %s, %s, %v", march.Spent, march.Remaining, march.Percent)
	}

	april := list[0]
	if april.Percent != 0 || april.Remaining.String() != "-999" {
		t.Errorf("expected zero budget to give 0%% and -999 remaining, got %v, %s", april.Percent, april.Remaining)
	}
	if march.Budget.Category.ID != cat.ID {
		t.Error("expected category preloaded")
	}
}

func TestGetBudgetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("overspent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "100", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31))
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, "90", testutil.Date(2024, 3, 2))
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, "60", testutil.Date(2024, 3, 20))
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, "5", testutil.Date(2024, 2, 29))

		now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
		detail, err := svc.GetBudgetDetail(ctx, user.ID, budget.ID, now)
		testutil.AssertNoError(t, err)

		if detail.Remaining.String() != "-50" || detail.Percent != 100 {
			t.Errorf("expected -50 remaining at 100%%, got %s at %v", detail.Remaining, detail.Percent)
		}
		if len(detail.Expenses) != 2 {
			t.Fatalf("expected 2 expenses in window, got %d", len(detail.Expenses))
		}
		if !detail.Expenses[0].Date.Equal(testutil.Date(2024, 3, 20)) {
			t.Errorf("expected newest expense first, got %s", detail.Expenses[0].Date)
		}
		if detail.DaysRemaining != 11 {
			t.Errorf("expected 11 days remaining, got %d", detail.DaysRemaining)
		}
	})

	t.Run("ended", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "100", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31))

		detail, err := svc.GetBudgetDetail(ctx, user.ID, budget.ID, testutil.Date(2024, 6, 1))
		testutil.AssertNoError(t, err)
		if detail.DaysRemaining != 0 {
			t.Errorf("expected 0 days remaining, got %d", detail.DaysRemaining)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetDetail(ctx, user.ID, uuid.New(), time.Now())
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, owner.ID)
		budget := testutil.CreateTestBudget(t, db, owner.ID, cat.ID, "100", testutil.Date(2024, 3, 1), testutil.Date(2024, 3, 31))

		_, err := svc.GetBudgetDetail(ctx, intruder.ID, budget.ID, time.Now())
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}
