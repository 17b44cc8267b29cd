package testutil_test

import (
	"testing"
	"time"

	"budgettracker/internal/errors"
	"budgettracker/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "sessions", "categories", "budgets", "expenses", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	second.Table("users").Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, second has %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	category := testutil.CreateTestCategory(t, db, user.ID)
	if category.UserID != user.ID {
		t.Errorf("expected category owned by %s, got %s", user.ID, category.UserID)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, category.ID, "100", testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 31))
	if budget.Amount.String() != "100" {
		t.Errorf("expected budget amount 100, got %s", budget.Amount)
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, category.ID, "12.34", time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC))
	if !expense.Date.Equal(testutil.Date(2024, 1, 5)) {
		t.Errorf("expected expense date truncated to the day, got %s", expense.Date)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestAssertFieldError(t *testing.T) {
	testutil.AssertFieldError(t, errors.Field("category", "Invalid category selected"), "category", "Invalid category selected")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
