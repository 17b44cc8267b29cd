package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
	"budgettracker/internal/uuid"
)

// ownable is implemented by records scoped to a single user.
type ownable[T any] interface {
	*T
	OwnerID() string
}

// findOwned loads a record by id and checks it belongs to userID. A
// malformed or unknown id yields notFound; another user's record yields
// ErrForbidden.
func findOwned[T any, PT ownable[T]](ctx context.Context, db *gorm.DB, userID, id string, notFound *apperrors.AppError, preloads ...string) (PT, error) {
	if !uuid.IsValid(id) {
		return nil, notFound
	}

	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var record T
	if err := q.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	owned := PT(&record)
	if owned.OwnerID() != userID {
		return nil, apperrors.ErrForbidden
	}
	return owned, nil
}

// requireCategory checks that categoryID names one of userID's categories,
// reporting any miss as a field error on the submitted form.
func requireCategory(ctx context.Context, db *gorm.DB, userID, categoryID string) (*models.Category, error) {
	category, err := findOwned[models.Category](ctx, db, userID, categoryID, apperrors.ErrCategoryNotFound)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && (appErr == apperrors.ErrCategoryNotFound || appErr == apperrors.ErrForbidden) {
			return nil, apperrors.Field("category", "Invalid category selected")
		}
		return nil, err
	}
	return category, nil
}

// withinDays restricts column to the inclusive calendar-day range.
func withinDays(column string, r DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s >= ? AND %s < ?", column, column), r.Start, r.upperBound())
	}
}

// sumSpent totals a user's expenses in a category, optionally restricted to
// a date window.
func sumSpent(ctx context.Context, db *gorm.DB, userID, categoryID string, window *DateRange) (decimal.Decimal, error) {
	q := db.WithContext(ctx).Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ?", userID, categoryID)
	if window != nil {
		q = q.Scopes(withinDays("date", *window))
	}

	var spent decimal.Decimal
	if err := q.Row().Scan(&spent); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent.Round(2), nil
}

// budgetProgress computes the progress of a budget over its own window.
func budgetProgress(ctx context.Context, db *gorm.DB, budget models.Budget) (BudgetProgress, error) {
	window := NewDateRange(budget.StartDate, budget.EndDate)
	spent, err := sumSpent(ctx, db, budget.UserID, budget.CategoryID, &window)
	if err != nil {
		return BudgetProgress{}, err
	}
	return BudgetProgress{Budget: budget, Progress: ComputeProgress(budget.Amount, spent)}, nil
}

// expenseTotals returns the total and count of a user's expenses in window.
func expenseTotals(ctx context.Context, db *gorm.DB, userID string, window DateRange) (decimal.Decimal, int64, error) {
	var (
		total decimal.Decimal
		count int64
	)
	err := db.WithContext(ctx).Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0), COUNT(*)").
		Where("user_id = ?", userID).
		Scopes(withinDays("date", window)).
		Row().Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total.Round(2), count, nil
}

// spendByCategory groups a user's expenses in window by category.
func spendByCategory(ctx context.Context, db *gorm.DB, userID string, window DateRange) ([]CategorySpend, error) {
	rows, err := db.WithContext(ctx).Table("expenses").
		Select("expenses.category_id, categories.name, categories.color, COALESCE(SUM(expenses.amount), 0), COUNT(*)").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID).
		Scopes(withinDays("expenses.date", window)).
		Group("expenses.category_id, categories.name, categories.color").
		Rows()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer rows.Close()

	var spends []CategorySpend
	for rows.Next() {
		var s CategorySpend
		if err := rows.Scan(&s.CategoryID, &s.Name, &s.Color, &s.Total, &s.Count); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.Total = s.Total.Round(2)
		spends = append(spends, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spends, nil
}

// countByCategory counts a user's rows in table per category.
func countByCategory(ctx context.Context, db *gorm.DB, table, userID string) (map[string]int64, error) {
	rows, err := db.WithContext(ctx).Table(table).
		Select("category_id, COUNT(*)").
		Where("user_id = ?", userID).
		Group("category_id").
		Rows()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			id    string
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return counts, nil
}
