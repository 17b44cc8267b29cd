package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new active budget for one of the user's categories.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, input BudgetInput) (*models.Budget, error) {
	category, err := requireCategory(ctx, s.db, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	start, end := models.Day(input.StartDate), models.Day(input.EndDate)
	if !end.After(start) {
		return nil, apperrors.Field("end_date", "End date must be after start date")
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.Field("amount", "Amount must be a positive number")
	}

	period := input.Period
	if period == "" {
		period = models.BudgetPeriodMonthly
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: category.ID,
		Name:       input.Name,
		Amount:     input.Amount,
		Period:     period,
		StartDate:  start,
		EndDate:    end,
		IsActive:   true,
	}
	if err := s.db.WithContext(ctx).Omit("Category").Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget.Category = *category
	return budget, nil
}

// ListBudgets returns all of the user's budgets, newest first, each with its
// progress over its own window.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]BudgetProgress, error) {
	var budgets []models.Budget
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		progress, err := budgetProgress(ctx, s.db, b)
		if err != nil {
			return nil, err
		}
		result = append(result, progress)
	}
	return result, nil
}

// GetBudgetDetail returns a budget's progress, the expenses counted towards
// it and the days left until it ends.
func (s *budgetService) GetBudgetDetail(ctx context.Context, userID, budgetID string, now time.Time) (*BudgetDetail, error) {
	budget, err := findOwned[models.Budget](ctx, s.db, userID, budgetID, apperrors.ErrBudgetNotFound, "Category")
	if err != nil {
		return nil, err
	}

	progress, err := budgetProgress(ctx, s.db, *budget)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, budget.CategoryID).
		Scopes(withinDays("date", NewDateRange(budget.StartDate, budget.EndDate))).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &BudgetDetail{
		BudgetProgress: progress,
		Expenses:       expenses,
		DaysRemaining:  DaysRemaining(budget.EndDate, now),
	}, nil
}
