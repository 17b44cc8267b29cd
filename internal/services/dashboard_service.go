package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
)

const (
	dashboardTopCategories  = 5
	dashboardRecentExpenses = 5
)

// dashboardService assembles the dashboard summary.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetDashboard summarises the calendar month containing now: month totals,
// the top spending categories, and the active budgets covering today ranked
// by how much of them is used up.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error) {
	month := MonthOf(now)
	db := s.db.WithContext(ctx)

	total, count, err := expenseTotals(ctx, s.db, userID, month)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		Month:                month,
		TotalMonthlyExpenses: total,
		ExpenseCount:         count,
		TotalBudgetAmount:    decimal.Zero,
	}

	if err := db.Model(&models.Category{}).Where("user_id = ?", userID).Count(&dash.CategoryCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Model(&models.Budget{}).Where("user_id = ? AND is_active = ?", userID, true).Count(&dash.ActiveBudgetCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budgets, err := s.currentBudgets(ctx, userID, models.Day(now))
	if err != nil {
		return nil, err
	}
	dash.Budgets = budgets
	for _, b := range budgets {
		dash.TotalBudgetAmount = dash.TotalBudgetAmount.Add(b.Budgeted)
	}
	dash.RemainingBudget = dash.TotalBudgetAmount.Sub(total)

	spends, err := spendByCategory(ctx, s.db, userID, month)
	if err != nil {
		return nil, err
	}
	dash.TopCategories = TopCategories(spends, dashboardTopCategories)

	if err := db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(dashboardRecentExpenses).
		Find(&dash.RecentExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return dash, nil
}

// currentBudgets returns the active budgets whose window contains today,
// ranked by progress.
func (s *dashboardService) currentBudgets(ctx context.Context, userID string, today time.Time) ([]BudgetProgress, error) {
	var budgets []models.Budget
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?", userID, true, today, today).
		Order("created_at DESC, id DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ranked := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		progress, err := budgetProgress(ctx, s.db, b)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, progress)
	}
	RankByProgress(ranked)
	return ranked, nil
}
