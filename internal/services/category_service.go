package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
)

const recentCategoryExpenses = 10

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category with a name unique to the user.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, input CategoryInput) (*models.Category, error) {
	if err := s.ensureUniqueName(ctx, userID, input.Name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
	}
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, duplicateNameError(err)
	}
	return category, nil
}

// ListCategories returns the user's categories ordered by name.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ListCategoriesWithStats returns the user's categories ordered by name with
// the number of expenses and budgets referencing each.
func (s *categoryService) ListCategoriesWithStats(ctx context.Context, userID string) ([]CategoryWithStats, error) {
	categories, err := s.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenseCounts, err := countByCategory(ctx, s.db, "expenses", userID)
	if err != nil {
		return nil, err
	}
	budgetCounts, err := countByCategory(ctx, s.db, "budgets", userID)
	if err != nil {
		return nil, err
	}

	result := make([]CategoryWithStats, len(categories))
	for i, c := range categories {
		result[i] = CategoryWithStats{
			Category:     c,
			ExpenseCount: expenseCounts[c.ID],
			BudgetCount:  budgetCounts[c.ID],
		}
	}
	return result, nil
}

// GetCategoryByID returns a category if it belongs to the user.
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	return findOwned[models.Category](ctx, s.db, userID, categoryID, apperrors.ErrCategoryNotFound)
}

// GetCategoryDetail returns a category with its most recent expenses, its
// budgets with progress and the total ever spent in it.
func (s *categoryService) GetCategoryDetail(ctx context.Context, userID, categoryID string) (*CategoryDetail, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var expenses []models.Expense
	if err := db.Where("user_id = ? AND category_id = ?", userID, category.ID).
		Order("date DESC, created_at DESC").
		Limit(recentCategoryExpenses).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := db.Where("user_id = ? AND category_id = ?", userID, category.ID).
		Order("created_at DESC, id DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	detail := &CategoryDetail{
		Category:       *category,
		RecentExpenses: expenses,
		Budgets:        make([]BudgetProgress, 0, len(budgets)),
	}
	for _, b := range budgets {
		b.Category = *category
		progress, err := budgetProgress(ctx, s.db, b)
		if err != nil {
			return nil, err
		}
		detail.Budgets = append(detail.Budgets, progress)
	}

	detail.TotalSpent, err = sumSpent(ctx, s.db, userID, category.ID, nil)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// UpdateCategory replaces a category's editable fields.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, input CategoryInput) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueName(ctx, userID, input.Name, category.ID); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}
	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"color":       color,
	}
	if err := s.db.WithContext(ctx).Model(category).Updates(updates).Error; err != nil {
		return nil, duplicateNameError(err)
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Color = color
	return category, nil
}

// DeleteCategory removes a category that no expense or budget references.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)

	var expenseCount, budgetCount int64
	if err := db.Model(&models.Expense{}).Where("category_id = ?", category.ID).Count(&expenseCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Model(&models.Budget{}).Where("category_id = ?", category.ID).Count(&budgetCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenseCount > 0 || budgetCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ensureUniqueName rejects a name already used by another of the user's
// categories. exceptID excludes the category being edited.
func (s *categoryService) ensureUniqueName(ctx context.Context, userID, name, exceptID string) error {
	q := s.db.WithContext(ctx).Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.Field("name", "Category name already exists")
	}
	return nil
}

// duplicateNameError maps a write that lost the race against a concurrent
// insert of the same name onto the regular validation error.
func duplicateNameError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Field("name", "Category name already exists")
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
