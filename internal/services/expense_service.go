package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
	"budgettracker/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense against one of the user's categories.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, input ExpenseInput) (*models.Expense, error) {
	category, err := requireCategory(ctx, s.db, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.Field("amount", "Amount must be a positive number")
	}

	expense := &models.Expense{
		UserID:        userID,
		CategoryID:    category.ID,
		Description:   input.Description,
		Amount:        input.Amount,
		Date:          models.Day(input.Date),
		Notes:         input.Notes,
		PaymentMethod: paymentMethodOrDefault(input.PaymentMethod),
		ReceiptURL:    input.ReceiptURL,
	}
	if err := s.db.WithContext(ctx).Omit("Category").Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.Category = *category
	return expense, nil
}

// ListExpenses returns a page of the user's expenses, most recent first.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	db := s.db.WithContext(ctx)

	var totalItems int64
	if err := db.Model(&models.Expense{}).Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := db.Where("user_id = ?", userID).
		Preload("Category").
		Order("date DESC, created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense if it belongs to the user.
func (s *expenseService) GetExpenseByID(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	return findOwned[models.Expense](ctx, s.db, userID, expenseID, apperrors.ErrExpenseNotFound, "Category")
}

// UpdateExpense replaces an expense's editable fields.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	category, err := requireCategory(ctx, s.db, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.Field("amount", "Amount must be a positive number")
	}

	updates := map[string]interface{}{
		"category_id":    category.ID,
		"description":    input.Description,
		"amount":         input.Amount,
		"date":           models.Day(input.Date),
		"notes":          input.Notes,
		"payment_method": paymentMethodOrDefault(input.PaymentMethod),
		"receipt_url":    input.ReceiptURL,
	}
	if err := s.db.WithContext(ctx).Model(expense).Omit("Category").Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.CategoryID = category.ID
	expense.Category = *category
	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Date = models.Day(input.Date)
	expense.Notes = input.Notes
	expense.PaymentMethod = paymentMethodOrDefault(input.PaymentMethod)
	expense.ReceiptURL = input.ReceiptURL
	return expense, nil
}

// DeleteExpense permanently removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func paymentMethodOrDefault(m models.PaymentMethod) models.PaymentMethod {
	if m == "" {
		return models.PaymentMethodCash
	}
	return m
}
