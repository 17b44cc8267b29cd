package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgettracker/internal/forms"
	"budgettracker/internal/pagination"
	"budgettracker/internal/services"
	"budgettracker/internal/view"
)

const (
	expenseListPath     = "/budget/expenses"
	expenseCreateAction = "/budget/expense/create"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService  services.ExpenseServicer
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
	now             Clock
}

// NewExpenseHandler creates a new ExpenseHandler. A nil clock uses time.Now.
func NewExpenseHandler(
	expenseService services.ExpenseServicer,
	categoryService services.CategoryServicer,
	auditService services.AuditServicer,
	clock Clock,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:  expenseService,
		categoryService: categoryService,
		auditService:    auditService,
		now:             clockOrNow(clock),
	}
}

// ListExpenses handles listing the user's expenses one page at a time.
// @Summary     List expenses
// @Description Expenses newest first, 20 per page
// @Tags        expenses
// @Produce     json
// @Param       page query int false "Page number (default 1)"
// @Success     200 {object} view.ExpensePage "One page of expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	result, err := h.expenseService.ListExpenses(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewExpensePage(result))
}

// NewExpensePage renders an expense form dated today.
// @Summary     Expense form
// @Tags        expenses
// @Produce     json
// @Success     200 {object} FormPage "Empty expense form with category and payment method options"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/create [get]
func (h *ExpenseHandler) NewExpensePage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	options, err := h.formOptions(c, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	renderForm(c, expenseCreateAction, forms.NewExpenseForm(h.now()), options)
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       description    formData string true  "Description (1-200 characters)"
// @Param       amount         formData string true  "Amount, at least 0.01"
// @Param       date           formData string false "Date (YYYY-MM-DD), default today"
// @Param       category       formData string true  "Category ID"
// @Param       notes          formData string false "Notes (up to 500 characters)"
// @Param       payment_method formData string false "cash, credit_card, debit_card, bank_transfer or other"
// @Param       receipt_url    formData string false "Receipt URL"
// @Success     303 "Redirect to the expense list"
// @Failure     422 {object} FormPage "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/create [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.ExpenseForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	input, err := form.Validate(h.now())
	if err != nil {
		h.rejectForm(c, userID, expenseCreateAction, form, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, input)
	if err != nil {
		h.rejectForm(c, userID, expenseCreateAction, form, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionCreateExpense, services.ResourceExpense, expense.ID, c.ClientIP(),
		map[string]any{"description": expense.Description, "amount": expense.Amount.StringFixed(2), "category_id": expense.CategoryID})

	seeOther(c, expenseListPath)
}

// GetExpense handles retrieving a single expense.
// @Summary     Expense detail
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} view.Expense "Expense"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": view.NewExpense(*expense)})
}

// EditExpensePage renders the expense form filled with stored values.
// @Summary     Expense edit form
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} FormPage "Filled expense form"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/{id}/edit [get]
func (h *ExpenseHandler) EditExpensePage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	options, err := h.formOptions(c, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	renderForm(c, view.EditURL(view.ExpenseURL(expense.ID)), forms.ExpenseFormFrom(expense), options)
}

// UpdateExpense handles updating an existing expense.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       id             path     string true  "Expense ID"
// @Param       description    formData string true  "Description"
// @Param       amount         formData string true  "Amount"
// @Param       date           formData string false "Date (YYYY-MM-DD)"
// @Param       category       formData string true  "Category ID"
// @Param       notes          formData string false "Notes"
// @Param       payment_method formData string false "Payment method"
// @Param       receipt_url    formData string false "Receipt URL"
// @Success     303 "Redirect to the expense detail"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     422 {object} FormPage "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/{id}/edit [post]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	action := view.EditURL(view.ExpenseURL(expenseID))

	var form forms.ExpenseForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	input, err := form.Validate(h.now())
	if err != nil {
		h.rejectForm(c, userID, action, form, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, input)
	if err != nil {
		h.rejectForm(c, userID, action, form, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionUpdateExpense, services.ResourceExpense, expense.ID, c.ClientIP(),
		map[string]any{"description": expense.Description, "amount": expense.Amount.StringFixed(2), "category_id": expense.CategoryID})

	seeOther(c, view.ExpenseURL(expense.ID))
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     303 "Redirect to the expense list"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/expense/{id}/delete [post]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionDeleteExpense, services.ResourceExpense, expenseID, c.ClientIP(), nil)

	seeOther(c, expenseListPath)
}

func (h *ExpenseHandler) formOptions(c *gin.Context, userID string) (gin.H, error) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"categories":      view.CategoryOptions(categories),
		"payment_methods": view.PaymentMethodOptions(),
	}, nil
}

// rejectForm re-renders a rejected submission with the select options.
func (h *ExpenseHandler) rejectForm(c *gin.Context, userID, action string, form forms.ExpenseForm, err error) {
	options, optErr := h.formOptions(c, userID)
	if optErr != nil {
		respondWithError(c, optErr)
		return
	}
	rejectForm(c, action, form, options, err)
}
