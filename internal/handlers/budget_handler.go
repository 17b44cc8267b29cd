package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgettracker/internal/forms"
	"budgettracker/internal/services"
	"budgettracker/internal/view"
)

const (
	budgetListPath     = "/budget"
	budgetCreateAction = "/budget/create"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService   services.BudgetServicer
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
	now             Clock
}

// NewBudgetHandler creates a new BudgetHandler. A nil clock uses time.Now.
func NewBudgetHandler(
	budgetService services.BudgetServicer,
	categoryService services.CategoryServicer,
	auditService services.AuditServicer,
	clock Clock,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:   budgetService,
		categoryService: categoryService,
		auditService:    auditService,
		now:             clockOrNow(clock),
	}
}

// BudgetList is the body of the budget list page.
type BudgetList struct {
	Budgets []view.Budget `json:"budgets"`
}

// ListBudgets handles listing the user's budgets with their progress.
// @Summary     List budgets
// @Description Budgets newest first, each with spent, remaining and percent consumed
// @Tags        budgets
// @Produce     json
// @Success     200 {object} BudgetList "Budgets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetList{Budgets: view.NewBudgets(budgets)})
}

// NewBudgetPage renders a budget form covering the current month.
// @Summary     Budget form
// @Tags        budgets
// @Produce     json
// @Success     200 {object} FormPage "Empty budget form with category and period options"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/create [get]
func (h *BudgetHandler) NewBudgetPage(c *gin.Context) {
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

	renderForm(c, budgetCreateAction, forms.NewBudgetForm(h.now()), options)
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Tags        budgets
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       name       formData string true  "Budget name (1-100 characters)"
// @Param       amount     formData string true  "Amount, at least 0.01"
// @Param       period     formData string false "weekly, monthly or yearly"
// @Param       start_date formData string true  "Start date (YYYY-MM-DD)"
// @Param       end_date   formData string true  "End date (YYYY-MM-DD), after the start"
// @Param       category   formData string true  "Category ID"
// @Success     303 "Redirect to the budget list"
// @Failure     422 {object} FormPage "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/create [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.BudgetForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}

	input, err := form.Validate()
	if err != nil {
		h.rejectForm(c, userID, form, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, input)
	if err != nil {
		h.rejectForm(c, userID, form, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionCreateBudget, services.ResourceBudget, budget.ID, c.ClientIP(),
		map[string]any{"name": budget.Name, "amount": budget.Amount.StringFixed(2), "period": budget.Period})

	seeOther(c, budgetListPath)
}

// GetBudget handles retrieving a budget with the expenses in its window.
// @Summary     Budget detail
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} view.BudgetDetail "Budget detail"
// @Failure     403 {object} ErrorResponse "Budget belongs to another user"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/budget/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.budgetService.GetBudgetDetail(c.Request.Context(), userID, c.Param("id"), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewBudgetDetail(detail))
}

func (h *BudgetHandler) formOptions(c *gin.Context, userID string) (gin.H, error) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"categories": view.CategoryOptions(categories),
		"periods":    view.PeriodOptions(),
	}, nil
}

// rejectForm re-renders a rejected submission with the select options.
func (h *BudgetHandler) rejectForm(c *gin.Context, userID string, form forms.BudgetForm, err error) {
	options, optErr := h.formOptions(c, userID)
	if optErr != nil {
		respondWithError(c, optErr)
		return
	}
	rejectForm(c, budgetCreateAction, form, options, err)
}
