package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgettracker/internal/forms"
	"budgettracker/internal/services"
	"budgettracker/internal/view"
)

const (
	categoryListPath     = "/budget/categories"
	categoryCreateAction = "/budget/category/create"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CategoryList is the body of the category list page.
type CategoryList struct {
	Categories []view.Category `json:"categories"`
}

// ListCategories handles listing the user's categories.
// @Summary     List categories
// @Description Categories ordered by name, each with its expense and budget counts
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoryList "Categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategoriesWithStats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := CategoryList{Categories: make([]view.Category, len(categories))}
	for i, category := range categories {
		out.Categories[i] = view.NewCategoryWithStats(category)
	}
	c.JSON(http.StatusOK, out)
}

// NewCategoryPage renders an empty category form.
// @Summary     Category form
// @Tags        categories
// @Produce     json
// @Success     200 {object} FormPage "Empty category form"
// @Router      /budget/category/create [get]
func (h *CategoryHandler) NewCategoryPage(c *gin.Context) {
	renderForm(c, categoryCreateAction, forms.NewCategoryForm(), nil)
}

// CreateCategory handles the creation of a new category.
// @Summary     Create a category
// @Tags        categories
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       name        formData string true  "Category name (1-50 characters, unique)"
// @Param       description formData string false "Description (up to 200 characters)"
// @Param       color       formData string false "Hex color, default #007bff"
// @Success     303 "Redirect to the category list"
// @Failure     422 {object} FormPage "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/category/create [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var form forms.CategoryForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	input, err := form.Validate()
	if err != nil {
		rejectForm(c, categoryCreateAction, form, nil, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, input)
	if err != nil {
		rejectForm(c, categoryCreateAction, form, nil, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionCreateCategory, services.ResourceCategory, category.ID, c.ClientIP(),
		map[string]any{"name": category.Name, "color": category.Color})

	seeOther(c, categoryListPath)
}

// GetCategory handles retrieving a category with its recent activity.
// @Summary     Category detail
// @Description The category, its 10 most recent expenses, its budgets with progress and the total spent
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} view.CategoryDetail "Category detail"
// @Failure     403 {object} ErrorResponse "Category belongs to another user"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/category/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.categoryService.GetCategoryDetail(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewCategoryDetail(detail))
}

// EditCategoryPage renders the category form filled with stored values.
// @Summary     Category edit form
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} FormPage "Filled category form"
// @Failure     403 {object} ErrorResponse "Category belongs to another user"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /budget/category/{id}/edit [get]
func (h *CategoryHandler) EditCategoryPage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	renderForm(c, view.EditURL(view.CategoryURL(category.ID)), forms.CategoryFormFrom(category), nil)
}

// UpdateCategory handles updating an existing category.
// @Summary     Update a category
// @Tags        categories
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       id          path     string true  "Category ID"
// @Param       name        formData string true  "Category name"
// @Param       description formData string false "Description"
// @Param       color       formData string false "Hex color"
// @Success     303 "Redirect to the category detail"
// @Failure     403 {object} ErrorResponse "Category belongs to another user"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} FormPage "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/category/{id}/edit [post]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID := c.Param("id")
	action := view.EditURL(view.CategoryURL(categoryID))

	var form forms.CategoryForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	input, err := form.Validate()
	if err != nil {
		rejectForm(c, action, form, nil, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, categoryID, input)
	if err != nil {
		rejectForm(c, action, form, nil, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionUpdateCategory, services.ResourceCategory, category.ID, c.ClientIP(),
		map[string]any{"name": category.Name, "description": category.Description, "color": category.Color})

	seeOther(c, view.CategoryURL(category.ID))
}

// DeleteCategory handles deleting an unreferenced category.
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     303 "Redirect to the category list"
// @Failure     403 {object} ErrorResponse "Category belongs to another user"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has expenses or budgets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/category/{id}/delete [post]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID := c.Param("id")
	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.ActionDeleteCategory, services.ResourceCategory, categoryID, c.ClientIP(), nil)

	seeOther(c, categoryListPath)
}
