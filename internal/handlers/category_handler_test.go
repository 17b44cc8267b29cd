package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/models"
	"budgettracker/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn          func(userID string, input services.CategoryInput) (*models.Category, error)
	listCategoriesFn          func(userID string) ([]models.Category, error)
	listCategoriesWithStatsFn func(userID string) ([]services.CategoryWithStats, error)
	getCategoryByIDFn         func(userID, categoryID string) (*models.Category, error)
	getCategoryDetailFn       func(userID, categoryID string) (*services.CategoryDetail, error)
	updateCategoryFn          func(userID, categoryID string, input services.CategoryInput) (*models.Category, error)
	deleteCategoryFn          func(userID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(_ context.Context, userID string, input services.CategoryInput) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, input)
	}
	return &models.Category{Base: models.Base{ID: testCategoryID}, UserID: userID, Name: input.Name}, nil
}

func (m *mockCategoryService) ListCategories(_ context.Context, userID string) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(userID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) ListCategoriesWithStats(_ context.Context, userID string) ([]services.CategoryWithStats, error) {
	if m.listCategoriesWithStatsFn != nil {
		return m.listCategoriesWithStatsFn(userID)
	}
	return []services.CategoryWithStats{}, nil
}

func (m *mockCategoryService) GetCategoryByID(_ context.Context, userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return testCategory(), nil
}

func (m *mockCategoryService) GetCategoryDetail(_ context.Context, userID, categoryID string) (*services.CategoryDetail, error) {
	if m.getCategoryDetailFn != nil {
		return m.getCategoryDetailFn(userID, categoryID)
	}
	return &services.CategoryDetail{Category: *testCategory()}, nil
}

func (m *mockCategoryService) UpdateCategory(_ context.Context, userID, categoryID string, input services.CategoryInput) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, input)
	}
	return &models.Category{Base: models.Base{ID: categoryID}, UserID: userID, Name: input.Name}, nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

const testCategoryID = "0190a0a0-0000-7000-8000-0000000000c1"

func testCategory() *models.Category {
	return &models.Category{
		Base:   models.Base{ID: testCategoryID},
		UserID: testUserID,
		Name:   "Food",
		Color:  "#ff0000",
	}
}

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := newTestRouter()
	auth := r.Group("", injectUser(testUser()))
	auth.GET("/budget/categories", handler.ListCategories)
	auth.GET("/budget/category/create", handler.NewCategoryPage)
	auth.POST("/budget/category/create", handler.CreateCategory)
	auth.GET("/budget/category/:id", handler.GetCategory)
	auth.GET("/budget/category/:id/edit", handler.EditCategoryPage)
	auth.POST("/budget/category/:id/edit", handler.UpdateCategory)
	auth.POST("/budget/category/:id/delete", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	svc := &mockCategoryService{
		listCategoriesWithStatsFn: func(userID string) ([]services.CategoryWithStats, error) {
			if userID != testUserID {
				t.Errorf("expected user %s, got %s", testUserID, userID)
			}
			return []services.CategoryWithStats{
				{Category: *testCategory(), ExpenseCount: 3, BudgetCount: 1},
			}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/budget/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["expense_count"].(float64) != 3 || first["budget_count"].(float64) != 1 {
		t.Errorf("unexpected counts: %v", first)
	}
	if first["url"] != "/budget/category/"+testCategoryID {
		t.Errorf("unexpected url %v", first["url"])
	}
}

func TestCategoryHandler_NewCategoryPage(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/budget/category/create", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	form := parseJSON(t, rec)["form"].(map[string]interface{})
	if form["color"] != models.DefaultCategoryColor {
		t.Errorf("expected default color, got %v", form["color"])
	}
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("redirects to the list and records an audit entry", func(t *testing.T) {
		var got services.CategoryInput
		svc := &mockCategoryService{
			createCategoryFn: func(userID string, input services.CategoryInput) (*models.Category, error) {
				got = input
				return &models.Category{Base: models.Base{ID: testCategoryID}, UserID: userID, Name: input.Name, Color: input.Color}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(svc, audit))

		rec := doForm(r, "/budget/category/create", url.Values{"name": {"  Food "}, "color": {"#00ff00"}})

		assertRedirect(t, rec, http.StatusSeeOther, "/budget/categories")
		if got.Name != "Food" || got.Color != "#00ff00" {
			t.Errorf("unexpected input %+v", got)
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != "CREATE_CATEGORY" || audit.entries[0].ResourceID != testCategoryID {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("re-renders the form on validation failure", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(string, services.CategoryInput) (*models.Category, error) {
				t.Fatal("service must not be called for an invalid form")
				return nil, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doForm(r, "/budget/category/create", url.Values{"name": {""}, "color": {"red"}})

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		fields := formErrors(t, result)
		if len(fields) != 2 || fields[0] != "name" || fields[1] != "color" {
			t.Errorf("expected name then color errors, got %v", fields)
		}
		if result["form"].(map[string]interface{})["color"] != "red" {
			t.Error("expected submitted values to be kept")
		}
	})

	t.Run("reports a duplicate name on the name field", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(string, services.CategoryInput) (*models.Category, error) {
				return nil, apperrors.Field("name", "Category name already exists")
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doForm(r, "/budget/category/create", url.Values{"name": {"Food"}})

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if fields := formErrors(t, parseJSON(t, rec)); len(fields) != 1 || fields[0] != "name" {
			t.Errorf("expected a name error, got %v", fields)
		}
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns the detail view", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryDetailFn: func(_, categoryID string) (*services.CategoryDetail, error) {
				return &services.CategoryDetail{
					Category:   *testCategory(),
					TotalSpent: decimal.RequireFromString("42.5"),
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/budget/category/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_spent"] != "42.50" {
			t.Errorf("expected total 42.50, got %v", result["total_spent"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryDetailFn: func(string, string) (*services.CategoryDetail, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/budget/category/nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})

	t.Run("returns 403 for another user's category", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryDetailFn: func(string, string) (*services.CategoryDetail, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/budget/category/"+testCategoryID, "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FORBIDDEN")
	})
}

func TestCategoryHandler_EditCategoryPage(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/budget/category/"+testCategoryID+"/edit", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["action"] != "/budget/category/"+testCategoryID+"/edit" {
		t.Errorf("unexpected action %v", result["action"])
	}
	if result["form"].(map[string]interface{})["name"] != "Food" {
		t.Error("expected stored values in the form")
	}
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("redirects to the detail page", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, audit))

		rec := doForm(r, "/budget/category/"+testCategoryID+"/edit", url.Values{"name": {"Groceries"}})

		assertRedirect(t, rec, http.StatusSeeOther, "/budget/category/"+testCategoryID)
		if got := audit.actions(); len(got) != 1 || got[0] != "UPDATE_CATEGORY" {
			t.Errorf("expected UPDATE_CATEGORY, got %v", got)
		}
	})

	t.Run("returns 403 for another user's category", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(string, string, services.CategoryInput) (*models.Category, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAuditService{}))

		rec := doForm(r, "/budget/category/"+testCategoryID+"/edit", url.Values{"name": {"Groceries"}})

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("redirects to the list", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, audit))

		rec := doForm(r, "/budget/category/"+testCategoryID+"/delete", nil)

		assertRedirect(t, rec, http.StatusSeeOther, "/budget/categories")
		if got := audit.actions(); len(got) != 1 || got[0] != "DELETE_CATEGORY" {
			t.Errorf("expected DELETE_CATEGORY, got %v", got)
		}
	})

	t.Run("returns 409 when the category is in use", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(string, string) error { return apperrors.ErrCategoryInUse },
		}
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(svc, audit))

		rec := doForm(r, "/budget/category/"+testCategoryID+"/delete", nil)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
		if len(audit.entries) != 0 {
			t.Error("no audit entry expected for a failed delete")
		}
	})
}
