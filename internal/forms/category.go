package forms

import (
	"strings"

	"budgettracker/internal/models"
	"budgettracker/internal/services"
	"budgettracker/internal/validator"
)

// CategoryForm is the category create/edit submission.
type CategoryForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Color       string `form:"color" json:"color"`
}

// NewCategoryForm returns an empty form with the default color.
func NewCategoryForm() CategoryForm {
	return CategoryForm{Color: models.DefaultCategoryColor}
}

// CategoryFormFrom fills the form from a stored category.
func CategoryFormFrom(category *models.Category) CategoryForm {
	return CategoryForm{
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
	}
}

// Validate checks the submission and returns the service input.
func (f *CategoryForm) Validate() (services.CategoryInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Color = strings.TrimSpace(f.Color)
	if f.Color == "" {
		f.Color = models.DefaultCategoryColor
	}

	var c checker
	c.check(lengthBetween(f.Name, 1, 50), "name", "Category name must be between 1 and 50 characters")
	c.check(maxLength(f.Description, 200), "description", "Description must not exceed 200 characters")
	c.check(validator.Check(f.Color, "hex_color"), "color", "Color must be a valid hex color code")
	if err := c.err(); err != nil {
		return services.CategoryInput{}, err
	}

	return services.CategoryInput{
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
	}, nil
}
