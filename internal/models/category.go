package models

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#007bff"

// Category groups expenses and is the unit budgets are set against
type Category struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name,priority:1" json:"user_id"`
	Name        string `gorm:"size:50;not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	Description string `gorm:"size:200" json:"description"`
	Color       string `gorm:"size:7;not null;default:'#007bff'" json:"color"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
	Budgets  []Budget  `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}

// OwnerID returns the id of the owning user.
func (c *Category) OwnerID() string { return c.UserID }
