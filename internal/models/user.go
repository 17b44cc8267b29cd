package models

// User represents a registered account holder
type User struct {
	Base
	Username     string     `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Categories   []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Budgets      []Budget   `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Expenses     []Expense  `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
