package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the declared cadence of a budget. It is
// informational only and never drives automatic rollover.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// BudgetPeriods lists the accepted periods in display order.
var BudgetPeriods = []BudgetPeriod{BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly}

// Budget represents a spending limit for a category over [StartDate, EndDate]
type Budget struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index:idx_budgets_user_active,priority:1;index:idx_budgets_user_category,priority:1" json:"user_id"`
	CategoryID string          `gorm:"type:uuid;not null;index:idx_budgets_user_category,priority:2" json:"category_id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Period     BudgetPeriod    `gorm:"size:16;not null;default:'monthly'" json:"period"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    time.Time       `gorm:"not null" json:"end_date"`
	IsActive   bool            `gorm:"not null;default:true;index:idx_budgets_user_active,priority:2" json:"is_active"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// OwnerID returns the id of the owning user.
func (b *Budget) OwnerID() string { return b.UserID }
