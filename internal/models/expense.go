package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod records how an expense was paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

// PaymentMethods lists the accepted payment methods in display order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodBankTransfer,
	PaymentMethodOther,
}

// Expense represents a single recorded spend
type Expense struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index:idx_expenses_user_date,priority:1;index:idx_expenses_user_category,priority:1" json:"user_id"`
	CategoryID    string          `gorm:"type:uuid;not null;index:idx_expenses_user_category,priority:2" json:"category_id"`
	Description   string          `gorm:"size:200;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index:idx_expenses_user_date,priority:2" json:"date"`
	Notes         string          `gorm:"size:500" json:"notes"`
	PaymentMethod PaymentMethod   `gorm:"size:16;not null;default:'cash'" json:"payment_method"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// OwnerID returns the id of the owning user.
func (e *Expense) OwnerID() string { return e.UserID }
