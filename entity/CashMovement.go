package entity

import (
	"gorm.io/gorm"
)

const (
	CashMovementIn  = "in"
	CashMovementOut = "out"
)

// CashMovement = cash ledger row. Written on order completion, expense
// registration and manual entries.
type CashMovement struct {
	gorm.Model
	Type          string `gorm:"size:5;not null" json:"type"` // in / out
	Amount        int64  `json:"amount"`                      // centavos, always positive
	Description   string `json:"description"`
	PaymentMethod string `gorm:"size:30" json:"paymentMethod"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`

	ExpenseID *uint    `json:"expenseId,omitempty"`
	Expense   *Expense `json:"-"`

	CreatedByID *uint `json:"createdById,omitempty"`
	CreatedBy   *User `json:"-"`
}
