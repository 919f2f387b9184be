package entity

import (
	"time"

	"gorm.io/gorm"
)

// Expense = back-office spend; registration mirrors an "out" row into the cash ledger.
type Expense struct {
	gorm.Model
	Description string     `gorm:"not null" json:"description"`
	Category    string     `json:"category"` // ingredients, rent, salary...
	Amount      int64      `json:"amount"`   // centavos
	PaidAt      *time.Time `json:"paidAt,omitempty"`

	SupplierID *uint     `json:"supplierId,omitempty"`
	Supplier   *Supplier `json:"-"`

	CashMovements []CashMovement `json:"-"`
}
