package services

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

// ExpenseService registers a spend and mirrors it into the cash ledger in the
// same transaction.
type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

type ExpenseIn struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	SupplierID  *uint  `json:"supplierId,omitempty"`
}

func (s *ExpenseService) Create(createdBy *uint, in *ExpenseIn) (*entity.Expense, error) {
	now := time.Now()
	exp := entity.Expense{
		Description: in.Description,
		Category:    in.Category,
		Amount:      in.Amount,
		PaidAt:      &now,
		SupplierID:  in.SupplierID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&exp).Error; err != nil {
			return err
		}
		mov := entity.CashMovement{
			Type:        entity.CashMovementOut,
			Amount:      in.Amount,
			Description: in.Description,
			ExpenseID:   &exp.ID,
			CreatedByID: createdBy,
		}
		return tx.Create(&mov).Error
	})
	if err != nil {
		return nil, err
	}
	return &exp, nil
}
