package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type CashRepository struct{ DB *gorm.DB }

func NewCashRepository(db *gorm.DB) *CashRepository { return &CashRepository{DB: db} }

func (r *CashRepository) Create(tx *gorm.DB, m *entity.CashMovement) error {
	return tx.Create(m).Error
}

func (r *CashRepository) List(from, to *time.Time, limit int) ([]entity.CashMovement, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := r.DB.Model(&entity.CashMovement{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	var rows []entity.CashMovement
	err := q.Order("id DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

// Balance = Σ in − Σ out over the window (whole ledger when nil).
func (r *CashRepository) Balance(from, to *time.Time) (int64, error) {
	q := r.DB.Model(&entity.CashMovement{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	var row struct{ Balance int64 }
	err := q.Select("COALESCE(SUM(CASE WHEN type = 'in' THEN amount ELSE -amount END), 0) AS balance").
		Scan(&row).Error
	return row.Balance, err
}

func (r *CashRepository) CountForOrder(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CashMovement{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
