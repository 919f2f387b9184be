package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type InventoryRepository struct{ DB *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) List() ([]entity.InventoryItem, error) {
	var rows []entity.InventoryItem
	err := r.DB.Order("name").Find(&rows).Error
	return rows, err
}

func (r *InventoryRepository) ListLowStock() ([]entity.InventoryItem, error) {
	var rows []entity.InventoryItem
	err := r.DB.Where("quantity <= min_quantity").Order("name").Find(&rows).Error
	return rows, err
}

// Consume decrements stock for a sold menu item; the quantity may go negative,
// stock counts are corrected by hand during stocktake.
func (r *InventoryRepository) Consume(tx *gorm.DB, itemID uint, amount float64) error {
	return tx.Model(&entity.InventoryItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity - ?", amount)).Error
}

func (r *InventoryRepository) Restock(tx *gorm.DB, itemID uint, amount float64) error {
	return tx.Model(&entity.InventoryItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", amount)).Error
}
