package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetItemBasics loads price/availability columns used by cart and checkout.
func (r *MenuRepository) GetItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.
		Select("id, name, price, promotional_price, available, category_id, inventory_item_id, consume_amount").
		First(&m, id).Error
	return m, err
}

// GetVariationsByIDs loads the selected variation rows (available only).
func (r *MenuRepository) GetVariationsByIDs(ids []uint) ([]entity.ItemVariation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []entity.ItemVariation
	err := r.DB.Where("id IN ? AND available = ?", ids, true).Find(&rows).Error
	return rows, err
}

// CountVariationsBelongToItem verifies every selected variation is on this item.
func (r *MenuRepository) CountVariationsBelongToItem(menuItemID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.ItemVariation{}).
		Where("id IN ? AND menu_item_id = ?", ids, menuItemID).
		Count(&cnt).Error
	return cnt, err
}

// RequiredVariationTypes lists variation types the item demands a choice for.
func (r *MenuRepository) RequiredVariationTypes(menuItemID uint) ([]string, error) {
	var types []string
	err := r.DB.Model(&entity.ItemVariation{}).
		Distinct("type").
		Where("menu_item_id = ? AND required = ? AND available = ?", menuItemID, true, true).
		Pluck("type", &types).Error
	return types, err
}
