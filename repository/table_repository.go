package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) FindByID(id uint) (*entity.DiningTable, error) {
	var t entity.DiningTable
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List() ([]entity.DiningTable, error) {
	var rows []entity.DiningTable
	err := r.DB.Order("number").Find(&rows).Error
	return rows, err
}

func (r *TableRepository) SetStatus(tx *gorm.DB, tableID uint, status string) error {
	return tx.Model(&entity.DiningTable{}).
		Where("id = ?", tableID).
		Update("status", status).Error
}
