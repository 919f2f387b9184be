package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{DB: db} }

// UpsertByPhone: first match on the raw phone string wins (no normalization,
// same as the storefront behaved); missing name/address are filled in.
func (r *CustomerRepository) UpsertByPhone(tx *gorm.DB, name, phone, address string) (*entity.Customer, error) {
	var cust entity.Customer
	err := tx.Where("phone = ?", phone).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cust = entity.Customer{Name: name, Phone: phone, Address: address}
		if err := tx.Create(&cust).Error; err != nil {
			return nil, err
		}
		return &cust, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name != "" && cust.Name != name {
		updates["name"] = name
	}
	if address != "" && cust.Address != address {
		updates["address"] = address
	}
	if len(updates) > 0 {
		if err := tx.Model(&cust).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

// DebitPoints only succeeds while the balance covers the debit.
func (r *CustomerRepository) DebitPoints(tx *gorm.DB, customerID uint, points int) (bool, error) {
	res := tx.Model(&entity.Customer{}).
		Where("id = ? AND loyalty_points >= ?", customerID, points).
		Update("loyalty_points", gorm.Expr("loyalty_points - ?", points))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CustomerRepository) CreditPoints(tx *gorm.DB, customerID uint, points int) error {
	return tx.Model(&entity.Customer{}).
		Where("id = ?", customerID).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
}

func (r *CustomerRepository) CreateLoyaltyTx(tx *gorm.DB, row *entity.LoyaltyTransaction) error {
	return tx.Create(row).Error
}

func (r *CustomerRepository) ListLoyaltyTx(customerID uint, limit int) ([]entity.LoyaltyTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []entity.LoyaltyTransaction
	err := r.DB.Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Find(&rows).Error
	return rows, err
}
