package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

// FindByCode is case-insensitive; codes are stored uppercase.
func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var cp entity.Coupon
	err := r.DB.Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).First(&cp).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// ConsumeUse counts one redemption atomically; fails (0 rows) once the cap is
// reached, so concurrent checkouts cannot overspend the coupon.
func (r *CouponRepository) ConsumeUse(tx *gorm.DB, couponID uint) (bool, error) {
	res := tx.Model(&entity.Coupon{}).
		Where("id = ? AND (max_uses = 0 OR current_uses < max_uses)", couponID).
		Update("current_uses", gorm.Expr("current_uses + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var rows []entity.Coupon
	err := r.DB.Order("id DESC").Find(&rows).Error
	return rows, err
}
