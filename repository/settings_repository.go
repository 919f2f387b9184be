package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the single settings row, falling back to defaults when the seed
// has not run (tests, fresh DB).
func (r *SettingsRepository) Get() (*entity.RestaurantSetting, error) {
	var s entity.RestaurantSetting
	err := r.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.RestaurantSetting{
			Open:               true,
			LoyaltyEarnRate:    1,
			LoyaltyRedeemValue: 1,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(updates map[string]any) (*entity.RestaurantSetting, error) {
	var s entity.RestaurantSetting
	if err := r.DB.First(&s).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&s).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
