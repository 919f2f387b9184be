package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// ---------------- Permissions ----------------

func (r *UserRepository) ListPermissions(userID uint) ([]entity.UserPermission, error) {
	var rows []entity.UserPermission
	err := r.DB.Where("user_id = ?", userID).Order("permission").Find(&rows).Error
	return rows, err
}

func (r *UserRepository) GrantPermission(userID uint, perm string) error {
	row := entity.UserPermission{UserID: userID, Permission: perm}
	return r.DB.Create(&row).Error
}

func (r *UserRepository) RevokePermission(userID uint, perm string) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND permission = ?", userID, perm).
		Delete(&entity.UserPermission{}).Error
}
