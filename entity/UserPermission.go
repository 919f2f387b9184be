package entity

import (
	"gorm.io/gorm"
)

// fine-grained flags on top of role, e.g. "cash.manual", "coupons.manage"
type UserPermission struct {
	gorm.Model
	UserID     uint   `json:"userId" gorm:"index:uniq_user_perm,unique"`
	User       User   `json:"-"`
	Permission string `gorm:"size:100;not null;index:uniq_user_perm,unique" json:"permission"`
}

func (UserPermission) TableName() string { return "user_permissions" }
