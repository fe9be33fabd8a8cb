package model

import (
	"yqhp/reports/common/types"
)

// User 后台用户
type User struct {
	BaseModel
	Username    string          `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password    string          `gorm:"size:255;not null" json:"-"`
	Nickname    string          `gorm:"size:50" json:"nickname"`
	Email       string          `gorm:"size:100" json:"email"`
	Status      int8            `gorm:"not null" json:"status"`
	LastLoginAt *types.DateTime `json:"lastLoginAt"`
	LastLoginIP string          `gorm:"size:50" json:"lastLoginIp"`
	Roles       []Role          `gorm:"many2many:sys_user_role;" json:"roles"`
}

// TableName 表名
func (User) TableName() string {
	return "sys_user"
}

// Enabled 是否启用
func (u *User) Enabled() bool {
	return u.Status == StatusEnabled
}

// UserRole 用户角色关联表
type UserRole struct {
	UserID uint `gorm:"primaryKey"`
	RoleID uint `gorm:"primaryKey"`
}

// TableName 表名
func (UserRole) TableName() string {
	return "sys_user_role"
}
