package types

import "yqhp/reports/common/types"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token       string    `json:"token"`
	UserInfo    *UserInfo `json:"userInfo"`
	Roles       []string  `json:"roles"`
	Permissions []string  `json:"permissions"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID          uint            `json:"id"`
	Username    string          `json:"username"`
	Nickname    string          `json:"nickname"`
	Email       string          `json:"email"`
	LastLoginAt *types.DateTime `json:"lastLoginAt"`
	Roles       []RoleRef       `json:"roles"`
}

// RoleRef 角色引用
type RoleRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
