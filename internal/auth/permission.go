package auth

import (
	"strings"

	"yqhp/reports/internal/model"

	"gorm.io/gorm"
)

// PermissionService 权限服务，按 用户 -> 角色 -> 资源 解析权限标识
type PermissionService struct {
	db *gorm.DB
}

// NewPermissionService 创建权限服务
func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// GetUserRoles 获取用户启用的角色编码
func (s *PermissionService) GetUserRoles(userID uint) ([]string, error) {
	var codes []string
	err := s.db.Model(&model.Role{}).
		Joins("JOIN sys_user_role ON sys_user_role.role_id = sys_role.id").
		Where("sys_user_role.user_id = ? AND sys_role.status = ?", userID, model.StatusEnabled).
		Pluck("sys_role.code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// GetUserPermissions 获取用户权限标识
func (s *PermissionService) GetUserPermissions(userID uint) ([]string, error) {
	var permissions []string

	// 获取用户启用的角色
	var roleIDs []uint
	err := s.db.Model(&model.UserRole{}).
		Joins("JOIN sys_role ON sys_role.id = sys_user_role.role_id").
		Where("sys_user_role.user_id = ? AND sys_role.status = ?", userID, model.StatusEnabled).
		Pluck("sys_user_role.role_id", &roleIDs).Error
	if err != nil {
		return nil, err
	}

	if len(roleIDs) == 0 {
		return permissions, nil
	}

	// 获取角色关联的资源权限
	var resourceIDs []uint
	err = s.db.Model(&model.RoleResource{}).
		Where("role_id IN ?", roleIDs).
		Pluck("resource_id", &resourceIDs).Error
	if err != nil {
		return nil, err
	}

	if len(resourceIDs) == 0 {
		return permissions, nil
	}

	// 获取资源的权限标识
	err = s.db.Model(&model.Resource{}).
		Where("id IN ? AND code != '' AND status = ?", resourceIDs, model.StatusEnabled).
		Pluck("code", &permissions).Error
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

// HasAnyPermission 判断用户是否拥有任一权限
func (s *PermissionService) HasAnyPermission(userID uint, permissionCodes ...string) (bool, error) {
	permissions, err := s.GetUserPermissions(userID)
	if err != nil {
		return false, err
	}

	for _, perm := range permissions {
		for _, code := range permissionCodes {
			if perm == code || matchWildcard(perm, code) {
				return true, nil
			}
		}
	}
	return false, nil
}

// matchWildcard 通配符匹配
// * 匹配任意字符，? 匹配单个字符
// 如: CMS_ACCESS_* 匹配 CMS_ACCESS_ReportAdmin
func matchWildcard(pattern, target string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?") {
		return false
	}

	pLen, tLen := len(pattern), len(target)
	pIdx, tIdx := 0, 0
	starIdx, matchIdx := -1, 0

	for tIdx < tLen {
		if pIdx < pLen && (pattern[pIdx] == target[tIdx] || pattern[pIdx] == '?') {
			pIdx++
			tIdx++
		} else if pIdx < pLen && pattern[pIdx] == '*' {
			starIdx = pIdx
			matchIdx = tIdx
			pIdx++
		} else if starIdx != -1 {
			pIdx = starIdx + 1
			matchIdx++
			tIdx = matchIdx
		} else {
			return false
		}
	}

	for pIdx < pLen && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == pLen
}
