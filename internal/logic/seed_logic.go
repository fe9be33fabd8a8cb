package logic

import (
	"yqhp/reports/common/logger"
	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 默认管理员
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123456"
)

// SeedDefaults 空库时创建报表权限、管理员角色与管理员用户
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		resources := []model.Resource{
			{Name: "后台访问", Code: report.PermissionLeftAndMain, Status: model.StatusEnabled},
			{Name: "报表访问", Code: report.PermissionReportAdmin, Status: model.StatusEnabled},
		}
		if err := tx.Create(&resources).Error; err != nil {
			return err
		}

		role := &model.Role{Name: "超级管理员", Code: "admin", Status: model.StatusEnabled, Remark: "拥有所有报表权限", Resources: resources}
		if err := tx.Create(role).Error; err != nil {
			return err
		}

		user := &model.User{
			Username: DefaultAdminUsername,
			Password: hash,
			Nickname: "管理员",
			Status:   model.StatusEnabled,
			Roles:    []model.Role{*role},
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		logger.Info("已初始化默认管理员", zap.String("username", user.Username))
		return nil
	})
}
