package svc

import (
	"yqhp/reports/common/utils"
	"yqhp/reports/internal/auth"
	"yqhp/reports/internal/config"
	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"gorm.io/gorm"
)

// ServiceContext 全局服务上下文
type ServiceContext struct {
	Config      *config.Config
	DB          *gorm.DB
	Registry    *report.Registry
	Guard       *report.Guard
	Permissions *auth.PermissionService
}

var Ctx *ServiceContext

// Init 初始化服务上下文
func Init(cfg *config.Config, db *gorm.DB) {
	Ctx = New(cfg, db, report.DefaultRegistry())
}

// New 创建服务上下文并应用报表配置
func New(cfg *config.Config, db *gorm.DB, registry *report.Registry) *ServiceContext {
	report.SetEntityFactory(model.NewEntity)
	report.SetLinkBase(cfg.Reports.LinkBase())
	registry.Exclude(utils.SliceUnique(cfg.Reports.ExcludedReports)...)

	ps := auth.NewPermissionService(db)
	return &ServiceContext{
		Config:      cfg,
		DB:          db,
		Registry:    registry,
		Guard:       report.NewGuard(ps, utils.SliceUnique(cfg.Reports.RequiredPermissions)...),
		Permissions: ps,
	}
}
