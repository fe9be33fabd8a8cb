package config

import (
	"fmt"
	"os"
	"sync"

	commonConfig "yqhp/reports/common/config"
	"yqhp/reports/internal/report"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	commonConfig.Config `yaml:",inline"`
	Reports             ReportsConfig `yaml:"reports"`
}

// ReportsConfig 报表后台配置
type ReportsConfig struct {
	URLSegment          string   `yaml:"url_segment" validate:"required,excludesall=/?#"`
	AdminBase           string   `yaml:"admin_base" validate:"required"`
	PageSize            int      `yaml:"page_size" validate:"gte=0,lte=1000"`
	ExcludedReports     []string `yaml:"excluded_reports"`
	RequiredPermissions []string `yaml:"required_permissions"`
	RecentDays          int      `yaml:"recent_days" validate:"gte=0"`
}

// LinkBase 报表后台地址前缀，如 admin/reports
func (r ReportsConfig) LinkBase() string {
	return r.AdminBase + "/" + r.URLSegment
}

var (
	globalConfig *Config
	once         sync.Once
	validate     = validator.New()
)

// Default 默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "yqhp-reports"
	cfg.App.Env = "dev"
	cfg.Server.Port = 8080
	cfg.Database.Driver = "sqlite"
	cfg.Database.Database = "reports.db"
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	cfg.Log.Output = "stdout"
	cfg.SaToken.TokenName = "satoken"
	cfg.SaToken.Timeout = 86400
	cfg.SaToken.IsConcurrent = true
	cfg.SaToken.IsShare = true
	cfg.Reports = ReportsConfig{
		URLSegment:          "reports",
		AdminBase:           "admin",
		PageSize:            50,
		RequiredPermissions: []string{report.PermissionLeftAndMain, report.PermissionReportAdmin},
		RecentDays:          7,
	}
	return cfg
}

// Parse 解析并校验配置，未填写的项使用默认值
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig 加载配置文件，只在第一次加载时设置全局配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	once.Do(func() {
		globalConfig = cfg
		// 同步到公共配置
		commonConfig.SetConfig(&cfg.Config)
	})

	return cfg, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	return globalConfig
}
