package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"yqhp/reports/common/database"
	"yqhp/reports/common/logger"
	"yqhp/reports/internal/config"
	"yqhp/reports/internal/model"
	"yqhp/reports/internal/svc"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.yml"

// configPath 依次取 --config、REPORTS_CONFIG、默认路径
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p := os.Getenv("REPORTS_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

// loadEnv 加载 .env，文件不存在时忽略
func loadEnv() error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("加载环境变量文件失败: %w", err)
	}
	return nil
}

// bootstrap 加载配置、初始化日志与数据库并创建服务上下文
func bootstrap() (*config.Config, error) {
	if err := loadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger.Init(logger.FromConfig(cfg.Log))

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}

	db := database.GetDB()
	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	svc.Init(cfg, db)
	logger.Info("报表服务已初始化",
		zap.String("driver", cfg.Database.Driver),
		zap.Strings("excluded", svc.Ctx.Registry.Excluded()),
	)
	return cfg, nil
}
