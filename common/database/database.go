package database

import (
	"fmt"
	"time"

	"yqhp/reports/common/config"
	"yqhp/reports/common/logger"

	"github.com/glebarez/sqlite"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var db *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.DatabaseConfig) error {
	conn, err := Open(cfg)
	if err != nil {
		return err
	}
	db = conn
	return nil
}

// Open 按配置打开连接，不修改全局实例
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(cfg.LogLevel, time.Duration(cfg.SlowThreshold)*time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	// 报表只读查询分流到副本
	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, r := range cfg.Replicas {
			port := r.Port
			if port == 0 {
				port = cfg.Port
			}
			username, password := r.Username, r.Password
			if username == "" {
				username, password = cfg.Username, cfg.Password
			}
			d, err := dialectorFor(cfg, r.Host, port, username, password)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, d)
		}
		if err := conn.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
		logger.Info("数据库只读副本已启用", zap.Int("replicas", len(replicas)))
	}

	if cfg.Tracing {
		if err := conn.Use(otelgorm.NewPlugin()); err != nil {
			logger.Warn("otelgorm 插件安装失败", zap.Error(err))
		}
	}

	if cfg.Driver != "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}

		// 设置连接池参数
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return conn, nil
}

// dialectorFor 根据驱动构造方言
func dialectorFor(cfg *config.DatabaseConfig, host string, port int, username, password string) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		charset := cfg.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			username,
			password,
			host,
			port,
			cfg.Database,
			charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			host,
			port,
			username,
			password,
			cfg.Database,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.Database), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return db
}

// SetDB 替换全局连接
func SetDB(conn *gorm.DB) {
	db = conn
}

// Close 关闭数据库连接
func Close() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
