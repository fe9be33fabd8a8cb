package auth

import (
	"fmt"

	"yqhp/reports/common/config"
	"yqhp/reports/common/logger"

	"github.com/click33/sa-token-go/core"
	"github.com/click33/sa-token-go/storage/memory"
	satokenRedis "github.com/click33/sa-token-go/storage/redis"
	"github.com/click33/sa-token-go/stputil"
	"go.uber.org/zap"
)

var manager *core.Manager

// InitSaToken 初始化SaToken
// Redis 配置有效时使用 Redis 存储，否则使用内存存储
func InitSaToken(cfg *config.Config) error {
	var storage core.Storage
	var err error

	if cfg.Redis.Host != "" && cfg.Redis.Port > 0 {
		// redis://:password@host:port/db
		var redisURL string
		if cfg.Redis.Password != "" {
			redisURL = fmt.Sprintf("redis://:%s@%s:%d/%d", cfg.Redis.Password, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		} else {
			redisURL = fmt.Sprintf("redis://%s:%d/%d", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
		storage, err = satokenRedis.NewStorage(redisURL)
		if err != nil {
			logger.Warn("SaToken Redis存储初始化失败，降级使用内存存储", zap.Error(err))
			storage = memory.NewStorage()
		} else {
			logger.Info("SaToken 使用Redis存储")
		}
	} else {
		storage = memory.NewStorage()
		logger.Info("SaToken 使用内存存储")
	}

	tokenName := cfg.SaToken.TokenName
	if tokenName == "" {
		tokenName = "Authorization"
	}

	manager = core.NewBuilder().
		Storage(storage).
		TokenName(tokenName).
		Timeout(cfg.SaToken.Timeout).
		ActiveTimeout(cfg.SaToken.ActiveTimeout).
		IsConcurrent(cfg.SaToken.IsConcurrent).
		IsShare(cfg.SaToken.IsShare).
		MaxLoginCount(cfg.SaToken.MaxLoginCount).
		IsLog(cfg.SaToken.IsLog).
		Build()

	stputil.SetManager(manager)
	return nil
}

// GetManager 获取Manager
func GetManager() *core.Manager {
	return manager
}

// Login 登录
func Login(loginId any) (string, error) {
	return stputil.Login(loginId)
}

// LogoutByToken 根据Token登出
func LogoutByToken(tokenValue string) error {
	return stputil.LogoutByToken(tokenValue)
}

// IsLogin 判断是否登录
func IsLogin(tokenValue string) bool {
	return stputil.IsLogin(tokenValue)
}

// GetLoginId 获取登录ID
func GetLoginId(tokenValue string) (string, error) {
	return stputil.GetLoginID(tokenValue)
}
