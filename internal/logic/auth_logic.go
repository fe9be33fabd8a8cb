package logic

import (
	"context"
	"errors"
	"time"

	"yqhp/reports/common/logger"
	"yqhp/reports/common/utils"
	"yqhp/reports/internal/auth"
	"yqhp/reports/internal/model"
	"yqhp/reports/internal/svc"
	"yqhp/reports/internal/types"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthLogic 认证逻辑
type AuthLogic struct {
	ctx context.Context
	svc *svc.ServiceContext
}

// NewAuthLogic 创建认证逻辑
func NewAuthLogic(ctx context.Context) *AuthLogic {
	return &AuthLogic{ctx: ctx, svc: svc.Ctx}
}

func (l *AuthLogic) db() *gorm.DB {
	return l.svc.DB.WithContext(l.ctx)
}

// Login 用户名密码登录
func (l *AuthLogic) Login(req *types.LoginRequest, ip string) (*types.LoginResponse, error) {
	var user model.User
	if err := l.db().Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Info("登录失败", zap.String("username", req.Username), zap.String("ip", ip))
		return nil, ErrInvalidCredentials
	}

	if !user.Enabled() {
		return nil, ErrUserDisabled
	}

	token, err := auth.Login(user.ID)
	if err != nil {
		return nil, err
	}

	// 更新最后登录时间和IP
	l.db().Model(&user).Updates(map[string]any{
		"last_login_at": time.Now(),
		"last_login_ip": ip,
	})

	l.db().Preload("Roles", "status = ?", model.StatusEnabled).First(&user, user.ID)

	roles, err := l.svc.Permissions.GetUserRoles(user.ID)
	if err != nil {
		return nil, err
	}
	permissions, err := l.svc.Permissions.GetUserPermissions(user.ID)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		Token:       token,
		UserInfo:    types.ToUserInfo(&user),
		Roles:       utils.SliceUnique(roles),
		Permissions: utils.SliceUnique(permissions),
	}, nil
}

// Logout 登出
func (l *AuthLogic) Logout(token string) error {
	return auth.LogoutByToken(token)
}

// HashPassword 生成密码哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
