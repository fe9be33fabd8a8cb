package middleware

import (
	"strconv"
	"strings"

	"yqhp/reports/common/response"
	"yqhp/reports/internal/auth"
	"yqhp/reports/internal/ctxutil"
	"yqhp/reports/internal/report"

	"github.com/gofiber/fiber/v2"
)

// ActorMiddleware 解析当前用户
// 未携带 token 或 token 失效时按匿名访问处理，是否可见由报表权限决定
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := getToken(c)
		if token == "" || !auth.IsLogin(token) {
			return c.Next()
		}

		loginId, err := auth.GetLoginId(token)
		if err != nil {
			return c.Next()
		}
		userID, err := parseUserID(loginId)
		if err != nil || userID == 0 {
			return c.Next()
		}

		c.Locals("userId", userID)
		c.Locals("token", token)
		c.SetUserContext(ctxutil.WithActor(c.UserContext(), &report.Actor{ID: userID}))
		return c.Next()
	}
}

// AuthMiddleware 要求登录
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := getToken(c)
		if token == "" {
			return response.Unauthorized(c, "请先登录")
		}
		if !auth.IsLogin(token) {
			return response.Unauthorized(c, "登录已过期，请重新登录")
		}
		loginId, err := auth.GetLoginId(token)
		if err != nil {
			return response.Unauthorized(c, "获取用户信息失败")
		}
		userID, err := parseUserID(loginId)
		if err != nil || userID == 0 {
			return response.Unauthorized(c, "用户信息无效")
		}

		c.Locals("userId", userID)
		c.Locals("token", token)
		c.SetUserContext(ctxutil.WithActor(c.UserContext(), &report.Actor{ID: userID}))
		return c.Next()
	}
}

// getToken 依次从 Header、Authorization、Query、Cookie 获取
func getToken(c *fiber.Ctx) string {
	token := c.Get("satoken")
	if token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	token = c.Query("satoken")
	if token != "" {
		return token
	}

	return c.Cookies("satoken")
}

// parseUserID 解析用户ID
func parseUserID(loginId string) (uint, error) {
	id, err := strconv.ParseUint(loginId, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
