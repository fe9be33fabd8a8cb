package handler

import (
	"errors"

	"yqhp/reports/common/response"
	"yqhp/reports/internal/logic"
	"yqhp/reports/internal/types"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AuthLogin 登录
func AuthLogin(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if err := validate.Struct(&req); err != nil {
		return response.Error(c, "用户名和密码不能为空")
	}

	result, err := logic.NewAuthLogic(c.UserContext()).Login(&req, c.IP())
	if err != nil {
		if errors.Is(err, logic.ErrInvalidCredentials) || errors.Is(err, logic.ErrUserDisabled) {
			return response.Error(c, err.Error())
		}
		return response.ServerError(c, "登录失败")
	}
	return response.Success(c, result)
}

// AuthLogout 登出，需要登录
func AuthLogout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if err := logic.NewAuthLogic(c.UserContext()).Logout(token); err != nil {
		return response.ServerError(c, "登出失败")
	}
	return response.Success(c, nil)
}
