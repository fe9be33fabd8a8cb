package response

import (
	"github.com/gofiber/fiber/v2"
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// 响应码定义，失败时与 HTTP 状态码一致
const (
	CodeSuccess      = 0
	CodeError        = -1
	CodeUnauthorized = fiber.StatusUnauthorized
	CodeForbidden    = fiber.StatusForbidden
	CodeNotFound     = fiber.StatusNotFound
	CodeServerError  = fiber.StatusInternalServerError
)

// 默认消息
const (
	MsgSuccess      = "success"
	MsgUnauthorized = "unauthorized"
	MsgForbidden    = "forbidden"
	MsgNotFound     = "not found"
	MsgServerError  = "server error"
)

// Success 成功响应
func Success(c *fiber.Ctx, data any) error {
	return c.JSON(Response{Code: CodeSuccess, Message: MsgSuccess, Data: data})
}

// Error 业务错误，HTTP 状态码仍为 200
func Error(c *fiber.Ctx, message string) error {
	return c.JSON(Response{Code: CodeError, Message: message})
}

// Unauthorized 未登录
func Unauthorized(c *fiber.Ctx, message string) error {
	return fail(c, CodeUnauthorized, message, MsgUnauthorized)
}

// Forbidden 无权限
func Forbidden(c *fiber.Ctx, message string) error {
	return fail(c, CodeForbidden, message, MsgForbidden)
}

// NotFound 资源不存在
func NotFound(c *fiber.Ctx, message string) error {
	return fail(c, CodeNotFound, message, MsgNotFound)
}

// ServerError 服务器错误
func ServerError(c *fiber.Ctx, message string) error {
	return fail(c, CodeServerError, message, MsgServerError)
}

func fail(c *fiber.Ctx, status int, message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return c.Status(status).JSON(Response{Code: status, Message: message})
}

// HTML 渲染好的 HTML 片段
func HTML(c *fiber.Ctx, html string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Attachment 文件下载
func Attachment(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
