package router

import (
	commonMiddleware "yqhp/reports/common/middleware"
	"yqhp/reports/internal/handler"
	"yqhp/reports/internal/middleware"
	"yqhp/reports/internal/svc"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// NewApp 创建 Fiber 应用，JSON 编解码使用 sonic
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:     name,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
}

// Setup 设置路由
func Setup(app *fiber.App) {
	// 全局中间件
	app.Use(commonMiddleware.CORS(), commonMiddleware.RequestID(), commonMiddleware.Logger(), commonMiddleware.Recover())

	api := app.Group("/api")

	// ========== 认证 ==========
	pub := api.Group("/auth")
	pub.Post("/login", handler.AuthLogin)
	pub.Post("/logout", middleware.AuthMiddleware(), handler.AuthLogout)

	// ========== 报表 ==========
	// 匿名访问同样进入，是否可见由报表权限决定
	seg := "/" + svc.Ctx.Config.Reports.URLSegment
	rg := api.Group(seg, middleware.ActorMiddleware())
	rg.Get("", handler.ReportList)
	rg.Get("/has", handler.ReportHas)
	rg.Get("/show/:report", handler.ReportShow)
	rg.Get("/show/:report/export.csv", handler.ReportExportCSV)
	rg.Get("/show/:report/export.xlsx", handler.ReportExportXLSX)
	rg.Get("/show/:report/print", handler.ReportPrint)
	rg.Get("/side/:report", handler.ReportSide)
}
