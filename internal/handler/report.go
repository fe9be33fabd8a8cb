package handler

import (
	"errors"

	"yqhp/reports/common/logger"
	"yqhp/reports/common/response"
	"yqhp/reports/internal/ctxutil"
	"yqhp/reports/internal/logic"
	"yqhp/reports/internal/types"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportList 当前用户可查看的报表列表
func ReportList(c *fiber.Ctx) error {
	l := logic.NewReportLogic(c.UserContext())
	if !l.HasReports() {
		return denied(c)
	}
	return response.Success(c, l.List())
}

// ReportHas 报表入口是否可见
func ReportHas(c *fiber.Ctx) error {
	has := logic.NewReportLogic(c.UserContext()).HasReports()
	return response.Success(c, types.HasReportsResponse{HasReports: has})
}

// ReportShow 报表详情
func ReportShow(c *fiber.Ctx) error {
	var req types.ShowReportRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	detail, err := logic.NewReportLogic(c.UserContext()).
		Show(c.Params("report"), &req, logic.ParseFilters(c.Queries()))
	if err != nil {
		return reportError(c, err)
	}
	return response.Success(c, detail)
}

// ReportExportCSV 导出 CSV
func ReportExportCSV(c *fiber.Ctx) error {
	return export(c, logic.FormatCSV, "text/csv; charset=utf-8")
}

// ReportExportXLSX 导出 Excel
func ReportExportXLSX(c *fiber.Ctx) error {
	return export(c, logic.FormatXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func export(c *fiber.Ctx, format, contentType string) error {
	name, data, err := logic.NewReportLogic(c.UserContext()).
		Export(c.Params("report"), format, logic.ParseFilters(c.Queries()))
	if err != nil {
		return reportError(c, err)
	}
	return response.Attachment(c, name, contentType, data)
}

// ReportPrint 打印页面
func ReportPrint(c *fiber.Ctx) error {
	page, err := logic.NewReportLogic(c.UserContext()).
		Print(c.Params("report"), logic.ParseFilters(c.Queries()))
	if err != nil {
		return reportError(c, err)
	}
	return response.HTML(c, page)
}

// ReportSide 侧栏报表片段
func ReportSide(c *fiber.Ctx) error {
	fragment, err := logic.NewReportLogic(c.UserContext()).
		Side(c.Params("report"), logic.ParseFilters(c.Queries()))
	if err != nil {
		return reportError(c, err)
	}
	return response.HTML(c, fragment)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, logic.ErrReportNotFound):
		return response.NotFound(c, "报表不存在")
	case errors.Is(err, logic.ErrReportForbidden):
		return denied(c)
	}
	logger.Error("报表请求失败", zap.String("path", c.Path()), zap.Error(err))
	return response.ServerError(c, "报表生成失败")
}

// denied 未登录返回 401，已登录但无权限返回 403
func denied(c *fiber.Ctx) error {
	if ctxutil.GetActor(c.UserContext()) == nil {
		return response.Unauthorized(c, "请先登录")
	}
	return response.Forbidden(c, "没有查看报表的权限")
}
