package types

import (
	"yqhp/reports/internal/grid"
	"yqhp/reports/internal/report"
)

// ReportSummary 报表列表项
type ReportSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Count       int    `json:"count"` // -1 表示获取失败
	Group       string `json:"group"`
	Sort        int    `json:"sort"`
}

// HasReportsResponse 是否有可查看的报表
type HasReportsResponse struct {
	HasReports bool `json:"hasReports"`
}

// ShowReportRequest 报表详情查询参数，筛选参数以 filters[Name] 形式单独解析
type ShowReportRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Sort     string `query:"sort"`
	Dir      string `query:"dir"` // asc, desc
}

// FormField 筛选表单字段
type FormField struct {
	Name    string          `json:"name"` // filters[Name]
	Title   string          `json:"title"`
	Type    string          `json:"type"`
	Options []report.Option `json:"options,omitempty"`
	Value   string          `json:"value,omitempty"`
}

// FormAction 表单动作
type FormAction struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ReportDetail 报表详情
type ReportDetail struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"` // 已过滤的 HTML
	Fields      []FormField         `json:"fields"`
	Actions     []FormAction        `json:"actions"`
	Grid        *grid.Table         `json:"grid"`
	Breadcrumbs []report.Breadcrumb `json:"breadcrumbs"`
	Links       map[string]string   `json:"links"`
}
