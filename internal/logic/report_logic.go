package logic

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"yqhp/reports/common/logger"
	"yqhp/reports/internal/ctxutil"
	"yqhp/reports/internal/grid"
	"yqhp/reports/internal/report"
	"yqhp/reports/internal/svc"
	"yqhp/reports/internal/types"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// 导出格式
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var descriptionPolicy = bluemonday.UGCPolicy()

// ReportLogic 报表后台逻辑
type ReportLogic struct {
	ctx context.Context
	svc *svc.ServiceContext
}

// NewReportLogic 创建报表逻辑
func NewReportLogic(ctx context.Context) *ReportLogic {
	return &ReportLogic{ctx: ctx, svc: svc.Ctx}
}

func (l *ReportLogic) actor() *report.Actor {
	return ctxutil.GetActor(l.ctx)
}

// Visible 当前用户可查看的报表
func (l *ReportLogic) Visible() *report.Collection {
	actor := l.actor()
	return l.svc.Registry.Reports().Filter(func(r report.Report) bool {
		return l.svc.Guard.CanView(r, actor)
	})
}

// HasReports 报表后台入口是否可见
func (l *ReportLogic) HasReports() bool {
	return l.Visible().Len() > 0
}

// List 报表列表
func (l *ReportLogic) List() []types.ReportSummary {
	visible := l.Visible()
	list := make([]types.ReportSummary, 0, visible.Len())
	for _, e := range visible.Entries() {
		list = append(list, types.ReportSummary{
			ID:          e.ID,
			Title:       e.Report.Title(),
			Description: descriptionPolicy.Sanitize(e.Report.Description()),
			Link:        report.Link(e.Report),
			Count:       report.Count(l.ctx, e.Report, nil),
			Group:       report.GroupOf(e.Report),
			Sort:        e.Sort,
		})
	}
	return list
}

// Resolve 按 URL 片段查找报表并校验权限
func (l *ReportLogic) Resolve(segment string) (report.Report, error) {
	id := report.Unsanitize(segment)
	r, ok := l.svc.Registry.Reports().Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	if !l.svc.Guard.CanView(r, l.actor()) {
		return nil, fmt.Errorf("%w: %s", ErrReportForbidden, id)
	}
	return r, nil
}

// Show 报表详情：说明、筛选表单、表格与面包屑
func (l *ReportLogic) Show(segment string, req *types.ShowReportRequest, params report.Params) (*types.ReportDetail, error) {
	r, err := l.Resolve(segment)
	if err != nil {
		return nil, err
	}

	records, err := report.GetRecords(l.ctx, r, params)
	if err != nil {
		logger.Warn("报表记录获取失败", zap.String("report", report.ID(r)), zap.Error(err))
		return nil, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = l.svc.Config.Reports.PageSize
	}

	return &types.ReportDetail{
		ID:          report.ID(r),
		Title:       r.Title(),
		Description: descriptionPolicy.Sanitize(r.Description()),
		Fields:      formFields(report.FieldsOf(r), params),
		Actions:     formActions(r),
		Grid: grid.Build(r.Columns(), records, grid.Options{
			Sort:     sortKey(r.Columns(), req.Sort),
			Desc:     strings.EqualFold(req.Dir, "desc"),
			Page:     req.Page,
			PageSize: pageSize,
		}),
		Breadcrumbs: l.Breadcrumbs(r),
		Links: map[string]string{
			"self":  report.Link(r),
			"csv":   report.Link(r, "export.csv"),
			"xlsx":  report.Link(r, "export.xlsx"),
			"print": report.Link(r, "print"),
		},
	}, nil
}

// Breadcrumbs 根节点、报表自身提供的面包屑、当前报表
func (l *ReportLogic) Breadcrumbs(r report.Report) []report.Breadcrumb {
	crumbs := []report.Breadcrumb{{Title: "Reports", Link: report.LinkBase() + "/"}}
	crumbs = append(crumbs, report.BreadcrumbsOf(r)...)
	return append(crumbs, report.Breadcrumb{Title: r.Title(), Link: report.Link(r)})
}

// Export 导出报表全部记录
func (l *ReportLogic) Export(segment, format string, params report.Params) (string, []byte, error) {
	r, err := l.Resolve(segment)
	if err != nil {
		return "", nil, err
	}
	records, err := report.GetRecords(l.ctx, r, params)
	if err != nil {
		return "", nil, err
	}

	name := report.Sanitize(report.ID(r)) + "." + format
	var data []byte
	switch format {
	case FormatCSV:
		data, err = grid.CSV(r.Columns(), records)
	case FormatXLSX:
		data, err = grid.XLSX(r.Columns(), records)
	default:
		return "", nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", nil, err
	}
	logger.Info("报表已导出",
		zap.String("report", report.ID(r)),
		zap.String("format", format),
		zap.Int("records", len(records)),
		zap.Uint("user_id", ctxutil.GetUserID(l.ctx)),
	)
	return name, data, nil
}

// Print 打印页面
func (l *ReportLogic) Print(segment string, params report.Params) (string, error) {
	r, err := l.Resolve(segment)
	if err != nil {
		return "", err
	}
	records, err := report.GetRecords(l.ctx, r, params)
	if err != nil {
		return "", err
	}
	return grid.Print(r.Title(), r.Columns(), records), nil
}

// Side 侧栏报表片段
func (l *ReportLogic) Side(segment string, params report.Params) (string, error) {
	r, err := l.Resolve(segment)
	if err != nil {
		return "", err
	}
	return grid.NewSideReport(report.NewSideWrapper(r), params).Render(l.ctx)
}

// sortKey 只允许按报表声明的列排序，其他键忽略
func sortKey(cols report.Columns, key string) string {
	if slices.Contains(cols.Keys(), key) {
		return key
	}
	return ""
}

// formFields 筛选字段名加 filters 前缀，并回填当前值
func formFields(fields []report.Field, params report.Params) []types.FormField {
	out := make([]types.FormField, 0, len(fields))
	for _, f := range fields {
		value := f.Value
		if v, ok := params[f.Name]; ok {
			value = v
		}
		out = append(out, types.FormField{
			Name:    FilterPrefix + "[" + f.Name + "]",
			Title:   f.Title,
			Type:    f.Type,
			Options: f.Options,
			Value:   value,
		})
	}
	return out
}

func formActions(r report.Report) []types.FormAction {
	if len(report.FieldsOf(r)) == 0 {
		return []types.FormAction{}
	}
	return []types.FormAction{{Name: "action_updatereport", Title: "Filter"}}
}
