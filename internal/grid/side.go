package grid

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"yqhp/reports/internal/report"
)

var cssClassInvalid = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SideReport 侧栏报表片段
type SideReport struct {
	Report report.Report
	Params report.Params
}

// NewSideReport 创建侧栏报表片段
func NewSideReport(r report.Report, params report.Params) *SideReport {
	return &SideReport{Report: r, Params: params}
}

// Group 侧栏报表分组
func (s *SideReport) Group() string {
	return "Other"
}

// Render 渲染为 HTML 列表，没有记录时输出提示
func (s *SideReport) Render(ctx context.Context) (string, error) {
	records, err := report.GetRecords(ctx, s.Report, s.Params)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return fmt.Sprintf(`<p class="message notice">The %s report is empty.</p>`,
			html.EscapeString(s.Report.Title())), nil
	}

	cols := s.Report.Columns()
	var b strings.Builder
	b.WriteString("<ul class=\"SideReportView\">\n")
	for _, rec := range records {
		b.WriteString("<li>\n")
		for _, c := range cols {
			b.WriteString(sideValue(c, rec))
		}
		b.WriteString("\n</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String(), nil
}

func sideValue(col report.Column, record any) string {
	value := Value(record, col.Key)
	var val string
	switch {
	case col.Formatting != nil:
		val = col.Formatting(value, record)
	case col.Format != "":
		val = Template(col.Format, Cast(value, col.Casting), record)
	default:
		val = html.EscapeString(Cast(value, col.Casting))
	}

	prefix := ""
	if col.Newline {
		prefix = "<br>"
	}
	class := ""
	if col.Title != "" {
		class = fmt.Sprintf(` class="%s"`, cssClassInvalid.ReplaceAllString(col.Title, ""))
	}

	href := ""
	switch {
	case col.LinkFunc != nil:
		href = col.LinkFunc(value, record)
	case col.Link:
		href = EditLink(record)
	}
	if href != "" {
		return fmt.Sprintf(`%s<a%s href="%s">%s</a>`, prefix, class, html.EscapeString(href), val)
	}
	return fmt.Sprintf(`%s<span%s>%s</span>`, prefix, class, val)
}
