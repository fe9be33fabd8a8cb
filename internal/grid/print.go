package grid

import (
	"html"
	"strings"

	"yqhp/reports/internal/report"
)

// Print 打印页面，单元格与报表列表使用相同的渲染
func Print(title string, cols report.Columns, records report.Records) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title></head><body>\n<h1>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h1>\n<table class=\"grid-field__table\">\n<thead><tr>")
	for _, h := range Headers(cols) {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h.Title))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, rec := range records {
		b.WriteString("<tr>")
		for _, cell := range RenderRow(cols, rec) {
			b.WriteString("<td>")
			b.WriteString(cell)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n</body></html>\n")
	return b.String()
}
