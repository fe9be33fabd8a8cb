package grid

import (
	"fmt"
	"html"
	"io"

	"yqhp/reports/internal/report"

	"github.com/valyala/fasttemplate"
)

const linkCell = `<a class="grid-field__link-block" href="%s" title="%s">%s</a>`

// Cell 渲染单元格 HTML
func Cell(col report.Column, record any) string {
	value := Value(record, col.Key)

	var content string
	switch {
	case col.Formatting != nil:
		content = col.Formatting(value, record)
	case col.Format != "":
		content = Template(col.Format, Cast(value, col.Casting), record)
	default:
		content = html.EscapeString(Cast(value, col.Casting))
	}

	switch {
	case col.LinkFunc != nil:
		return linkTo(col.LinkFunc(value, record), Cast(value, col.Casting), content)
	case col.Link:
		return linkTo(EditLink(record), Cast(value, col.Casting), content)
	}
	return content
}

// linkTo 没有链接地址的记录原样输出
func linkTo(href, title, content string) string {
	if href == "" {
		return content
	}
	return fmt.Sprintf(linkCell, html.EscapeString(href), html.EscapeString(title), content)
}

// PlainCell 导出用的纯文本单元格
func PlainCell(col report.Column, record any) string {
	value := Value(record, col.Key)
	if col.CSVFormatting != nil {
		return col.CSVFormatting(value, record)
	}
	return Cast(value, col.Casting)
}

// Template 渲染安全模板，{value} 为当前值，其余 {Field} 取记录字段，所有替换均经过 HTML 转义
func Template(format string, value string, record any) string {
	t, err := fasttemplate.NewTemplate(format, "{", "}")
	if err != nil {
		return html.EscapeString(format)
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if tag == "value" {
			return io.WriteString(w, html.EscapeString(value))
		}
		return io.WriteString(w, html.EscapeString(Text(Value(record, tag))))
	})
}
