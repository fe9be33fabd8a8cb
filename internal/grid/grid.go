package grid

import (
	"cmp"
	"slices"
	"strings"

	"yqhp/reports/internal/report"
)

// Options 排序与分页参数
type Options struct {
	Sort     string // 排序列
	Desc     bool
	Page     int // 从 1 开始
	PageSize int // 0 表示不分页
}

// Header 表头
type Header struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Table 渲染后的表格
type Table struct {
	Columns  []Header   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

// Headers 列表头
func Headers(cols report.Columns) []Header {
	headers := make([]Header, 0, len(cols))
	for _, c := range cols {
		headers = append(headers, Header{Key: c.Key, Title: c.Label()})
	}
	return headers
}

// Build 排序、分页并渲染单元格
func Build(cols report.Columns, records report.Records, opts Options) *Table {
	sorted := SortRecords(records, opts.Sort, opts.Desc)
	page, size := opts.Page, opts.PageSize
	if page < 1 {
		page = 1
	}
	visible := Paginate(sorted, page, size)

	rows := make([][]string, 0, len(visible))
	for _, rec := range visible {
		rows = append(rows, RenderRow(cols, rec))
	}
	return &Table{
		Columns:  Headers(cols),
		Rows:     rows,
		Total:    len(records),
		Page:     page,
		PageSize: size,
	}
}

// RenderRow 渲染一行
func RenderRow(cols report.Columns, record any) []string {
	row := make([]string, 0, len(cols))
	for _, c := range cols {
		row = append(row, Cell(c, record))
	}
	return row
}

// SortRecords 按列稳定排序，返回新切片
func SortRecords(records report.Records, key string, desc bool) report.Records {
	out := slices.Clone(records)
	if key == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b any) int {
		c := compareValues(Value(a, key), Value(b, key))
		if desc {
			return -c
		}
		return c
	})
	return out
}

func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if ta, ok := toTime(a); ok {
		if tb, ok := toTime(b); ok {
			return ta.Compare(tb)
		}
	}
	if _, isString := a.(string); !isString {
		if da, ok := toDecimal(a); ok {
			if db, ok := toDecimal(b); ok {
				return da.Cmp(db)
			}
		}
	}
	return cmp.Compare(strings.ToLower(Text(a)), strings.ToLower(Text(b)))
}

// Paginate 截取一页，size 小于等于 0 时返回全部
func Paginate(records report.Records, page, size int) report.Records {
	if size <= 0 {
		return records
	}
	if page < 1 {
		page = 1
	}
	// 先按页数比较，避免 (page-1)*size 溢出
	if len(records) == 0 || page-1 > (len(records)-1)/size {
		return report.Records{}
	}
	start := (page - 1) * size
	return records[start : start+min(size, len(records)-start)]
}
