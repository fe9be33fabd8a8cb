package report

import "fmt"

// 预定义的类型转换
const (
	CastText     = "Text"
	CastInt      = "Int"
	CastDecimal  = "Decimal"
	CastCurrency = "Currency"
	CastDate     = "Date"
	CastDatetime = "Datetime"
	CastBoolean  = "Boolean"
)

// Formatter 单元格格式化回调，value 为字段原值，record 为整条记录
type Formatter func(value any, record any) string

// Column 列定义
type Column struct {
	Key   string // 字段名，支持 a.b 访问关联对象
	Title string // 列标题，为空时使用 Key

	Casting       string    // 预定义类型转换，见 Cast* 常量
	Format        string    // 安全模板，{value} 为当前值，{Field} 为记录字段
	Formatting    Formatter // 自定义格式化，优先于 Format
	CSVFormatting Formatter // 导出 CSV 时使用

	Link     bool      // 使用记录的 CMSEditLink 生成编辑链接
	LinkFunc Formatter // 自定义链接地址
	Newline  bool      // 侧栏报表中另起一行
}

// Label 列标题
func (c Column) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Key
}

// Col 创建只有标题的列
func Col(key, title string) Column {
	return Column{Key: key, Title: title}
}

// Columns 有序列定义
type Columns []Column

// Keys 所有列键
func (cs Columns) Keys() []string {
	keys := make([]string, 0, len(cs))
	for _, c := range cs {
		keys = append(keys, c.Key)
	}
	return keys
}

// Get 按键查找列
func (cs Columns) Get(key string) (Column, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Validate 校验列键非空且唯一
func (cs Columns) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		if c.Key == "" {
			return fmt.Errorf("column %d: empty key", i)
		}
		if _, ok := seen[c.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Key)
		}
		seen[c.Key] = struct{}{}
	}
	return nil
}

// Field 筛选表单字段
type Field struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Type    string   `json:"type"` // text, select, checkbox, date
	Options []Option `json:"options,omitempty"`
	Value   string   `json:"value,omitempty"`
}

// Option 下拉选项
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Breadcrumb 面包屑
type Breadcrumb struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
