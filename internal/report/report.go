package report

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// DefaultDataClass 未声明时报表针对的实体类型
const DefaultDataClass = "Page"

// Params 请求提供的筛选参数，原样传递给数据源
type Params map[string]string

// Get 获取参数值
func (p Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p[name]
}

// Records 报表记录列表
type Records []any

// Report 报表定义
type Report interface {
	Title() string
	Description() string
	Columns() Columns
	DataClass() string
}

// RecordSource 直接提供记录列表的报表
type RecordSource interface {
	SourceRecords(ctx context.Context, params Params, sort string, limit int) (Records, error)
}

// QuerySource 提供 GORM 查询的报表
type QuerySource interface {
	SourceQuery(ctx context.Context, params Params) (*gorm.DB, error)
}

// ParameterFielder 提供筛选表单字段
type ParameterFielder interface {
	ParameterFields() []Field
}

// Sorter 提供排序键，越小越靠前
type Sorter interface {
	Sort() int
}

// Grouper 提供分组名
type Grouper interface {
	Group() string
}

// SideColumner 提供侧栏报表使用的列
type SideColumner interface {
	SideReportColumns() Columns
}

// BreadcrumbProvider 提供额外面包屑
type BreadcrumbProvider interface {
	Breadcrumbs() []Breadcrumb
}

// Abstract 标记只用于嵌入的基础报表，不会出现在报表列表中
type Abstract interface {
	IsAbstract() bool
}

// Identifier 自定义报表标识
type Identifier interface {
	ID() string
}

// Base 报表默认实现，具体报表嵌入后覆盖需要的方法
type Base struct{}

func (Base) Title() string       { return "" }
func (Base) Description() string { return "" }
func (Base) Columns() Columns    { return nil }
func (Base) DataClass() string   { return DefaultDataClass }

// ID 获取报表标识
func ID(r Report) string {
	if r == nil {
		return ""
	}
	if i, ok := r.(Identifier); ok {
		return i.ID()
	}
	return TypeID(reflect.TypeOf(r))
}

// TypeID 由类型计算标识，形如 pkg.Type
func TypeID(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// IsAbstract 报表是否为抽象报表
func IsAbstract(r Report) bool {
	a, ok := r.(Abstract)
	return ok && a.IsAbstract()
}

// GroupOf 获取报表分组
func GroupOf(r Report) string {
	if g, ok := r.(Grouper); ok {
		return g.Group()
	}
	return ""
}

// SortOf 获取报表排序键
func SortOf(r Report) int {
	if s, ok := r.(Sorter); ok {
		return s.Sort()
	}
	return 0
}

// FieldsOf 获取报表筛选字段
func FieldsOf(r Report) []Field {
	if p, ok := r.(ParameterFielder); ok {
		return p.ParameterFields()
	}
	return nil
}

// BreadcrumbsOf 获取报表自身提供的面包屑
func BreadcrumbsOf(r Report) []Breadcrumb {
	if b, ok := r.(BreadcrumbProvider); ok {
		return b.Breadcrumbs()
	}
	return nil
}

var (
	linkMu   sync.RWMutex
	linkBase = "admin/reports"
)

// SetLinkBase 设置报表后台地址前缀，例如 admin/reports
func SetLinkBase(base string) {
	linkMu.Lock()
	defer linkMu.Unlock()
	linkBase = strings.TrimRight(base, "/")
}

// LinkBase 报表后台地址前缀
func LinkBase() string {
	linkMu.RLock()
	defer linkMu.RUnlock()
	return linkBase
}

// Link 报表在后台中的地址，可追加动作
func Link(r Report, action ...string) string {
	parts := []string{LinkBase(), "show", Sanitize(ID(r))}
	for _, a := range action {
		if a = strings.Trim(a, "/"); a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, "/")
}

var sanitizer = strings.NewReplacer(".", "-", "/", "-")

// Sanitize 将标识中的命名空间分隔符替换为 URL 安全字符
func Sanitize(id string) string {
	return sanitizer.Replace(id)
}

// Unsanitize 还原 URL 中的报表标识
func Unsanitize(segment string) string {
	return strings.ReplaceAll(segment, "-", ".")
}
