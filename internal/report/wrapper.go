package report

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Wrapped 包装了其他报表的报表
type Wrapped interface {
	Base() Report
}

// QueryHooks 包装报表在获取数据前后的回调
type QueryHooks interface {
	BeforeQuery(ctx context.Context, params Params) context.Context
	AfterQuery(ctx context.Context)
}

// NopHooks 空回调
type NopHooks struct{}

func (NopHooks) BeforeQuery(ctx context.Context, _ Params) context.Context { return ctx }
func (NopHooks) AfterQuery(context.Context)                                {}

// Wrapper 报表装饰器，透传基础报表的定义并在取数前后执行回调
type Wrapper struct {
	base  Report
	name  string
	hooks QueryHooks
}

// WrapperOption 包装选项
type WrapperOption func(*Wrapper)

// WithName 设置包装名称，用于组成链式标识
func WithName(name string) WrapperOption {
	return func(w *Wrapper) {
		w.name = name
	}
}

// WithHooks 设置取数回调
func WithHooks(h QueryHooks) WrapperOption {
	return func(w *Wrapper) {
		if h != nil {
			w.hooks = h
		}
	}
}

// NewWrapper 包装报表
func NewWrapper(base Report, opts ...WrapperOption) *Wrapper {
	w := &Wrapper{base: base, hooks: NopHooks{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWrapperFor 从默认注册表创建基础报表并包装
func NewWrapperFor(id string, opts ...WrapperOption) (*Wrapper, error) {
	base, ok := defaultRegistry.Create(id)
	if !ok {
		return nil, fmt.Errorf("wrap %s: report not registered", id)
	}
	return NewWrapper(base, opts...), nil
}

// Base 被包装的报表
func (w *Wrapper) Base() Report {
	return w.base
}

// Name 包装名称
func (w *Wrapper) Name() string {
	return w.name
}

// ID 基础报表标识与包装名称组成的链式标识，如 reports.RecentlyEditedReport_traced
// 未命名时使用 Wrapper
func (w *Wrapper) ID() string {
	name := w.name
	if name == "" {
		name = "Wrapper"
	}
	return ID(w.base) + "_" + name
}

func (w *Wrapper) Title() string       { return w.base.Title() }
func (w *Wrapper) Description() string { return w.base.Description() }
func (w *Wrapper) Columns() Columns    { return w.base.Columns() }
func (w *Wrapper) DataClass() string   { return w.base.DataClass() }

func (w *Wrapper) ParameterFields() []Field {
	return FieldsOf(w.base)
}

func (w *Wrapper) Breadcrumbs() []Breadcrumb {
	return BreadcrumbsOf(w.base)
}

// Group 基础报表的分组，未提供时为 "Group"
func (w *Wrapper) Group() string {
	if g, ok := w.base.(Grouper); ok {
		return g.Group()
	}
	return "Group"
}

// Sort 基础报表的排序键，未提供时为 0
func (w *Wrapper) Sort() int {
	return SortOf(w.base)
}

// ViewDecision 透传基础报表的查看策略
func (w *Wrapper) ViewDecision(actor *Actor) Decision {
	if p, ok := w.base.(ViewPolicy); ok {
		return p.ViewDecision(actor)
	}
	return Abstain
}

// SourceRecords 执行回调并从基础报表获取记录
func (w *Wrapper) SourceRecords(ctx context.Context, params Params, sort string, limit int) (Records, error) {
	ctx = w.hooks.BeforeQuery(ctx, params)
	defer w.hooks.AfterQuery(ctx)

	if rs, ok := w.base.(RecordSource); ok {
		return rs.SourceRecords(ctx, params, sort, limit)
	}
	return GetRecords(ctx, w.base, params)
}

// SourceQuery 执行回调并获取基础报表的查询
// 基础报表只提供内存记录时返回 ErrNoQuery
func (w *Wrapper) SourceQuery(ctx context.Context, params Params) (*gorm.DB, error) {
	qs, ok := w.base.(QuerySource)
	if !ok {
		if _, records := w.base.(RecordSource); records {
			return nil, fmt.Errorf("%s: %w", ID(w.base), ErrNoQuery)
		}
		return nil, fmt.Errorf("%s: %w", ID(w.base), ErrMissingSource)
	}

	ctx = w.hooks.BeforeQuery(ctx, params)
	defer w.hooks.AfterQuery(ctx)
	return qs.SourceQuery(ctx, params)
}

// Unwrap 返回最内层的基础报表
func Unwrap(r Report) Report {
	for {
		w, ok := r.(Wrapped)
		if !ok {
			return r
		}
		r = w.Base()
	}
}
