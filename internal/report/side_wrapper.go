package report

// SideWrapper 侧栏报表包装，基础报表提供 SideReportColumns 时使用侧栏列
type SideWrapper struct {
	*Wrapper
}

// NewSideWrapper 包装为侧栏报表，默认名称为 side
func NewSideWrapper(base Report, opts ...WrapperOption) *SideWrapper {
	opts = append([]WrapperOption{WithName("side")}, opts...)
	return &SideWrapper{Wrapper: NewWrapper(base, opts...)}
}

// Columns 侧栏列，未提供时使用基础报表的列
func (w *SideWrapper) Columns() Columns {
	if sc, ok := w.Base().(SideColumner); ok {
		return sc.SideReportColumns()
	}
	return w.Wrapper.Columns()
}
