package report

import "errors"

var (
	// ErrMissingSource 报表既未实现 SourceRecords 也未实现 SourceQuery
	ErrMissingSource = errors.New("report: override SourceQuery or SourceRecords and Columns")
	// ErrNoQuery 报表只提供内存记录，没有可用的查询
	ErrNoQuery = errors.New("report: report has no underlying query")
	// ErrDuplicateReport 报表标识重复注册
	ErrDuplicateReport = errors.New("report: report already registered")
	// ErrInvalidID 报表标识为空或包含保留字符
	ErrInvalidID = errors.New("report: invalid report identifier")
	// ErrNilFactory 注册了空工厂
	ErrNilFactory = errors.New("report: nil factory")
	// ErrDuplicateColumn 列定义键重复
	ErrDuplicateColumn = errors.New("report: duplicate column key")
	// ErrBuiltinReport 注册了基础类型本身
	ErrBuiltinReport = errors.New("report: builtin base type cannot be registered")
)
