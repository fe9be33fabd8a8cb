package report

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"yqhp/reports/common/logger"

	"go.uber.org/zap"
)

// Factory 报表工厂，每次调用返回新实例
type Factory func() Report

// isBuiltin 基础类型本身不作为报表出现：Base 只用于嵌入，未包装任何报表的包装器没有数据
func isBuiltin(rep Report) bool {
	switch v := rep.(type) {
	case Base, *Base:
		return true
	case *Wrapper:
		return v == nil || v.base == nil
	case *SideWrapper:
		return v == nil || v.Wrapper == nil || v.base == nil
	}
	return false
}

type registration struct {
	id      string
	factory Factory
}

// Registry 报表注册表
type Registry struct {
	mu       sync.RWMutex
	entries  []registration
	index    map[string]int
	excluded map[string]struct{}
}

// NewRegistry 创建报表注册表
func NewRegistry() *Registry {
	return &Registry{
		index:    make(map[string]int),
		excluded: make(map[string]struct{}),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry 进程级注册表，报表包在 init() 中注册到这里
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register 注册报表工厂
// 工厂会被调用一次以确定标识并校验数据源，未提供数据源的报表拒绝注册
func (r *Registry) Register(factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}
	rep := factory()
	if rep == nil {
		return ErrNilFactory
	}

	if isBuiltin(rep) {
		return fmt.Errorf("%w: %T", ErrBuiltinReport, rep)
	}

	id := ID(rep)
	if id == "" || strings.ContainsAny(id, "-/") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if !IsAbstract(rep) {
		if err := Validate(rep); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateReport, id)
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, registration{id: id, factory: factory})
	return nil
}

// MustRegister 注册报表工厂，出错时 panic
func (r *Registry) MustRegister(factory Factory) {
	if err := r.Register(factory); err != nil {
		panic(err)
	}
}

// Register 注册到默认注册表
func Register(factory Factory) error {
	return defaultRegistry.Register(factory)
}

// MustRegister 注册到默认注册表，出错时 panic
func MustRegister(factory Factory) {
	defaultRegistry.MustRegister(factory)
}

// Create 按标识创建报表实例，排除的报表同样可以创建
func (r *Registry) Create(id string) (Report, bool) {
	r.mu.RLock()
	i, ok := r.index[id]
	var f Factory
	if ok {
		f = r.entries[i].factory
	}
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// Has 是否注册了该标识
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok
}

// IDs 按注册顺序返回所有标识
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.id)
	}
	return ids
}

// Exclude 排除报表，下次查询生效
func (r *Registry) Exclude(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.excluded[id] = struct{}{}
	}
}

// SetExcluded 替换排除集合
func (r *Registry) SetExcluded(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excluded = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		r.excluded[id] = struct{}{}
	}
}

// Excluded 当前排除的标识
func (r *Registry) Excluded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.excluded))
	for id := range r.excluded {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsExcluded 标识是否被排除
func (r *Registry) IsExcluded(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.excluded[id]
	return ok
}

// Reports 返回所有可用报表，按排序键升序，排序键相同保持注册顺序
func (r *Registry) Reports() *Collection {
	r.mu.RLock()
	candidates := make([]registration, 0, len(r.entries))
	for _, e := range r.entries {
		if _, skip := r.excluded[e.id]; skip {
			continue
		}
		candidates = append(candidates, e)
	}
	r.mu.RUnlock()

	entries := make([]*Entry, 0, len(candidates))
	for _, c := range candidates {
		rep := c.factory()
		if IsAbstract(rep) {
			continue
		}
		entries = append(entries, &Entry{ID: c.id, Report: rep, Sort: SortOf(rep)})
	}

	slices.SortStableFunc(entries, func(a, b *Entry) int {
		switch {
		case a.Sort < b.Sort:
			return -1
		case a.Sort > b.Sort:
			return 1
		default:
			return 0
		}
	})

	logger.Debug("报表列表已生成", zap.Int("reports", len(entries)), zap.Int("registered", len(r.IDs())))
	return newCollection(entries)
}

// Entry 报表列表项，排序键在查询时计算一次
type Entry struct {
	ID     string
	Report Report
	Sort   int
}

// Collection 有序报表集合，可按标识查找
type Collection struct {
	entries []*Entry
	index   map[string]*Entry
}

func newCollection(entries []*Entry) *Collection {
	index := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		index[e.ID] = e
	}
	return &Collection{entries: entries, index: index}
}

// Entries 有序列表项
func (c *Collection) Entries() []*Entry {
	return c.entries
}

// Get 按标识查找报表
func (c *Collection) Get(id string) (Report, bool) {
	e, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return e.Report, true
}

// Len 报表数量
func (c *Collection) Len() int {
	return len(c.entries)
}

// IDs 有序标识
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Filter 返回满足条件的子集，保持顺序
func (c *Collection) Filter(keep func(Report) bool) *Collection {
	kept := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if keep(e.Report) {
			kept = append(kept, e)
		}
	}
	return newCollection(kept)
}
