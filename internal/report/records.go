package report

import (
	"context"
	"fmt"
	"sync"

	"yqhp/reports/common/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EntityFactory 按实体类型名创建空实例，用于物化查询结果
type EntityFactory func(class string) (any, bool)

var (
	entityMu      sync.RWMutex
	entityFactory EntityFactory
)

// SetEntityFactory 设置实体工厂
func SetEntityFactory(f EntityFactory) {
	entityMu.Lock()
	defer entityMu.Unlock()
	entityFactory = f
}

func newEntity(class string) (any, bool) {
	entityMu.RLock()
	f := entityFactory
	entityMu.RUnlock()
	if f == nil {
		return nil, false
	}
	return f(class)
}

// Validate 校验报表至少提供一种数据源
func Validate(r Report) error {
	if w, ok := r.(Wrapped); ok {
		return Validate(w.Base())
	}
	_, records := r.(RecordSource)
	_, query := r.(QuerySource)
	if !records && !query {
		return fmt.Errorf("%s: %w", ID(r), ErrMissingSource)
	}
	return r.Columns().Validate()
}

// GetRecords 获取报表记录
// 优先使用 SourceRecords，否则执行 SourceQuery 并按 DataClass 物化为实体
func GetRecords(ctx context.Context, r Report, params Params) (Records, error) {
	if rs, ok := r.(RecordSource); ok {
		return rs.SourceRecords(ctx, params, "", 0)
	}
	if _, ok := r.(QuerySource); ok {
		return queryRecords(ctx, r, params)
	}
	return nil, fmt.Errorf("%s: %w", ID(r), ErrMissingSource)
}

func queryRecords(ctx context.Context, r Report, params Params) (Records, error) {
	ctx = logger.WithReport(ctx, ID(r))
	q, err := r.(QuerySource).SourceQuery(ctx, params)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("%s: %w", ID(r), ErrNoQuery)
	}

	rows, err := q.WithContext(ctx).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s: query records: %w", ID(r), err)
	}
	defer rows.Close()

	class := r.DataClass()
	out := Records{}
	for rows.Next() {
		entity, ok := newEntity(class)
		if !ok {
			m := map[string]any{}
			if err := q.ScanRows(rows, &m); err != nil {
				return nil, fmt.Errorf("%s: scan row: %w", ID(r), err)
			}
			out = append(out, m)
			continue
		}
		if err := q.ScanRows(rows, entity); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", ID(r), err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", ID(r), err)
	}
	return out, nil
}

// Query 获取报表底层查询，只提供内存记录的报表返回 ErrNoQuery
func Query(ctx context.Context, r Report, params Params) (*gorm.DB, error) {
	if qs, ok := r.(QuerySource); ok {
		return qs.SourceQuery(ctx, params)
	}
	if _, ok := r.(RecordSource); ok {
		return nil, fmt.Errorf("%s: %w", ID(r), ErrNoQuery)
	}
	return nil, fmt.Errorf("%s: %w", ID(r), ErrMissingSource)
}

// Count 报表记录数，获取失败时记录警告并返回 -1
func Count(ctx context.Context, r Report, params Params) int {
	records, err := GetRecords(ctx, r, params)
	if err != nil {
		logger.Warn("报表记录获取失败",
			zap.String("report", ID(r)),
			zap.Error(err),
		)
		return -1
	}
	return len(records)
}
