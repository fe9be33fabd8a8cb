package report

import (
	"context"
	"errors"
)

// stubReport 可配置的测试报表
type stubReport struct {
	Base
	id       string
	title    string
	sort     int
	abstract bool
	records  Records
	err      error
	decision Decision
	columns  Columns
}

func (s *stubReport) ID() string          { return s.id }
func (s *stubReport) Title() string       { return s.title }
func (s *stubReport) Description() string { return "description of " + s.id }
func (s *stubReport) Sort() int           { return s.sort }
func (s *stubReport) IsAbstract() bool    { return s.abstract }
func (s *stubReport) Columns() Columns    { return s.columns }

func (s *stubReport) ViewDecision(*Actor) Decision { return s.decision }

func (s *stubReport) SourceRecords(_ context.Context, _ Params, _ string, _ int) (Records, error) {
	return s.records, s.err
}

func stub(id string, sort int) Factory {
	return func() Report { return &stubReport{id: id, title: id, sort: sort} }
}

// noSourceReport 未提供数据源
type noSourceReport struct {
	Base
}

func (noSourceReport) Title() string { return "No source" }

var errBoom = errors.New("boom")

// staticChecker 固定权限集合
type staticChecker struct {
	codes map[uint][]string
	err   error
}

func (c staticChecker) HasAnyPermission(userID uint, codes ...string) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	for _, have := range c.codes[userID] {
		for _, want := range codes {
			if have == want {
				return true, nil
			}
		}
	}
	return false, nil
}
