package report

import (
	"context"
	"testing"

	"yqhp/reports/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type plainReport struct {
	Base
}

func (plainReport) SourceRecords(context.Context, Params, string, int) (Records, error) {
	return Records{"a", "b"}, nil
}

func TestID(t *testing.T) {
	assert.Equal(t, "report.plainReport", ID(&plainReport{}))
	assert.Equal(t, "report.plainReport", ID(plainReport{}))
	assert.Equal(t, "custom", ID(&stubReport{id: "custom"}))
	assert.Equal(t, "", ID(nil))
}

func TestBaseDefaults(t *testing.T) {
	r := &plainReport{}
	assert.Equal(t, "", r.Title())
	assert.Equal(t, "", r.Description())
	assert.Empty(t, r.Columns())
	assert.Equal(t, "Page", r.DataClass())
	assert.Equal(t, 0, SortOf(r))
	assert.Equal(t, "", GroupOf(r))
	assert.False(t, IsAbstract(r))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "reports-BrokenLinksReport", Sanitize("reports.BrokenLinksReport"))
	assert.Equal(t, "reports.BrokenLinksReport", Unsanitize("reports-BrokenLinksReport"))
	assert.Equal(t, "a-b-c", Sanitize("a/b.c"))
}

func TestLink(t *testing.T) {
	SetLinkBase("admin/reports/")
	t.Cleanup(func() { SetLinkBase("admin/reports") })

	r := &stubReport{id: "reports.Sample"}
	assert.Equal(t, "admin/reports/show/reports-Sample", Link(r))
	assert.Equal(t, "admin/reports/show/reports-Sample/export.csv", Link(r, "export.csv"))
	assert.Equal(t, "admin/reports/show/reports-Sample", Link(r, ""))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(&noSourceReport{}), ErrMissingSource)
	assert.NoError(t, Validate(&plainReport{}))
	assert.ErrorIs(t, Validate(NewWrapper(&noSourceReport{})), ErrMissingSource)

	dup := &stubReport{id: "dup", columns: Columns{Col("Title", "A"), Col("Title", "B")}}
	assert.ErrorIs(t, Validate(dup), ErrDuplicateColumn)
}

func TestRecords(t *testing.T) {
	ctx := context.Background()

	records, err := GetRecords(ctx, &plainReport{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Records{"a", "b"}, records)

	_, err = GetRecords(ctx, &noSourceReport{}, nil)
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestQuery_RecordOnly(t *testing.T) {
	_, err := Query(context.Background(), &plainReport{}, nil)
	assert.ErrorIs(t, err, ErrNoQuery)

	_, err = Query(context.Background(), &noSourceReport{}, nil)
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestCount(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := logger.ReplaceLogger(zap.New(core))
	defer restore()

	ctx := context.Background()
	assert.Equal(t, 2, Count(ctx, &plainReport{}, nil))
	assert.Equal(t, 0, Count(ctx, &stubReport{id: "empty"}, nil))
	assert.Zero(t, logs.Len())

	assert.Equal(t, -1, Count(ctx, &stubReport{id: "broken", err: errBoom}, nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "broken", entry.ContextMap()["report"])
}

func TestColumns(t *testing.T) {
	cols := Columns{
		{Key: "Title", Title: "Title"},
		{Key: "LastEdited"},
	}
	require.NoError(t, cols.Validate())
	assert.Equal(t, []string{"Title", "LastEdited"}, cols.Keys())

	c, ok := cols.Get("LastEdited")
	require.True(t, ok)
	assert.Equal(t, "LastEdited", c.Label())

	_, ok = cols.Get("Missing")
	assert.False(t, ok)

	assert.Error(t, Columns{{Title: "no key"}}.Validate())
}
