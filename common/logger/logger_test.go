package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(ReplaceLogger(zap.New(core)))
	return logs
}

func TestCtxReportField(t *testing.T) {
	logs := observe(t)

	ctx := WithReport(context.Background(), "reports.BrokenLinksReport")
	assert.Equal(t, "reports.BrokenLinksReport", ReportFrom(ctx))
	assert.Empty(t, ReportFrom(context.Background()))

	Ctx(ctx).Info("hello")
	Ctx(context.Background()).Info("plain")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "reports.BrokenLinksReport", entries[0].ContextMap()["report"])
	assert.NotContains(t, entries[1].ContextMap(), "report")
}

func TestGormLoggerTrace(t *testing.T) {
	logs := observe(t)
	ctx := WithReport(context.Background(), "reports.EmptyPagesReport")
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l := NewGormLogger("warn", 50*time.Millisecond)

	l.Trace(ctx, time.Now(), sql, nil)
	assert.Zero(t, logs.Len(), "fast query below info level")

	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	slow := logs.FilterMessage("SQL SLOW").All()
	require.Len(t, slow, 1)
	assert.Equal(t, "reports.EmptyPagesReport", slow[0].ContextMap()["report"])
	assert.Equal(t, "SELECT 1", slow[0].ContextMap()["sql"])

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	assert.Equal(t, 1, logs.Len())
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseGormLevel("SILENT"))
	assert.Equal(t, gormlogger.Info, parseGormLevel("info"))
	assert.Equal(t, gormlogger.Warn, parseGormLevel(""))
	assert.Equal(t, DefaultSlowThreshold, NewGormLogger("warn", 0).SlowThreshold)
}
