package reports

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"yqhp/reports/common/config"
	"yqhp/reports/common/database"
	"yqhp/reports/common/types"
	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := database.Open(&config.DatabaseConfig{
		Driver:   "sqlite",
		Database: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(model.All()...))

	prev := database.GetDB()
	database.SetDB(conn)
	report.SetEntityFactory(model.NewEntity)
	t.Cleanup(func() {
		database.SetDB(prev)
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

func seedPages(t *testing.T, pages ...*model.Page) {
	t.Helper()
	for _, p := range pages {
		require.NoError(t, database.GetDB().Create(p).Error)
	}
}

func titles(records report.Records) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		switch v := r.(type) {
		case *model.Page:
			out = append(out, v.Title)
		case *model.File:
			out = append(out, v.Name)
		}
	}
	return out
}

func TestRegisteredReports(t *testing.T) {
	assert.Equal(t, []string{
		"reports.BrokenLinksReport",
		"reports.EmptyPagesReport",
		"reports.RecentlyEditedReport",
		"reports.RecentlyEditedReport_traced",
		"reports.BrokenFilesReport",
	}, report.DefaultRegistry().Reports().IDs())

	for _, e := range report.DefaultRegistry().Reports().Entries() {
		assert.NoError(t, report.Validate(e.Report), e.ID)
		assert.NotEmpty(t, e.Report.Title(), e.ID)
	}
}

func TestBrokenLinksReport(t *testing.T) {
	setupDB(t)
	seedPages(t,
		&model.Page{Title: "B link", Published: true, HasBrokenLink: true},
		&model.Page{Title: "A file", Published: true, HasBrokenFile: true},
		&model.Page{Title: "C draft", Published: false, HasBrokenLink: true},
		&model.Page{Title: "D fine", Published: true},
	)
	ctx := context.Background()
	r := &BrokenLinksReport{}

	records, err := report.GetRecords(ctx, r, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A file", "B link"}, titles(records))

	records, err = report.GetRecords(ctx, r, report.Params{ParamCheckSite: CheckSiteDraft})
	require.NoError(t, err)
	assert.Equal(t, []string{"A file", "B link", "C draft"}, titles(records))

	records, err = report.GetRecords(ctx, r, report.Params{ParamReason: ReasonBrokenFile})
	require.NoError(t, err)
	assert.Equal(t, []string{"A file"}, titles(records))

	assert.Equal(t, 2, report.Count(ctx, r, nil))
	assert.Equal(t, "has broken files", records[0].(*model.Page).BrokenReason())
}

func TestEmptyPagesReport(t *testing.T) {
	setupDB(t)
	seedPages(t,
		&model.Page{Title: "Blank", Content: "<p> </p>"},
		&model.Page{Title: "Nothing"},
		&model.Page{Title: "Full", Content: "<p>hello</p>"},
	)

	records, err := report.GetRecords(context.Background(), &EmptyPagesReport{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blank", "Nothing"}, titles(records))

	_, err = report.Query(context.Background(), &EmptyPagesReport{}, nil)
	assert.ErrorIs(t, err, report.ErrNoQuery)
}

func TestRecentlyEditedReport(t *testing.T) {
	setupDB(t)
	now := time.Now()
	seedPages(t,
		&model.Page{Title: "Old", BaseModel: model.BaseModel{UpdatedAt: types.NewDateTime(now.AddDate(0, 0, -30))}},
		&model.Page{Title: "Yesterday", BaseModel: model.BaseModel{UpdatedAt: types.NewDateTime(now.AddDate(0, 0, -1))}},
		&model.Page{Title: "Today", BaseModel: model.BaseModel{UpdatedAt: types.NewDateTime(now)}},
	)
	ctx := context.Background()
	r := &RecentlyEditedReport{Days: 7}

	records, err := report.GetRecords(ctx, r, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "Yesterday"}, titles(records))
	assert.Equal(t, "Pages edited in the last 7 days", r.Title())

	limited, err := r.SourceRecords(ctx, nil, "Title", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Today"}, titles(limited))

	side := report.NewSideWrapper(r)
	assert.Equal(t, r.SideReportColumns(), side.Columns())
}

func TestTracedRecentlyEdited(t *testing.T) {
	setupDB(t)
	seedPages(t, &model.Page{Title: "Fresh", BaseModel: model.BaseModel{UpdatedAt: types.Now()}})

	traced := NewTracedRecentlyEdited()
	assert.Equal(t, 3, traced.Sort())
	assert.Equal(t, "reports.RecentlyEditedReport_traced", report.ID(traced))
	assert.True(t, strings.HasSuffix(traced.Title(), "(traced)"))

	records, err := report.GetRecords(context.Background(), traced, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fresh"}, titles(records))
}

func TestBrokenFilesReport(t *testing.T) {
	setupDB(t)
	for _, f := range []*model.File{
		{Name: "gone.pdf", Filename: "assets/gone.pdf", Missing: true},
		{Name: "here.pdf", Filename: "assets/here.pdf"},
	} {
		require.NoError(t, database.GetDB().Create(f).Error)
	}

	r := &BrokenFilesReport{}
	records, err := report.GetRecords(context.Background(), r, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"gone.pdf"}, titles(records))
	assert.Equal(t, fmt.Sprintf("admin/assets/edit/%d", records[0].(*model.File).ID), records[0].(*model.File).CMSEditLink())
}
