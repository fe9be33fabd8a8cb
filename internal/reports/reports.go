// Package reports 内置的站点内容报表，在 init() 中注册到默认注册表。
package reports

import (
	"context"

	"yqhp/reports/common/database"
	"yqhp/reports/internal/config"
	"yqhp/reports/internal/report"

	"gorm.io/gorm"
)

const (
	groupContent = "Content reports"
	groupAssets  = "Asset reports"

	defaultRecentDays = 7
)

func init() {
	report.MustRegister(func() report.Report { return &BrokenLinksReport{} })
	report.MustRegister(func() report.Report { return &EmptyPagesReport{} })
	report.MustRegister(func() report.Report { return &RecentlyEditedReport{Days: recentDays()} })
	report.MustRegister(func() report.Report { return &BrokenFilesReport{} })
	report.MustRegister(func() report.Report { return NewTracedRecentlyEdited() })
}

func db(ctx context.Context) *gorm.DB {
	return database.GetDB().WithContext(ctx)
}

func recentDays() int {
	if cfg := config.GetConfig(); cfg != nil && cfg.Reports.RecentDays > 0 {
		return cfg.Reports.RecentDays
	}
	return defaultRecentDays
}

// pageReport 页面类报表公共部分
type pageReport struct {
	report.Base
}

func (pageReport) Group() string { return groupContent }

func pageTitleColumn() report.Column {
	return report.Column{Key: "Title", Title: "Title", Link: true}
}
