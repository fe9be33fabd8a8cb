package reports

import (
	"context"
	"strconv"
	"time"

	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"
)

// RecentlyEditedReport 最近若干天内编辑过的页面
type RecentlyEditedReport struct {
	pageReport
	Days int
}

func (r RecentlyEditedReport) Title() string {
	return "Pages edited in the last " + strconv.Itoa(r.days()) + " days"
}

func (RecentlyEditedReport) Sort() int { return 3 }

func (RecentlyEditedReport) Columns() report.Columns {
	return report.Columns{
		pageTitleColumn(),
		{Key: "LastEdited", Title: "Last edited", Casting: report.CastDatetime},
	}
}

func (RecentlyEditedReport) SideReportColumns() report.Columns {
	return report.Columns{
		{Key: "Title", Title: "Title", Link: true},
		{Key: "LastEdited", Title: "Last edited", Casting: report.CastDate, Newline: true},
	}
}

func (r RecentlyEditedReport) days() int {
	if r.Days > 0 {
		return r.Days
	}
	return defaultRecentDays
}

// SourceRecords 按编辑时间倒序，sort 为列名时按该列升序
func (r RecentlyEditedReport) SourceRecords(ctx context.Context, _ report.Params, sort string, limit int) (report.Records, error) {
	since := time.Now().AddDate(0, 0, -r.days())

	q := db(ctx).Where("updated_at >= ?", since)
	switch sort {
	case "Title":
		q = q.Order("title")
	default:
		q = q.Order("updated_at DESC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var pages []*model.Page
	if err := q.Find(&pages).Error; err != nil {
		return nil, err
	}
	records := make(report.Records, 0, len(pages))
	for _, p := range pages {
		records = append(records, p)
	}
	return records, nil
}
