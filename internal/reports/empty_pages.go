package reports

import (
	"context"
	"strings"

	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StrictPolicy()

// EmptyPagesReport 正文为空的页面
type EmptyPagesReport struct {
	pageReport
}

func (EmptyPagesReport) Title() string { return "Pages with no content" }

func (EmptyPagesReport) Sort() int { return 2 }

func (EmptyPagesReport) Columns() report.Columns {
	return report.Columns{
		pageTitleColumn(),
		{Key: "LastEdited", Title: "Last edited", Casting: report.CastDatetime},
	}
}

// SourceRecords 去除标签后正文为空白的页面
func (EmptyPagesReport) SourceRecords(ctx context.Context, _ report.Params, sort string, limit int) (report.Records, error) {
	var pages []*model.Page
	q := db(ctx).Order("title")
	if err := q.Find(&pages).Error; err != nil {
		return nil, err
	}

	records := report.Records{}
	for _, p := range pages {
		if strings.TrimSpace(stripTags.Sanitize(p.Content)) != "" {
			continue
		}
		records = append(records, p)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}
