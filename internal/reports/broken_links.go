package reports

import (
	"context"

	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"gorm.io/gorm"
)

// 筛选参数
const (
	ParamCheckSite = "CheckSite"
	ParamReason    = "Reason"

	CheckSitePublished = "Published"
	CheckSiteDraft     = "Draft"

	ReasonBrokenLink = "BROKENLINK"
	ReasonBrokenFile = "BROKENFILE"
)

// BrokenLinksReport 含有失效链接或文件的页面
type BrokenLinksReport struct {
	pageReport
}

func (BrokenLinksReport) Title() string { return "Broken links report" }

func (BrokenLinksReport) Description() string {
	return "<p>Pages that link to missing pages or reference missing files.</p>"
}

func (BrokenLinksReport) Sort() int { return 1 }

func (BrokenLinksReport) Columns() report.Columns {
	return report.Columns{
		pageTitleColumn(),
		{Key: "LastEdited", Title: "Last edited", Casting: report.CastDatetime},
		{Key: "BrokenReason", Title: "Problem type"},
		{Key: "URLSegment", Title: "Page link", Format: "/{value}"},
	}
}

func (BrokenLinksReport) ParameterFields() []report.Field {
	return []report.Field{
		{
			Name:  ParamCheckSite,
			Title: "Check site",
			Type:  "select",
			Options: []report.Option{
				{Value: CheckSitePublished, Label: "Published site"},
				{Value: CheckSiteDraft, Label: "Draft site"},
			},
			Value: CheckSitePublished,
		},
		{
			Name:  ParamReason,
			Title: "Problem in",
			Type:  "select",
			Options: []report.Option{
				{Value: "", Label: "Any"},
				{Value: ReasonBrokenLink, Label: "Broken links"},
				{Value: ReasonBrokenFile, Label: "Broken files"},
			},
		},
	}
}

// SourceQuery 按站点与问题类型筛选
func (BrokenLinksReport) SourceQuery(ctx context.Context, params report.Params) (*gorm.DB, error) {
	q := db(ctx).Model(&model.Page{})

	switch params.Get(ParamReason) {
	case ReasonBrokenLink:
		q = q.Where("has_broken_link = ?", true)
	case ReasonBrokenFile:
		q = q.Where("has_broken_file = ?", true)
	default:
		q = q.Where("has_broken_link = ? OR has_broken_file = ?", true, true)
	}

	if params.Get(ParamCheckSite) != CheckSiteDraft {
		q = q.Where("published = ?", true)
	}
	return q.Order("title"), nil
}
