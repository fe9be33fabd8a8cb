package reports

import "yqhp/reports/internal/report"

// TracedRecentlyEdited 为最近编辑报表的取数过程创建 span
type TracedRecentlyEdited struct {
	*report.Wrapper
}

// NewTracedRecentlyEdited 创建带追踪的最近编辑报表
func NewTracedRecentlyEdited() *TracedRecentlyEdited {
	return &TracedRecentlyEdited{
		Wrapper: report.NewWrapper(
			&RecentlyEditedReport{Days: recentDays()},
			report.WithName("traced"),
			report.WithHooks(report.NewTracingHooks("recently_edited")),
		),
	}
}

func (t *TracedRecentlyEdited) Title() string {
	return t.Wrapper.Title() + " (traced)"
}
