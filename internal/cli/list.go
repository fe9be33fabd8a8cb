package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"yqhp/reports/common/database"
	"yqhp/reports/internal/report"
	"yqhp/reports/internal/svc"

	"github.com/spf13/cobra"
)

var (
	listAll    bool
	listCounts bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "列出已注册的报表",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootstrap(); err != nil {
			return err
		}
		defer database.Close()

		return printReports(cmd.Context(), cmd.OutOrStdout(), svc.Ctx.Registry, listAll, listCounts)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "同时列出被排除的报表")
	listCmd.Flags().BoolVar(&listCounts, "count", false, "统计每个报表的记录数")
}

// printReports 按排序输出报表，--all 时追加被排除的报表
func printReports(ctx context.Context, out io.Writer, registry *report.Registry, all, counts bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSORT\tCOUNT\tLINK")

	col := registry.Reports()
	for _, e := range col.Entries() {
		count := "-"
		if counts {
			count = fmt.Sprint(report.Count(ctx, e.Report, nil))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.ID, e.Report.Title(), e.Sort, count, report.Link(e.Report))
	}

	if all {
		for _, id := range registry.IDs() {
			if _, ok := col.Get(id); ok || !registry.IsExcluded(id) {
				continue
			}
			fmt.Fprintf(w, "%s\t(excluded)\t\t\t\n", id)
		}
	}
	return w.Flush()
}
