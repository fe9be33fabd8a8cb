package reports

import (
	"context"

	"yqhp/reports/internal/model"
	"yqhp/reports/internal/report"

	"gorm.io/gorm"
)

// BrokenFilesReport 磁盘上已不存在的文件
type BrokenFilesReport struct {
	report.Base
}

func (BrokenFilesReport) Title() string     { return "Missing files" }
func (BrokenFilesReport) DataClass() string { return model.ClassFile }
func (BrokenFilesReport) Group() string     { return groupAssets }
func (BrokenFilesReport) Sort() int         { return 4 }

func (BrokenFilesReport) Description() string {
	return "<p>Files recorded in the asset store whose content is missing on disk.</p>"
}

func (BrokenFilesReport) Columns() report.Columns {
	return report.Columns{
		{Key: "Name", Title: "Name", Link: true},
		{Key: "Filename", Title: "Path"},
		{Key: "Size", Title: "Size (bytes)", Casting: report.CastInt},
	}
}

func (BrokenFilesReport) SourceQuery(ctx context.Context, _ report.Params) (*gorm.DB, error) {
	return db(ctx).Model(&model.File{}).Where("missing = ?", true).Order("filename"), nil
}
