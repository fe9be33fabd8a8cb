package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"yqhp/reports/internal/report"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// ExportRows 导出用的表头和纯文本行
func ExportRows(cols report.Columns, records report.Records) [][]string {
	rows := make([][]string, 0, len(records)+1)
	header := make([]string, 0, len(cols))
	for _, c := range cols {
		header = append(header, c.Label())
	}
	rows = append(rows, header)
	for _, rec := range records {
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, PlainCell(c, rec))
		}
		rows = append(rows, row)
	}
	return rows
}

// CSV 导出 CSV
func CSV(cols report.Columns, records report.Records) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(ExportRows(cols, records)); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX 导出 Excel
func XLSX(cols report.Columns, records report.Records) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, row := range ExportRows(cols, records) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if len(cols) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(cols), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
