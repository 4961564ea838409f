package sheet

import (
	"fmt"

	"stock-sync/core/table"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by Encode.
const SheetName = "Sheet1"

// ContentType is the MIME type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Encode serializes t to an .xlsx workbook with a single worksheet. The
// first row holds the column names in table order; Missing cells are left
// empty.
func Encode(t *table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for j, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellStr(SheetName, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", name, err)
		}
	}
	if len(t.Columns) > 0 {
		if err := f.SetRowStyle(SheetName, 1, 1, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, r := range t.Rows {
		for j, v := range r {
			if v.IsMissing() {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(SheetName, cell, v.Interface()); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
