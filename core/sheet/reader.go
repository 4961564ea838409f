package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stock-sync/core/table"
	"stock-sync/core/utils"

	"github.com/xuri/excelize/v2"
)

// Read loads the first worksheet of the workbook in r. Rows above headerRow
// (0-based) are skipped; the header row names the columns. Fully blank data
// rows are dropped.
func Read(r io.Reader, headerRow int) (*table.Table, error) {
	if headerRow < 0 {
		return nil, fmt.Errorf("invalid header row %d", headerRow)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}

	if len(rows) <= headerRow {
		return nil, fmt.Errorf("worksheet %q has no header at row %d", sheetName, headerRow+1)
	}

	width := len(rows[headerRow])
	for _, row := range rows[headerRow+1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	t := table.New(headerNames(rows[headerRow], width)...)

	for i := headerRow + 1; i < len(rows); i++ {
		raw := rows[i]
		if blankRow(raw) {
			continue
		}
		values := make([]table.Value, width)
		for j := 0; j < width && j < len(raw); j++ {
			v, err := cellValue(f, sheetName, j+1, i+1, raw[j])
			if err != nil {
				return nil, err
			}
			values[j] = v
		}
		t.Append(values...)
	}

	return t, nil
}

// ReadBytes is Read over an in-memory workbook.
func ReadBytes(data []byte, headerRow int) (*table.Table, error) {
	return Read(bytes.NewReader(data), headerRow)
}

// headerNames turns the header cells into unique column names. Blank
// headers become "Unnamed: N" and repeats get a ".K" suffix.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for j := 0; j < width; j++ {
		name := ""
		if j < len(header) {
			name = header[j]
		}
		if utils.IsBlank(name) {
			name = "Unnamed: " + strconv.Itoa(j)
		}
		base := name
		for {
			n, dup := seen[name]
			if !dup {
				break
			}
			seen[base] = n + 1
			name = base + "." + strconv.Itoa(n+1)
		}
		seen[name] = 0
		names[j] = name
	}
	return names
}

func blankRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// cellValue classifies a raw cell by its stored type.
func cellValue(f *excelize.File, sheetName string, col, row int, raw string) (table.Value, error) {
	if raw == "" {
		return table.Missing(), nil
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return table.Missing(), err
	}
	typ, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return table.Missing(), fmt.Errorf("failed to read cell type of %s: %w", cell, err)
	}

	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeFormula:
		if n, ok := utils.ToFloat(raw); ok {
			return table.Number(n), nil
		}
		return table.String(raw), nil
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return table.String("TRUE"), nil
		}
		return table.String("FALSE"), nil
	default:
		return table.String(raw), nil
	}
}
