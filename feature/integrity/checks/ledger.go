package checks

import (
	"fmt"
	"reflect"
	"strings"

	"stock-sync/core/database"
	"stock-sync/feature/inventory/models"

	"gorm.io/gorm"
)

// LedgerReport is the result of a ledger schema check.
type LedgerReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckLedgerIntegrity compares the live reconcile_runs table with the GORM
// model's column and type tags.
func CheckLedgerIntegrity(db *gorm.DB) (*LedgerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return checkModel(db, models.ReconcileRun{})
}

func checkModel(db *gorm.DB, model interface{ TableName() string }) (*LedgerReport, error) {
	report := &LedgerReport{
		Table:          model.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", report.Table))
		report.Matched = false
		return report, nil
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	t := reflect.TypeOf(model)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, ok := actual[colName]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		// Only columns with an explicit type tag are type checked.
		if expType := strings.ToLower(parseGormType(tag)); expType != "" && !strings.Contains(col.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			report.Matched = false
		}
	}

	return report, nil
}

// tagValue returns the value of key in a GORM tag such as "column:id;type:int".
func tagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(p, key+":"); ok {
			return v
		}
	}
	return ""
}

func parseGormColumn(tag string) string {
	return tagValue(tag, "column")
}

func parseGormType(tag string) string {
	return tagValue(tag, "type")
}
