package checks

import (
	"context"
	"regexp"

	"stock-sync/core/archive"
)

// recordKey matches <YYYYMMDD>_<kind>/<kind>_<HHMMSS>[_<suffix>].xlsx.
var recordKey = regexp.MustCompile(`^(\d{8})_(upload|diff)/(upload|diff)_\d{6}(_[0-9a-f]{8})?\.xlsx$`)

// RecordsReport summarizes the records root.
type RecordsReport struct {
	Total   int      `json:"total"`
	Uploads int      `json:"uploads"`
	Diffs   int      `json:"diffs"`
	Stray   []string `json:"stray"`
}

// CheckRecords lists the records store and flags keys that do not follow
// the dated record layout.
func CheckRecords(ctx context.Context, store archive.Store) (*RecordsReport, error) {
	entries, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &RecordsReport{Stray: []string{}}
	for _, e := range entries {
		report.Total++
		m := recordKey.FindStringSubmatch(e.Key)
		if m == nil || m[2] != m[3] {
			report.Stray = append(report.Stray, e.Key)
			continue
		}
		if m[2] == "upload" {
			report.Uploads++
		} else {
			report.Diffs++
		}
	}
	return report, nil
}
