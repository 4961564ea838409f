package reconcile

import (
	"fmt"
	"strings"
)

// SchemaError reports a table missing columns required by the selected
// policy. It is a client error: the uploaded spreadsheet has the wrong shape.
type SchemaError struct {
	// Table names the offending input ("official" or "vendor feed").
	Table string

	// Required lists every column the policy needs.
	Required []string

	// Missing lists the required columns that were not found.
	Missing []string

	// Actual is the column set found in the table.
	Actual []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s spreadsheet is missing columns [%s]: requires [%s], found [%s]",
		e.Table,
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
		strings.Join(e.Actual, ", "),
	)
}
