package table

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Row is a list of cells aligned to the owning Table's Columns.
type Row []Value

// Table is an ordered sequence of rows sharing one schema.
type Table struct {
	// Columns is the ordered column set.
	Columns []string
	// Rows holds the data rows; every row has len(Columns) cells.
	Rows []Row

	index map[string]int
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of column name, or -1 if absent.
func (t *Table) Index(name string) int {
	if t.index == nil {
		t.reindex()
	}
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Has reports whether the table carries column name.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Missing returns the required columns the table does not carry, in the
// order they were requested.
func (t *Table) Missing(required ...string) []string {
	var missing []string
	for _, c := range required {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Append adds a row, padding or truncating it to the column count.
func (t *Table) Append(values ...Value) {
	row := make(Row, len(t.Columns))
	copy(row, values)
	t.Rows = append(t.Rows, row)
}

// AppendAny adds a row built from Go scalars (see Of).
func (t *Table) AppendAny(values ...any) {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Of(v)
	}
	t.Append(row...)
}

// Get returns the cell of row r in column name, or Missing if the column
// does not exist.
func (t *Table) Get(r Row, name string) Value {
	i := t.Index(name)
	if i < 0 || i >= len(r) {
		return Missing()
	}
	return r[i]
}

// Set returns a copy of r with column name set to v. The input row is left
// untouched. Setting an unknown column is a no-op copy.
func (t *Table) Set(r Row, name string, v Value) Row {
	out := make(Row, len(r))
	copy(out, r)
	if i := t.Index(name); i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}

// Empty returns a table with the same columns and no rows.
func (t *Table) Empty() *Table {
	return New(t.Columns...)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := t.Empty()
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := t.Empty()
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Concat returns a new table holding the rows of t followed by the rows of
// others. All tables must share the same columns.
func (t *Table) Concat(others ...*Table) (*Table, error) {
	out := t.Clone()
	for _, o := range others {
		if !sameColumns(t.Columns, o.Columns) {
			return nil, fmt.Errorf("cannot concat tables with different columns: %v vs %v", t.Columns, o.Columns)
		}
		for _, r := range o.Rows {
			out.Rows = append(out.Rows, append(Row(nil), r...))
		}
	}
	return out, nil
}

// RowKey encodes every cell of r so that two rows share a key iff they are
// equal across all columns.
func RowKey(r Row) string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(v.key())
	}
	return b.String()
}

// Records renders the table as a list of column->value maps.
func (t *Table) Records() []map[string]Value {
	out := make([]map[string]Value, 0, len(t.Rows))
	for _, r := range t.Rows {
		m := make(map[string]Value, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(r) {
				m[c] = r[i]
			}
		}
		out = append(out, m)
	}
	return out
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func jsonString(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}
