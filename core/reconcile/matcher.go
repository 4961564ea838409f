package reconcile

import (
	"stock-sync/core/table"
)

// Lookup maps trimmed vendor identifiers to feed values.
type Lookup struct {
	kind   ValueKind
	values map[string]table.Value
}

// BuildLookup indexes feed by the policy's identifier column. Identifiers
// are trimmed; on duplicates the last row wins. Presence policies only
// record that an identifier exists, count policies keep the raw value cell.
func BuildLookup(feed *table.Table, p Policy) (*Lookup, error) {
	required := p.FeedColumns()
	if missing := feed.Missing(required...); len(missing) > 0 {
		return nil, &SchemaError{
			Table:    "vendor feed",
			Required: required,
			Missing:  missing,
			Actual:   append([]string(nil), feed.Columns...),
		}
	}

	l := &Lookup{
		kind:   p.Kind,
		values: make(map[string]table.Value, feed.Len()),
	}
	for _, r := range feed.Rows {
		id := feed.Get(r, p.FeedIDColumn).Trimmed()
		if p.Kind == ValueCount {
			l.values[id] = feed.Get(r, p.FeedValueColumn)
		} else {
			l.values[id] = table.Missing()
		}
	}
	return l, nil
}

// Len returns the number of distinct identifiers.
func (l *Lookup) Len() int {
	return len(l.values)
}

// Contains reports whether the feed lists id.
func (l *Lookup) Contains(id string) bool {
	_, ok := l.values[id]
	return ok
}

// Quantity returns the feed value for id. It is only meaningful for count
// lookups; presence lookups return Missing for known ids.
func (l *Lookup) Quantity(id string) (table.Value, bool) {
	v, ok := l.values[id]
	return v, ok
}
