package reconcile

import (
	"sort"

	"stock-sync/core/table"
)

// Diff joins before and after on SKU (full outer join; a SKU present on
// one side only is compared against Missing) and returns a record for every
// joined pair whose Inventory or Track Inventory differ. SKUs that occur
// several times on a side are paired with every row of the other side.
// Records are ordered by SKU.
func Diff(before, after *table.Table) []DiffRecord {
	left := groupBySKU(before)
	right := groupBySKU(after)

	keys := make(map[string]table.Value, len(left.rows)+len(right.rows))
	for k, v := range left.sku {
		keys[k] = v
	}
	for k, v := range right.sku {
		keys[k] = v
	}

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if c := compareSKU(keys[ordered[i]], keys[ordered[j]]); c != 0 {
			return c < 0
		}
		return ordered[i] < ordered[j]
	})

	var records []DiffRecord
	for _, k := range ordered {
		olds := left.rows[k]
		news := right.rows[k]
		if len(olds) == 0 {
			olds = []table.Row{nil}
		}
		if len(news) == 0 {
			news = []table.Row{nil}
		}

		for _, o := range olds {
			for _, n := range news {
				var changes []FieldChange
				for _, field := range TrackedFields {
					ov := fieldOf(before, o, field)
					nv := fieldOf(after, n, field)
					if !ov.Equal(nv) {
						changes = append(changes, FieldChange{Field: field, Before: ov, After: nv})
					}
				}
				if len(changes) > 0 {
					records = append(records, DiffRecord{SKU: keys[k], Changes: changes})
				}
			}
		}
	}

	return records
}

// DiffTable renders records as a table: SKU followed by <field>_Before /
// <field>_After column pairs in order of first appearance. Fields a record
// did not change are left Missing. With no records the full header is
// returned.
func DiffTable(records []DiffRecord) *table.Table {
	columns := []string{ColSKU}
	seen := map[string]bool{ColSKU: true}
	for _, rec := range records {
		for _, ch := range rec.Changes {
			for _, c := range []string{ch.Field + "_Before", ch.Field + "_After"} {
				if !seen[c] {
					seen[c] = true
					columns = append(columns, c)
				}
			}
		}
	}
	if len(records) == 0 {
		for _, f := range TrackedFields {
			columns = append(columns, f+"_Before", f+"_After")
		}
	}

	t := table.New(columns...)
	for _, rec := range records {
		row := make(table.Row, len(columns))
		row[0] = rec.SKU
		for _, ch := range rec.Changes {
			row[t.Index(ch.Field+"_Before")] = ch.Before
			row[t.Index(ch.Field+"_After")] = ch.After
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

type skuGroups struct {
	rows map[string][]table.Row
	sku  map[string]table.Value
}

func groupBySKU(t *table.Table) skuGroups {
	g := skuGroups{
		rows: make(map[string][]table.Row),
		sku:  make(map[string]table.Value),
	}
	for _, r := range t.Rows {
		v := t.Get(r, ColSKU)
		k := v.Key()
		g.rows[k] = append(g.rows[k], r)
		g.sku[k] = v
	}
	return g
}

// fieldOf reads a tracked field, treating an absent row as Missing.
func fieldOf(t *table.Table, r table.Row, name string) table.Value {
	if r == nil {
		return table.Missing()
	}
	return t.Get(r, name)
}
