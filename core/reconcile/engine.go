package reconcile

import (
	"sort"

	"stock-sync/core/table"
)

// Run executes the full pipeline for one vendor: validate both tables,
// build the feed lookup, reconcile, re-admit, finalize and diff.
func Run(official, feed *table.Table, p Policy) (*Result, error) {
	required := p.OfficialColumns()
	if missing := official.Missing(required...); len(missing) > 0 {
		return nil, &SchemaError{
			Table:    "official",
			Required: required,
			Missing:  missing,
			Actual:   append([]string(nil), official.Columns...),
		}
	}

	lookup, err := BuildLookup(feed, p)
	if err != nil {
		return nil, err
	}

	reconciled, stats := Reconcile(official, lookup, p)

	combined, vendorRows, readmitted, err := Readmit(reconciled, p)
	if err != nil {
		return nil, err
	}

	after, duplicates := Finalize(combined)
	before := official.Filter(func(r table.Row) bool { return p.MatchesVendor(official, r) })
	diff := Diff(before, after)

	stats.OfficialRows = official.Len()
	stats.FeedEntries = lookup.Len()
	stats.VendorRows = vendorRows
	stats.Readmitted = readmitted
	stats.Duplicates = duplicates
	stats.OutputRows = after.Len()
	stats.DiffRecords = len(diff)

	return &Result{
		Policy:     p,
		Reconciled: reconciled,
		Before:     before,
		After:      after,
		Diff:       diff,
		Stats:      stats,
	}, nil
}

// Reconcile returns a copy of before in which every eligible row has been
// resolved against the lookup. Rows that are not eligible, including rows of
// other vendors, pass through unchanged.
func Reconcile(before *table.Table, lookup *Lookup, p Policy) (*table.Table, Stats) {
	var stats Stats
	after := before.Empty()
	after.Rows = make([]table.Row, 0, before.Len())

	for _, r := range before.Rows {
		if !p.Eligible(before, r) {
			after.Rows = append(after.Rows, append(table.Row(nil), r...))
			continue
		}
		stats.Eligible++

		sku := before.Get(r, ColSKU).Trimmed()
		if !lookup.Contains(sku) {
			stats.NotInFeed++
		}

		updated := resolve(before, r, sku, lookup, p)
		if table.RowKey(updated) != table.RowKey(r) {
			stats.Updated++
		}
		after.Rows = append(after.Rows, updated)
	}

	return after, stats
}

// resolve applies the policy's value rule to one eligible row.
func resolve(t *table.Table, r table.Row, sku string, lookup *Lookup, p Policy) table.Row {
	switch p.Kind {
	case ValueCount:
		qty := table.Number(0)
		if v, ok := lookup.Quantity(sku); ok {
			qty = numeric(v)
		}
		r = t.Set(r, ColInventory, qty)
		return t.Set(r, ColTrackInventory, table.String(TrackYes))

	default:
		// Presence only signals discontinuation: listed SKUs are left alone.
		if lookup.Contains(sku) {
			return append(table.Row(nil), r...)
		}
		r = t.Set(r, ColInventory, table.Number(0))
		if fold(t.Get(r, ColTrackInventory).Text()) != fold(TrackYes) {
			r = t.Set(r, ColTrackInventory, table.String(TrackYes))
		}
		return r
	}
}

// numeric converts numeric-like text to a Number and passes anything else
// through untouched.
func numeric(v table.Value) table.Value {
	if v.Kind() == table.KindString {
		if f, ok := v.Float(); ok {
			return table.Number(f)
		}
	}
	return v
}

// Readmit restricts after to the policy vendor's rows, then appends the
// in-stock rows of the whole table (any vendor) whose SKU matches one of the
// vendor's pre-order rows. Blank SKUs are never re-admitted. It returns the
// combined table and the vendor and re-admitted row counts.
func Readmit(after *table.Table, p Policy) (*table.Table, int, int, error) {
	vendor := after.Filter(func(r table.Row) bool { return p.MatchesVendor(after, r) })

	preOrder := make(map[string]struct{})
	for _, r := range vendor.Rows {
		if AvailabilityOf(vendor.Get(r, ColOption1)) == PreOrder {
			preOrder[vendor.Get(r, ColSKU).Key()] = struct{}{}
		}
	}

	extra := after.Filter(func(r table.Row) bool {
		sku := after.Get(r, ColSKU)
		if sku.IsBlank() {
			return false
		}
		if _, ok := preOrder[sku.Key()]; !ok {
			return false
		}
		return AvailabilityOf(after.Get(r, ColOption1)) == InStock
	})

	combined, err := vendor.Concat(extra)
	if err != nil {
		return nil, 0, 0, err
	}
	return combined, vendor.Len(), extra.Len(), nil
}

// Finalize drops rows that are identical across every column (keeping the
// first) and stable-sorts by SKU, then by availability rank. It returns the
// result and the number of duplicates removed.
func Finalize(t *table.Table) (*table.Table, int) {
	out := t.Empty()
	seen := make(map[string]struct{}, t.Len())
	for _, r := range t.Rows {
		k := table.RowKey(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Rows = append(out.Rows, r)
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Rows[i], out.Rows[j]
		if c := compareSKU(out.Get(a, ColSKU), out.Get(b, ColSKU)); c != 0 {
			return c < 0
		}
		return AvailabilityOf(out.Get(a, ColOption1)) < AvailabilityOf(out.Get(b, ColOption1))
	})

	return out, t.Len() - out.Len()
}

// compareSKU orders SKU cells by kind first (numbers, then text, then
// Missing) and within a kind numerically or lexicographically by text.
// Ranking kinds keeps the order total when a column mixes numeric and
// alphanumeric SKUs.
func compareSKU(a, b table.Value) int {
	if ra, rb := skuRank(a), skuRank(b); ra != rb {
		return ra - rb
	}

	switch a.Kind() {
	case table.KindMissing:
		return 0
	case table.KindNumber:
		x, _ := a.Float()
		y, _ := b.Float()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}

	at, bt := a.Text(), b.Text()
	switch {
	case at < bt:
		return -1
	case at > bt:
		return 1
	default:
		return 0
	}
}

func skuRank(v table.Value) int {
	switch v.Kind() {
	case table.KindNumber:
		return 0
	case table.KindString:
		return 1
	default:
		return 2
	}
}
