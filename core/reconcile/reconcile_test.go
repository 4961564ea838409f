package reconcile

import (
	"errors"
	"testing"

	"stock-sync/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	presencePolicy = Policy{
		Vendor:          "Light in the Attic",
		Slug:            "lita",
		FeedIDColumn:    "SKU",
		FeedValueColumn: "INV AVAIL",
		FeedHeaderRow:   1,
		ChecksTags:      false,
		Kind:            ValuePresence,
	}
	countPolicy = Policy{
		Vendor:          "Juno",
		Slug:            "juno",
		FeedIDColumn:    "Cat No",
		FeedValueColumn: "Stock",
		ChecksTags:      true,
		Kind:            ValueCount,
	}
)

var officialColumns = []string{ColSKU, ColVendor, ColOption1, ColInventory, ColTrackInventory, ColTags}

// official builds an official table; each row is SKU, Vendor, Option1, Inventory, Track, Tags.
func official(rows ...[]any) *table.Table {
	t := table.New(officialColumns...)
	for _, r := range rows {
		t.AppendAny(r...)
	}
	return t
}

func presenceFeed(skus ...string) *table.Table {
	t := table.New("SKU", "INV AVAIL")
	for _, s := range skus {
		t.AppendAny(s, "Y")
	}
	return t
}

func countFeed(pairs ...any) *table.Table {
	t := table.New("Cat No", "Stock")
	for i := 0; i+1 < len(pairs); i += 2 {
		t.AppendAny(pairs[i], pairs[i+1])
	}
	return t
}

func cell(t *table.Table, i int, col string) table.Value {
	return t.Get(t.Rows[i], col)
}

func TestBuildLookup_SchemaError(t *testing.T) {
	feed := table.New("Cat No", "Qty")
	feed.AppendAny("C9", 17)

	_, err := BuildLookup(feed, countPolicy)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "vendor feed", schemaErr.Table)
	assert.Equal(t, []string{"Stock"}, schemaErr.Missing)
	assert.Equal(t, []string{"Cat No", "Qty"}, schemaErr.Actual)
	assert.Contains(t, err.Error(), "Stock")
	assert.Contains(t, err.Error(), "Qty")
}

func TestBuildLookup_TrimsAndLastWriteWins(t *testing.T) {
	feed := countFeed(" C9 ", 3, "C9", 17, "C7", 1)

	l, err := BuildLookup(feed, countPolicy)
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	v, ok := l.Quantity("C9")
	require.True(t, ok)
	assert.True(t, v.Equal(table.Number(17)))
	assert.False(t, l.Contains(" C9 "))
}

func TestBuildLookup_PresenceRequiresFlagColumn(t *testing.T) {
	feed := table.New("SKU")
	feed.AppendAny("X1")

	_, err := BuildLookup(feed, presencePolicy)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"INV AVAIL"}, schemaErr.Missing)
}

func TestReconcile_PresenceNotFound(t *testing.T) {
	before := official([]any{"X1", "Light in the Attic", StatusPreOrder, 4, "No", ""})
	lookup, err := BuildLookup(presenceFeed("OTHER"), presencePolicy)
	require.NoError(t, err)

	after, stats := Reconcile(before, lookup, presencePolicy)

	assert.True(t, cell(after, 0, ColInventory).Equal(table.Number(0)))
	assert.True(t, cell(after, 0, ColTrackInventory).Equal(table.String("Yes")))
	assert.Equal(t, 1, stats.Eligible)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.NotInFeed)

	// input untouched
	assert.True(t, cell(before, 0, ColInventory).Equal(table.Number(4)))
}

func TestReconcile_PresenceFound(t *testing.T) {
	before := official([]any{"X1", "Light in the Attic", StatusPreOrder, 4, "No", ""})
	lookup, err := BuildLookup(presenceFeed(" X1 "), presencePolicy)
	require.NoError(t, err)

	after, stats := Reconcile(before, lookup, presencePolicy)

	assert.Equal(t, table.RowKey(before.Rows[0]), table.RowKey(after.Rows[0]))
	assert.Equal(t, 1, stats.Eligible)
	assert.Equal(t, 0, stats.Updated)
}

func TestReconcile_PresenceKeepsExistingTrackFlag(t *testing.T) {
	before := official([]any{"X1", "light in the attic ", StatusPreOrder, 4, " yes", ""})
	lookup, err := BuildLookup(presenceFeed(), presencePolicy)
	require.NoError(t, err)

	after, _ := Reconcile(before, lookup, presencePolicy)

	assert.True(t, cell(after, 0, ColInventory).Equal(table.Number(0)))
	assert.True(t, cell(after, 0, ColTrackInventory).Equal(table.String(" yes")))
}

func TestReconcile_PresenceIgnoresTags(t *testing.T) {
	before := official([]any{"X1", "Light in the Attic", StatusPreOrder, 4, "No", TagUpcoming})
	lookup, err := BuildLookup(presenceFeed(), presencePolicy)
	require.NoError(t, err)

	after, _ := Reconcile(before, lookup, presencePolicy)

	assert.True(t, cell(after, 0, ColInventory).Equal(table.Number(0)))
}

func TestReconcile_CountResolution(t *testing.T) {
	before := official(
		[]any{"C9", "Juno", StatusPreOrder, 2, "No", ""},
		[]any{"C8", "Juno", StatusPreOrder, 5, "Yes", ""},
		[]any{"C7", "Juno", StatusPreOrder, 1, "No", ""},
	)
	lookup, err := BuildLookup(countFeed("C9", 17, "C7", "12"), countPolicy)
	require.NoError(t, err)

	after, stats := Reconcile(before, lookup, countPolicy)

	assert.True(t, cell(after, 0, ColInventory).Equal(table.Number(17)))
	assert.True(t, cell(after, 0, ColTrackInventory).Equal(table.String("Yes")))
	assert.True(t, cell(after, 1, ColInventory).Equal(table.Number(0)))
	assert.True(t, cell(after, 1, ColTrackInventory).Equal(table.String("Yes")))
	assert.True(t, cell(after, 2, ColInventory).Equal(table.Number(12)), "numeric text is coerced")
	assert.Equal(t, 3, stats.Eligible)
	assert.Equal(t, 1, stats.NotInFeed)
}

func TestReconcile_TagsSuppression(t *testing.T) {
	before := official([]any{"C9", "Juno", StatusPreOrder, 2, "No", " 即將發行 "})
	lookup, err := BuildLookup(countFeed("C9", 17), countPolicy)
	require.NoError(t, err)

	after, stats := Reconcile(before, lookup, countPolicy)

	assert.Equal(t, table.RowKey(before.Rows[0]), table.RowKey(after.Rows[0]))
	assert.Equal(t, 0, stats.Eligible)
}

func TestReconcile_Eligibility(t *testing.T) {
	before := official(
		[]any{"C1", "Other", StatusPreOrder, 2, "No", nil},
		[]any{"C2", "Juno", StatusInStock, 2, "No", nil},
		[]any{"C3", nil, StatusPreOrder, 2, "No", nil},
		[]any{"C4", " JUNO ", " " + StatusPreOrder, 2, "No", nil},
	)
	lookup, err := BuildLookup(countFeed(), countPolicy)
	require.NoError(t, err)

	after, stats := Reconcile(before, lookup, countPolicy)

	require.Equal(t, 4, after.Len(), "every row is retained")
	for i := 0; i < 3; i++ {
		assert.Equal(t, table.RowKey(before.Rows[i]), table.RowKey(after.Rows[i]))
	}
	assert.True(t, cell(after, 3, ColInventory).Equal(table.Number(0)))
	assert.Equal(t, 1, stats.Eligible)
}

func TestReadmit_CrossVendorInStock(t *testing.T) {
	after := official(
		[]any{"A", "Juno", StatusPreOrder, 7, "Yes", nil},
		[]any{"A", "Other", StatusInStock, 3, "Yes", nil},
		[]any{"B", "Other", StatusInStock, 3, "Yes", nil},
		[]any{nil, "Other", StatusInStock, 1, "Yes", nil},
	)

	combined, vendorRows, readmitted, err := Readmit(after, countPolicy)
	require.NoError(t, err)

	assert.Equal(t, 1, vendorRows)
	assert.Equal(t, 1, readmitted)
	require.Equal(t, 2, combined.Len())
	assert.Equal(t, "Other", cell(combined, 1, ColVendor).Text())
}

func TestReadmit_BlankSKUNeverReadmitted(t *testing.T) {
	after := official(
		[]any{"  ", "Juno", StatusPreOrder, 7, "Yes", nil},
		[]any{"  ", "Other", StatusInStock, 3, "Yes", nil},
	)

	combined, _, readmitted, err := Readmit(after, countPolicy)
	require.NoError(t, err)

	assert.Equal(t, 0, readmitted)
	assert.Equal(t, 1, combined.Len(), "blank SKUs stay in the primary vendor subset")
}

func TestFinalize_SortOrder(t *testing.T) {
	in := official(
		[]any{"B", "Juno", StatusInStock, 1, "Yes", nil},
		[]any{"A", "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"A", "Juno", "Other", 1, "Yes", nil},
		[]any{nil, "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"A", "Juno", StatusInStock, 1, "Yes", nil},
	)

	out, dups := Finalize(in)

	assert.Equal(t, 0, dups)
	got := make([][2]string, 0, out.Len())
	for _, r := range out.Rows {
		got = append(got, [2]string{out.Get(r, ColSKU).Text(), out.Get(r, ColOption1).Text()})
	}
	assert.Equal(t, [][2]string{
		{"A", StatusPreOrder},
		{"A", StatusInStock},
		{"A", "Other"},
		{"B", StatusInStock},
		{"", StatusPreOrder},
	}, got)
	assert.Equal(t, officialColumns, out.Columns, "no helper column leaks into the output")
}

func TestFinalize_Deduplicates(t *testing.T) {
	in := official(
		[]any{"A", "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"A", "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"A", "Juno", StatusPreOrder, 2, "Yes", nil},
	)

	out, dups := Finalize(in)

	assert.Equal(t, 1, dups)
	assert.Equal(t, 2, out.Len(), "rows differing in any column are kept")
}

func skuTexts(t *table.Table) []string {
	out := make([]string, 0, t.Len())
	for _, r := range t.Rows {
		out = append(out, t.Get(r, ColSKU).Text())
	}
	return out
}

func TestFinalize_MixedKindSKUsSortTotally(t *testing.T) {
	rows := map[string][]any{
		"10": {10, "Juno", StatusPreOrder, 1, "Yes", nil},
		"9":  {9, "Juno", StatusPreOrder, 1, "Yes", nil},
		"1a": {"1a", "Juno", StatusPreOrder, 1, "Yes", nil},
		"":   {nil, "Juno", StatusPreOrder, 1, "Yes", nil},
	}
	orders := [][]string{
		{"10", "1a", "9", ""},
		{"9", "10", "1a", ""},
		{"1a", "9", "10", ""},
		{"", "1a", "10", "9"},
	}

	for _, order := range orders {
		in := official()
		for _, k := range order {
			in.AppendAny(rows[k]...)
		}
		out, _ := Finalize(in)
		assert.Equal(t, []string{"9", "10", "1a", ""}, skuTexts(out), "input order %v", order)
	}
}

func TestDiff_MixedKindSKUsOrderIsStable(t *testing.T) {
	skus := [][]any{{10}, {9}, {"1a"}, {"B"}}
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}}

	for _, order := range orders {
		before, after := official(), official()
		for _, i := range order {
			sku := skus[i][0]
			before.AppendAny(sku, "Juno", StatusPreOrder, 1, "No", nil)
			after.AppendAny(sku, "Juno", StatusPreOrder, 2, "Yes", nil)
		}

		for run := 0; run < 5; run++ {
			diff := Diff(before, after)
			got := make([]string, 0, len(diff))
			for _, rec := range diff {
				got = append(got, rec.SKU.Text())
			}
			assert.Equal(t, []string{"9", "10", "1a", "B"}, got, "input order %v", order)
		}
	}
}

func TestCompareSKU_Transitive(t *testing.T) {
	values := []table.Value{
		table.Number(10), table.Number(9), table.String("1a"),
		table.String("9"), table.Missing(),
	}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, compareSKU(a, b), -compareSKU(b, a), "antisymmetry %v %v", a.Text(), b.Text())
			for _, c := range values {
				if compareSKU(a, b) < 0 && compareSKU(b, c) < 0 {
					assert.Negative(t, compareSKU(a, c), "%q < %q < %q", a.Text(), b.Text(), c.Text())
				}
			}
		}
	}
}

func TestDiff_NoEligibleRowsIsEmpty(t *testing.T) {
	off := official(
		[]any{"A", "Juno", StatusInStock, 1, "No", nil},
		[]any{"B", "Juno", StatusPreOrder, 1, "No", TagUpcoming},
	)

	res, err := Run(off, countFeed("A", 9), countPolicy)
	require.NoError(t, err)

	assert.Empty(t, res.Diff)
	assert.Equal(t, 0, res.Stats.DiffRecords)
}

func TestDiff_OnlyChangedFields(t *testing.T) {
	before := official(
		[]any{"A", "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"B", "Juno", StatusPreOrder, 1, "No", nil},
		[]any{"C", "Juno", StatusPreOrder, 1, "No", nil},
	)
	after := official(
		[]any{"A", "Juno", StatusPreOrder, 5, "Yes", nil},
		[]any{"B", "Juno", StatusPreOrder, 1, "Yes", nil},
		[]any{"C", "Juno", StatusPreOrder, 1, "No", nil},
	)

	diff := Diff(before, after)

	require.Len(t, diff, 2)
	assert.Equal(t, "A", diff[0].SKU.Text())
	require.Len(t, diff[0].Changes, 1)
	assert.Equal(t, ColInventory, diff[0].Changes[0].Field)
	assert.True(t, diff[0].Changes[0].Before.Equal(table.Number(1)))
	assert.True(t, diff[0].Changes[0].After.Equal(table.Number(5)))

	assert.Equal(t, "B", diff[1].SKU.Text())
	require.Len(t, diff[1].Changes, 1)
	assert.Equal(t, ColTrackInventory, diff[1].Changes[0].Field)
}

func TestDiff_OneSidedRows(t *testing.T) {
	before := official([]any{"OLD", "Juno", StatusPreOrder, 1, "Yes", nil})
	after := official(
		[]any{"NEW", "Other", StatusInStock, 2, "Yes", nil},
		[]any{"BLANK", "Other", StatusInStock, nil, nil, nil},
	)

	diff := Diff(before, after)

	require.Len(t, diff, 2)
	assert.Equal(t, "NEW", diff[0].SKU.Text())
	assert.True(t, diff[0].Changes[0].Before.IsMissing())
	assert.Equal(t, "OLD", diff[1].SKU.Text())
	assert.True(t, diff[1].Changes[0].After.IsMissing())
	// BLANK: both sides Missing on both fields, so no record
}

func TestDiffTable(t *testing.T) {
	records := []DiffRecord{
		{SKU: table.String("B"), Changes: []FieldChange{{Field: ColTrackInventory, Before: table.String("No"), After: table.String("Yes")}}},
		{SKU: table.String("A"), Changes: []FieldChange{{Field: ColInventory, Before: table.Number(1), After: table.Number(0)}}},
	}

	tb := DiffTable(records)

	assert.Equal(t, []string{"SKU", "Track Inventory_Before", "Track Inventory_After", "Inventory_Before", "Inventory_After"}, tb.Columns)
	require.Equal(t, 2, tb.Len())
	assert.True(t, tb.Get(tb.Rows[0], "Inventory_Before").IsMissing())
	assert.True(t, tb.Get(tb.Rows[1], "Inventory_After").Equal(table.Number(0)))

	empty := DiffTable(nil)
	assert.Equal(t, []string{"SKU", "Inventory_Before", "Inventory_After", "Track Inventory_Before", "Track Inventory_After"}, empty.Columns)
	assert.Equal(t, 0, empty.Len())
}

func TestRun_OfficialSchemaError(t *testing.T) {
	off := table.New(ColSKU, ColVendor, ColOption1, ColInventory, ColTrackInventory)

	_, err := Run(off, countFeed(), countPolicy)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "official", schemaErr.Table)
	assert.Equal(t, []string{ColTags}, schemaErr.Missing)

	// presence policy does not need Tags
	_, err = Run(off, presenceFeed(), presencePolicy)
	assert.NoError(t, err)
}

func TestRun_EndToEnd(t *testing.T) {
	off := official(
		[]any{"B", "Juno", StatusPreOrder, 2, "No", nil},
		[]any{"A", "Juno", StatusPreOrder, 5, "No", nil},
		[]any{"A", "Other", StatusInStock, 3, "Yes", nil},
		[]any{"Z", "Other", StatusPreOrder, 9, "No", nil},
	)

	res, err := Run(off, countFeed("A", 7), countPolicy)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Reconciled.Len())
	assert.Equal(t, 2, res.Before.Len())
	require.Equal(t, 3, res.After.Len())
	assert.Equal(t, "A", cell(res.After, 0, ColSKU).Text())
	assert.Equal(t, StatusPreOrder, cell(res.After, 0, ColOption1).Text())
	assert.True(t, cell(res.After, 0, ColInventory).Equal(table.Number(7)))
	assert.Equal(t, "Other", cell(res.After, 1, ColVendor).Text())
	assert.Equal(t, "B", cell(res.After, 2, ColSKU).Text())
	assert.True(t, cell(res.After, 2, ColInventory).Equal(table.Number(0)))

	// A joins its one before row with both after rows sharing the SKU.
	require.Len(t, res.Diff, 3)
	assert.Equal(t, "A", res.Diff[0].SKU.Text())
	assert.Equal(t, "A", res.Diff[1].SKU.Text())
	assert.Equal(t, "B", res.Diff[2].SKU.Text())

	assert.Equal(t, Stats{
		OfficialRows: 4,
		FeedEntries:  1,
		VendorRows:   2,
		Eligible:     2,
		Updated:      2,
		NotInFeed:    1,
		Readmitted:   1,
		Duplicates:   0,
		OutputRows:   3,
		DiffRecords:  3,
	}, res.Stats)
}

func TestAvailabilityOf(t *testing.T) {
	assert.Equal(t, PreOrder, AvailabilityOf(table.String(StatusPreOrder)))
	assert.Equal(t, InStock, AvailabilityOf(table.String(StatusInStock)))
	assert.Equal(t, Unclassified, AvailabilityOf(table.String("絕版")))
	assert.Equal(t, Unclassified, AvailabilityOf(table.Missing()))
}
