package reconcile

import (
	"strings"

	"stock-sync/core/table"

	"golang.org/x/text/cases"
)

// Column names of the official inventory table.
const (
	ColSKU            = "SKU"
	ColVendor         = "Vendor"
	ColInventory      = "Inventory"
	ColTrackInventory = "Track Inventory"
	ColOption1        = "Option1 Value"
	ColTags           = "Tags"
)

// Recognized cell values.
const (
	// StatusPreOrder is the Option1 Value of pre-order rows.
	StatusPreOrder = "預購"
	// StatusInStock is the Option1 Value of in-stock rows.
	StatusInStock = "現貨"
	// TagUpcoming marks rows that are not released yet.
	TagUpcoming = "即將發行"
	// TrackYes is the canonical Track Inventory flag.
	TrackYes = "Yes"
)

// TrackedFields are the columns compared by Diff.
var TrackedFields = []string{ColInventory, ColTrackInventory}

// ValueKind selects how feed values are resolved.
type ValueKind string

const (
	// ValuePresence treats the feed as a list of SKUs still available.
	ValuePresence ValueKind = "presence"
	// ValueCount reads a numeric stock quantity per SKU.
	ValueCount ValueKind = "count"
)

// Availability is the rank of an Option1 Value.
type Availability int

const (
	// PreOrder sorts first.
	PreOrder Availability = iota
	// InStock sorts after pre-order rows.
	InStock
	// Unclassified covers every other value, including Missing.
	Unclassified
)

// AvailabilityOf classifies an Option1 Value cell.
func AvailabilityOf(v table.Value) Availability {
	switch v.Trimmed() {
	case StatusPreOrder:
		return PreOrder
	case StatusInStock:
		return InStock
	default:
		return Unclassified
	}
}

// Policy describes how one vendor's feed is reconciled.
type Policy struct {
	// Vendor is the canonical vendor name matched against the Vendor column.
	Vendor string `json:"vendor"`

	// Slug names output artifacts (updated_official_<slug>_only.xlsx).
	Slug string `json:"slug"`

	// FeedIDColumn holds the vendor's SKU / catalog number.
	FeedIDColumn string `json:"feed_id_column"`

	// FeedValueColumn holds the presence flag or the stock quantity.
	FeedValueColumn string `json:"feed_value_column"`

	// FeedHeaderRow is the 0-based header row of the feed worksheet.
	FeedHeaderRow int `json:"feed_header_row"`

	// ChecksTags suppresses updates for rows tagged TagUpcoming.
	ChecksTags bool `json:"checks_tags"`

	// Kind selects presence or count resolution.
	Kind ValueKind `json:"kind"`
}

// FeedColumns returns the columns a feed must carry for this policy.
func (p Policy) FeedColumns() []string {
	cols := []string{p.FeedIDColumn}
	if p.FeedValueColumn != "" {
		cols = append(cols, p.FeedValueColumn)
	}
	return cols
}

// OfficialColumns returns the columns the official table must carry.
func (p Policy) OfficialColumns() []string {
	cols := []string{ColSKU, ColVendor, ColOption1, ColInventory, ColTrackInventory}
	if p.ChecksTags {
		cols = append(cols, ColTags)
	}
	return cols
}

// MatchesVendor reports whether row r of t belongs to the policy vendor.
// The comparison is trimmed and case-insensitive.
func (p Policy) MatchesVendor(t *table.Table, r table.Row) bool {
	v := t.Get(r, ColVendor)
	if v.IsMissing() {
		return false
	}
	return fold(v.Text()) == fold(p.Vendor)
}

// Eligible reports whether row r of t qualifies for an update: it belongs to
// the vendor, is a pre-order row and, for policies that check tags, is not
// tagged as an upcoming release.
func (p Policy) Eligible(t *table.Table, r table.Row) bool {
	if !p.MatchesVendor(t, r) {
		return false
	}
	if AvailabilityOf(t.Get(r, ColOption1)) != PreOrder {
		return false
	}
	if p.ChecksTags && fold(t.Get(r, ColTags).Text()) == fold(TagUpcoming) {
		return false
	}
	return true
}

// DiffRecord is one SKU's changed tracked fields.
type DiffRecord struct {
	// SKU is the join key.
	SKU table.Value `json:"sku"`

	// Changes lists only the fields whose values differ.
	Changes []FieldChange `json:"changes"`
}

// FieldChange is a before/after pair for one tracked field.
type FieldChange struct {
	Field  string      `json:"field"`
	Before table.Value `json:"before"`
	After  table.Value `json:"after"`
}

// Stats summarizes a pipeline run.
type Stats struct {
	OfficialRows int `json:"official_rows"`
	FeedEntries  int `json:"feed_entries"`
	VendorRows   int `json:"vendor_rows"`
	Eligible     int `json:"eligible"`
	Updated      int `json:"updated"`
	NotInFeed    int `json:"not_in_feed"`
	Readmitted   int `json:"readmitted"`
	Duplicates   int `json:"duplicates"`
	OutputRows   int `json:"output_rows"`
	DiffRecords  int `json:"diff_records"`
}

// Result is the outcome of Run.
type Result struct {
	// Policy is the policy that produced the result.
	Policy Policy

	// Reconciled is the full official table after updates (every vendor).
	Reconciled *table.Table

	// Before is the policy vendor's subset of the official table, pre-update.
	Before *table.Table

	// After is the finalized vendor subset: updated rows plus re-admitted
	// in-stock rows, deduplicated and sorted.
	After *table.Table

	// Diff lists the tracked-field changes between Before and After.
	Diff []DiffRecord

	// Stats holds pipeline counters.
	Stats Stats
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
