package inventory

import (
	"strings"

	"stock-sync/core/reconcile"

	"golang.org/x/text/cases"
)

// Vendor is a supported vendor: its reconcile policy and the selector
// aliases accepted for it.
type Vendor struct {
	reconcile.Policy
	Aliases []string `json:"aliases"`
}

// Vendors is the closed policy table.
var Vendors = []Vendor{
	{
		Policy: reconcile.Policy{
			Vendor:          "Light in the Attic",
			Slug:            "lita",
			FeedIDColumn:    "SKU",
			FeedValueColumn: "INV AVAIL",
			FeedHeaderRow:   1,
			ChecksTags:      false,
			Kind:            reconcile.ValuePresence,
		},
		Aliases: []string{"Light", "LITA"},
	},
	{
		Policy: reconcile.Policy{
			Vendor:          "Juno",
			Slug:            "juno",
			FeedIDColumn:    "Cat No",
			FeedValueColumn: "Stock",
			FeedHeaderRow:   0,
			ChecksTags:      true,
			Kind:            reconcile.ValueCount,
		},
	},
}

// ResolveVendor maps a selector (canonical name, slug or alias; trimmed,
// case-insensitive) to its policy.
func ResolveVendor(selector string) (reconcile.Policy, error) {
	key := foldKey(selector)
	if key != "" {
		for _, v := range Vendors {
			if foldKey(v.Vendor) == key || foldKey(v.Slug) == key {
				return v.Policy, nil
			}
			for _, a := range v.Aliases {
				if foldKey(a) == key {
					return v.Policy, nil
				}
			}
		}
	}
	return reconcile.Policy{}, &UnsupportedVendorError{Selector: selector}
}

// OutputFilename is the attachment name of the updated vendor table.
func OutputFilename(p reconcile.Policy) string {
	return "updated_official_" + p.Slug + "_only.xlsx"
}

// DiffFilename is the name of the diff report when written outside the archive.
func DiffFilename(p reconcile.Policy) string {
	return "diff_" + p.Slug + ".xlsx"
}

func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
