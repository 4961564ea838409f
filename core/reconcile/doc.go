// Package reconcile implements the stock reconciliation engine.
//
// It merges a vendor stock feed into the official store inventory table and
// reports what changed. All stages are pure functions over table.Table
// values: inputs are never modified, so every stage can be tested on its own.
//
// # Pipeline
//
//  1. Matcher: BuildLookup indexes the vendor feed by trimmed identifier.
//  2. Reconcile: applies a Policy's eligibility predicate row by row over the
//     official table and writes Inventory / Track Inventory for eligible rows.
//  3. Readmit: selects the vendor's rows, then re-admits in-stock rows from
//     the whole table that share a SKU with one of the vendor's pre-order rows.
//  4. Finalize: removes rows duplicated across every column and orders by
//     SKU, then by availability rank (pre-order, in-stock, other).
//  5. Diff: full outer join of the before/after vendor subsets on SKU,
//     reporting changed Inventory / Track Inventory pairs.
//
// Run chains the stages and returns a Result.
//
// # Policies
//
// A Policy is plain data: the vendor name, feed columns, whether the Tags
// column suppresses updates, and the value kind. Presence feeds only signal
// discontinuation (rows missing from the feed are zeroed); count feeds carry
// authoritative quantities for every eligible row.
//
// # Usage Example
//
//	policy := reconcile.Policy{
//	    Vendor:          "Juno",
//	    FeedIDColumn:    "Cat No",
//	    FeedValueColumn: "Stock",
//	    ChecksTags:      true,
//	    Kind:            reconcile.ValueCount,
//	}
//	result, err := reconcile.Run(official, feed, policy)
package reconcile
