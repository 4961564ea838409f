// Package table provides the in-memory tabular model shared by the
// spreadsheet adapter and the reconcile engine.
//
// A Table is an ordered list of Rows sharing one column set. The schema is
// not fixed: it is whatever header the source spreadsheet carried. Cells are
// typed scalars (Value) that are either Missing, a String, or a Number.
//
// Tables are treated as immutable values by the engine. Operations such as
// Set, Filter and Concat return new rows or tables and never modify their
// inputs, which keeps the reconcile stages easy to test in isolation.
package table
