// Package sheet reads and writes spreadsheet workbooks as table.Table values.
//
// It wraps excelize to provide the two operations the reconcile pipeline
// needs:
//
//   - Read: load the first worksheet of a workbook, treating a chosen row as
//     the header. Vendor feeds differ here: some carry a title row above the
//     header.
//   - Encode: serialize a table to a single-sheet .xlsx in column order.
//
// Numeric cells are loaded as numbers and text cells as strings, so SKU
// values such as "00123" keep their leading zeros.
//
// # Usage
//
//	official, err := sheet.Read(r, 0)
//	data, err := sheet.Encode(updated)
package sheet
