// Package models defines the GORM models persisted by the inventory feature.
//
// The gorm column and type tags are also the source of truth for the
// ledger integrity check, which compares them with the live table.
package models
