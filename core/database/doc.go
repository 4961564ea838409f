// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either an SQLite file (the default, zero setup) or
// a MySQL server, based on the application's configuration. The database is
// optional: it only backs the reconcile run ledger.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects. The integrity
// feature uses it to verify the ledger table against its model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "reconcile_runs")
package database
