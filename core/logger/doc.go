// Package logger builds the zap logger shared by the server and the CLI.
//
// LOG_LEVEL=debug selects zap's development preset; other levels use the
// production preset. LOG_FORMAT picks console or json encoding.
//
// Request handlers log through WithRayID so every line carries the ray id
// assigned by the rayid middleware. The same id is stored on the run ledger
// entry, which ties a reconcile_runs row back to its request logs.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	l := logger.WithRayID(log, c)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
