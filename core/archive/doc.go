// Package archive persists uploaded spreadsheets and per-run artifacts and
// enforces their retention.
//
// Two roots are kept apart: the uploads root holds the caller's source files
// under their original names, and the records root holds the exported
// artifacts partitioned by day:
//
//	<YYYYMMDD>_upload/upload_<HHMMSS>_<suffix>.xlsx
//	<YYYYMMDD>_diff/diff_<HHMMSS>_<suffix>.xlsx
//
// # Backends
//
// Store is implemented by LocalStore (an afero filesystem, the OS in
// production and a MemMapFs in tests) and ObjectStore (a MinIO/S3 bucket
// prefix through core/storage).
//
// # Retention
//
// Sweeper removes every object older than the configured retention from a
// set of stores. Concurrent sweeps are coalesced into one, and Run drives
// sweeps from a ticker.
package archive
