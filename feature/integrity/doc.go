// Package integrity validates the infrastructure the reconciliation
// service relies on.
//
// # Checks Provided
//
//   - Structure: the upload and record roots exist in the archive backend.
//   - Records: archived records follow the <YYYYMMDD>_<upload|diff>/ layout.
//   - Ledger: the reconcile_runs table matches the ReconcileRun model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/records : Runs records check.
//   - GET /integrity/ledger : Runs ledger schema check.
package integrity
