// Package inventory serves the reconciliation workflow over HTTP.
//
// A client uploads the official store spreadsheet (file1) and a vendor
// stock spreadsheet (file2) and picks a vendor. The service resolves the
// vendor's reconcile.Policy, persists the uploads, runs the pipeline and
// answers with the vendor's updated rows as an .xlsx attachment.
//
// # Side effects
//
//   - Uploads are kept under their original filenames in the uploads root.
//   - The updated table and the diff report are archived under dated
//     <YYYYMMDD>_upload / <YYYYMMDD>_diff directories of the records root.
//   - When a database is connected, each run is recorded in the
//     reconcile_runs ledger.
//   - Every successful request triggers a retention sweep.
//
// Missing uploads and unsupported vendors are rejected before anything is
// written.
//
// # HTTP Endpoints
//
//   - GET / : upload form.
//   - POST / : reconcile (multipart: file1, file2, vendor_selection).
//   - GET /vendors : supported vendors.
//   - GET /runs : recent runs (?limit=N, default 20, max 200).
package inventory
