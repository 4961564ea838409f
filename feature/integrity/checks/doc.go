// Package checks holds the individual integrity checks run by the
// integrity feature: archive structure, record layout and ledger schema.
package checks
