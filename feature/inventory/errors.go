package inventory

import (
	"errors"
	"fmt"
	"strings"

	"stock-sync/core/reconcile"
)

// UnsupportedVendorError reports a vendor selector outside the policy table.
type UnsupportedVendorError struct {
	Selector string
}

func (e *UnsupportedVendorError) Error() string {
	return fmt.Sprintf("unsupported vendor: %q", e.Selector)
}

// MissingUploadError reports required upload fields that were not sent.
type MissingUploadError struct {
	Fields []string
}

func (e *MissingUploadError) Error() string {
	return fmt.Sprintf("both the official spreadsheet (file1) and the vendor spreadsheet (file2) are required; missing: %s",
		strings.Join(e.Fields, ", "))
}

// IsClientError reports whether err was caused by the request rather than
// by the server.
func IsClientError(err error) bool {
	var (
		vendorErr *UnsupportedVendorError
		uploadErr *MissingUploadError
		schemaErr *reconcile.SchemaError
	)
	return errors.As(err, &vendorErr) || errors.As(err, &uploadErr) || errors.As(err, &schemaErr)
}
