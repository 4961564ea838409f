package inventory

import (
	"errors"
	"testing"

	"stock-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVendor(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{"Light in the Attic", "Light in the Attic"},
		{"Light", "Light in the Attic"},
		{"  light  ", "Light in the Attic"},
		{"LITA", "Light in the Attic"},
		{"Juno", "Juno"},
		{"JUNO", "Juno"},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			p, err := ResolveVendor(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Vendor)
		})
	}
}

func TestResolveVendor_Unsupported(t *testing.T) {
	for _, sel := range []string{"Acme", "", "   "} {
		_, err := ResolveVendor(sel)
		var vendorErr *UnsupportedVendorError
		require.True(t, errors.As(err, &vendorErr), sel)
		assert.Equal(t, sel, vendorErr.Selector)
		assert.True(t, IsClientError(err))
	}
}

func TestVendors_Policies(t *testing.T) {
	lita, err := ResolveVendor("Light")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ValuePresence, lita.Kind)
	assert.Equal(t, 1, lita.FeedHeaderRow)
	assert.False(t, lita.ChecksTags)
	assert.Equal(t, "updated_official_lita_only.xlsx", OutputFilename(lita))

	juno, err := ResolveVendor("Juno")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ValueCount, juno.Kind)
	assert.Equal(t, 0, juno.FeedHeaderRow)
	assert.True(t, juno.ChecksTags)
	assert.Equal(t, "diff_juno.xlsx", DiffFilename(juno))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(&MissingUploadError{Fields: []string{"file1"}}))
	assert.True(t, IsClientError(&reconcile.SchemaError{Table: "vendor feed"}))
	assert.False(t, IsClientError(errors.New("disk full")))
}
