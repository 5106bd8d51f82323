package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	t.Parallel()

	for _, want := range AccountTypes() {
		got, err := ParseAccountType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := ParseAccountType("  Asset ")
	require.NoError(t, err)
	assert.Equal(t, TypeAsset, got)

	_, err = ParseAccountType("equity")
	require.Error(t, err)

	_, err = ParseAccountType("")
	require.Error(t, err)
}

func TestParseInvoiceStatus(t *testing.T) {
	t.Parallel()

	for _, want := range InvoiceStatuses() {
		got, err := ParseInvoiceStatus(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseInvoiceStatus("overdue")
	require.Error(t, err)
}
