package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountCode(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateAccountCode("512"))
	assert.NoError(t, ValidateAccountCode("411-CLI"))

	assert.Error(t, ValidateAccountCode(""))
	assert.Error(t, ValidateAccountCode("   "))
	assert.Error(t, ValidateAccountCode("5 12"))
	assert.Error(t, ValidateAccountCode(strings.Repeat("9", 11)))
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Bank"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName(strings.Repeat("x", 256)))
}

func TestValidatePositiveAmount(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePositiveAmount("150.50"))
	assert.NoError(t, ValidatePositiveAmount("0.01"))

	assert.Error(t, ValidatePositiveAmount("0"))
	assert.Error(t, ValidatePositiveAmount("-5"))
	assert.Error(t, ValidatePositiveAmount("1.005"))
	assert.Error(t, ValidatePositiveAmount("abc"))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("28/02/2026")
	require.Error(t, err)

	assert.NoError(t, ValidateDate(" 2026-02-28 "))
	assert.Error(t, ValidateDate("not-a-date"))
}
