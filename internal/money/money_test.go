package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireAmountFixedPrecision(t *testing.T) {
	m := New(decimal.NewFromInt(10), "USD")
	assert.Equal(t, "10.000", m.WireAmount())

	m = New(decimal.RequireFromString("1.5"), "EUR")
	assert.Equal(t, "1.500", m.WireAmount())

	m = New(decimal.RequireFromString("999999999999.999"), "USD")
	assert.Equal(t, "999999999999.999", m.WireAmount())
}

func TestNewDefaultsCurrency(t *testing.T) {
	m := New(decimal.NewFromInt(1), "")
	assert.Equal(t, "USD", m.Currency)
}

func TestValidateCurrency(t *testing.T) {
	require.NoError(t, ValidateCurrency("USD"))
	require.NoError(t, ValidateCurrency("RUB"))

	err := ValidateCurrency("XYZ")
	require.Error(t, err)
	assert.Equal(t, "'XYZ' is an invalid currency code.", err.Error())

	var invalid *InvalidCurrencyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "XYZ", invalid.Code)
}

func TestChoices(t *testing.T) {
	choices := Choices()
	require.NotEmpty(t, choices)

	found := false
	for _, c := range choices {
		if c[0] == "USD" {
			found = true
			assert.Equal(t, "US Dollar", c[1])
		}
	}
	assert.True(t, found, "USD должен присутствовать в списке валют")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Euro", Label("EUR"))
	assert.Equal(t, "", Label("XYZ"))
}
