package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount_LargeValuesTwoDigits(t *testing.T) {
	t.Parallel()
	require.Equal(t, "$130,000.00", FormatAmount(130000, FiatUSD))
	require.Equal(t, "€59,800.00", FormatAmount(59800, FiatEUR))
	require.Equal(t, "₽90.00", FormatAmount(90, FiatRUB))
}

func TestFormatAmount_SubUnitSixDigits(t *testing.T) {
	t.Parallel()
	require.Equal(t, "$0.123457", FormatAmount(0.1234567, FiatUSD))
	require.Equal(t, "$0.000001", FormatAmount(0.000001, FiatUSD))
}

func TestPairKey_UpperCases(t *testing.T) {
	t.Parallel()
	require.Equal(t, "BTC-USD", PairKey("btc", "usd"))
	require.Equal(t, "BTC-USD", PairKey("BTC", "USD"))
}

func TestParseFiat(t *testing.T) {
	t.Parallel()
	f, ok := ParseFiat(" eur ")
	require.True(t, ok)
	require.Equal(t, FiatEUR, f)

	_, ok = ParseFiat("GBP")
	require.False(t, ok)
}
