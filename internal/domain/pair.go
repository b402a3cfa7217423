package domain

import "strings"

// PairKey builds the composite cache key for a crypto/fiat pair, e.g. "BTC-USD".
// Symbols are upper-cased so at most one price is stored per pair.
func PairKey(crypto, fiat string) string {
	return strings.ToUpper(crypto) + "-" + strings.ToUpper(fiat)
}
