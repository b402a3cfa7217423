package domain

import "strings"

type Fiat string

const (
	FiatUSD Fiat = "USD"
	FiatEUR Fiat = "EUR"
	FiatRUB Fiat = "RUB"
)

// Fiats lists the supported target currencies in selector order.
var Fiats = []Fiat{FiatUSD, FiatEUR, FiatRUB}

// DefaultUSDRates is the static USD→fiat fallback table. A live feed may
// overwrite these values at runtime; they are not meaningful exchange rates
// on their own.
var DefaultUSDRates = map[Fiat]float64{
	FiatUSD: 1.0,
	FiatEUR: 0.92,
	FiatRUB: 90.0,
}

func ParseFiat(s string) (Fiat, bool) {
	f := Fiat(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := DefaultUSDRates[f]
	return f, ok
}
