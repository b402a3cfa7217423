package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fiatSymbols = map[Fiat]string{
	FiatUSD: "$",
	FiatEUR: "€",
	FiatRUB: "₽",
}

var moneyPrinter = message.NewPrinter(language.English)

// FormatAmount renders value in fiat's display convention: currency symbol,
// grouped thousands, 6 fraction digits when the magnitude is below 1, else 2.
func FormatAmount(value float64, fiat Fiat) string {
	if math.Abs(value) < 1 {
		return moneyPrinter.Sprintf("%s%.6f", fiatSymbols[fiat], value)
	}
	return moneyPrinter.Sprintf("%s%.2f", fiatSymbols[fiat], value)
}
