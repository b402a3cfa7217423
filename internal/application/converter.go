package application

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"coinmarket-service/internal/domain"

	"go.uber.org/zap"
)

// Converter turns a crypto amount into a fiat value using the cached USD
// price of the asset and the USD→fiat table, and keeps the bounded
// conversion history.
type Converter struct {
	rates   RateStore
	history HistoryStore
	fiat    *FiatTable
	clock   Clock
	idgen   IDGen
	log     *zap.Logger
}

type ConverterOption func(*Converter)

func WithClock(c Clock) ConverterOption {
	return func(cv *Converter) { cv.clock = c }
}

func WithIDGen(g IDGen) ConverterOption {
	return func(cv *Converter) { cv.idgen = g }
}

func WithConverterLogger(log *zap.Logger) ConverterOption {
	return func(cv *Converter) { cv.log = log }
}

func NewConverter(rates RateStore, history HistoryStore, fiat *FiatTable, opts ...ConverterOption) *Converter {
	c := &Converter{
		rates:   rates,
		history: history,
		fiat:    fiat,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	if c.idgen == nil {
		c.idgen = defaultIDGen{}
	}
	return c
}

// ConversionOutcome is one successful recalculation.
type ConversionOutcome struct {
	Result  float64           `json:"result"`
	Display string            `json:"display"`
	Record  domain.Conversion `json:"record"`
}

// Convert parses amount (either "." or "," as decimal separator), multiplies
// by the cached crypto/USD price and the USD→fiat factor, formats the result
// and appends a history record. A failed history save is logged and swallowed
// so a conversion never fails after the math succeeded.
func (c *Converter) Convert(ctx context.Context, amount, crypto string, fiat domain.Fiat) (ConversionOutcome, error) {
	val, err := ParseAmount(amount)
	if err != nil {
		return ConversionOutcome{}, err
	}

	usdPrice, ok := c.rates.Price(crypto, string(domain.FiatUSD))
	if !ok {
		return ConversionOutcome{}, domain.ErrNoRate
	}

	factor, ok := c.fiat.Rate(fiat)
	if !ok {
		return ConversionOutcome{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFiat, fiat)
	}

	result := val * usdPrice * factor
	rec := domain.Conversion{
		ID:     c.idgen.NewID(),
		At:     c.clock.Now().UTC(),
		Amount: val,
		Crypto: strings.ToUpper(crypto),
		Result: result,
		Fiat:   fiat,
	}
	if err := c.history.Append(ctx, rec); err != nil {
		c.log.Warn("history_persist_failed", zap.Error(err))
	}

	return ConversionOutcome{
		Result:  result,
		Display: domain.FormatAmount(result, fiat),
		Record:  rec,
	}, nil
}

// History returns the recent conversions, newest first.
func (c *Converter) History() []domain.Conversion {
	return c.history.List()
}

// ParseAmount parses a user-typed decimal, accepting "." or "," as the
// separator. Anything unparsable, negative or non-finite is
// domain.ErrInvalidAmount, an expected state while the user is typing.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, domain.ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return v, nil
}
