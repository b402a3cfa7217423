package application

import (
	"context"
	"errors"
	"testing"

	"coinmarket-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFiatTable_Defaults(t *testing.T) {
	t.Parallel()
	tbl := NewFiatTable()

	r, ok := tbl.Rate(domain.FiatUSD)
	require.True(t, ok)
	require.InDelta(t, 1.0, r, 1e-9)

	r, ok = tbl.Rate(domain.FiatEUR)
	require.True(t, ok)
	require.InDelta(t, 0.92, r, 1e-9)

	r, ok = tbl.Rate(domain.FiatRUB)
	require.True(t, ok)
	require.InDelta(t, 90.0, r, 1e-9)

	_, ok = tbl.Rate(domain.Fiat("GBP"))
	require.False(t, ok)
}

func TestFiatTable_RefreshOverwritesKnownFiats(t *testing.T) {
	t.Parallel()
	tbl := NewFiatTable()
	src := &fakeFiatSource{rates: map[domain.Fiat]float64{
		domain.FiatEUR:     0.95,
		domain.FiatRUB:     82.4,
		domain.Fiat("GBP"): 0.79, // outside the enumerated set, ignored
	}}

	require.NoError(t, tbl.Refresh(context.Background(), src))

	r, _ := tbl.Rate(domain.FiatEUR)
	require.InDelta(t, 0.95, r, 1e-9)
	r, _ = tbl.Rate(domain.FiatRUB)
	require.InDelta(t, 82.4, r, 1e-9)
	r, _ = tbl.Rate(domain.FiatUSD)
	require.InDelta(t, 1.0, r, 1e-9)
	_, ok := tbl.Rate(domain.Fiat("GBP"))
	require.False(t, ok)
}

func TestFiatTable_RefreshFailureLeavesTable(t *testing.T) {
	t.Parallel()
	tbl := NewFiatTable()
	src := &fakeFiatSource{err: errors.New("feed down")}

	require.Error(t, tbl.Refresh(context.Background(), src))
	require.Equal(t, domain.DefaultUSDRates, tbl.Snapshot())
}

func TestFiatTable_RefreshIgnoresZeroRates(t *testing.T) {
	t.Parallel()
	tbl := NewFiatTable()
	src := &fakeFiatSource{rates: map[domain.Fiat]float64{domain.FiatEUR: 0}}

	require.NoError(t, tbl.Refresh(context.Background(), src))
	r, _ := tbl.Rate(domain.FiatEUR)
	require.InDelta(t, 0.92, r, 1e-9)
}
