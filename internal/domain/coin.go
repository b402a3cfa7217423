package domain

// CoinMarket is a snapshot of one asset's market state as reported by the
// provider. Snapshots are replaced wholesale on every fetch and never mutated.
type CoinMarket struct {
	ID             string   `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url,omitempty"`
	CurrentPrice   float64  `json:"current_price"`
	PriceChange24h *float64 `json:"price_change_percentage_24h,omitempty"`
}

// MergeMarkets concatenates pinned and top, dropping duplicates by ID and
// keeping the first occurrence, so a pinned asset that also ranks in the top
// list stays in its pinned position. Relative order is preserved.
func MergeMarkets(pinned, top []CoinMarket) []CoinMarket {
	seen := make(map[string]bool, len(pinned)+len(top))
	out := make([]CoinMarket, 0, len(pinned)+len(top))
	for _, lists := range [2][]CoinMarket{pinned, top} {
		for _, c := range lists {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, c)
		}
	}
	return out
}
