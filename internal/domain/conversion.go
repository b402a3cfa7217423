package domain

import "time"

// HistoryLimit caps the persisted conversion history; older entries are
// silently dropped.
const HistoryLimit = 5

// Conversion is one calculator history entry. Entries are insertion-ordered,
// newest first, and never mutated.
type Conversion struct {
	ID     string    `json:"id"`
	At     time.Time `json:"ts"`
	Amount float64   `json:"amount"`
	Crypto string    `json:"crypto"`
	Result float64   `json:"result"`
	Fiat   Fiat      `json:"fiat"`
}
