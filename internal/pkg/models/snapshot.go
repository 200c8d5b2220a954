package models

import "time"

// Snapshot is a single-bookmaker price vector for the match-result market
// at one observation time. Outcomes the bookmaker did not price are absent
// from Prices, not zeroed. Snapshots live in an append-only history owned
// by the tracking loop; the comparator only ever sees the latest pair.
type Snapshot struct {
	Bookmaker  string              `json:"bookmaker"`
	Prices     map[Outcome]float64 `json:"prices"`
	ObservedAt time.Time           `json:"observed_at"`
}
