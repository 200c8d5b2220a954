package models

import (
	"math"
	"time"
)

// Market identifies a betting market.
type Market string

const (
	MarketMatchResult Market = "match_result"
	MarketTotals      Market = "totals"
)

// Outcome identifies one priced outcome within a market.
type Outcome string

const (
	OutcomeHome    Outcome = "home"
	OutcomeDraw    Outcome = "draw"
	OutcomeAway    Outcome = "away"
	OutcomeOver25  Outcome = "over_2_5"
	OutcomeUnder25 Outcome = "under_2_5"
)

// ResultOutcomes lists the match-result outcomes in display order. The
// order also decides ties when value bets have equal probability.
var ResultOutcomes = []Outcome{OutcomeHome, OutcomeDraw, OutcomeAway}

// TotalsOutcomes lists the totals outcomes at the 2.5 line.
var TotalsOutcomes = []Outcome{OutcomeOver25, OutcomeUnder25}

// OutcomeUniverse returns every outcome the aggregator covers, result
// outcomes first.
func OutcomeUniverse() []Outcome {
	universe := make([]Outcome, 0, len(ResultOutcomes)+len(TotalsOutcomes))
	universe = append(universe, ResultOutcomes...)
	universe = append(universe, TotalsOutcomes...)
	return universe
}

// Market returns the market an outcome belongs to.
func (o Outcome) Market() Market {
	switch o {
	case OutcomeOver25, OutcomeUnder25:
		return MarketTotals
	default:
		return MarketMatchResult
	}
}

// Quote is one bookmaker's decimal price for one outcome at one
// observation time. The outcome is tagged explicitly by the ingestion
// side, never inferred from bookmaker-specific labels downstream.
type Quote struct {
	Bookmaker  string    `json:"bookmaker"`
	Market     Market    `json:"market"`
	Outcome    Outcome   `json:"outcome"`
	Price      float64   `json:"price"`
	ObservedAt time.Time `json:"observed_at"`
}

// Valid reports whether the quote carries a legal decimal price. Decimal
// odds are strictly greater than 1.0; anything else is malformed input.
func (q Quote) Valid() bool {
	return q.Price > 1.0 && !math.IsInf(q.Price, 0) && !math.IsNaN(q.Price)
}

// QuoteSet is every quote collected for one match at one instant. Quotes
// keeps input order; the set may be empty when no bookmaker priced the
// match.
type QuoteSet struct {
	MatchID     MatchID   `json:"match_id"`
	Quotes      []Quote   `json:"quotes"`
	CollectedAt time.Time `json:"collected_at"`
}
