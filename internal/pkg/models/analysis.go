package models

import (
	"fmt"
	"time"
)

// BestPrice is the winning quote for one outcome. Price is nil when no
// bookmaker quoted the outcome; zero is never exposed as a price since it
// is not a legal decimal odd.
type BestPrice struct {
	Outcome   Outcome  `json:"outcome"`
	Price     *float64 `json:"price"`
	Bookmaker string   `json:"bookmaker"`
}

// Quoted reports whether any bookmaker priced the outcome.
func (b BestPrice) Quoted() bool {
	return b.Price != nil
}

// ValueBet is one outcome whose de-vigged probability cleared the
// detection threshold.
type ValueBet struct {
	Outcome     Outcome `json:"outcome"`
	Price       float64 `json:"price"`
	Probability float64 `json:"probability"`
	Bookmaker   string  `json:"bookmaker"`
}

// FormattedProbability renders the probability the way the display and
// alerts show it, e.g. "64.3%".
func (v ValueBet) FormattedProbability() string {
	return fmt.Sprintf("%.1f%%", v.Probability*100)
}

// MarketAnalysis bundles one engine pass over one quote set. It is
// computed fresh per QuoteSet and never mutated afterwards; a new
// collection produces a new analysis.
type MarketAnalysis struct {
	MatchID       MatchID                 `json:"match_id"`
	CollectedAt   time.Time               `json:"collected_at"`
	BestPrices    map[Outcome]BestPrice   `json:"best_prices"`
	Probabilities map[Outcome]float64     `json:"implied_probabilities"`
	MarketMargin  *float64                `json:"market_margin"`
	ValueBets     []ValueBet              `json:"value_bets"`
}
