// Package calculator holds the odds aggregation and value detection
// engine: pure functions turning a batch of per-bookmaker quotes into
// best-of-market prices, de-vigged probabilities, value-bet candidates and
// price-movement signals. Nothing here does I/O or keeps state, so every
// entry point is safe to call concurrently on independent inputs.
package calculator

import (
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Analyze runs the full pipeline over one quote set and returns the
// immutable per-match analysis bundle.
func Analyze(set models.QuoteSet, threshold float64) models.MarketAnalysis {
	best := BestPrices(set)
	probs, margin := Normalize(best)

	return models.MarketAnalysis{
		MatchID:       set.MatchID,
		CollectedAt:   set.CollectedAt,
		BestPrices:    best,
		Probabilities: probs,
		MarketMargin:  margin,
		ValueBets:     FindValueBets(probs, best, threshold),
	}
}
