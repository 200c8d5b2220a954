package calculator

import (
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// BestPrices scans a quote set and selects, for every outcome in the fixed
// universe, the single highest-priced quote across all bookmakers. Every
// outcome appears in the result exactly once; outcomes nobody priced keep
// a nil price and an empty bookmaker. On equal prices the first quote in
// input order wins, so the selection is deterministic across runs.
//
// Malformed quotes (price <= 1.0, NaN, Inf) are skipped individually; the
// rest of the set still aggregates.
func BestPrices(set models.QuoteSet) map[models.Outcome]models.BestPrice {
	best := make(map[models.Outcome]models.BestPrice, len(models.OutcomeUniverse()))
	for _, outcome := range models.OutcomeUniverse() {
		best[outcome] = models.BestPrice{Outcome: outcome}
	}

	for _, q := range set.Quotes {
		current, ok := best[q.Outcome]
		if !ok {
			// Outcome outside the configured universe, e.g. an
			// alternative totals line the feed slipped in.
			continue
		}
		if !q.Valid() {
			continue
		}
		if current.Price != nil && q.Price <= *current.Price {
			continue
		}
		price := q.Price
		best[q.Outcome] = models.BestPrice{
			Outcome:   q.Outcome,
			Price:     &price,
			Bookmaker: q.Bookmaker,
		}
	}

	return best
}
