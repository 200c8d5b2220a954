package calculator

import (
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Normalize converts the best match-result prices into de-vigged implied
// probabilities plus the market margin (overround) in percent.
//
// For each priced result outcome the raw implied probability is r = 1/p.
// With S the sum of raw probabilities, the margin is (S-1)*100 and each
// normalized probability is r/S, so priced outcomes always sum to 1.
// Proportional scaling removes the overround but keeps the market's
// relative weighting of outcomes; it is a heuristic, not a calibrated
// no-arbitrage model.
//
// When no result outcome is priced the probability map is empty and the
// margin is nil; there is never a division by zero.
func Normalize(best map[models.Outcome]models.BestPrice) (map[models.Outcome]float64, *float64) {
	raw := make(map[models.Outcome]float64, len(models.ResultOutcomes))
	sum := 0.0
	for _, outcome := range models.ResultOutcomes {
		bp, ok := best[outcome]
		if !ok || bp.Price == nil {
			continue
		}
		r := 1 / *bp.Price
		raw[outcome] = r
		sum += r
	}

	if sum == 0 {
		return map[models.Outcome]float64{}, nil
	}

	probs := make(map[models.Outcome]float64, len(raw))
	for outcome, r := range raw {
		probs[outcome] = r / sum
	}

	margin := (sum - 1) * 100
	return probs, &margin
}
