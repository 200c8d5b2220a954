package calculator

import (
	"sort"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// DefaultValueThreshold is the historical 0.60 heuristic. It has no
// statistical derivation; callers override it through config.
const DefaultValueThreshold = 0.60

// FindValueBets returns the result outcomes whose de-vigged probability
// strictly exceeds threshold, ordered by probability descending with ties
// broken in home/draw/away order. An empty result just means the market
// offered no value this cycle.
func FindValueBets(probs map[models.Outcome]float64, best map[models.Outcome]models.BestPrice, threshold float64) []models.ValueBet {
	var bets []models.ValueBet
	for _, outcome := range models.ResultOutcomes {
		p, ok := probs[outcome]
		if !ok || p <= threshold {
			continue
		}
		bp, ok := best[outcome]
		if !ok || bp.Price == nil {
			continue
		}
		bets = append(bets, models.ValueBet{
			Outcome:     outcome,
			Price:       *bp.Price,
			Probability: p,
			Bookmaker:   bp.Bookmaker,
		})
	}

	// Stable sort keeps home/draw/away order on equal probabilities.
	sort.SliceStable(bets, func(i, j int) bool {
		return bets[i].Probability > bets[j].Probability
	})

	return bets
}
