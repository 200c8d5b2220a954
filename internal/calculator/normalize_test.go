package calculator

import (
	"math"
	"testing"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

func bestOf(prices map[models.Outcome]float64) map[models.Outcome]models.BestPrice {
	best := make(map[models.Outcome]models.BestPrice)
	for _, outcome := range models.OutcomeUniverse() {
		bp := models.BestPrice{Outcome: outcome}
		if p, ok := prices[outcome]; ok {
			price := p
			bp.Price = &price
			bp.Bookmaker = "Book"
		}
		best[outcome] = bp
	}
	return best
}

func TestNormalize_ProbabilitiesSumToOne(t *testing.T) {
	probs, margin := Normalize(bestOf(map[models.Outcome]float64{
		models.OutcomeHome: 2.10,
		models.OutcomeDraw: 3.20,
		models.OutcomeAway: 3.50,
	}))

	if margin == nil {
		t.Fatal("margin should be set when outcomes are priced")
	}

	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("normalized probabilities should sum to 1, got %.12f", sum)
	}
}

func TestNormalize_MarginZeroForFairBook(t *testing.T) {
	// 1/2 + 1/4 + 1/4 == 1: a book with no overround.
	probs, margin := Normalize(bestOf(map[models.Outcome]float64{
		models.OutcomeHome: 2.0,
		models.OutcomeDraw: 4.0,
		models.OutcomeAway: 4.0,
	}))

	if margin == nil {
		t.Fatal("margin should be set")
	}
	if math.Abs(*margin) > 1e-9 {
		t.Errorf("fair book should have zero margin, got %.6f", *margin)
	}
	if math.Abs(probs[models.OutcomeHome]-0.5) > 1e-9 {
		t.Errorf("home probability = %.6f, want 0.5", probs[models.OutcomeHome])
	}
}

func TestNormalize_MarginPositiveForOverroundBook(t *testing.T) {
	_, margin := Normalize(bestOf(map[models.Outcome]float64{
		models.OutcomeHome: 1.90,
		models.OutcomeDraw: 3.40,
		models.OutcomeAway: 4.10,
	}))

	if margin == nil || *margin <= 0 {
		t.Errorf("overround book should have positive margin, got %v", margin)
	}
}

func TestNormalize_PartialMarket(t *testing.T) {
	probs, margin := Normalize(bestOf(map[models.Outcome]float64{
		models.OutcomeHome: 1.50,
	}))

	if margin == nil {
		t.Fatal("margin should still be computed with one priced outcome")
	}
	if len(probs) != 1 {
		t.Fatalf("expected 1 probability, got %d", len(probs))
	}
	if math.Abs(probs[models.OutcomeHome]-1.0) > 1e-9 {
		t.Errorf("single priced outcome normalizes to 1, got %.6f", probs[models.OutcomeHome])
	}
}

func TestNormalize_EmptyMarket(t *testing.T) {
	probs, margin := Normalize(bestOf(nil))

	if margin != nil {
		t.Errorf("margin must be nil with nothing priced, got %.4f", *margin)
	}
	if len(probs) != 0 {
		t.Errorf("probability map must be empty, got %v", probs)
	}
}

func TestNormalize_IgnoresTotalsOutcomes(t *testing.T) {
	probs, _ := Normalize(bestOf(map[models.Outcome]float64{
		models.OutcomeHome:   2.0,
		models.OutcomeDraw:   4.0,
		models.OutcomeAway:   4.0,
		models.OutcomeOver25: 1.85,
	}))

	if _, ok := probs[models.OutcomeOver25]; ok {
		t.Error("totals outcomes must not enter result-market normalization")
	}
}
