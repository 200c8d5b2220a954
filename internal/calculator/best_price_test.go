package calculator

import (
	"testing"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

func quoteSet(quotes ...models.Quote) models.QuoteSet {
	return models.QuoteSet{
		MatchID: models.MatchID{
			HomeTeam:    "Atletico-MG",
			AwayTeam:    "Sport",
			Competition: "Brasileirao Serie A",
			Kickoff:     time.Date(2026, 8, 29, 19, 30, 0, 0, time.UTC),
		},
		Quotes:      quotes,
		CollectedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
}

func resultQuote(bookmaker string, outcome models.Outcome, price float64) models.Quote {
	return models.Quote{Bookmaker: bookmaker, Market: outcome.Market(), Outcome: outcome, Price: price}
}

func TestBestPrices_CoversFullUniverse(t *testing.T) {
	best := BestPrices(quoteSet())

	universe := models.OutcomeUniverse()
	if len(best) != len(universe) {
		t.Fatalf("expected %d entries, got %d", len(universe), len(best))
	}
	for _, outcome := range universe {
		bp, ok := best[outcome]
		if !ok {
			t.Fatalf("missing outcome %q", outcome)
		}
		if bp.Price != nil || bp.Bookmaker != "" {
			t.Errorf("unquoted outcome %q should be empty, got %+v", outcome, bp)
		}
	}
}

func TestBestPrices_SelectsMaximum(t *testing.T) {
	set := quoteSet(
		resultQuote("BookA", models.OutcomeHome, 2.00),
		resultQuote("BookB", models.OutcomeHome, 2.10),
		resultQuote("BookC", models.OutcomeHome, 1.95),
		resultQuote("BookA", models.OutcomeDraw, 3.20),
		resultQuote("BookB", models.OutcomeAway, 3.50),
	)

	best := BestPrices(set)

	tests := []struct {
		outcome   models.Outcome
		price     float64
		bookmaker string
	}{
		{models.OutcomeHome, 2.10, "BookB"},
		{models.OutcomeDraw, 3.20, "BookA"},
		{models.OutcomeAway, 3.50, "BookB"},
	}
	for _, tt := range tests {
		bp := best[tt.outcome]
		if bp.Price == nil || *bp.Price != tt.price || bp.Bookmaker != tt.bookmaker {
			t.Errorf("%s: got %+v, want %.2f from %s", tt.outcome, bp, tt.price, tt.bookmaker)
		}
	}
	for _, q := range set.Quotes {
		bp := best[q.Outcome]
		if bp.Price != nil && *bp.Price < q.Price {
			t.Errorf("best price %.2f for %s is below quote %.2f", *bp.Price, q.Outcome, q.Price)
		}
	}
}

func TestBestPrices_TieGoesToFirstInInputOrder(t *testing.T) {
	set := quoteSet(
		resultQuote("First", models.OutcomeHome, 2.05),
		resultQuote("Second", models.OutcomeHome, 2.05),
	)

	for i := 0; i < 50; i++ {
		best := BestPrices(set)
		if got := best[models.OutcomeHome].Bookmaker; got != "First" {
			t.Fatalf("tie must go to the earlier quote, got %q", got)
		}
	}
}

func TestBestPrices_RejectsMalformedQuotesOnly(t *testing.T) {
	set := quoteSet(
		resultQuote("BadBook", models.OutcomeHome, 0.0),
		resultQuote("WorseBook", models.OutcomeHome, -2.5),
		resultQuote("SubUnit", models.OutcomeHome, 1.0),
		resultQuote("GoodBook", models.OutcomeHome, 1.80),
		resultQuote("BookA", models.OutcomeDraw, 3.10),
	)

	best := BestPrices(set)

	home := best[models.OutcomeHome]
	if home.Price == nil || *home.Price != 1.80 || home.Bookmaker != "GoodBook" {
		t.Errorf("malformed quotes should be skipped, not abort the set: %+v", home)
	}
	draw := best[models.OutcomeDraw]
	if draw.Price == nil || *draw.Price != 3.10 {
		t.Errorf("rest of the set must still aggregate: %+v", draw)
	}
}

func TestBestPrices_IgnoresUnknownOutcome(t *testing.T) {
	set := quoteSet(models.Quote{Bookmaker: "BookA", Market: models.MarketTotals, Outcome: "over_3_5", Price: 2.40})

	best := BestPrices(set)
	if len(best) != len(models.OutcomeUniverse()) {
		t.Errorf("outcomes outside the universe must not leak into the result")
	}
}
