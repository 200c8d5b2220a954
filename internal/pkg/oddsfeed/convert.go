package oddsfeed

import (
	"math"
	"strings"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

const (
	marketKeyH2H    = "h2h"
	marketKeyTotals = "totals"
)

// ToQuoteSet converts one API event into the normalized quote set the
// calculator consumes. Outcome tagging happens here and only here: h2h
// outcome names are matched against the event's own team names (plus the
// literal "Draw"), totals outcomes against the configured line. Downstream
// code never guesses outcomes from bookmaker-specific labels.
func ToQuoteSet(ev Event, totalsLine float64, collectedAt time.Time) models.QuoteSet {
	set := models.QuoteSet{
		MatchID: models.MatchID{
			HomeTeam:    ev.HomeTeam,
			AwayTeam:    ev.AwayTeam,
			Competition: ev.SportTitle,
			Kickoff:     ev.CommenceTime,
		},
		CollectedAt: collectedAt,
	}

	for _, bk := range ev.Bookmakers {
		name := bk.Title
		if name == "" {
			name = bk.Key
		}
		observedAt := bk.LastUpdate
		if observedAt.IsZero() {
			observedAt = collectedAt
		}

		for _, market := range bk.Markets {
			switch market.Key {
			case marketKeyH2H:
				for _, out := range market.Outcomes {
					outcome, ok := tagResultOutcome(out.Name, ev.HomeTeam, ev.AwayTeam)
					if !ok {
						continue
					}
					set.Quotes = append(set.Quotes, models.Quote{
						Bookmaker:  name,
						Market:     models.MarketMatchResult,
						Outcome:    outcome,
						Price:      out.Price,
						ObservedAt: observedAt,
					})
				}
			case marketKeyTotals:
				for _, out := range market.Outcomes {
					outcome, ok := tagTotalsOutcome(out.Name, out.Point, totalsLine)
					if !ok {
						continue
					}
					set.Quotes = append(set.Quotes, models.Quote{
						Bookmaker:  name,
						Market:     models.MarketTotals,
						Outcome:    outcome,
						Price:      out.Price,
						ObservedAt: observedAt,
					})
				}
			}
		}
	}

	return set
}

func tagResultOutcome(name, homeTeam, awayTeam string) (models.Outcome, bool) {
	switch {
	case strings.EqualFold(name, homeTeam):
		return models.OutcomeHome, true
	case strings.EqualFold(name, awayTeam):
		return models.OutcomeAway, true
	case strings.EqualFold(name, "draw"):
		return models.OutcomeDraw, true
	}
	return "", false
}

func tagTotalsOutcome(name string, point, totalsLine float64) (models.Outcome, bool) {
	if math.Abs(point-totalsLine) > 1e-9 {
		// Alternative line, outside the fixed universe.
		return "", false
	}
	switch {
	case strings.EqualFold(name, "over"):
		return models.OutcomeOver25, true
	case strings.EqualFold(name, "under"):
		return models.OutcomeUnder25, true
	}
	return "", false
}
