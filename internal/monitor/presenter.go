package monitor

import (
	"fmt"
	"log/slog"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// displayAnalysis logs one match's analysis in a readable form: best
// price per outcome with the winning bookmaker, market margin and any
// value bets.
func displayAnalysis(analysis models.MarketAnalysis) {
	attrs := []any{
		"match", analysis.MatchID.Name(),
		"competition", analysis.MatchID.Competition,
		"kickoff", analysis.MatchID.Kickoff.Format("2006-01-02 15:04"),
	}

	for _, outcome := range models.OutcomeUniverse() {
		bp := analysis.BestPrices[outcome]
		if !bp.Quoted() {
			continue
		}
		attrs = append(attrs, string(outcome), fmt.Sprintf("%.2f (%s)", *bp.Price, bp.Bookmaker))
	}

	if analysis.MarketMargin != nil {
		attrs = append(attrs, "margin", fmt.Sprintf("%.2f%%", *analysis.MarketMargin))
	}

	slog.Info("Best odds", attrs...)

	for _, bet := range analysis.ValueBets {
		slog.Info("Possible value bet",
			"match", analysis.MatchID.Name(),
			"outcome", bet.Outcome,
			"price", fmt.Sprintf("%.2f", bet.Price),
			"probability", bet.FormattedProbability(),
			"bookmaker", bet.Bookmaker)
	}
}
