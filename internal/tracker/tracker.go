// Package tracker follows a single bookmaker's page for one match and
// reports how its result-market prices drift between polls. It is the
// scraping counterpart of the monitor: no aggregation, no de-vig, just
// line movement over time.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/calculator"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// SnapshotSource yields one price snapshot per call. The production
// implementation is the chromedp scraper.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

// Tracker polls one source on an interval and keeps the observation
// history for trend reporting.
type Tracker struct {
	cfg     *config.ScraperConfig
	source  SnapshotSource
	history []models.Snapshot
}

func New(cfg *config.ScraperConfig, source SnapshotSource) *Tracker {
	return &Tracker{cfg: cfg, source: source}
}

// Run polls the source for the configured number of iterations. A failed
// poll is logged and skipped; the history only ever holds good snapshots,
// so trends always compare two real observations.
func (t *Tracker) Run(ctx context.Context) error {
	slog.Info("Starting odds tracker",
		"bookmaker", t.cfg.Bookmaker,
		"url", t.cfg.URL,
		"interval", t.cfg.Interval,
		"iterations", t.cfg.Iterations)

	for i := 0; i < t.cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		snapshot, err := t.source.Snapshot(ctx)
		if err != nil {
			slog.Error("Poll failed, keeping previous history", "iteration", i+1, "error", err)
		} else {
			t.observe(snapshot)
		}

		if i == t.cfg.Iterations-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(t.cfg.Interval):
		}
	}

	slog.Info("Tracking finished", "observations", len(t.history))
	return nil
}

func (t *Tracker) observe(snapshot models.Snapshot) {
	t.history = append(t.history, snapshot)

	attrs := []any{
		"bookmaker", snapshot.Bookmaker,
		"observed_at", snapshot.ObservedAt.Format("15:04:05"),
	}
	for _, outcome := range models.ResultOutcomes {
		price, ok := snapshot.Prices[outcome]
		if !ok {
			continue
		}
		attrs = append(attrs, string(outcome), fmt.Sprintf("%.2f", price))
	}
	slog.Info("Current odds", attrs...)

	moves := t.trend()
	if moves == nil {
		return
	}
	for _, outcome := range models.ResultOutcomes {
		move, ok := moves[outcome]
		if !ok {
			continue
		}
		slog.Info("Line movement",
			"outcome", outcome,
			"trend", trendArrow(move.Direction),
			"delta", fmt.Sprintf("%+.2f", move.Delta))
	}
}

// trend compares the two most recent snapshots, or returns nil when the
// history is too short to say anything.
func (t *Tracker) trend() map[models.Outcome]calculator.Movement {
	if len(t.history) < 2 {
		return nil
	}
	current := t.history[len(t.history)-1]
	previous := t.history[len(t.history)-2]
	return calculator.CompareSnapshots(current, previous)
}

func trendArrow(direction calculator.Direction) string {
	switch direction {
	case calculator.DirectionUp:
		return "↑"
	case calculator.DirectionDown:
		return "↓"
	default:
		return "→"
	}
}
