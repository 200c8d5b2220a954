// Package monitor runs the long-lived polling loop: fetch odds for the
// configured sports, run the calculator per match, display, persist,
// alert, sleep, repeat. One bad cycle is logged and skipped; the loop
// never dies because of a single upstream failure.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/calculator"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/export"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/oddsfeed"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/storage"
)

// OddsFetcher is the slice of the odds client the monitor needs.
type OddsFetcher interface {
	FetchOdds(ctx context.Context, sportKey string) ([]oddsfeed.Event, error)
}

// Monitor owns one polling loop. Storages, cache, exporter and notifier
// are all optional; a nil collaborator just disables that side effect.
type Monitor struct {
	cfg      *config.Config
	feed     OddsFetcher
	rows     storage.RowStorage
	bets     storage.ValueBetStorage
	cache    storage.AnalysisCache
	exporter *export.CSVExporter
	notifier *Notifier

	// Rows collected since the last successful persist. The engine only
	// ever sees one QuoteSet at a time; this buffer exists purely for
	// batched persistence and is cleared after each flush.
	pending []models.OddsRow
}

func New(cfg *config.Config, feed OddsFetcher, rows storage.RowStorage, bets storage.ValueBetStorage, cache storage.AnalysisCache, exporter *export.CSVExporter, notifier *Notifier) *Monitor {
	return &Monitor{
		cfg:      cfg,
		feed:     feed,
		rows:     rows,
		bets:     bets,
		cache:    cache,
		exporter: exporter,
		notifier: notifier,
	}
}

// Run executes the configured number of polling iterations, sleeping the
// configured interval between them. It returns early only on context
// cancellation.
func (m *Monitor) Run(ctx context.Context) error {
	iterations := m.cfg.Monitor.Iterations
	interval := m.cfg.Monitor.Interval

	slog.Info("Starting odds monitor",
		"sports", m.cfg.OddsAPI.Sports,
		"interval", interval,
		"iterations", iterations)

	for i := 0; i < iterations; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		slog.Info("Polling cycle", "iteration", i+1, "of", iterations)
		m.runCycle(ctx, i)

		if i == iterations-1 {
			break
		}

		slog.Info("Sleeping until next cycle", "next_at", time.Now().Add(interval).Format("15:04:05"))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}

	// Flush whatever the last cycles accumulated.
	m.persist(ctx)
	slog.Info("Monitoring finished")
	return nil
}

func (m *Monitor) runCycle(ctx context.Context, iteration int) {
	collectedAt := oddsfeed.CollectedAt()

	for _, sport := range m.cfg.OddsAPI.Sports {
		events, err := m.feed.FetchOdds(ctx, sport)
		if err != nil {
			// Single-cycle failure: report and move on to the next
			// sport/cycle, never crash the monitor.
			slog.Error("Fetch failed, skipping sport this cycle", "sport", sport, "error", err)
			continue
		}

		for _, ev := range events {
			set := oddsfeed.ToQuoteSet(ev, m.cfg.Engine.TotalsLine, collectedAt)
			analysis := calculator.Analyze(set, m.cfg.Engine.ValueThreshold)

			displayAnalysis(analysis)
			m.pending = append(m.pending, models.FlattenQuoteSet(set)...)

			if m.cache != nil {
				if err := m.cache.StoreAnalysis(ctx, analysis); err != nil {
					slog.Warn("Failed to cache analysis", "match", analysis.MatchID.Name(), "error", err)
				}
			}

			if len(analysis.ValueBets) > 0 {
				m.handleValueBets(ctx, analysis)
			}
		}
	}

	if m.cfg.Monitor.PersistEvery > 0 && iteration%m.cfg.Monitor.PersistEvery == 0 {
		m.persist(ctx)
	}
}

func (m *Monitor) handleValueBets(ctx context.Context, analysis models.MarketAnalysis) {
	slog.Info("Value bets found",
		"match", analysis.MatchID.Name(),
		"count", len(analysis.ValueBets))

	if m.bets != nil {
		if err := m.bets.SaveValueBets(ctx, analysis.MatchID, analysis.ValueBets, analysis.CollectedAt); err != nil {
			slog.Error("Failed to save value bets", "match", analysis.MatchID.Name(), "error", err)
		}
	}
	if m.notifier != nil {
		m.notifier.NotifyValueBets(analysis)
	}
}

// persist flushes the pending rows to Postgres and to a CSV file. The
// buffer is cleared on success so memory stays bounded across a long run.
func (m *Monitor) persist(ctx context.Context) {
	if len(m.pending) == 0 {
		return
	}

	persisted := true

	if m.rows != nil {
		if err := m.rows.SaveRows(ctx, m.pending); err != nil {
			slog.Error("Failed to save odds rows", "count", len(m.pending), "error", err)
			persisted = false
		}
	}

	if m.exporter != nil {
		path, err := m.exporter.Export(m.pending)
		if err != nil {
			slog.Error("Failed to export CSV", "error", err)
			persisted = false
		} else if path != "" {
			slog.Info("Exported odds", "path", path, "rows", len(m.pending))
		}
	}

	if persisted {
		m.pending = m.pending[:0]
	}
}
