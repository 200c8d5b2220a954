package storage

import (
	"context"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// RowStorage persists flattened per-bookmaker odds rows.
type RowStorage interface {
	SaveRows(ctx context.Context, rows []models.OddsRow) error
	Close() error
}

// ValueBetStorage persists value-bet detections.
type ValueBetStorage interface {
	SaveValueBets(ctx context.Context, matchID models.MatchID, bets []models.ValueBet, foundAt time.Time) error
}

// AnalysisCache holds the most recent analysis per match for the HTTP API.
type AnalysisCache interface {
	StoreAnalysis(ctx context.Context, analysis models.MarketAnalysis) error
	LatestAnalyses(ctx context.Context) ([]models.MarketAnalysis, error)
}
