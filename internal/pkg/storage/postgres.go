package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Ensure PostgresStorage implements both storage interfaces
var _ RowStorage = (*PostgresStorage)(nil)
var _ ValueBetStorage = (*PostgresStorage)(nil)

// PostgresStorage stores flattened odds rows and value-bet detections in
// PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage opens the connection, verifies it and creates the
// schema if missing.
func NewPostgresStorage(cfg *config.PostgresConfig) (*PostgresStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL storage initialized")
	return s, nil
}

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS odds_rows (
		id SERIAL PRIMARY KEY,
		collected_at TIMESTAMP NOT NULL,
		competition VARCHAR(200) NOT NULL,
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		kickoff TIMESTAMP NOT NULL,
		bookmaker VARCHAR(100) NOT NULL,
		home_odd DECIMAL(10, 4),
		draw_odd DECIMAL(10, 4),
		away_odd DECIMAL(10, 4),
		over_2_5_odd DECIMAL(10, 4),
		under_2_5_odd DECIMAL(10, 4),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_odds_rows_collected_at ON odds_rows(collected_at DESC);
	CREATE INDEX IF NOT EXISTS idx_odds_rows_fixture ON odds_rows(home_team, away_team, kickoff);

	CREATE TABLE IF NOT EXISTS value_bets (
		id UUID PRIMARY KEY,
		match_key VARCHAR(500) NOT NULL,
		match_name VARCHAR(500) NOT NULL,
		competition VARCHAR(200) NOT NULL,
		kickoff TIMESTAMP NOT NULL,
		outcome VARCHAR(50) NOT NULL,
		price DECIMAL(10, 4) NOT NULL,
		probability DECIMAL(10, 6) NOT NULL,
		bookmaker VARCHAR(100) NOT NULL,
		found_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_value_bets_match_key ON value_bets(match_key);
	CREATE INDEX IF NOT EXISTS idx_value_bets_found_at ON value_bets(found_at DESC);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveRows inserts one batch of flattened rows in a single transaction so
// a failed cycle never half-persists.
func (s *PostgresStorage) SaveRows(ctx context.Context, rows []models.OddsRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO odds_rows (
			collected_at, competition, home_team, away_team, kickoff, bookmaker,
			home_odd, draw_odd, away_odd, over_2_5_odd, under_2_5_odd
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.CollectedAt, row.Competition, row.HomeTeam, row.AwayTeam, row.Kickoff, row.Bookmaker,
			nullFloat(row.Home), nullFloat(row.Draw), nullFloat(row.Away),
			nullFloat(row.Over25), nullFloat(row.Under25))
		if err != nil {
			return fmt.Errorf("failed to insert odds row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit odds rows: %w", err)
	}

	slog.Debug("Saved odds rows", "count", len(rows))
	return nil
}

// SaveValueBets inserts one batch of detections for one match.
func (s *PostgresStorage) SaveValueBets(ctx context.Context, matchID models.MatchID, bets []models.ValueBet, foundAt time.Time) error {
	if len(bets) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO value_bets (
			id, match_key, match_name, competition, kickoff,
			outcome, price, probability, bookmaker, found_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, bet := range bets {
		_, err := stmt.ExecContext(ctx,
			uuid.NewString(), matchID.Key(), matchID.Name(), matchID.Competition, matchID.Kickoff,
			string(bet.Outcome), bet.Price, bet.Probability, bet.Bookmaker, foundAt)
		if err != nil {
			return fmt.Errorf("failed to insert value bet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit value bets: %w", err)
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
