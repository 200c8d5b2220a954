package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/calculator"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

type scriptedSource struct {
	snapshots []models.Snapshot
	errAt     map[int]bool
	calls     int
}

func (s *scriptedSource) Snapshot(_ context.Context) (models.Snapshot, error) {
	call := s.calls
	s.calls++
	if s.errAt[call] {
		return models.Snapshot{}, fmt.Errorf("render timed out")
	}
	return s.snapshots[call], nil
}

func snapshotAt(home, draw, away float64) models.Snapshot {
	return models.Snapshot{
		Bookmaker: "Bet365",
		Prices: map[models.Outcome]float64{
			models.OutcomeHome: home,
			models.OutcomeDraw: draw,
			models.OutcomeAway: away,
		},
		ObservedAt: time.Now().UTC(),
	}
}

func testConfig(iterations int) *config.ScraperConfig {
	return &config.ScraperConfig{
		URL:        "https://example.com/match",
		Bookmaker:  "Bet365",
		Interval:   time.Millisecond,
		Iterations: iterations,
		Timeout:    time.Second,
	}
}

func TestTrackerRun_AccumulatesHistory(t *testing.T) {
	source := &scriptedSource{snapshots: []models.Snapshot{
		snapshotAt(2.10, 3.20, 3.50),
		snapshotAt(2.05, 3.25, 3.50),
	}}

	tr := New(testConfig(2), source)
	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if source.calls != 2 {
		t.Errorf("expected 2 polls, got %d", source.calls)
	}
	if len(tr.history) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(tr.history))
	}
}

func TestTrackerRun_FailedPollKeepsHistoryClean(t *testing.T) {
	source := &scriptedSource{
		snapshots: []models.Snapshot{snapshotAt(2.10, 3.20, 3.50), {}, snapshotAt(2.20, 3.10, 3.40)},
		errAt:     map[int]bool{1: true},
	}

	tr := New(testConfig(3), source)
	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("poll failure must not abort the run: %v", err)
	}

	if len(tr.history) != 2 {
		t.Fatalf("failed poll must not enter history, got %d observations", len(tr.history))
	}

	// The trend must span the two good observations, not the failed one.
	moves := tr.trend()
	if moves == nil {
		t.Fatal("expected a trend after two good observations")
	}
	home := moves[models.OutcomeHome]
	if home.Direction != calculator.DirectionUp {
		t.Errorf("home direction = %q, want up", home.Direction)
	}
}

func TestTrend_NilBeforeTwoObservations(t *testing.T) {
	tr := New(testConfig(1), &scriptedSource{snapshots: []models.Snapshot{snapshotAt(2.10, 3.20, 3.50)}})

	if moves := tr.trend(); moves != nil {
		t.Errorf("trend with empty history = %v, want nil", moves)
	}

	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if moves := tr.trend(); moves != nil {
		t.Errorf("trend with one observation = %v, want nil", moves)
	}
}

func TestTrendArrow(t *testing.T) {
	tests := []struct {
		direction calculator.Direction
		want      string
	}{
		{calculator.DirectionUp, "↑"},
		{calculator.DirectionDown, "↓"},
		{calculator.DirectionFlat, "→"},
	}
	for _, tt := range tests {
		if got := trendArrow(tt.direction); got != tt.want {
			t.Errorf("trendArrow(%s) = %q, want %q", tt.direction, got, tt.want)
		}
	}
}
