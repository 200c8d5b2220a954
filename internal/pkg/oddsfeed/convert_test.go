package oddsfeed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

const samplePayload = `{
	"id": "8b7e1f3c",
	"sport_key": "soccer_brazil_campeonato",
	"sport_title": "Brazil Serie A",
	"commence_time": "2026-08-29T19:30:00Z",
	"home_team": "Atletico Mineiro",
	"away_team": "Sport Recife",
	"bookmakers": [
		{
			"key": "bet365",
			"title": "Bet365",
			"last_update": "2026-08-29T12:00:00Z",
			"markets": [
				{
					"key": "h2h",
					"outcomes": [
						{"name": "Atletico Mineiro", "price": 2.00},
						{"name": "Draw", "price": 3.20},
						{"name": "Sport Recife", "price": 3.40}
					]
				},
				{
					"key": "totals",
					"outcomes": [
						{"name": "Over", "price": 1.85, "point": 2.5},
						{"name": "Under", "price": 1.95, "point": 2.5},
						{"name": "Over", "price": 2.60, "point": 3.5}
					]
				}
			]
		},
		{
			"key": "pinnacle",
			"title": "Pinnacle",
			"markets": [
				{
					"key": "h2h",
					"outcomes": [
						{"name": "Atletico Mineiro", "price": 2.10},
						{"name": "Unknown Special", "price": 7.77}
					]
				}
			]
		}
	]
}`

func TestToQuoteSet(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(samplePayload), &ev); err != nil {
		t.Fatalf("failed to decode sample payload: %v", err)
	}

	collected := time.Date(2026, 8, 29, 12, 5, 0, 0, time.UTC)
	set := ToQuoteSet(ev, 2.5, collected)

	if set.MatchID.HomeTeam != "Atletico Mineiro" || set.MatchID.AwayTeam != "Sport Recife" {
		t.Errorf("match id teams wrong: %+v", set.MatchID)
	}
	if set.MatchID.Competition != "Brazil Serie A" {
		t.Errorf("competition should come from sport title, got %q", set.MatchID.Competition)
	}
	if !set.CollectedAt.Equal(collected) {
		t.Errorf("collected at = %v", set.CollectedAt)
	}

	// 3 h2h + 2 totals from Bet365, 1 h2h from Pinnacle; the 3.5 line and
	// the unknown outcome name are dropped.
	if len(set.Quotes) != 6 {
		t.Fatalf("expected 6 quotes, got %d: %+v", len(set.Quotes), set.Quotes)
	}

	counts := make(map[models.Outcome]int)
	for _, q := range set.Quotes {
		counts[q.Outcome]++
	}
	if counts[models.OutcomeHome] != 2 || counts[models.OutcomeDraw] != 1 || counts[models.OutcomeAway] != 1 {
		t.Errorf("h2h tagging wrong: %v", counts)
	}
	if counts[models.OutcomeOver25] != 1 || counts[models.OutcomeUnder25] != 1 {
		t.Errorf("totals tagging wrong: %v", counts)
	}

	for _, q := range set.Quotes {
		if q.Bookmaker == "Bet365" && !q.ObservedAt.Equal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("Bet365 quotes should carry the bookmaker's last_update, got %v", q.ObservedAt)
		}
		if q.Bookmaker == "Pinnacle" && !q.ObservedAt.Equal(collected) {
			t.Errorf("missing last_update should fall back to the collection instant, got %v", q.ObservedAt)
		}
	}
}

func TestTagResultOutcome(t *testing.T) {
	tests := []struct {
		name string
		want models.Outcome
		ok   bool
	}{
		{"Atletico Mineiro", models.OutcomeHome, true},
		{"sport recife", models.OutcomeAway, true},
		{"Draw", models.OutcomeDraw, true},
		{"DRAW", models.OutcomeDraw, true},
		{"Both Teams To Score", "", false},
	}
	for _, tt := range tests {
		got, ok := tagResultOutcome(tt.name, "Atletico Mineiro", "Sport Recife")
		if got != tt.want || ok != tt.ok {
			t.Errorf("tagResultOutcome(%q) = %q/%v, want %q/%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
