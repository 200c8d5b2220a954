package models

import (
	"testing"
	"time"
)

func TestMatchIDKey_Stable(t *testing.T) {
	kickoff := time.Date(2026, 8, 29, 19, 30, 0, 0, time.UTC)

	a := MatchID{HomeTeam: "Atletico-MG", AwayTeam: "Sport", Competition: "Brasileirao Serie A", Kickoff: kickoff}
	b := MatchID{HomeTeam: "  atletico-mg ", AwayTeam: "SPORT", Competition: "brasileirao   serie a", Kickoff: kickoff.In(time.FixedZone("BRT", -3*3600))}

	if a.Key() != b.Key() {
		t.Errorf("same fixture should produce same key: %q vs %q", a.Key(), b.Key())
	}
}

func TestMatchIDKey_ZeroKickoff(t *testing.T) {
	m := MatchID{HomeTeam: "Flamengo", AwayTeam: "Palmeiras"}
	want := "flamengo|palmeiras||unknown-time"
	if got := m.Key(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestMatchIDName(t *testing.T) {
	m := MatchID{HomeTeam: " Flamengo ", AwayTeam: "Palmeiras"}
	if got := m.Name(); got != "Flamengo vs Palmeiras" {
		t.Errorf("Name() = %q", got)
	}
}
