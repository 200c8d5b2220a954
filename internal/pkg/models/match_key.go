package models

import (
	"strings"
	"time"
)

// MatchID identifies one fixture across bookmakers.
type MatchID struct {
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Competition string    `json:"competition"`
	Kickoff     time.Time `json:"kickoff"`
}

// Key builds a stable identifier for the match.
//
// IMPORTANT: this assumes team names arrive in the same language/format
// across sources. Format: home|away|competition|kickoff.
func (m MatchID) Key() string {
	home := normalizeKeyPart(m.HomeTeam)
	away := normalizeKeyPart(m.AwayTeam)
	competition := normalizeKeyPart(m.Competition)

	ts := "unknown-time"
	if !m.Kickoff.IsZero() {
		ts = m.Kickoff.UTC().Format(time.RFC3339)
	}

	return home + "|" + away + "|" + competition + "|" + ts
}

// Name returns the human-readable fixture name.
func (m MatchID) Name() string {
	return strings.TrimSpace(m.HomeTeam) + " vs " + strings.TrimSpace(m.AwayTeam)
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}
