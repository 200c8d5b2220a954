package models

import "time"

// OddsRow is one flattened persistence row: one bookmaker's prices for one
// match at one collection instant. The column set is shared by the
// Postgres table and the CSV export. Unquoted prices stay nil.
type OddsRow struct {
	CollectedAt time.Time `json:"collected_at"`
	Competition string    `json:"competition"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Kickoff     time.Time `json:"kickoff"`
	Bookmaker   string    `json:"bookmaker"`
	Home        *float64  `json:"home_odd"`
	Draw        *float64  `json:"draw_odd"`
	Away        *float64  `json:"away_odd"`
	Over25      *float64  `json:"over_2_5_odd"`
	Under25     *float64  `json:"under_2_5_odd"`
}

// FlattenQuoteSet turns a quote set into one row per bookmaker, bookmakers
// in first-seen input order. Malformed quotes are dropped row-side too so
// persistence never carries an illegal price.
func FlattenQuoteSet(set QuoteSet) []OddsRow {
	rowIndex := make(map[string]int)
	var rows []OddsRow

	for _, q := range set.Quotes {
		if !q.Valid() {
			continue
		}

		i, ok := rowIndex[q.Bookmaker]
		if !ok {
			rows = append(rows, OddsRow{
				CollectedAt: set.CollectedAt,
				Competition: set.MatchID.Competition,
				HomeTeam:    set.MatchID.HomeTeam,
				AwayTeam:    set.MatchID.AwayTeam,
				Kickoff:     set.MatchID.Kickoff,
				Bookmaker:   q.Bookmaker,
			})
			i = len(rows) - 1
			rowIndex[q.Bookmaker] = i
		}

		price := q.Price
		switch q.Outcome {
		case OutcomeHome:
			rows[i].Home = &price
		case OutcomeDraw:
			rows[i].Draw = &price
		case OutcomeAway:
			rows[i].Away = &price
		case OutcomeOver25:
			rows[i].Over25 = &price
		case OutcomeUnder25:
			rows[i].Under25 = &price
		}
	}

	return rows
}
