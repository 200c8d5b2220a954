package oddsfeed

import "time"

// Sport is one entry from the /sports listing.
type Sport struct {
	Key          string `json:"key"`
	Group        string `json:"group"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasOutrights bool   `json:"has_outrights"`
}

// Event is one match as the odds service returns it, with every
// bookmaker's markets nested inside.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's markets for one event.
type Bookmaker struct {
	Key        string       `json:"key"`
	Title      string       `json:"title"`
	LastUpdate time.Time    `json:"last_update"`
	Markets    []MarketData `json:"markets"`
}

// MarketData is one market ("h2h", "totals") with its outcomes.
type MarketData struct {
	Key      string        `json:"key"`
	Outcomes []OutcomeData `json:"outcomes"`
}

// OutcomeData is one priced outcome. Point carries the totals line and is
// zero for h2h outcomes.
type OutcomeData struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point"`
}

// Quota reflects the x-requests-used / x-requests-remaining response
// headers of the rate-limited odds service.
type Quota struct {
	Used      string
	Remaining string
}
