package calculator

import (
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Direction labels the sign of a price move between two polls.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Movement is the signed price change for one result market between two
// consecutive snapshots of the same bookmaker.
type Movement struct {
	Delta     float64   `json:"delta"`
	Direction Direction `json:"direction"`
}

// CompareSnapshots computes per-market deltas between the latest and the
// previous snapshot. Markets missing from either snapshot are left out of
// the result, not defaulted to zero. The caller owns the history and is
// expected to call in only once it holds at least two observations.
func CompareSnapshots(current, previous models.Snapshot) map[models.Outcome]Movement {
	moves := make(map[models.Outcome]Movement)
	for _, outcome := range models.ResultOutcomes {
		cur, okCur := current.Prices[outcome]
		prev, okPrev := previous.Prices[outcome]
		if !okCur || !okPrev {
			continue
		}

		delta := cur - prev
		direction := DirectionFlat
		switch {
		case delta > 0:
			direction = DirectionUp
		case delta < 0:
			direction = DirectionDown
		}
		moves[outcome] = Movement{Delta: delta, Direction: direction}
	}
	return moves
}
