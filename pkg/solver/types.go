package solver

import (
	"time"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
)

// Priority key of a node: moves made so far + heuristic estimate
type Priority int32

// Heuristic estimate of the remaining moves from given board
type HeuristicFn func(hanoi.Board) Priority

// Stats of a single search run
type Stats struct {
	Expanded    int
	Generated   int
	MaxFrontier int
	Elapsed     time.Duration
	StopReason  StopReason
}

// Result of a search, Moves is empty if no solution was found
// (or the board was already solved), see Stats.StopReason for the difference
type Result struct {
	Moves []hanoi.Move
	Stats Stats
}

// Found reports whether the search reached a solved board
func (r Result) Found() bool {
	return r.Stats.StopReason&StopSolved == StopSolved
}
