package solver

import "github.com/IlikeChooros/go-hanoi/pkg/hanoi"

// How often (in expansions) the OnExpand listener fires by default
const DefaultExpandInterval = 1000

// Initial capacity of the node arena and the frontier
const initialArenaSize = 1024

// Number of disks not on the last peg. Every one of them needs at least one more move,
// and a move changes the count by at most one.
func MisplacedDisks(board hanoi.Board) Priority {
	return Priority(board.MisplacedDisks())
}

// Heuristic used to order the frontier
var Heuristic HeuristicFn = MisplacedDisks

// Set custom heuristic function, nil is ignored
func SetHeuristic(f HeuristicFn) {
	if f != nil {
		Heuristic = f
	}
}
