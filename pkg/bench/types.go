package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
)

// Outcome of solving a single scrambled position
type Outcome int

const (
	// The solver returned moves that legally reach the solved board
	OutcomeSolved Outcome = iota
	// The solver returned no moves (limit hit or no solution)
	OutcomeEmpty
	// The returned moves are illegal or don't end on the solved board
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeEmpty:
		return "empty"
	case OutcomeInvalid:
		return "invalid"
	}
	return "unknown"
}

// 64-bit counters first, keeps them aligned for atomic access on 32-bit platforms
type ArenaStats struct {
	totalMoves uint64
	expanded   uint64
	total      uint32
	solved     uint32
	empty      uint32
	invalid    uint32
	maxMoves   uint32
}

func (as *ArenaStats) Total() int {
	return int(atomic.LoadUint32(&as.total))
}

func (as *ArenaStats) Solved() int {
	return int(atomic.LoadUint32(&as.solved))
}

func (as *ArenaStats) Empty() int {
	return int(atomic.LoadUint32(&as.empty))
}

func (as *ArenaStats) Invalid() int {
	return int(atomic.LoadUint32(&as.invalid))
}

func (as *ArenaStats) TotalMoves() int {
	return int(atomic.LoadUint64(&as.totalMoves))
}

func (as *ArenaStats) MaxMoves() int {
	return int(atomic.LoadUint32(&as.maxMoves))
}

func (as *ArenaStats) Expanded() int {
	return int(atomic.LoadUint64(&as.expanded))
}

func (as *ArenaStats) add(outcome Outcome, moves, expanded int) {
	atomic.AddUint32(&as.total, 1)
	switch outcome {
	case OutcomeSolved:
		atomic.AddUint32(&as.solved, 1)
	case OutcomeEmpty:
		atomic.AddUint32(&as.empty, 1)
	default:
		atomic.AddUint32(&as.invalid, 1)
	}
	atomic.AddUint64(&as.totalMoves, uint64(moves))
	atomic.AddUint64(&as.expanded, uint64(expanded))

	// cas loop for the max
	for {
		old := atomic.LoadUint32(&as.maxMoves)
		if uint32(moves) <= old || atomic.CompareAndSwapUint32(&as.maxMoves, old, uint32(moves)) {
			return
		}
	}
}

type WorkerInfo struct {
	WorkerID    int
	NPositions  int
	FinishedPos int
	Position    hanoi.Board
	Moves       []hanoi.Move
	Expanded    int
	Outcome     Outcome
	Solved      int
	Empty       int
	Invalid     int
}

type Summary struct {
	TotalPositions int     `json:"total_positions"`
	Solved         int     `json:"solved"`
	Empty          int     `json:"empty"`
	Invalid        int     `json:"invalid"`
	TotalMoves     int     `json:"total_moves"`
	MaxMoves       int     `json:"max_moves"`
	AvgMoves       float64 `json:"avg_moves"`
	Expanded       int     `json:"expanded"`
	Workers        int     `json:"workers"`
	Disks          int     `json:"disks"`
	Pegs           int     `json:"pegs"`
	ElapsedMs      int64   `json:"elapsed_ms"`
}
