package game

import (
	"context"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
	"github.com/IlikeChooros/go-hanoi/pkg/solver"
)

type State int

const (
	ManualTurn State = iota
	PegSelected
	AutoplayRunning
	Won
)

func (s State) String() string {
	switch s {
	case ManualTurn:
		return "ManualTurn"
	case PegSelected:
		return "PegSelected"
	case AutoplayRunning:
		return "AutoplayRunning"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// Frame pacing defaults: one autoplay move every half second at 60 ticks per second
const (
	DefaultFPS          = 60
	DefaultTicksPerMove = 30
)

// Labels of the autoplay button
const (
	AutoplayStartLabel = "start"
	AutoplayStopLabel  = "stop"
)

// Anything able to find a move sequence to the solved board
type SolverLike interface {
	Solve(ctx context.Context, board hanoi.Board) solver.Result
}

// Read-only view of the controller state, taken once per frame
type Snapshot struct {
	Pegs          [][]int
	Selected      int
	Moves         int
	Won           bool
	Autoplay      bool
	AutoplayLabel string
	State         State
	SolutionLen   int
	SolutionIndex int
	Quit          bool
}
