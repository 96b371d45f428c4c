package game

import (
	"slices"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
	"github.com/google/uuid"
)

// No peg selected
const NoSelection = -1

// Session is the mutable state of one play session, owned by a Controller
type Session struct {
	ID       uuid.UUID
	Board    hanoi.Board
	Selected int
	Moves    int
	Won      bool
	Autoplay bool

	// Last computed solution and the autoplay progress through it.
	// SolutionComputed stays set once the solver ran, even if the solution is empty.
	Solution         []hanoi.Move
	SolutionComputed bool
	SolutionIndex    int

	// Ticks elapsed since the last autoplay move
	ticks int
}

func NewSession(board hanoi.Board) *Session {
	return &Session{
		ID:       uuid.New(),
		Board:    board.Clone(),
		Selected: NoSelection,
		Won:      board.IsSolved(),
	}
}

// Moves of the stored solution not yet played
func (s *Session) Remaining() []hanoi.Move {
	if s.SolutionIndex >= len(s.Solution) {
		return nil
	}
	return slices.Clone(s.Solution[s.SolutionIndex:])
}

// State derived from the session flags
func (s *Session) State() State {
	switch {
	case s.Won:
		return Won
	case s.Autoplay:
		return AutoplayRunning
	case s.Selected != NoSelection:
		return PegSelected
	default:
		return ManualTurn
	}
}
