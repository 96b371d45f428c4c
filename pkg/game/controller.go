package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
	"github.com/IlikeChooros/go-hanoi/pkg/solver"
)

// Controller drives a Session from discrete input events and periodic ticks.
// It is not safe for concurrent use, every call is expected from one loop.
type Controller struct {
	session      *Session
	initial      hanoi.Board
	solver       SolverLike
	ticksPerMove int
	logger       *slog.Logger
	quit         bool
}

type Option func(*Controller)

// Start from the initial board with given number of disks
func WithDisks(disks int) Option {
	return func(c *Controller) {
		c.initial = hanoi.NewBoard(disks, c.initial.Pegs())
	}
}

// Start from the initial board with given number of pegs
func WithPegs(pegs int) Option {
	return func(c *Controller) {
		c.initial = hanoi.NewBoard(c.initial.Disks(), pegs)
	}
}

// Start (and reset to) a custom board, panics if it breaks the board invariants
func WithBoard(board hanoi.Board) Option {
	return func(c *Controller) {
		if err := board.Validate(); err != nil {
			panic(fmt.Sprintf("game: invalid board %v: %v", board, err))
		}
		c.initial = board.Clone()
	}
}

// Number of ticks between autoplay moves, at least 1
func WithTicksPerMove(ticks int) Option {
	return func(c *Controller) {
		c.ticksPerMove = max(ticks, 1)
	}
}

func WithSolver(s SolverLike) Option {
	return func(c *Controller) {
		if s != nil {
			c.solver = s
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		initial:      hanoi.NewBoard(hanoi.DefaultDisks, hanoi.DefaultPegs),
		ticksPerMove: DefaultTicksPerMove,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.solver == nil {
		s := solver.New()
		s.SetLogger(c.logger)
		c.solver = s
	}

	c.session = NewSession(c.initial)
	c.logger.Debug("session started", "session", c.session.ID, "board", c.initial.String())
	return c
}

// The current session, callers must treat it as read-only
func (c *Controller) Session() *Session {
	return c.session
}

func (c *Controller) State() State {
	return c.session.State()
}

// SelectPeg handles a click on peg 'peg'. The first click on a non-empty peg selects it,
// a second click on the same peg deselects it, and a click on another peg tries
// to move the selected peg's top disk there. Illegal moves only clear the selection.
// Ignored during autoplay and after the puzzle is won.
func (c *Controller) SelectPeg(peg int) {
	s := c.session
	if s.Won || s.Autoplay || peg < 0 || peg >= s.Board.Pegs() {
		return
	}

	switch s.Selected {
	case NoSelection:
		if s.Board.Len(peg) > 0 {
			s.Selected = peg
		}
	case peg:
		s.Selected = NoSelection
	default:
		move := hanoi.Move{From: s.Selected, To: peg}
		s.Selected = NoSelection
		if !s.Board.IsLegal(move) {
			c.logger.Debug("illegal move rejected", "session", s.ID, "move", move.String())
			return
		}
		c.makeMove(move)
	}
}

// ToggleAutoplay starts or pauses playback of the solution. The solver runs
// at most once per session, on the first start, even if it finds nothing.
// With no moves left to play the toggle does nothing.
func (c *Controller) ToggleAutoplay(ctx context.Context) {
	s := c.session
	if s.Won {
		return
	}

	if s.Autoplay {
		s.Autoplay = false
		c.logger.Debug("autoplay paused", "session", s.ID, "index", s.SolutionIndex)
		return
	}

	if !s.SolutionComputed {
		result := c.solver.Solve(ctx, s.Board)
		s.Solution = result.Moves
		s.SolutionIndex = 0
		s.SolutionComputed = true
		c.logger.Info("solution computed",
			"session", s.ID,
			"moves", len(result.Moves),
			"expanded", result.Stats.Expanded,
			"elapsed", result.Stats.Elapsed,
			"reason", result.Stats.StopReason.String(),
		)
	}

	if s.SolutionIndex >= len(s.Solution) {
		return
	}

	s.Autoplay = true
	s.Selected = NoSelection
	s.ticks = 0
	c.logger.Debug("autoplay started", "session", s.ID, "remaining", len(s.Solution)-s.SolutionIndex)
}

// Tick advances autoplay by one frame, playing the next stored move every
// 'ticksPerMove' ticks. Returns true if a move was made.
func (c *Controller) Tick() bool {
	s := c.session
	if !s.Autoplay || s.Won {
		return false
	}

	s.ticks++
	if s.ticks < c.ticksPerMove {
		return false
	}
	s.ticks = 0

	move := s.Solution[s.SolutionIndex]
	if !s.Board.IsLegal(move) {
		// The plan no longer fits the board, drop what's left of it
		c.logger.Warn("stale solution discarded", "session", s.ID, "move", move.String(), "board", s.Board.String())
		s.SolutionIndex = len(s.Solution)
		s.Autoplay = false
		return false
	}

	c.makeMove(move)
	s.SolutionIndex++
	if s.SolutionIndex >= len(s.Solution) || s.Won {
		s.Autoplay = false
		c.logger.Debug("autoplay finished", "session", s.ID, "moves", s.Moves, "won", s.Won)
	}
	return true
}

// Reset starts a fresh session from the initial board
func (c *Controller) Reset() {
	old := c.session.ID
	c.session = NewSession(c.initial)
	c.logger.Debug("session reset", "previous", old, "session", c.session.ID)
}

// Quit marks the controller as finished, the presentation loop should exit
func (c *Controller) Quit() {
	c.quit = true
}

func (c *Controller) Quitting() bool {
	return c.quit
}

func (c *Controller) TicksPerMove() int {
	return c.ticksPerMove
}

func (c *Controller) Snapshot() Snapshot {
	s := c.session
	label := AutoplayStartLabel
	if s.Autoplay {
		label = AutoplayStopLabel
	}

	return Snapshot{
		Pegs:          s.Board.Stacks(),
		Selected:      s.Selected,
		Moves:         s.Moves,
		Won:           s.Won,
		Autoplay:      s.Autoplay,
		AutoplayLabel: label,
		State:         s.State(),
		SolutionLen:   len(s.Solution),
		SolutionIndex: s.SolutionIndex,
		Quit:          c.quit,
	}
}

func (c *Controller) makeMove(move hanoi.Move) {
	s := c.session
	s.Board.MakeMove(move)
	s.Moves++
	if s.Board.IsSolved() {
		s.Won = true
		c.logger.Info("puzzle solved", "session", s.ID, "moves", s.Moves)
	}
}
