package bench

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
	"github.com/IlikeChooros/go-hanoi/pkg/solver"
)

/*
Arena benchmark subpackage: scrambles the initial board with random legal moves,
solves each scrambled position, and replays the solution to check it.
Work is split evenly between worker goroutines, each with its own solver.
*/

type SolverLike interface {
	Solve(ctx context.Context, board hanoi.Board) solver.Result
	SetLimits(*solver.Limits)
}

type Arena struct {
	ArenaStats
	NewSolver  func() SolverLike
	NPositions uint
	NThreads   uint
	Scramble   int
	Seed       int64
	Disks      int
	Pegs       int
	Limits     *solver.Limits
	wg         sync.WaitGroup
	listener   ListenerLike
	start      time.Time
	ctx        context.Context
}

func NewArena(disks, pegs int) *Arena {
	return &Arena{
		NewSolver:  func() SolverLike { return solver.New() },
		NPositions: 100,
		NThreads:   2,
		Scramble:   64,
		Seed:       time.Now().UnixNano(),
		Disks:      disks,
		Pegs:       pegs,
		Limits:     solver.DefaultLimits(),
		listener:   DefaultListener{},
		ctx:        context.Background(),
	}
}

func (a *Arena) WithContext(ctx context.Context) *Arena {
	a.ctx = ctx
	return a
}

func (a *Arena) Setup(limits *solver.Limits, nPositions, nThreads uint) {
	a.Limits = limits
	a.NPositions = nPositions
	a.NThreads = max(nThreads, 1)
}

// Start distributes the positions between the workers and returns immediately,
// call Wait to block until they finish
func (a *Arena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}
	a.listener = listener
	a.start = time.Now()
	a.NThreads = max(a.NThreads, 1)
	listener.OnStart()

	nPositions := a.NPositions / a.NThreads
	rest := a.NPositions % a.NThreads
	for i := uint(0); i < a.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		s := a.NewSolver()
		s.SetLimits(a.Limits)
		a.wg.Add(1)
		go a.worker(int(i), int(nPositions+delta), s)
	}
}

// Wait for all workers, then report the summary to the listener
func (a *Arena) Wait() Summary {
	a.wg.Wait()
	summary := a.Summary()
	a.listener.Summary(summary)
	a.listener.OnEnd()
	return summary
}

// Run is Start followed by Wait
func (a *Arena) Run(listener ListenerLike) Summary {
	a.Start(listener)
	return a.Wait()
}

func (a *Arena) Summary() Summary {
	summary := Summary{
		TotalPositions: a.Total(),
		Solved:         a.Solved(),
		Empty:          a.Empty(),
		Invalid:        a.Invalid(),
		TotalMoves:     a.TotalMoves(),
		MaxMoves:       a.MaxMoves(),
		Expanded:       a.ArenaStats.Expanded(),
		Workers:        int(a.NThreads),
		Disks:          a.Disks,
		Pegs:           a.Pegs,
		ElapsedMs:      time.Since(a.start).Milliseconds(),
	}
	if summary.Solved > 0 {
		summary.AvgMoves = float64(summary.TotalMoves) / float64(summary.Solved)
	}
	return summary
}

func (a *Arena) worker(id, nPositions int, s SolverLike) {
	defer a.wg.Done()

	r := rand.New(rand.NewSource(a.Seed + int64(id)))
	local := WorkerInfo{WorkerID: id, NPositions: nPositions}

Loop:
	for i := 0; i < nPositions; i++ {
		select {
		case <-a.ctx.Done():
			break Loop
		default:
			// continue
		}

		board := ScrambledBoard(a.Disks, a.Pegs, a.Scramble, r)
		result := s.Solve(a.ctx, board)
		outcome := Verify(board, result)

		// an interrupted search says nothing about the position
		if result.Stats.StopReason&solver.StopInterrupt == solver.StopInterrupt {
			break Loop
		}

		moves := 0
		if outcome == OutcomeSolved {
			moves = len(result.Moves)
		}
		a.add(outcome, moves, result.Stats.Expanded)

		switch outcome {
		case OutcomeSolved:
			local.Solved++
		case OutcomeEmpty:
			local.Empty++
		default:
			local.Invalid++
		}

		local.FinishedPos = i + 1
		local.Position = board
		local.Moves = result.Moves
		local.Expanded = result.Stats.Expanded
		local.Outcome = outcome
		a.listener.OnPositionSolved(local)
	}

	a.listener.OnFinishedWork(local)
}

// ScrambledBoard plays 'steps' random legal moves from the initial board
func ScrambledBoard(disks, pegs, steps int, r *rand.Rand) hanoi.Board {
	board := hanoi.NewBoard(disks, pegs)
	for i := 0; i < steps; i++ {
		movelist := board.GenerateMoves()
		if movelist.Size() == 0 {
			break
		}
		board.MakeMove(movelist.Moves[r.Intn(movelist.Size())])
	}
	return board
}

// Verify replays the solution on 'board' and classifies the result
func Verify(board hanoi.Board, result solver.Result) Outcome {
	if len(result.Moves) == 0 {
		if board.IsSolved() {
			return OutcomeSolved
		}
		return OutcomeEmpty
	}

	for _, move := range result.Moves {
		if !board.IsLegal(move) {
			return OutcomeInvalid
		}
		board = board.Apply(move)
	}

	if !board.IsSolved() {
		return OutcomeInvalid
	}
	return OutcomeSolved
}
