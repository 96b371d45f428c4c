package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
)

// Best-first (A*) search over board configurations
type Solver struct {
	Limiter  LimiterLike
	listener *StatsListener
	logger   *slog.Logger
}

func New() *Solver {
	listener := NewStatsListener()
	return &Solver{
		Limiter:  LimiterLike(NewLimiter()),
		listener: &listener,
		logger:   slog.Default(),
	}
}

func (s *Solver) SetLimits(limits *Limits) {
	s.Limiter.SetLimits(limits)
}

func (s *Solver) Limits() *Limits {
	return s.Limiter.Limits()
}

func (s *Solver) StatsListener() *StatsListener {
	return s.listener
}

func (s *Solver) SetListener(listener StatsListener) {
	*s.listener = listener
}

func (s *Solver) ResetListener() {
	s.listener.OnExpand(nil).OnStop(nil)
}

func (s *Solver) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Stop a running search, the result will have StopInterrupt set
func (s *Solver) Stop() {
	s.Limiter.SetStop(true)
}

// Solve runs the search from 'board' until a solved board is popped from the frontier,
// the frontier runs out, or a limit is hit. The returned moves lead from 'board'
// to the solved configuration, they are empty if none was found.
func (s *Solver) Solve(ctx context.Context, board hanoi.Board) Result {
	s.Limiter.SetContext(ctx)
	s.Limiter.Reset()

	nodes := make(arena, 0, initialArenaSize)
	open := newFrontier(initialArenaSize)
	visited := make(map[hanoi.Key]struct{}, initialArenaSize)
	stats := Stats{}

	maxDepth := int32(min(s.Limiter.Limits().Depth, DefaultDepthLimit))

	root := nodes.add(newRootNode(board))
	open.push(root, Heuristic(board))

	var solution []hanoi.Move
	listenerStats := ListenerStats{}

	for {
		if open.Len() == 0 {
			s.Limiter.SetStopReason(StopExhausted)
			break
		}
		if !s.Limiter.Ok(uint32(stats.Expanded)) {
			s.Limiter.EvaluateStopReason(uint32(stats.Expanded))
			break
		}

		idx, priority := open.pop()
		node := nodes[idx]
		key := node.Board.Key()
		if _, ok := visited[key]; ok {
			continue
		}

		if node.Board.IsSolved() {
			solution = nodes.path(idx)
			s.Limiter.SetStopReason(StopSolved)
			break
		}

		visited[key] = struct{}{}
		stats.Expanded++

		// nodes at the depth bound count as expanded but get no children
		if node.Moves < maxDepth {
			movelist := node.Board.GenerateMoves()
			for _, move := range movelist.Moves {
				child := newChildNode(&node, idx, move)
				if _, ok := visited[child.Board.Key()]; ok {
					continue
				}
				childIdx := nodes.add(child)
				open.push(childIdx, Priority(child.Moves)+Heuristic(child.Board))
				stats.Generated++
			}
		}
		stats.MaxFrontier = max(stats.MaxFrontier, open.Len())

		listenerStats = ListenerStats{
			Expanded:  stats.Expanded,
			Generated: stats.Generated,
			Frontier:  open.Len(),
			Depth:     int(node.Moves),
			Priority:  priority,
			TimeMs:    int(s.Limiter.Elapsed()),
		}
		s.listener.invokeExpand(listenerStats)
	}

	if solution == nil {
		solution = []hanoi.Move{}
	}

	stats.Elapsed = s.elapsed()
	stats.StopReason = s.Limiter.StopReason()

	listenerStats.Expanded = stats.Expanded
	listenerStats.Generated = stats.Generated
	listenerStats.Frontier = open.Len()
	listenerStats.TimeMs = int(s.Limiter.Elapsed())
	listenerStats.Moves = solution
	listenerStats.StopReason = stats.StopReason
	s.listener.invokeStop(listenerStats)

	s.logger.Debug("search finished",
		"board", board.String(),
		"moves", len(solution),
		"expanded", stats.Expanded,
		"generated", stats.Generated,
		"frontier", stats.MaxFrontier,
		"elapsed", stats.Elapsed,
		"reason", stats.StopReason.String(),
	)

	return Result{Moves: solution, Stats: stats}
}

func (s *Solver) elapsed() time.Duration {
	if l, ok := s.Limiter.(*Limiter); ok {
		return l.timer.Elapsed()
	}
	return time.Duration(s.Limiter.Elapsed()) * time.Millisecond
}

// Solve with a fresh solver, no limits and a background context
func Solve(board hanoi.Board) []hanoi.Move {
	return New().Solve(context.Background(), board).Moves
}
