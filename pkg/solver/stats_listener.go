package solver

import "github.com/IlikeChooros/go-hanoi/pkg/hanoi"

type ListenerStats struct {
	Expanded   int
	Generated  int
	Frontier   int
	Depth      int      // moves made to reach the node being expanded
	Priority   Priority // its priority key
	TimeMs     int
	Moves      []hanoi.Move // set only in OnStop
	StopReason StopReason   // set only in OnStop
}

// Listener function callback, will receive current search statistics
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called every N expansions
	onExpand  ListenerFunc
	nExpanded int

	// called once when the search ends, either by finding a solution,
	// exhausting the frontier, or by the limiter
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nExpanded: DefaultExpandInterval}
}

// Attach new 'on expansion' callback, called every N expansions (see SetExpandInterval)
func (listener *StatsListener) OnExpand(onExpand ListenerFunc) *StatsListener {
	listener.onExpand = onExpand
	return listener
}

func (listener *StatsListener) SetExpandInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nExpanded = n
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' and 'Moves' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeExpand(stats ListenerStats) {
	if listener.onExpand != nil && stats.Expanded%max(listener.nExpanded, 1) == 0 {
		listener.onExpand(stats)
	}
}

func (listener *StatsListener) invokeStop(stats ListenerStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
