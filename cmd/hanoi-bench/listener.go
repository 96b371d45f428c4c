package main

import (
	"fmt"
	"sync"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-hanoi/pkg/bench"
)

// Prints a single progress line, redrawn after every position
type progressListener struct {
	bench.DefaultListener
	out   *termenv.Output
	total int
	mu    sync.Mutex
	done  int
}

func newProgressListener(out *termenv.Output, total int) *progressListener {
	return &progressListener{out: out, total: total}
}

func (l *progressListener) OnStart() {
	l.out.HideCursor()
}

func (l *progressListener) OnPositionSolved(info bench.WorkerInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.done++
	l.out.ClearLine()
	fmt.Fprintf(l.out, "\r[%d/%d] worker %d: %s in %d moves (%d expanded)",
		l.done, l.total, info.WorkerID, info.Outcome, len(info.Moves), info.Expanded)
	if info.Outcome == bench.OutcomeInvalid {
		fmt.Fprintf(l.out, "\n%s %s\n", l.out.String("invalid solution for").Foreground(l.out.Color("#E06C75")), info.Position)
	}
}

func (l *progressListener) OnEnd() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.out.ClearLine()
	fmt.Fprint(l.out, "\r")
	l.out.ShowCursor()
}
