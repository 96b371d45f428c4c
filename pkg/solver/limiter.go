package solver

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1  // Stopped by user, by calling Stop() or context cancellation
	StopMovetime  StopReason = 2  // Time limit reached
	StopNodes     StopReason = 4  // Node limit reached
	StopSolved    StopReason = 8  // Solved board popped from the frontier
	StopExhausted StopReason = 16 // Frontier is empty, no solution exists
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopSolved, "Solved"},
		{StopExhausted, "Exhausted"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() uint32
	// Set the stop signal, will cause to exit search if set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Whether the search may continue, called in the main search loop
	Ok(expanded uint32) bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
	// Evaluate stop reason based on current state, and set it internally
	EvaluateStopReason(expanded uint32)
	// Set the stop reason directly, used when the search itself decides to end
	SetStopReason(StopReason)
}

type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) LimitMask(expanded uint32) StopReason {
	mask := StopNone
	if l.Stop() {
		mask |= StopInterrupt
	}

	// If infinite, only the stop signal counts
	if l.limits.Infinite {
		return mask
	}

	if l.timer.IsEnd() {
		mask |= StopMovetime
	}
	if l.limits.Nodes <= expanded {
		mask |= StopNodes
	}
	return mask
}

func (l *Limiter) Ok(expanded uint32) bool {
	return l.LimitMask(expanded) == StopNone
}

func (l *Limiter) EvaluateStopReason(expanded uint32) {
	l.reason = l.LimitMask(expanded)
}

func (l *Limiter) SetStopReason(reason StopReason) {
	l.reason = reason
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}
