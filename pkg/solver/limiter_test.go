package solver

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.Reset()

	if !limiter.Ok(1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101); ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}

	if ok := limiter.Ok(99); !ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()
	time.Sleep(time.Millisecond * 101)

	if ok := limiter.Ok(1); ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
	limiter.EvaluateStopReason(1)
	if limiter.StopReason() != StopMovetime {
		t.Errorf("expected Movetime, got %s", limiter.StopReason())
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterSetInfinite(t *testing.T) {
	limiter := NewLimiter()
	limits := DefaultLimits().SetNodes(10).SetMovetime(0)
	limiter.SetLimits(limits)
	limiter.Reset()

	if limiter.Ok(5) {
		t.Error("zero movetime should stop right away")
	}

	// infinite search ignores the node and time limits, only the stop signal counts
	limits.SetInfinite(true)
	if !limiter.Ok(1000) {
		t.Errorf("infinite limiter stopped: %s", limiter.LimitMask(1000))
	}
	limiter.SetStop(true)
	if limiter.LimitMask(1000) != StopInterrupt {
		t.Errorf("expected Interrupt, got %s", limiter.LimitMask(1000))
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.Reset()

	limiter.SetStop(true)
	if limiter.Ok(1) {
		t.Error("stopped limiter should not be ok")
	}
	limiter.EvaluateStopReason(1)
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("expected Interrupt, got %s", limiter.StopReason())
	}

	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.Reset()
	if !limiter.Ok(1) {
		t.Error("limiter should be ok before cancellation")
	}
	cancel()
	if limiter.Ok(1) {
		t.Error("limiter should stop after context cancellation")
	}
}
