package engine

import (
	"context"
	"time"
)

// timeManager holds the single deadline shared by the root loop and every node.
type timeManager struct {
	ctx      context.Context
	now      func() time.Time
	start    time.Time
	deadline time.Time
}

// A non-positive budget means no deadline; only ctx can stop the search then.
func newTimeManager(ctx context.Context, now func() time.Time, budget time.Duration) *timeManager {
	var tm = &timeManager{
		ctx:   ctx,
		now:   now,
		start: now(),
	}
	if budget > 0 {
		tm.deadline = tm.start.Add(budget)
	}
	return tm
}

func (tm *timeManager) IsDone() bool {
	if !tm.deadline.IsZero() && tm.now().After(tm.deadline) {
		return true
	}
	select {
	case <-tm.ctx.Done():
		return true
	default:
		return false
	}
}

func (tm *timeManager) Elapsed() time.Duration {
	return tm.now().Sub(tm.start)
}
