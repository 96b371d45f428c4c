package bench

// Receives arena progress. OnPositionSolved and OnFinishedWork are called
// from worker goroutines, so implementations must be safe for concurrent use.
type ListenerLike interface {
	OnStart()
	OnPositionSolved(info WorkerInfo)
	OnFinishedWork(info WorkerInfo)
	Summary(summary Summary)
	OnEnd()
}

type DefaultListener struct{}

func (d DefaultListener) OnStart() {}

func (d DefaultListener) OnPositionSolved(info WorkerInfo) {}

func (d DefaultListener) OnFinishedWork(info WorkerInfo) {}

func (d DefaultListener) Summary(summary Summary) {}

func (d DefaultListener) OnEnd() {}
