// Package metrics tracks background task statistics for the interactive controller.
package metrics

import (
	"sync/atomic"
	"time"
)

// Tasks tracks dispatched background work using atomic operations for thread-safety
type Tasks struct {
	Dispatched atomic.Int64
	Completed  atomic.Int64
	Failed     atomic.Int64
	Ignored    atomic.Int64
	Stale      atomic.Int64
	StartTime  time.Time
}

// NewTasks creates a new Tasks instance
func NewTasks() *Tasks {
	return &Tasks{
		StartTime: time.Now(),
	}
}

// IncDispatched increments the dispatched counter
func (t *Tasks) IncDispatched() {
	t.Dispatched.Add(1)
}

// IncCompleted increments the completed counter
func (t *Tasks) IncCompleted() {
	t.Completed.Add(1)
}

// IncFailed increments the failed counter
func (t *Tasks) IncFailed() {
	t.Failed.Add(1)
}

// IncIgnored counts a trigger dropped because its action was already running
func (t *Tasks) IncIgnored() {
	t.Ignored.Add(1)
}

// IncStale counts a result discarded because a newer read superseded it
func (t *Tasks) IncStale() {
	t.Stale.Add(1)
}

// InFlight returns the number of dispatched tasks that have not reported back
func (t *Tasks) InFlight() int64 {
	return t.Dispatched.Load() - t.Completed.Load() - t.Failed.Load() - t.Stale.Load()
}

// Snapshot represents a point-in-time snapshot of task counters
type Snapshot struct {
	Dispatched int64     `json:"dispatched"`
	Completed  int64     `json:"completed"`
	Failed     int64     `json:"failed"`
	Ignored    int64     `json:"ignored"`
	Stale      int64     `json:"stale"`
	StartTime  time.Time `json:"start_time"`
	Uptime     string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current counters
func (t *Tasks) GetSnapshot() Snapshot {
	return Snapshot{
		Dispatched: t.Dispatched.Load(),
		Completed:  t.Completed.Load(),
		Failed:     t.Failed.Load(),
		Ignored:    t.Ignored.Load(),
		Stale:      t.Stale.Load(),
		StartTime:  t.StartTime,
		Uptime:     time.Since(t.StartTime).Round(time.Second).String(),
	}
}
