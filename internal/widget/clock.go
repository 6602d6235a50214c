package widget

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler abstracts time.AfterFunc for deterministic testing.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler implements Scheduler using the runtime timer.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
