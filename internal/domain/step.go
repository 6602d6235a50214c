package domain

import "time"

// StepStatus is the decorative outcome tag of a scripted step.
type StepStatus string

const (
	StatusPending StepStatus = "pending"
	StatusRunning StepStatus = "running"
	StatusSuccess StepStatus = "success"
	StatusError   StepStatus = "error"
)

// Valid reports whether s is one of the known statuses.
func (s StepStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusSuccess, StatusError:
		return true
	}
	return false
}

// Step is one authored unit of a scripted demo. Output is fixture text, it is never
// produced by running Command.
type Step struct {
	ID      int
	Title   string
	Command string
	Output  string
	Status  StepStatus
	// Delay is how long the step stays on screen before autoplay moves past it.
	Delay time.Duration
}

// EndPolicy decides what autoplay does once the last step has been shown.
type EndPolicy string

const (
	// EndStop keeps the last step on screen and switches autoplay off.
	EndStop EndPolicy = "stop"
	// EndLoop returns to the first step after a pause.
	EndLoop EndPolicy = "loop"
)

// Valid reports whether p is a known policy.
func (p EndPolicy) Valid() bool {
	return p == EndStop || p == EndLoop
}
