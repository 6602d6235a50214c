package domain

import (
	"fmt"
	"time"
)

// DefaultLoopPause is how long a looping script rests on its last step.
const DefaultLoopPause = 3 * time.Second

// Script is a named, ordered sequence of steps. It is built once and never mutated.
type Script struct {
	Name        string
	WindowTitle string
	Steps       []Step
	EndPolicy   EndPolicy
	LoopPause   time.Duration
}

// Validate checks the invariants the playback engine relies on.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script %q has no steps: %w", s.Name, ErrInvalidScript)
	}
	if s.EndPolicy != "" && !s.EndPolicy.Valid() {
		return fmt.Errorf("script %q: unknown end policy %q: %w", s.Name, s.EndPolicy, ErrInvalidScript)
	}
	prev := 0
	for _, st := range s.Steps {
		if st.ID <= 0 {
			return fmt.Errorf("script %q: step id %d is not positive: %w", s.Name, st.ID, ErrInvalidScript)
		}
		if st.ID <= prev {
			return fmt.Errorf("script %q: step id %d is out of order or duplicated: %w", s.Name, st.ID, ErrInvalidScript)
		}
		if st.Delay <= 0 {
			return fmt.Errorf("script %q: step %d has no delay: %w", s.Name, st.ID, ErrInvalidScript)
		}
		if !st.Status.Valid() {
			return fmt.Errorf("script %q: step %d has unknown status %q: %w", s.Name, st.ID, st.Status, ErrInvalidScript)
		}
		prev = st.ID
	}
	return nil
}

// Policy returns the end policy, defaulting to EndStop.
func (s Script) Policy() EndPolicy {
	if s.EndPolicy == "" {
		return EndStop
	}
	return s.EndPolicy
}

// LoopPauseOrDefault returns LoopPause if set, otherwise DefaultLoopPause.
func (s Script) LoopPauseOrDefault() time.Duration {
	if s.LoopPause > 0 {
		return s.LoopPause
	}
	return DefaultLoopPause
}
