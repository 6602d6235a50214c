// Package playback holds the step cursor and autoplay state of a scripted demo.
package playback

import (
	"time"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/window"
)

// Engine is an immutable playback model. Every operation returns a new Engine and the
// cursor always stays within [0, Len()-1].
type Engine struct {
	steps     []domain.Step
	cursor    int
	autoPlay  bool
	policy    domain.EndPolicy
	loopPause time.Duration
}

// New creates an engine positioned on the first step with autoplay on.
// The script is expected to have passed domain.Script.Validate.
func New(s domain.Script) Engine {
	steps := make([]domain.Step, len(s.Steps))
	copy(steps, s.Steps)
	return Engine{
		steps:     steps,
		autoPlay:  true,
		policy:    s.Policy(),
		loopPause: s.LoopPauseOrDefault(),
	}
}

// Next moves one step forward and switches autoplay off. At the last step only the
// autoplay flag changes.
func (e Engine) Next() Engine {
	if e.cursor < len(e.steps)-1 {
		e.cursor++
	}
	e.autoPlay = false
	return e
}

// Previous moves one step back and switches autoplay off. At the first step only the
// autoplay flag changes.
func (e Engine) Previous() Engine {
	if e.cursor > 0 {
		e.cursor--
	}
	e.autoPlay = false
	return e
}

// ToggleAutoplay flips the autoplay flag. Switching it on at the last step under the
// stop policy never moves the cursor: one final wait of the step's delay runs, then
// Advance switches autoplay back off.
func (e Engine) ToggleAutoplay() Engine {
	e.autoPlay = !e.autoPlay
	return e
}

// Resume switches autoplay on without moving the cursor.
func (e Engine) Resume() Engine {
	e.autoPlay = true
	return e
}

// Advance applies one timer fire. It is a no-op while autoplay is off. On the last step
// the stop policy switches autoplay off and the loop policy returns to the first step.
func (e Engine) Advance() Engine {
	if !e.autoPlay || len(e.steps) == 0 {
		return e
	}
	switch {
	case e.cursor < len(e.steps)-1:
		e.cursor++
	case e.policy == domain.EndLoop:
		e.cursor = 0
	default:
		e.autoPlay = false
	}
	return e
}

// Pending returns how long to wait before the next Advance. ok is false when autoplay is
// off. On the last step under the stop policy the wait still runs once so that the
// final step stays on screen for its delay before autoplay ends.
func (e Engine) Pending() (delay time.Duration, ok bool) {
	if !e.autoPlay || len(e.steps) == 0 {
		return 0, false
	}
	delay = e.steps[e.cursor].Delay
	if e.AtEnd() && e.policy == domain.EndLoop {
		delay += e.loopPause
	}
	return delay, true
}

// Due is Pending gated on presentation: nothing is due in static mode or while the
// window is not open. Every front end schedules its advance timer from this.
func (e Engine) Due(mode window.Mode, static bool) (delay time.Duration, ok bool) {
	if static || mode != window.ModeOpen {
		return 0, false
	}
	return e.Pending()
}

// Index returns the zero-based cursor.
func (e Engine) Index() int {
	return e.cursor
}

// Len returns the number of steps.
func (e Engine) Len() int {
	return len(e.steps)
}

// Steps returns the full step slice.
func (e Engine) Steps() []domain.Step {
	return e.steps
}

// Current returns the step under the cursor, or a zero Step for an empty engine.
func (e Engine) Current() domain.Step {
	if len(e.steps) == 0 {
		return domain.Step{}
	}
	return e.steps[e.cursor]
}

// AutoPlaying reports whether timer-driven advancement is enabled.
func (e Engine) AutoPlaying() bool {
	return e.autoPlay
}

// Policy returns the end-of-script policy.
func (e Engine) Policy() domain.EndPolicy {
	return e.policy
}

// AtStart reports whether the cursor is on the first step.
func (e Engine) AtStart() bool {
	return e.cursor == 0
}

// AtEnd reports whether the cursor is on the last step.
func (e Engine) AtEnd() bool {
	return e.cursor >= len(e.steps)-1
}

// Progress returns (Index()+1)/Len(), or 0 for an empty engine.
func (e Engine) Progress() float64 {
	if len(e.steps) == 0 {
		return 0
	}
	return float64(e.cursor+1) / float64(len(e.steps))
}
