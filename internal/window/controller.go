// Package window tracks the chrome state of the demo window: whether it is shown,
// minimized or closed, and whether it is maximized.
package window

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Mode is the visibility state of the window.
type Mode string

const (
	stateHidden    = "hidden"
	stateOpen      = "open"
	stateMinimized = "minimized"
	stateClosed    = "closed"
)

const (
	// ModeHidden is the pre-display phase before the initial delay elapses.
	ModeHidden    Mode = stateHidden
	ModeOpen      Mode = stateOpen
	ModeMinimized Mode = stateMinimized
	ModeClosed    Mode = stateClosed
)

// Shown reports whether the initial display delay has elapsed. Playback controls only
// act once the window has been shown.
func (m Mode) Shown() bool {
	return m != ModeHidden
}

// Event types for the window state machine.
const (
	EventShow     = "SHOW"
	EventMinimize = "MINIMIZE"
	EventClose    = "CLOSE"
	EventReopen   = "REOPEN"
)

// machineContext is the statekit context type. The window carries no extended state
// inside the machine; the maximized flag lives on the Controller.
type machineContext struct{}

// Controller owns the window mode machine and the maximized flag. It is not safe for
// concurrent use; callers serialize access.
type Controller struct {
	interp    *statekit.Interpreter[machineContext]
	maximized bool
}

// NewController builds and starts the window machine in ModeHidden.
func NewController() (*Controller, error) {
	machine, err := statekit.NewMachine[machineContext]("window").
		WithInitial(stateHidden).
		WithContext(machineContext{}).
		State(stateHidden).
		On(EventShow).Target(stateOpen).Done().
		State(stateOpen).
		On(EventMinimize).Target(stateMinimized).
		On(EventClose).Target(stateClosed).Done().
		State(stateMinimized).
		On(EventClose).Target(stateClosed).
		On(EventReopen).Target(stateOpen).Done().
		State(stateClosed).
		On(EventReopen).Target(stateOpen).Done().
		Build()
	if err != nil {
		return nil, fmt.Errorf("building window machine: %w", err)
	}
	interp := statekit.NewInterpreter(machine)
	interp.Start()
	return &Controller{interp: interp}, nil
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return Mode(c.interp.State().Value)
}

// Visible reports whether the window content is on screen.
func (c *Controller) Visible() bool {
	return c.Mode() == ModeOpen
}

// Maximized reports the maximized flag. It is independent of Mode.
func (c *Controller) Maximized() bool {
	return c.maximized
}

// Show ends the pre-display phase. Returns true if the mode changed.
func (c *Controller) Show() bool {
	return c.send(EventShow, ModeHidden)
}

// Minimize collapses an open window. Returns true if the mode changed.
func (c *Controller) Minimize() bool {
	return c.send(EventMinimize, ModeOpen)
}

// Close hides an open or minimized window. Returns true if the mode changed.
func (c *Controller) Close() bool {
	return c.send(EventClose, ModeOpen, ModeMinimized)
}

// Reopen restores a minimized or closed window. Returns true if the mode changed, in
// which case the caller resumes autoplay.
func (c *Controller) Reopen() bool {
	return c.send(EventReopen, ModeMinimized, ModeClosed)
}

// ToggleMaximize flips the maximized flag without touching Mode.
func (c *Controller) ToggleMaximize() {
	c.maximized = !c.maximized
}

// Stop shuts the interpreter down.
func (c *Controller) Stop() {
	c.interp.Stop()
}

// send delivers event only from the listed modes, so unhandled events never reach the
// interpreter.
func (c *Controller) send(event string, from ...Mode) bool {
	current := c.Mode()
	for _, m := range from {
		if m == current {
			c.interp.Send(statekit.Event{Type: statekit.EventType(event)})
			return c.Mode() != current
		}
	}
	return false
}
