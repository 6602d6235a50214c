// Package widget runs a scripted demo without a terminal UI: it owns the playback
// engine, the window controller and the single autoplay timer.
package widget

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/playback"
	"github.com/waabox/clidemo/internal/view"
	"github.com/waabox/clidemo/internal/window"
)

// DefaultShowDelay holds the window back briefly after mount so the first paint does
// not flash.
const DefaultShowDelay = time.Second

// Options configures a Widget. The zero value is usable.
type Options struct {
	Scheduler Scheduler
	// Static suppresses every timer. The window opens immediately and playback only
	// moves through explicit navigation.
	Static    bool
	ShowDelay time.Duration
	Logger    *slog.Logger
	// OnChange is called with the new frame after every state change, outside the
	// widget lock. Calls are serialized and never deliver an older frame after a newer
	// one. OnChange must not call back into the widget.
	OnChange func(view.Frame)
}

// Widget is one mounted demo window. All methods are safe for concurrent use.
//
// At most one timer is pending at any time. Every reschedule or cancellation bumps a
// generation counter and a firing callback whose generation is stale is dropped, so a
// superseded timer never mutates state even if it was already dispatched.
type Widget struct {
	mu        sync.Mutex
	script    domain.Script
	engine    playback.Engine
	window    *window.Controller
	sched     Scheduler
	static    bool
	showDelay time.Duration
	logger    *slog.Logger
	onChange  func(view.Frame)

	timer     Timer
	gen       uint64
	mounted   bool
	unmounted bool

	// seq numbers frames under mu; pubMu orders their delivery.
	seq       uint64
	pubMu     sync.Mutex
	published uint64
}

// New validates the script and creates an unmounted widget.
func New(s domain.Script, opts Options) (*Widget, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ctrl, err := window.NewController()
	if err != nil {
		return nil, fmt.Errorf("creating window controller: %w", err)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = RealScheduler{}
	}
	showDelay := opts.ShowDelay
	if showDelay <= 0 {
		showDelay = DefaultShowDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Widget{
		script:    s,
		engine:    playback.New(s),
		window:    ctrl,
		sched:     sched,
		static:    opts.Static,
		showDelay: showDelay,
		logger:    logger.With("script", s.Name),
		onChange:  opts.OnChange,
	}, nil
}

// Mount starts the widget. Outside static mode the window appears after the show delay
// and autoplay begins from there.
func (w *Widget) Mount() {
	w.update(func() bool {
		if w.mounted || w.unmounted {
			return false
		}
		w.mounted = true
		if w.static {
			w.window.Show()
			return true
		}
		w.schedule(w.showDelay, w.show)
		return false
	})
}

// Unmount cancels any pending timer. Every later call is a no-op.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted {
		return
	}
	w.unmounted = true
	w.cancel()
	w.logger.Debug("widget unmounted", "index", w.engine.Index())
}

// Next moves forward one step and pauses autoplay. Like Previous and ToggleAutoplay it
// is ignored until the window has been shown.
func (w *Widget) Next() {
	w.update(func() bool {
		if !w.window.Mode().Shown() {
			return false
		}
		w.engine = w.engine.Next()
		w.reschedule()
		return true
	})
}

// Previous moves back one step and pauses autoplay.
func (w *Widget) Previous() {
	w.update(func() bool {
		if !w.window.Mode().Shown() {
			return false
		}
		w.engine = w.engine.Previous()
		w.reschedule()
		return true
	})
}

// ToggleAutoplay pauses or resumes timer-driven playback.
func (w *Widget) ToggleAutoplay() {
	w.update(func() bool {
		if !w.window.Mode().Shown() {
			return false
		}
		w.engine = w.engine.ToggleAutoplay()
		w.reschedule()
		return true
	})
}

// Minimize collapses the window and cancels the pending advance.
func (w *Widget) Minimize() {
	w.update(func() bool {
		if !w.window.Minimize() {
			return false
		}
		w.reschedule()
		return true
	})
}

// Close hides the window and cancels the pending advance.
func (w *Widget) Close() {
	w.update(func() bool {
		if !w.window.Close() {
			return false
		}
		w.reschedule()
		return true
	})
}

// Reopen restores a minimized or closed window and resumes autoplay from the step that
// was showing.
func (w *Widget) Reopen() {
	w.update(func() bool {
		if !w.window.Reopen() {
			return false
		}
		w.engine = w.engine.Resume()
		w.reschedule()
		return true
	})
}

// ToggleMaximize flips the maximized flag. The pending advance is left alone.
func (w *Widget) ToggleMaximize() {
	w.update(func() bool {
		w.window.ToggleMaximize()
		return true
	})
}

// Snapshot returns the current frame.
func (w *Widget) Snapshot() view.Frame {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame()
}

// update runs fn under the lock and publishes the frame if fn reports a change.
// Calls after Unmount are ignored.
func (w *Widget) update(fn func() bool) {
	w.mu.Lock()
	if w.unmounted || !fn() {
		w.mu.Unlock()
		return
	}
	seq, f := w.nextFrame()
	w.mu.Unlock()
	w.publish(seq, f)
}

// nextFrame numbers the current frame. Caller must hold w.mu.
func (w *Widget) nextFrame() (uint64, view.Frame) {
	w.seq++
	return w.seq, w.frame()
}

// publish delivers f unless a newer frame has already been delivered.
func (w *Widget) publish(seq uint64, f view.Frame) {
	if w.onChange == nil {
		return
	}
	w.pubMu.Lock()
	defer w.pubMu.Unlock()
	if seq <= w.published {
		return
	}
	w.published = seq
	w.onChange(f)
}

func (w *Widget) frame() view.Frame {
	return view.Derive(w.script.WindowTitle, w.engine, view.Chrome{
		Mode:      w.window.Mode(),
		Maximized: w.window.Maximized(),
	})
}

// show and advance run as timer callbacks with the lock held.
func (w *Widget) show() {
	w.window.Show()
	w.logger.Debug("window shown")
	w.reschedule()
}

func (w *Widget) advance() {
	w.engine = w.engine.Advance()
	w.logger.Debug("step advanced", "index", w.engine.Index(), "autoplay", w.engine.AutoPlaying())
	w.reschedule()
}

// reschedule replaces the pending timer with one matching the current state, or
// leaves none when playback should not move on its own.
func (w *Widget) reschedule() {
	delay, ok := w.engine.Due(w.window.Mode(), w.static)
	if !ok {
		w.cancel()
		return
	}
	w.schedule(delay, w.advance)
}

func (w *Widget) schedule(d time.Duration, fn func()) {
	w.cancel()
	gen := w.gen
	w.timer = w.sched.AfterFunc(d, func() { w.fire(gen, fn) })
}

func (w *Widget) cancel() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

func (w *Widget) fire(gen uint64, fn func()) {
	w.mu.Lock()
	if w.unmounted || gen != w.gen {
		w.mu.Unlock()
		w.logger.Debug("dropped stale timer", "generation", gen)
		return
	}
	w.timer = nil
	fn()
	seq, f := w.nextFrame()
	w.mu.Unlock()
	w.publish(seq, f)
}
