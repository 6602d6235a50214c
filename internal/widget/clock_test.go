package widget_test

import (
	"sync"
	"time"

	"github.com/waabox/clidemo/internal/widget"
)

// manualClock is a Scheduler whose time only moves through Advance.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) widget.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d, firing due timers in order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()
	for {
		c.mu.Lock()
		var next *manualTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
	}
}

// Active returns the number of timers that are neither stopped nor fired.
func (c *manualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FireStopped runs the callbacks of every stopped timer, as if the runtime had already
// dispatched them when Stop was called.
func (c *manualClock) FireStopped() {
	c.mu.Lock()
	var stale []func()
	for _, t := range c.timers {
		if t.stopped {
			stale = append(stale, t.f)
		}
	}
	c.mu.Unlock()
	for _, f := range stale {
		f()
	}
}
