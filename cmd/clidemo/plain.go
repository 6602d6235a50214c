package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/view"
	"github.com/waabox/clidemo/internal/widget"
)

type plainOptions struct {
	static    bool
	showDelay time.Duration
	logger    *slog.Logger
}

// runPlain prints every frame as plain text. It returns once autoplay has come to rest
// on the last step, or when ctx is cancelled. Static mode prints the first frame only.
func runPlain(ctx context.Context, out io.Writer, s domain.Script, opts plainOptions) error {
	var (
		mu       sync.Mutex
		once     sync.Once
		finished = make(chan struct{})
	)
	w, err := widget.New(s, widget.Options{
		Static:    opts.static,
		ShowDelay: opts.showDelay,
		Logger:    opts.logger,
		OnChange: func(f view.Frame) {
			mu.Lock()
			fmt.Fprintln(out, view.RenderPlain(f))
			mu.Unlock()
			if !f.AutoPlaying && !f.CanNext {
				once.Do(func() { close(finished) })
			}
		},
	})
	if err != nil {
		return err
	}
	w.Mount()
	defer w.Unmount()
	if opts.static {
		return nil
	}

	select {
	case <-ctx.Done():
	case <-finished:
	}
	return nil
}
