// Package view derives what the demo window shows from playback and window state.
// Everything here is a pure function of its inputs.
package view

import (
	"fmt"
	"strings"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/playback"
	"github.com/waabox/clidemo/internal/window"
)

// DefaultWindowTitle is used when a script does not name its window.
const DefaultWindowTitle = "Development Workflow"

// Chrome is the window state a frame is derived from.
type Chrome struct {
	Mode      window.Mode
	Maximized bool
}

// Frame is everything needed to draw one state of the widget.
type Frame struct {
	WindowTitle string
	StepID      int
	StepLabel   string
	ShortLabel  string
	Command     string
	Lines       []Line
	Status      domain.StepStatus
	Index       int
	Total       int
	Counter     string
	Progress    float64
	CanPrev     bool
	CanNext     bool
	AutoPlaying bool
	Mode        window.Mode
	Maximized   bool
}

// Derive builds the frame for the engine's current step under the given chrome.
func Derive(windowTitle string, e playback.Engine, c Chrome) Frame {
	if windowTitle == "" {
		windowTitle = DefaultWindowTitle
	}
	step := e.Current()
	return Frame{
		WindowTitle: windowTitle,
		StepID:      step.ID,
		StepLabel:   fmt.Sprintf("Step %d: %s", step.ID, step.Title),
		ShortLabel:  fmt.Sprintf("Step %d", step.ID),
		Command:     step.Command,
		Lines:       ClassifyOutput(step.Output),
		Status:      step.Status,
		Index:       e.Index(),
		Total:       e.Len(),
		Counter:     Counter(e.Index(), e.Len()),
		Progress:    e.Progress(),
		CanPrev:     !e.AtStart(),
		CanNext:     !e.AtEnd(),
		AutoPlaying: e.AutoPlaying(),
		Mode:        c.Mode,
		Maximized:   c.Maximized,
	}
}

// Counter formats the 1-based position, e.g. "3 / 6".
func Counter(index, total int) string {
	if total == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", index+1, total)
}

// StatusLabel is the human label shown next to a step's status.
func StatusLabel(s domain.StepStatus) string {
	switch s {
	case domain.StatusSuccess:
		return "Success"
	case domain.StatusError:
		return "Error"
	case domain.StatusRunning:
		return "Running"
	case domain.StatusPending:
		return "Pending"
	default:
		return ""
	}
}

// StatusIcon returns the glyph for a step status.
func StatusIcon(s domain.StepStatus) string {
	switch s {
	case domain.StatusSuccess:
		return "✓"
	case domain.StatusError:
		return "✗"
	case domain.StatusRunning:
		return "●"
	case domain.StatusPending:
		return "↷"
	default:
		return "?"
	}
}

// Output joins the frame's lines back into the authored text.
func (f Frame) Output() string {
	texts := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}
