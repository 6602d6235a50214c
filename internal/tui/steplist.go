package tui

import (
	"fmt"
	"strings"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/view"
)

// StepListModel is an immutable model for the step outline shown beside a maximized
// window. The cursor follows playback.
type StepListModel struct {
	steps  []domain.Step
	cursor int
}

// NewStepListModel creates a step list model.
func NewStepListModel(steps []domain.Step) StepListModel {
	return StepListModel{steps: steps, cursor: 0}
}

// WithCursor returns a new model with the cursor on index i, clamped to the list.
func (m StepListModel) WithCursor(i int) StepListModel {
	switch {
	case i < 0:
		m.cursor = 0
	case i > len(m.steps)-1:
		m.cursor = max(len(m.steps)-1, 0)
	default:
		m.cursor = i
	}
	return m
}

// Cursor returns the current cursor position.
func (m StepListModel) Cursor() int {
	return m.cursor
}

// Steps returns the full step slice.
func (m StepListModel) Steps() []domain.Step {
	return m.steps
}

// View renders the step list as a string with cursor indicators. Steps after the
// cursor have not played yet and show no status.
func (m StepListModel) View(width int) string {
	if len(m.steps) == 0 {
		return "No steps."
	}
	var sb strings.Builder
	for i, s := range m.steps {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		icon := " "
		if i <= m.cursor {
			icon = view.StatusIcon(s.Status)
		}
		sb.WriteString(fmt.Sprintf("%s%s %d. %s\n",
			prefix,
			icon,
			s.ID,
			truncate(s.Title, max(width-8, 4)),
		))
	}
	return sb.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
