package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/tui"
)

func outline() []domain.Step {
	return []domain.Step{
		{ID: 1, Title: "Write Code", Status: domain.StatusSuccess},
		{ID: 2, Title: "Run Tests", Status: domain.StatusError},
		{ID: 3, Title: "Deploy", Status: domain.StatusSuccess},
	}
}

func TestStepListModel_RendersSteps(t *testing.T) {
	view := tui.NewStepListModel(outline()).View(40)

	assert.Contains(t, view, "1. Write Code")
	assert.Contains(t, view, "3. Deploy")
	assert.Contains(t, view, "> ✓ 1. Write Code")
}

func TestStepListModel_EmptyShowsMessage(t *testing.T) {
	assert.Contains(t, tui.NewStepListModel(nil).View(40), "No steps")
}

func TestStepListModel_WithCursor(t *testing.T) {
	m := tui.NewStepListModel(outline())

	assert.Equal(t, 2, m.WithCursor(2).Cursor())
	assert.Equal(t, 2, m.WithCursor(9).Cursor())
	assert.Equal(t, 0, m.WithCursor(-1).Cursor())
	assert.Equal(t, 0, tui.NewStepListModel(nil).WithCursor(3).Cursor())
}

func TestStepListModel_HidesStatusOfUnplayedSteps(t *testing.T) {
	view := tui.NewStepListModel(outline()).WithCursor(1).View(40)
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	assert.Equal(t, "  ✓ 1. Write Code", lines[0])
	assert.Equal(t, "> ✗ 2. Run Tests", lines[1])
	assert.Equal(t, "    3. Deploy", lines[2])
}

func TestStepListModel_TruncatesLongTitles(t *testing.T) {
	steps := []domain.Step{{ID: 1, Title: "Run Unit & Functional Tests", Status: domain.StatusSuccess}}
	view := tui.NewStepListModel(steps).View(16)

	assert.Contains(t, view, "Run Uni…")
}
