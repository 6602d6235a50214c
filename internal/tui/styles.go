package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/theme"
	"github.com/waabox/clidemo/internal/view"
)

type styles struct {
	window   lipgloss.Style
	titleBar lipgloss.Style
	title    lipgloss.Style
	closeDot lipgloss.Style
	minDot   lipgloss.Style
	maxDot   lipgloss.Style
	prompt   lipgloss.Style
	command  lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	tab      lipgloss.Style
	lines    map[view.LineKind]lipgloss.Style
	status   map[domain.StepStatus]lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	text := lipgloss.NewStyle().Foreground(p.Text)
	return styles{
		window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Frame),
		titleBar: lipgloss.NewStyle().Background(p.TitleBar),
		title:    lipgloss.NewStyle().Foreground(p.Title).Background(p.TitleBar).Bold(true),
		closeDot: lipgloss.NewStyle().Foreground(p.CloseDot).Background(p.TitleBar),
		minDot:   lipgloss.NewStyle().Foreground(p.MinimizeDot).Background(p.TitleBar),
		maxDot:   lipgloss.NewStyle().Foreground(p.MaximizeDot).Background(p.TitleBar),
		prompt:   lipgloss.NewStyle().Foreground(p.Prompt).Bold(true),
		command:  lipgloss.NewStyle().Foreground(p.Title),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		accent:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		tab: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Title).
			Padding(0, 1),
		lines: map[view.LineKind]lipgloss.Style{
			view.LinePlain:   text,
			view.LineSuccess: lipgloss.NewStyle().Foreground(p.Success),
			view.LineError:   lipgloss.NewStyle().Foreground(p.Error),
			view.LineWarning: lipgloss.NewStyle().Foreground(p.Warning),
		},
		status: map[domain.StepStatus]lipgloss.Style{
			domain.StatusSuccess: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
			domain.StatusError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
			domain.StatusRunning: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			domain.StatusPending: lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		},
	}
}

func (s styles) line(k view.LineKind) lipgloss.Style {
	if st, ok := s.lines[k]; ok {
		return st
	}
	return s.lines[view.LinePlain]
}

func (s styles) badge(st domain.StepStatus) lipgloss.Style {
	if b, ok := s.status[st]; ok {
		return b
	}
	return s.muted
}
