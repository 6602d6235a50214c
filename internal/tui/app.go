package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/waabox/clidemo/internal/device"
	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/playback"
	"github.com/waabox/clidemo/internal/theme"
	"github.com/waabox/clidemo/internal/view"
	"github.com/waabox/clidemo/internal/window"
)

const (
	restoreLabel = "Restore Developer Workflow"
	reopenLabel  = "Reopen Developer Workflow"

	defaultWidth   = 80
	defaultHeight  = 24
	windowMaxWidth = 76
	sidebarWidth   = 32
	outputHeight   = 8
)

// ShowMsg is sent once the initial display delay has elapsed.
// It is exported so that tests can inject it directly into AppModel.Update.
type ShowMsg struct{}

// AdvanceMsg is sent by the auto-advance timer. Gen is the generation the timer was
// scheduled under; a message whose Gen is not current is ignored.
type AdvanceMsg struct {
	Gen uint64
}

// Options configures an AppModel.
type Options struct {
	// Static opens the window at once and never schedules timers.
	Static       bool
	ShowDelay    time.Duration
	Capabilities device.Capabilities
	Logger       *slog.Logger
}

// AppModel is the root Bubbletea model for clidemo.
type AppModel struct {
	title  string
	engine playback.Engine
	window *window.Controller
	themes *theme.Provider
	caps   device.Capabilities
	logger *slog.Logger

	static    bool
	showDelay time.Duration
	// gen tags the pending advance timer; bumping it orphans older ticks.
	gen uint64

	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model
	output   viewport.Model
	outline  StepListModel

	width  int
	height int
	notice string
}

// NewAppModel creates the root application model for a script.
func NewAppModel(s domain.Script, themes *theme.Provider, opts Options) (AppModel, error) {
	if err := s.Validate(); err != nil {
		return AppModel{}, err
	}
	ctrl, err := window.NewController()
	if err != nil {
		return AppModel{}, fmt.Errorf("building window controller: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ShowDelay <= 0 {
		opts.ShowDelay = time.Second
	}
	engine := playback.New(s)
	m := AppModel{
		title:     s.WindowTitle,
		engine:    engine,
		window:    ctrl,
		themes:    themes,
		caps:      opts.Capabilities,
		logger:    logger,
		static:    opts.Static,
		showDelay: opts.ShowDelay,
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		output:    viewport.New(defaultWidth, outputHeight),
		outline:   NewStepListModel(engine.Steps()),
		width:     opts.Capabilities.ScreenWidth,
		height:    defaultHeight,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.static {
		m.window.Show()
	}
	m.progress = m.newProgress()
	m.layout()
	m.syncOutput()
	return m, nil
}

// Init schedules the initial display delay. Static mode schedules nothing.
func (m AppModel) Init() tea.Cmd {
	if m.static {
		return nil
	}
	cmds := []tea.Cmd{tea.Tick(m.showDelay, func(time.Time) tea.Msg { return ShowMsg{} })}
	if m.animated() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Generation returns the tag of the currently valid advance timer.
func (m AppModel) Generation() uint64 {
	return m.gen
}

// Engine returns the playback state.
func (m AppModel) Engine() playback.Engine {
	return m.engine
}

// Frame returns the derived presentation state.
func (m AppModel) Frame() view.Frame {
	return view.Derive(m.title, m.engine, view.Chrome{
		Mode:      m.window.Mode(),
		Maximized: m.window.Maximized(),
	})
}

// Update handles all incoming messages and key events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.caps = m.caps.WithWidth(msg.Width)
		m.layout()
		m.syncOutput()

	case ShowMsg:
		if !m.window.Show() {
			return m, nil
		}
		m.logger.Debug("window shown", "step", m.engine.Current().ID)
		return m, m.reschedule()

	case AdvanceMsg:
		if msg.Gen != m.gen {
			m.logger.Debug("dropping stale advance", "gen", msg.Gen, "current", m.gen)
			return m, nil
		}
		m.engine = m.engine.Advance()
		m.logger.Debug("advanced", "index", m.engine.Index(), "autoplay", m.engine.AutoPlaying())
		m.stepChanged()
		return m, m.reschedule()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m AppModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.gen++
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	}

	switch m.window.Mode() {
	case window.ModeOpen:
		return m.updateOpen(msg)
	case window.ModeMinimized, window.ModeClosed:
		switch {
		case key.Matches(msg, m.keys.Reopen):
			if m.window.Reopen() {
				m.engine = m.engine.Resume()
				m.logger.Debug("window reopened", "index", m.engine.Index())
			}
			return m, m.reschedule()
		case key.Matches(msg, m.keys.Close):
			m.window.Close()
			return m, m.reschedule()
		}
	}
	return m, nil
}

func (m AppModel) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.engine = m.engine.Next()
		m.stepChanged()
		return m, m.reschedule()
	case key.Matches(msg, m.keys.Prev):
		m.engine = m.engine.Previous()
		m.stepChanged()
		return m, m.reschedule()
	case key.Matches(msg, m.keys.Autoplay):
		m.engine = m.engine.ToggleAutoplay()
		return m, m.reschedule()
	case key.Matches(msg, m.keys.Minimize):
		m.window.Minimize()
		return m, m.reschedule()
	case key.Matches(msg, m.keys.Close):
		m.window.Close()
		return m, m.reschedule()
	case key.Matches(msg, m.keys.Maximize):
		m.window.ToggleMaximize()
		m.layout()
		m.syncOutput()
	case key.Matches(msg, m.keys.ScrollUp):
		m.output.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.output.LineDown(1)
	}
	return m, nil
}

// reschedule orphans any pending advance and, when playback can advance, starts a new
// timer tagged with the fresh generation.
func (m *AppModel) reschedule() tea.Cmd {
	m.gen++
	delay, ok := m.engine.Due(m.window.Mode(), m.static)
	if !ok {
		return nil
	}
	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg { return AdvanceMsg{Gen: gen} })
}

func (m *AppModel) toggleTheme() {
	if m.themes == nil {
		return
	}
	if err := m.themes.Toggle(); err != nil {
		m.logger.Warn("saving theme", "err", err)
		m.notice = err.Error()
	} else {
		m.notice = ""
	}
	m.progress = m.newProgress()
	m.layout()
	m.syncOutput()
}

func (m *AppModel) stepChanged() {
	m.outline = m.outline.WithCursor(m.engine.Index())
	m.syncOutput()
	m.output.GotoTop()
}

// layout sizes the output viewport and progress bar for the current window width.
func (m *AppModel) layout() {
	w := m.innerWidth()
	m.output.Width = w
	m.output.Height = outputHeight
	if m.window.Maximized() {
		m.output.Height = max(m.height-12, outputHeight)
	}
	m.progress.Width = max(w-12, 10)
}

func (m *AppModel) syncOutput() {
	st := m.styles()
	f := m.Frame()
	lines := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		lines[i] = st.line(l.Kind).Render(l.Text)
	}
	m.output.SetContent(strings.Join(lines, "\n"))
}

func (m AppModel) newProgress() progress.Model {
	opts := []progress.Option{progress.WithoutPercentage()}
	if m.caps.IsLowEnd {
		opts = append(opts, progress.WithFillCharacters('#', '-'))
	} else {
		p := m.palette()
		opts = append(opts, progress.WithGradient(string(p.Accent), string(p.Success)))
	}
	return progress.New(opts...)
}

func (m AppModel) palette() theme.Palette {
	if m.themes == nil {
		return theme.PaletteFor(theme.Dark)
	}
	return m.themes.Palette()
}

func (m AppModel) styles() styles {
	return newStyles(m.palette())
}

func (m AppModel) animated() bool {
	return !m.static && !m.caps.HasReducedMotion
}

func (m AppModel) compact() bool {
	return m.caps.IsMobile
}

// windowWidth is the outer width of the framed window, borders included.
func (m AppModel) windowWidth() int {
	switch {
	case m.compact() || m.window.Maximized():
		return max(m.width, 20)
	default:
		return min(max(m.width, 20), windowMaxWidth)
	}
}

func (m AppModel) innerWidth() int {
	w := m.windowWidth() - 4
	if m.showOutline() {
		w -= sidebarWidth
	}
	return max(w, 10)
}

func (m AppModel) showOutline() bool {
	return m.window.Maximized() && !m.compact()
}

// View renders the full TUI.
func (m AppModel) View() string {
	st := m.styles()
	f := m.Frame()

	var body string
	switch f.Mode {
	case window.ModeHidden:
		return ""
	case window.ModeMinimized:
		body = st.tab.Render(fmt.Sprintf("▣ %s  %s", restoreLabel, st.muted.Render(f.Counter))) +
			"\n" + st.muted.Render(" o: restore   x: close   q: quit")
	case window.ModeClosed:
		body = st.tab.Render("↻ "+reopenLabel) +
			"\n" + st.muted.Render(" o: reopen   q: quit")
	default:
		body = m.renderWindow(st, f) + "\n" + m.help.View(m.keys)
	}
	if m.notice != "" {
		body += "\n" + st.badge(domain.StatusError).Render(m.notice)
	}
	return body + "\n"
}

func (m AppModel) renderWindow(st styles, f view.Frame) string {
	inner := m.windowWidth() - 2

	label := f.StepLabel
	if m.compact() {
		label = f.ShortLabel
	}
	content := []string{
		st.accent.Render(label),
		st.prompt.Render("$ ") + st.command.Render(f.Command),
		"",
		m.output.View(),
		"",
		m.renderStatus(st, f),
		m.progress.ViewAs(f.Progress) + "  " + st.muted.Render(f.Counter),
		m.renderNav(st, f),
	}
	main := strings.Join(content, "\n")
	if m.showOutline() {
		side := lipgloss.NewStyle().
			Width(sidebarWidth).
			PaddingRight(2).
			Foreground(m.palette().Muted).
			Render(m.outline.View(sidebarWidth))
		main = lipgloss.JoinHorizontal(lipgloss.Top, side, main)
	}

	panel := lipgloss.NewStyle().Width(inner).Padding(0, 1).Render(main)
	return st.window.Width(inner).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.renderTitleBar(st, f, inner), panel),
	)
}

func (m AppModel) renderTitleBar(st styles, f view.Frame, width int) string {
	pad := func(n int) string { return st.titleBar.Render(strings.Repeat(" ", max(n, 0))) }
	dots := st.closeDot.Render("●") + pad(1) + st.minDot.Render("●") + pad(1) + st.maxDot.Render("●")
	title := st.title.Render(f.WindowTitle)
	gap := width - lipgloss.Width(dots) - lipgloss.Width(title) - 2
	left := gap / 2
	return pad(1) + dots + pad(left) + title + pad(gap-left) + pad(1)
}

func (m AppModel) renderStatus(st styles, f view.Frame) string {
	icon := view.StatusIcon(f.Status)
	if f.Status == domain.StatusRunning && m.animated() {
		icon = m.spinner.View()
	}
	return st.badge(f.Status).Render(icon + " " + view.StatusLabel(f.Status))
}

func (m AppModel) renderNav(st styles, f view.Frame) string {
	prev, next := "← prev", "next →"
	if !f.CanPrev {
		prev = strings.Repeat(" ", len([]rune(prev)))
	}
	if !f.CanNext {
		next = strings.Repeat(" ", len([]rune(next)))
	}
	mode := "▶ auto"
	if !f.AutoPlaying {
		mode = "❚❚ paused"
	}
	return st.muted.Render(prev + "   " + mode + "   " + next)
}

// Run starts the Bubbletea program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m AppModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
