// Package theme holds the light/dark preference and the colour palettes derived from it.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidTheme is returned when parsing an unknown theme name.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the user's preference. System follows the terminal background.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Parse converts a config or flag value into a Theme. The empty string means System.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", System:
		return System, nil
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w %q (want light, dark or system)", ErrInvalidTheme, s)
	}
}

// Store persists the selected theme.
type Store interface {
	SaveTheme(t Theme) error
}

// Provider exposes the current theme and switches it. It is not safe for concurrent use.
type Provider struct {
	theme        Theme
	store        Store
	darkTerminal func() bool
}

// NewProvider creates a provider starting at t. store may be nil, in which case changes
// are not persisted.
func NewProvider(t Theme, store Store) *Provider {
	return &Provider{
		theme:        t,
		store:        store,
		darkTerminal: lipgloss.HasDarkBackground,
	}
}

// WithBackgroundDetector replaces the terminal background probe used for System.
func (p *Provider) WithBackgroundDetector(isDark func() bool) *Provider {
	p.darkTerminal = isDark
	return p
}

// Theme returns the selected preference.
func (p *Provider) Theme() Theme {
	return p.theme
}

// Effective resolves System against the terminal background.
func (p *Provider) Effective() Theme {
	if p.theme != System {
		return p.theme
	}
	if p.darkTerminal() {
		return Dark
	}
	return Light
}

// Set selects t and persists it.
func (p *Provider) Set(t Theme) error {
	p.theme = t
	if p.store == nil {
		return nil
	}
	if err := p.store.SaveTheme(t); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle cycles system → light → dark → light and persists the result.
func (p *Provider) Toggle() error {
	next := Light
	if p.theme == Light {
		next = Dark
	}
	return p.Set(next)
}

// Palette returns the colours for the effective theme.
func (p *Provider) Palette() Palette {
	return PaletteFor(p.Effective())
}
