// Package device reports what the current terminal can render, so presentation code
// asks one place instead of re-detecting.
package device

import (
	"os"
	"strconv"

	"github.com/muesli/termenv"
)

// CompactBreakpoint is the width below which the compact layout is used.
const CompactBreakpoint = 80

// Capabilities describes the rendering surface.
type Capabilities struct {
	// IsMobile reports a narrow surface that gets the compact layout.
	IsMobile         bool
	IsLowEnd         bool
	HasReducedMotion bool
	PixelRatio       float64
	ScreenWidth      int
}

// Probe reports capabilities.
type Probe interface {
	Capabilities() Capabilities
}

// TerminalProbe derives capabilities from the terminal width, its colour profile and
// the reduced-motion preference.
type TerminalProbe struct {
	width         int
	profile       termenv.Profile
	reducedMotion bool
}

// Detect probes the environment. reducedMotion comes from configuration; the NO_MOTION
// environment variable also enables it.
func Detect(reducedMotion bool) TerminalProbe {
	width := CompactBreakpoint
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		width = cols
	}
	return TerminalProbe{
		width:         width,
		profile:       termenv.EnvColorProfile(),
		reducedMotion: reducedMotion || os.Getenv("NO_MOTION") != "",
	}
}

// NewTerminalProbe builds a probe from explicit values.
func NewTerminalProbe(width int, profile termenv.Profile, reducedMotion bool) TerminalProbe {
	return TerminalProbe{width: width, profile: profile, reducedMotion: reducedMotion}
}

// Resize returns a probe for a new terminal width.
func (p TerminalProbe) Resize(width int) TerminalProbe {
	p.width = width
	return p
}

// Capabilities implements Probe.
func (p TerminalProbe) Capabilities() Capabilities {
	return Capabilities{
		IsMobile:         p.width > 0 && p.width < CompactBreakpoint,
		IsLowEnd:         p.profile == termenv.Ascii,
		HasReducedMotion: p.reducedMotion,
		PixelRatio:       1,
		ScreenWidth:      p.width,
	}
}

// StaticProbe always reports the same capabilities.
type StaticProbe Capabilities

// Capabilities implements Probe.
func (s StaticProbe) Capabilities() Capabilities {
	return Capabilities(s)
}

// WithWidth returns the capabilities recomputed for a new screen width.
func (c Capabilities) WithWidth(width int) Capabilities {
	c.ScreenWidth = width
	c.IsMobile = width > 0 && width < CompactBreakpoint
	return c
}
