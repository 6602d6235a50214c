package device_test

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/waabox/clidemo/internal/device"
)

func TestTerminalProbe_Capabilities(t *testing.T) {
	caps := device.NewTerminalProbe(120, termenv.TrueColor, false).Capabilities()

	assert.False(t, caps.IsMobile)
	assert.False(t, caps.IsLowEnd)
	assert.False(t, caps.HasReducedMotion)
	assert.Equal(t, 120, caps.ScreenWidth)
	assert.Equal(t, 1.0, caps.PixelRatio)
}

func TestTerminalProbe_NarrowIsCompact(t *testing.T) {
	p := device.NewTerminalProbe(120, termenv.ANSI256, false)

	assert.True(t, p.Resize(device.CompactBreakpoint-1).Capabilities().IsMobile)
	assert.False(t, p.Resize(device.CompactBreakpoint).Capabilities().IsMobile)
}

func TestTerminalProbe_AsciiIsLowEnd(t *testing.T) {
	assert.True(t, device.NewTerminalProbe(100, termenv.Ascii, false).Capabilities().IsLowEnd)
}

func TestDetect_NoMotionEnv(t *testing.T) {
	t.Setenv("NO_MOTION", "1")
	t.Setenv("COLUMNS", "60")

	caps := device.Detect(false).Capabilities()
	assert.True(t, caps.HasReducedMotion)
	assert.Equal(t, 60, caps.ScreenWidth)
	assert.True(t, caps.IsMobile)
}

func TestStaticProbe(t *testing.T) {
	want := device.Capabilities{IsLowEnd: true, ScreenWidth: 40}
	assert.Equal(t, want, device.StaticProbe(want).Capabilities())
}

func TestCapabilities_WithWidth(t *testing.T) {
	caps := device.Capabilities{IsLowEnd: true, ScreenWidth: 120}

	narrow := caps.WithWidth(50)
	assert.True(t, narrow.IsMobile)
	assert.True(t, narrow.IsLowEnd)
	assert.Equal(t, 50, narrow.ScreenWidth)
	assert.False(t, narrow.WithWidth(100).IsMobile)
}
