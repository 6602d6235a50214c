package view

import (
	"fmt"
	"strings"

	"github.com/waabox/clidemo/internal/window"
)

const plainBarWidth = 24

// RenderPlain renders a frame as ANSI-free text, for pipes and non-interactive output.
// A hidden window renders as the empty string.
func RenderPlain(f Frame) string {
	switch f.Mode {
	case window.ModeHidden:
		return ""
	case window.ModeMinimized:
		return fmt.Sprintf("[+] Restore %s (%s)\n", f.WindowTitle, f.Counter)
	case window.ModeClosed:
		return fmt.Sprintf("[>] Reopen %s\n", f.WindowTitle)
	}

	var sb strings.Builder
	auto := "paused"
	if f.AutoPlaying {
		auto = "auto"
	}
	sb.WriteString(fmt.Sprintf("== %s [%s] ==\n", f.WindowTitle, auto))
	sb.WriteString(f.StepLabel + "\n")
	sb.WriteString("$ " + f.Command + "\n")
	for _, l := range f.Lines {
		sb.WriteString("  " + l.Text + "\n")
	}
	if label := StatusLabel(f.Status); label != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", StatusIcon(f.Status), label))
	}
	sb.WriteString(fmt.Sprintf("[%s] %s\n", plainBar(f.Progress, plainBarWidth), f.Counter))
	return sb.String()
}

func plainBar(progress float64, width int) string {
	filled := int(progress*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
