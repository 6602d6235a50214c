package view

import (
	"regexp"
	"strings"
)

// LineKind is the colour class of one output line.
type LineKind int

const (
	LinePlain LineKind = iota
	LineSuccess
	LineError
	LineWarning
)

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineSuccess:
		return "success"
	case LineError:
		return "error"
	case LineWarning:
		return "warning"
	default:
		return "plain"
	}
}

// Line is one classified output line.
type Line struct {
	Text string
	Kind LineKind
}

// Checked in order: error wins over warning, warning over success.
var (
	errorPattern   = regexp.MustCompile(`(?i)(✗|✘|^\s*●|^\s*fail\b|\bfailed\b|^\s*error\b|\berror:)`)
	warningPattern = regexp.MustCompile(`(?i)(⚠|\bwarn(ing)?\b|\bdeprecated\b)`)
	successPattern = regexp.MustCompile(`(?i)(✓|✔|\bpassing\b|\bpassed\b|\bsuccessful\b|\bsucceeded\b)`)
)

// ClassifyLine returns the colour class of a single output line.
func ClassifyLine(line string) LineKind {
	switch {
	case errorPattern.MatchString(line):
		return LineError
	case warningPattern.MatchString(line):
		return LineWarning
	case successPattern.MatchString(line):
		return LineSuccess
	default:
		return LinePlain
	}
}

// ClassifyOutput splits output into lines and classifies each one. Empty output yields
// no lines.
func ClassifyOutput(output string) []Line {
	if output == "" {
		return nil
	}
	raw := strings.Split(output, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Kind: ClassifyLine(text)}
	}
	return lines
}
