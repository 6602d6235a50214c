package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/waabox/clidemo/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for script files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported script format")

// Format is the encoding of a script file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// fileStep mirrors domain.Step with delays authored in milliseconds.
type fileStep struct {
	ID      int    `yaml:"id" toml:"id"`
	Title   string `yaml:"title" toml:"title"`
	Command string `yaml:"command" toml:"command"`
	Output  string `yaml:"output" toml:"output"`
	Status  string `yaml:"status" toml:"status"`
	DelayMs int    `yaml:"delay_ms" toml:"delay_ms"`
}

type fileScript struct {
	Name        string     `yaml:"name" toml:"name"`
	WindowTitle string     `yaml:"window_title" toml:"window_title"`
	EndPolicy   string     `yaml:"end_policy" toml:"end_policy"`
	LoopPauseMs int        `yaml:"loop_pause_ms" toml:"loop_pause_ms"`
	Steps       []fileStep `yaml:"steps" toml:"steps"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and validates a script file. A script without a name is named after
// the file.
func LoadFile(path string) (domain.Script, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return domain.Script{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Script{}, fmt.Errorf("reading script file: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return domain.Script{}, fmt.Errorf("loading %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a script document.
func Parse(data []byte, format Format) (domain.Script, error) {
	var fs fileScript
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fs); err != nil {
			return domain.Script{}, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &fs)
		if err != nil {
			return domain.Script{}, fmt.Errorf("decoding toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return domain.Script{}, fmt.Errorf("decoding toml: unknown key %q", undecoded[0].String())
		}
	default:
		return domain.Script{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	s := fs.toDomain()
	if err := s.Validate(); err != nil {
		return domain.Script{}, err
	}
	return s, nil
}

func (fs fileScript) toDomain() domain.Script {
	steps := make([]domain.Step, len(fs.Steps))
	for i, st := range fs.Steps {
		steps[i] = domain.Step{
			ID:      st.ID,
			Title:   st.Title,
			Command: st.Command,
			Output:  strings.TrimRight(st.Output, "\n"),
			Status:  domain.StepStatus(st.Status),
			Delay:   time.Duration(st.DelayMs) * time.Millisecond,
		}
	}
	return domain.Script{
		Name:        fs.Name,
		WindowTitle: fs.WindowTitle,
		EndPolicy:   domain.EndPolicy(fs.EndPolicy),
		LoopPause:   time.Duration(fs.LoopPauseMs) * time.Millisecond,
		Steps:       steps,
	}
}
