package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/theme"
)

// ErrInvalidPolicy is returned when end_policy is neither "stop" nor "loop".
var ErrInvalidPolicy = errors.New("invalid end policy")

// Config holds all clidemo configuration.
type Config struct {
	Script        string `toml:"script"`
	Theme         string `toml:"theme"`
	EndPolicy     string `toml:"end_policy,omitempty"`
	LoopPauseMs   int    `toml:"loop_pause_ms,omitempty"`
	ShowDelayMs   int    `toml:"show_delay_ms,omitempty"`
	ReducedMotion bool   `toml:"reduced_motion"`
	LogLevel      string `toml:"log_level,omitempty"`
	LogFile       string `toml:"log_file,omitempty"`
}

const (
	defaultScript      = "workflow"
	defaultShowDelayMs = 1000
)

// ScriptOrDefault returns Script if set, otherwise the built-in workflow.
func (c Config) ScriptOrDefault() string {
	if c.Script != "" {
		return c.Script
	}
	return defaultScript
}

// ShowDelay returns the delay before the window first appears.
func (c Config) ShowDelay() time.Duration {
	if c.ShowDelayMs > 0 {
		return time.Duration(c.ShowDelayMs) * time.Millisecond
	}
	return defaultShowDelayMs * time.Millisecond
}

// LoopPause returns the configured pause before looping, or zero when unset.
func (c Config) LoopPause() time.Duration {
	if c.LoopPauseMs > 0 {
		return time.Duration(c.LoopPauseMs) * time.Millisecond
	}
	return 0
}

// Policy parses EndPolicy. An empty value returns an empty policy so the script's own
// policy applies.
func (c Config) Policy() (domain.EndPolicy, error) {
	if c.EndPolicy == "" {
		return "", nil
	}
	p := domain.EndPolicy(c.EndPolicy)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, c.EndPolicy)
	}
	return p, nil
}

// ThemeOrDefault parses Theme, falling back to system for empty values.
func (c Config) ThemeOrDefault() (theme.Theme, error) {
	return theme.Parse(c.Theme)
}

// LoadFrom reads configuration from the given TOML file path.
// If the file does not exist, it returns an empty config without error.
// Environment variables always take precedence over file values:
//   - CLIDEMO_SCRIPT     overrides script
//   - CLIDEMO_THEME      overrides theme
//   - CLIDEMO_LOG_LEVEL  overrides log_level
//   - CLIDEMO_END_POLICY overrides end_policy
func LoadFrom(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// DefaultConfigPath returns the default path for the clidemo config file.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return home + "/.config/clidemo/config.toml"
}

func readFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLIDEMO_SCRIPT"); v != "" {
		cfg.Script = v
	}
	if v := os.Getenv("CLIDEMO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("CLIDEMO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLIDEMO_END_POLICY"); v != "" {
		cfg.EndPolicy = v
	}
}

// Save writes cfg to the given TOML file path, creating parent directories as needed.
// Existing file contents are overwritten. Permissions on the written file are 0600.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	if encErr := toml.NewEncoder(f).Encode(cfg); encErr != nil {
		f.Close()
		return encErr
	}
	return f.Close()
}

// ThemeStore persists the selected theme into the config file. Only the theme field is
// touched; values that came from environment overrides are not written back.
type ThemeStore struct {
	path string
}

// NewThemeStore returns a theme store backed by the config file at path.
func NewThemeStore(path string) ThemeStore {
	return ThemeStore{path: path}
}

// SaveTheme implements theme.Store.
func (s ThemeStore) SaveTheme(t theme.Theme) error {
	cfg, err := readFile(s.path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	cfg.Theme = string(t)
	return Save(s.path, cfg)
}
