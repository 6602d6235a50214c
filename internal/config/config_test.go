package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waabox/clidemo/internal/config"
	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
script = "classic"
theme = "dark"
end_policy = "loop"
loop_pause_ms = 1500
show_delay_ms = 250
reduced_motion = true
log_level = "debug"
log_file = "/tmp/clidemo.log"
`)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.ScriptOrDefault())
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 1500*time.Millisecond, cfg.LoopPause())
	assert.Equal(t, 250*time.Millisecond, cfg.ShowDelay())
	assert.True(t, cfg.ReducedMotion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/clidemo.log", cfg.LogFile)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, domain.EndLoop, policy)
}

func TestLoad_EnvVarsTakePrecedence(t *testing.T) {
	path := writeConfig(t, `
script = "classic"
theme = "dark"
log_level = "error"
end_policy = "loop"
`)
	t.Setenv("CLIDEMO_SCRIPT", "workflow")
	t.Setenv("CLIDEMO_THEME", "light")
	t.Setenv("CLIDEMO_LOG_LEVEL", "warn")
	t.Setenv("CLIDEMO_END_POLICY", "stop")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "workflow", cfg.Script)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "stop", cfg.EndPolicy)
}

func TestLoad_MissingFileIsNotError(t *testing.T) {
	t.Setenv("CLIDEMO_SCRIPT", "classic")
	cfg, err := config.LoadFrom("/nonexistent/path/config.toml")
	require.NoError(t, err, "missing file should not be an error")
	assert.Equal(t, "classic", cfg.Script)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := config.LoadFrom(writeConfig(t, "script = ["))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	var cfg config.Config

	assert.Equal(t, "workflow", cfg.ScriptOrDefault())
	assert.Equal(t, time.Second, cfg.ShowDelay())
	assert.Zero(t, cfg.LoopPause())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Empty(t, policy)

	th, err := cfg.ThemeOrDefault()
	require.NoError(t, err)
	assert.Equal(t, theme.System, th)
}

func TestPolicy_Invalid(t *testing.T) {
	_, err := config.Config{EndPolicy: "bounce"}.Policy()
	assert.True(t, errors.Is(err, config.ErrInvalidPolicy))
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := config.Config{Script: "classic", Theme: "light", ShowDelayMs: 500}

	require.NoError(t, config.Save(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestThemeStore_KeepsOtherFields(t *testing.T) {
	path := writeConfig(t, `
script = "classic"
theme = "system"
`)
	t.Setenv("CLIDEMO_SCRIPT", "workflow")

	require.NoError(t, config.NewThemeStore(path).SaveTheme(theme.Dark))

	os.Unsetenv("CLIDEMO_SCRIPT")
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "classic", cfg.Script)
}

func TestThemeStore_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, config.NewThemeStore(path).SaveTheme(theme.Light))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}
