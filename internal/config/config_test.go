package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamfilter.yaml")
	data := "log:\n  level: debug\n  file: /tmp/sf.log\ngui:\n  width: 1200\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/sf.log", cfg.Log.File)
	assert.Equal(t, "substring", cfg.Filter.Matcher)
	assert.Equal(t, "lines", cfg.Filter.Splitter)
	assert.True(t, cfg.TUI.Highlight)
	assert.Equal(t, 1200, cfg.GUI.Width)
	assert.Equal(t, 600, cfg.GUI.Height)
}

func TestLoadHighlightOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamfilter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  highlight: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.TUI.Highlight)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "/var/tmp/x.log")
	t.Setenv(EnvHighlight, "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/tmp/x.log", cfg.Log.File)
	assert.False(t, cfg.TUI.Highlight)
}

func TestLoadDefaultPrefersWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, "info", cfg.Log.Level)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "streamfilter.yaml"), []byte("log:\n  level: error\n"), 0o644))
	cfg, path, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "streamfilter.yaml", path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadDefaultNeverWrites(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, _, err = LoadDefault()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".config", "streamfilter", "config.yaml"))
	assert.True(t, os.IsNotExist(err))
}
