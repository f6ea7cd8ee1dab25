package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LogConfig controls where and how verbosely the application logs.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// FilterConfig selects the line splitter and matcher implementations.
type FilterConfig struct {
	Matcher  string `yaml:"matcher"`
	Splitter string `yaml:"splitter"`
}

// TUIConfig configures the terminal front end.
type TUIConfig struct {
	Highlight bool `yaml:"highlight"`
}

// GUIConfig configures the desktop front end.
type GUIConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Log    LogConfig    `yaml:"log"`
	Filter FilterConfig `yaml:"filter"`
	TUI    TUIConfig    `yaml:"tui"`
	GUI    GUIConfig    `yaml:"gui"`
}

// Environment variables that override values read from the config file.
const (
	EnvLogLevel  = "STREAMFILTER_LOG_LEVEL"
	EnvLogFile   = "STREAMFILTER_LOG_FILE"
	EnvHighlight = "STREAMFILTER_TUI_HIGHLIGHT"
)

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// LoadDefault tries ./streamfilter.yaml first, then ~/.config/streamfilter/config.yaml.
// If neither exists the defaults are returned; nothing is written to disk.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "streamfilter.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err == nil {
		if _, err := os.Stat(userPath); err == nil {
			cfg, err := Load(userPath)
			return cfg, userPath, err
		}
	}
	cfg := defaultConfig()
	applyEnv(cfg)
	return cfg, "", nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "streamfilter", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Log:    LogConfig{Level: "info"},
		Filter: FilterConfig{Matcher: "substring", Splitter: "lines"},
		TUI:    TUIConfig{Highlight: true},
		GUI:    GUIConfig{Width: 900, Height: 600},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Filter.Matcher == "" {
		cfg.Filter.Matcher = "substring"
	}
	if cfg.Filter.Splitter == "" {
		cfg.Filter.Splitter = "lines"
	}
	if cfg.GUI.Width <= 0 {
		cfg.GUI.Width = 900
	}
	if cfg.GUI.Height <= 0 {
		cfg.GUI.Height = 600
	}
}

func applyEnv(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHighlight)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TUI.Highlight = b
		}
	}
}
