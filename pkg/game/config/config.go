// Package config loads and persists client preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk client configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Locale  LocaleConfig  `yaml:"locale"`
	Input   InputConfig   `yaml:"input"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`

	path string
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
}

type InputConfig struct {
	RunByDefault bool `yaml:"run_by_default"`
	// Bindings rebinds an action ("run", "inventory", "character", "menu",
	// "quit") to a single key code.
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

type SessionConfig struct {
	// Color is "auto", "always" or "never" for the console echo.
	Color string `yaml:"color"`
	// Echo prints every movement request to stdout.
	Echo bool `yaml:"echo"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration for the 800x600 scene.
func Default() *Config {
	return &Config{
		Window:  WindowConfig{Width: 800, Height: 600, Title: "Westmarch"},
		Locale:  LocaleConfig{Dir: "locales", Language: "en_GB"},
		Session: SessionConfig{Color: "auto"},
	}
}

// Load reads a YAML config, filling unset fields from Default. A missing
// file is not an error; the defaults are bound to path so Save creates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Session.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("session.color %q: want auto, always or never", c.Session.Color)
	}
	return nil
}

// Path returns the file the config is bound to, if any.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to its file.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}

// SetRunByDefault updates the run preference and persists it.
func (c *Config) SetRunByDefault(run bool) error {
	c.Input.RunByDefault = run
	return c.Save()
}

var (
	current   = Default()
	currentMu sync.RWMutex
)

// Current returns the process-wide configuration.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide configuration.
func SetCurrent(c *Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}
