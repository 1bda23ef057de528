package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(missing) error = %v, want nil", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "input:\n  run_by_default: true\nlogging:\n  debug: true\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Input.RunByDefault || !cfg.Logging.Debug {
		t.Errorf("input/logging = %+v/%+v, want run and debug on", cfg.Input, cfg.Logging)
	}
	if cfg.Locale.Language != "en_GB" || cfg.Session.Color != "auto" {
		t.Errorf("defaults lost: locale=%+v session=%+v", cfg.Locale, cfg.Session)
	}
}

func TestLoad_Bindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "input:\n  bindings:\n    run: shift\n    quit: x\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.Bindings["run"] != "shift" || cfg.Input.Bindings["quit"] != "x" {
		t.Errorf("Input.Bindings = %v, want run=shift quit=x", cfg.Input.Bindings)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad yaml", "window: [", "parse config"},
		{"bad size", "window:\n  width: 0\n", "must be positive"},
		{"bad color", "session:\n  color: sometimes\n", "session.color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestSetRunByDefault_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetRunByDefault(true); err != nil {
		t.Fatalf("SetRunByDefault() error = %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if !again.Input.RunByDefault {
		t.Error("reloaded RunByDefault = false, want true")
	}
}

func TestSave_WithoutPath(t *testing.T) {
	if err := Default().Save(); err == nil {
		t.Error("Default().Save() error = nil, want error")
	}
}

func TestCurrent_SetCurrent(t *testing.T) {
	orig := Current()
	defer SetCurrent(orig)

	cfg := Default()
	cfg.Logging.Debug = true
	SetCurrent(cfg)
	if !Current().Logging.Debug {
		t.Error("Current() did not return the config passed to SetCurrent")
	}
}
