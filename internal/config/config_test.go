// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Jobs != 0 {
		t.Errorf("Jobs = %d, want 0", cfg.Jobs)
	}
	if cfg.Runner != RunnerNative {
		t.Errorf("Runner = %q, want %q", cfg.Runner, RunnerNative)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = false: %v", errs)
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	provider := NewProvider()
	cfg, err := provider.Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	want := DefaultConfig()
	if cfg.Jobs != want.Jobs || cfg.Runner != want.Runner || cfg.UI != want.UI {
		t.Errorf("Load() without config file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `
jobs:   4
runner: "virtual"

ui: {
	quiet: true
}
`)

	cfg, path, err := ResolvedPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("ResolvedPath() = %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Jobs)
	}
	if cfg.Runner != RunnerVirtual {
		t.Errorf("Runner = %q, want virtual", cfg.Runner)
	}
	if !cfg.UI.Quiet {
		t.Error("UI.Quiet = false, want true")
	}
	// Fields absent from the file keep their defaults.
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want auto", cfg.UI.ColorScheme)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfigFile(t, dir, `jobs: 2`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs = %d, want 2", cfg.Jobs)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("Load() with missing explicit file should fail")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("error = %v, want mention of missing file", err)
	}
}

func TestLoadInvalidSyntax(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `jobs: {{{`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() with invalid CUE should fail")
	}
}

func TestLoadSchemaViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "negative jobs", content: `jobs: -1`},
		{name: "unknown runner", content: `runner: "container"`},
		{name: "unknown color scheme", content: `ui: color_scheme: "sepia"`},
		{name: "unknown field", content: `jobz: 4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeConfigFile(t, dir, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatalf("Load(%q) should fail schema validation", tt.content)
			}
		})
	}
}

func TestLoadCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with canceled context = %v, want context.Canceled", err)
	}
}

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  error
		wantPass bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantPass: true},
		{
			name:    "negative jobs",
			mutate:  func(c *Config) { c.Jobs = -2 },
			wantErr: ErrInvalidJobs,
		},
		{
			name:    "bad runner",
			mutate:  func(c *Config) { c.Runner = "remote" },
			wantErr: ErrInvalidRunnerMode,
		},
		{
			name:    "whitespace shell",
			mutate:  func(c *Config) { c.Shell = "   " },
			wantErr: ErrInvalidShellPath,
		},
		{
			name:    "whitespace toolfile",
			mutate:  func(c *Config) { c.Toolfile = "\t" },
			wantErr: ErrInvalidToolfilePath,
		},
		{
			name:    "bad color scheme",
			mutate:  func(c *Config) { c.UI.ColorScheme = "sepia" },
			wantErr: ErrInvalidColorScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)

			valid, errs := cfg.IsValid()
			if valid != tt.wantPass {
				t.Fatalf("IsValid() = %v, want %v (errs: %v)", valid, tt.wantPass, errs)
			}
			if tt.wantErr != nil && !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("IsValid() error %v does not wrap %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestGenerateCUERoundtrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Jobs = 8
	cfg.Runner = RunnerVirtual
	cfg.Shell = "/bin/zsh"
	cfg.UI.Verbose = true

	dir := t.TempDir()
	writeConfigFile(t, dir, GenerateCUE(cfg))

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() of generated config = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip: got %+v, want %+v", loaded, cfg)
	}
}

func TestSaveAndCreateDefault(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() = %v", err)
	}
	path := filepath.Join(dir, "config.cue")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Creating again is a no-op, not an error.
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() second call = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Jobs = 3
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() after Save() = %v", err)
	}
	if loaded.Jobs != 3 {
		t.Errorf("Jobs after Save = %d, want 3", loaded.Jobs)
	}
}
