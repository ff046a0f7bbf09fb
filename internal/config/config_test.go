package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Rows != 2 || cfg.App.Cols != 16 {
		t.Fatalf("expected 2x16 defaults, got %dx%d", cfg.App.Rows, cfg.App.Cols)
	}
	if cfg.App.MenuPath != "" || cfg.App.ShowFooter || cfg.App.DebounceMS != 0 {
		t.Fatalf("unexpected non-default app config: %+v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected non-default logging config: %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"LCDNAV_ROWS=4",
		"LCDNAV_COLS=20",
		"LCDNAV_MENU=/tmp/env.toml",
		"LCDNAV_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-rows", "2", "-menu", "/tmp/flag.toml"}, env)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Rows != 2 {
		t.Fatalf("flag must override env, got rows %d", cfg.App.Rows)
	}
	if cfg.App.Cols != 20 {
		t.Fatalf("env must fill unset flags, got cols %d", cfg.App.Cols)
	}
	if cfg.App.MenuPath != "/tmp/flag.toml" {
		t.Fatalf("flag must override env, got menu %q", cfg.App.MenuPath)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
}

func TestLoadArgsValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"zero rows", []string{"-rows", "0"}, "rows must be >= 1"},
		{"narrow display", []string{"-cols", "3"}, "cols must be >= 4"},
		{"negative debounce", []string{"-debounce-ms", "-5"}, "debounce-ms must be >= 0"},
	}
	for _, tc := range cases {
		_, err := LoadArgs(tc.args, nil)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{"", "NOVALUE", "LCDNAV_ROWS=notanumber", "LCDNAV_FOOTER=maybe"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Rows != 2 {
		t.Fatalf("malformed env int must fall back to default, got %d", cfg.App.Rows)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("malformed env bool must fall back to default")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-rows", "4", "-trace"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Flags["rows"] != "4" || cfg.Flags["trace"] != "true" {
		t.Fatalf("unexpected flag record: %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestValidateChecksMenuPath(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("empty menu path must validate, got %v", err)
	}

	cfg.App.MenuPath = filepath.Join(t.TempDir(), "missing.toml")
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing menu file")
	}

	path := filepath.Join(t.TempDir(), "menu.toml")
	if err := os.WriteFile(path, []byte("title = \"x\""), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	cfg.App.MenuPath = path
	if err := Validate(cfg); err != nil {
		t.Fatalf("existing menu file must validate, got %v", err)
	}
}
