package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lcdnav/lcdnav/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envRows       = "LCDNAV_ROWS"
	envCols       = "LCDNAV_COLS"
	envMenuFile   = "LCDNAV_MENU"
	envShowFooter = "LCDNAV_FOOTER"
	envDebounce   = "LCDNAV_DEBOUNCE_MS"
	envTrace      = "LCDNAV_TRACE"
	envLogFile    = "LCDNAV_LOG_FILE"
)

const (
	defaultRows = 2
	defaultCols = 16
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lcdnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	rows := fs.Int("rows", envOrInt(env, envRows, defaultRows), "display rows")
	cols := fs.Int("cols", envOrInt(env, envCols, defaultCols), "display columns")
	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to a TOML menu definition (empty uses the built-in demo menu)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	debounce := fs.Int("debounce-ms", envOrInt(env, envDebounce, 0), "minimum milliseconds between accepted button presses (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *rows < 1 {
		return Config{}, fmt.Errorf("rows must be >= 1 (got %d)", *rows)
	}
	if *cols < 4 {
		return Config{}, fmt.Errorf("cols must be >= 4 (got %d)", *cols)
	}
	if *debounce < 0 {
		return Config{}, fmt.Errorf("debounce-ms must be >= 0 (got %d)", *debounce)
	}

	cfg := Config{
		App: app.Config{
			Rows:       *rows,
			Cols:       *cols,
			MenuPath:   *menuFile,
			ShowFooter: *footer,
			DebounceMS: *debounce,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"rows":       strconv.Itoa(*rows),
			"cols":       strconv.Itoa(*cols),
			"menu":       *menuFile,
			"footer":     strconv.FormatBool(*footer),
			"debounceMs": strconv.Itoa(*debounce),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.MenuPath != "" {
		if _, err := os.Stat(cfg.App.MenuPath); err != nil {
			return fmt.Errorf("menu file: %w", err)
		}
	}
	return nil
}
