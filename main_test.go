package main

import (
	"testing"

	"github.com/lcdnav/lcdnav/internal/app"
	"github.com/lcdnav/lcdnav/internal/config"
)

func TestDetectTTYConsistency(t *testing.T) {
	info := detectTTY()
	if !info.IsTerminal && (info.Width != 0 || info.Height != 0) {
		t.Fatalf("size reported without a terminal: %+v", info)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Rows:       4,
			Cols:       20,
			MenuPath:   "menu.toml",
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"rows": "4",
			"cols": "20",
			"menu": "menu.toml",
		},
		Args: []string{"-rows", "4"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["rows"] != "4" {
		t.Fatalf("expected rows flag %q, got %v", "4", flagsValue["rows"])
	}
	if flagsValue["cols"] != "20" {
		t.Fatalf("expected cols flag %q, got %v", "20", flagsValue["cols"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile %q, got %v", "trace.log", flagsValue["logFile"])
	}

	args, ok := payload["argv"].([]string)
	if !ok || len(args) != 2 {
		t.Fatalf("expected argv with 2 entries, got %v", payload["argv"])
	}
}
