package main

import (
	"fmt"
	"os"

	"github.com/lcdnav/lcdnav/internal/app"
	"github.com/lcdnav/lcdnav/internal/config"
	"github.com/lcdnav/lcdnav/internal/logging"
	"github.com/lcdnav/lcdnav/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	return map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    detectTTY(),
	}
}

type ttyInfo struct {
	IsTerminal bool `json:"is_terminal"`
	Width      int  `json:"width,omitempty"`
	Height     int  `json:"height,omitempty"`
}

// detectTTY records whether stdout is a terminal and, if so, its size.
func detectTTY() ttyInfo {
	var info ttyInfo
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		info.IsTerminal = true
		if width, height, err := term.GetSize(fd); err == nil {
			info.Width = width
			info.Height = height
		}
	}
	return info
}
