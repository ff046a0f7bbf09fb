package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcdnav/lcdnav/internal/logging/events"
	"github.com/lcdnav/lcdnav/internal/menu"
	"github.com/lcdnav/lcdnav/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Rows       int
	Cols       int
	MenuPath   string
	ShowFooter bool
	DebounceMS int
}

// Run bootstraps and executes the Bubble Tea program around the simulated
// display.
func Run(cfg Config) error {
	table, err := buildMenu(cfg.MenuPath)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	engine := menu.NewEngine(table, cfg.Rows, cfg.Cols)
	model := ui.NewModel(engine, ui.Options{
		ShowFooter: cfg.ShowFooter,
		Debounce:   time.Duration(cfg.DebounceMS) * time.Millisecond,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func buildMenu(path string) (*menu.Table, error) {
	if path == "" {
		return defaultTable(), nil
	}
	return menu.LoadFile(path, tracerHooks())
}

// tracerHooks binds loaded items to the trace log so a definition file works
// out of the box without bespoke wiring.
func tracerHooks() menu.Hooks {
	return menu.Hooks{
		Command: func(label string) { events.Menu.Command(label) },
		Toggle:  func(label string, on bool) { events.Menu.Toggle(label, on) },
		Change:  func(label string, value int) { events.Menu.Change(label, value) },
		Commit:  func(label string, value int) { events.Menu.Commit(label, value) },
		Text:    func(label, value string) { events.Menu.Text(label, value) },
	}
}

// defaultTable is the built-in demo menu: every item variant, two levels of
// sub-menus, and one hidden entry revealed by a toggle.
func defaultTable() *menu.Table {
	selfTest := menu.NewCommand("Self test", func() {
		events.Menu.Command("Self test")
	}).WithHidden(true)

	advanced := menu.NewTable("Advanced",
		menu.NewCommand("Reset defaults", func() {
			events.Menu.Command("Reset defaults")
		}),
		menu.NewToggle("Service mode", "", "", func(on bool) {
			selfTest.SetHidden(!on)
			events.Menu.Toggle("Service mode", on)
		}),
		selfTest,
	)

	settings := menu.NewTable("Settings",
		menu.NewProgress("Brightness", 50, 5, func(v int) {
			events.Menu.Commit("Brightness", v)
		}).WithBounds(0, 100).WithFormat(func(v int) string {
			return strconv.Itoa(v) + "%"
		}),
		menu.NewList("Units", []string{"Metric", "Imperial"}, func(v int) {
			events.Menu.Commit("Units", v)
		}),
		menu.NewSubMenu("Advanced", advanced),
	)

	return menu.NewTable("Main Menu",
		menu.NewToggle("Backlight", "", "", func(on bool) {
			events.Menu.Toggle("Backlight", on)
		}),
		menu.NewProgress("Contrast", 40, 1, func(v int) {
			events.Menu.Commit("Contrast", v)
		}).WithBounds(0, 63),
		menu.NewList("Color", []string{"Red", "Green", "Blue"}, func(v int) {
			events.Menu.Commit("Color", v)
		}),
		menu.NewText("Device name", "lcdnav", func(v string) {
			events.Menu.Text("Device name", v)
		}),
		menu.NewSubMenu("Settings", settings),
	)
}
