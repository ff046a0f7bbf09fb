package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcdnav/lcdnav/internal/menu"
)

func newTestModel(t *testing.T, table *menu.Table, opts Options) (*Harness, *menu.Engine) {
	t.Helper()
	engine := menu.NewEngine(table, 2, 16)
	model := NewModel(engine, opts)
	return NewHarness(model), engine
}

func demoTable() *menu.Table {
	settings := menu.NewTable("Settings",
		menu.NewProgress("Brightness", 50, 5, nil).WithBounds(0, 100),
	)
	return menu.NewTable("Main Menu",
		menu.NewToggle("Backlight", "", "", nil),
		menu.NewProgress("Contrast", 40, 1, nil).WithBounds(0, 63),
		menu.NewList("Color", []string{"Red", "Green", "Blue"}, nil),
		menu.NewText("Device name", "lcdnav", nil),
		menu.NewSubMenu("Settings", settings),
	)
}

func cursorColumn(h *Harness) string {
	for row, line := range h.Model().Screen().Lines() {
		if strings.HasPrefix(line, "→") || strings.HasPrefix(line, "←") {
			return string([]rune(line)[0]) + ":" + itoa(row)
		}
	}
	return ""
}

func itoa(n int) string {
	return string(rune('0' + n))
}

func TestCursorMovementUpdatesScreen(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})

	if got := cursorColumn(h); got != "→:0" {
		t.Fatalf("expected browse cursor on row 0, got %q", got)
	}
	h.Keys("down")
	if engine.CursorPosition() != 2 {
		t.Fatalf("expected cursor at 2, got %d", engine.CursorPosition())
	}
	if got := cursorColumn(h); got != "→:1" {
		t.Fatalf("expected browse cursor on row 1, got %q", got)
	}

	// Vi keys move like the arrows.
	h.Keys("k")
	if engine.CursorPosition() != 1 {
		t.Fatalf("expected k to move up, got %d", engine.CursorPosition())
	}
	h.Keys("j")
	if engine.CursorPosition() != 2 {
		t.Fatalf("expected j to move down, got %d", engine.CursorPosition())
	}
}

func TestToggleFromKeyboard(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})

	h.Keys("enter")
	if !engine.ItemAt(1).On() {
		t.Fatalf("expected toggle flipped on")
	}
	if line := h.Model().Screen().Line(0); !strings.Contains(line, "ON") {
		t.Fatalf("expected ON on screen, got %q", line)
	}
}

func TestSubMenuDescentAndReturn(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})

	for i := 0; i < 4; i++ {
		h.Keys("down")
	}
	h.Keys("enter")
	if engine.Table().Title() != "Settings" {
		t.Fatalf("expected Settings active, got %q", engine.Table().Title())
	}
	if line := h.Model().Screen().Line(0); !strings.Contains(line, "Brightness") {
		t.Fatalf("expected child entries on screen, got %q", line)
	}

	h.Keys("esc")
	if engine.Table().Title() != "Main Menu" {
		t.Fatalf("expected return to the root, got %q", engine.Table().Title())
	}
	if engine.CursorPosition() != 5 {
		t.Fatalf("expected cursor restored to 5, got %d", engine.CursorPosition())
	}
}

func TestProgressEditFromKeyboard(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})
	contrast := engine.ItemAt(2)

	h.Keys("down", "enter")
	if !engine.IsEditing() {
		t.Fatalf("expected edit mode")
	}
	if got := cursorColumn(h); got != "←:1" {
		t.Fatalf("expected edit cursor on row 1, got %q", got)
	}

	h.Keys("right", "right", "left")
	if contrast.Index() != 41 {
		t.Fatalf("expected 41 after two up one down, got %d", contrast.Index())
	}

	h.Keys("esc")
	if engine.IsEditing() {
		t.Fatalf("expected edit mode left")
	}
	if contrast.Index() != 40 {
		t.Fatalf("expected cancel to restore 40, got %d", contrast.Index())
	}
}

func TestBackspaceCommitsEdit(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})
	contrast := engine.ItemAt(2)

	h.Keys("down", "enter", "right")
	h.Keys("backspace")
	if engine.IsEditing() {
		t.Fatalf("expected edit mode left")
	}
	if contrast.Index() != 41 {
		t.Fatalf("expected committed 41, got %d", contrast.Index())
	}
}

func TestEnterCommitsEdit(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})
	contrast := engine.ItemAt(2)

	h.Keys("down", "enter", "right", "enter")
	if engine.IsEditing() {
		t.Fatalf("expected enter to commit the edit")
	}
	if contrast.Index() != 41 {
		t.Fatalf("expected committed 41, got %d", contrast.Index())
	}
}

func TestTextEditFlow(t *testing.T) {
	var committed string
	table := menu.NewTable("Main Menu",
		menu.NewText("Device name", "lcd", func(s string) { committed = s }),
	)
	h, engine := newTestModel(t, table, Options{})

	h.Keys("enter")
	if !engine.IsEditing() {
		t.Fatalf("expected edit mode on the text item")
	}
	h.Keys("nav", "enter")
	if engine.IsEditing() {
		t.Fatalf("expected edit mode left")
	}
	if got := engine.ItemAt(1).Text(); got != "lcdnav" {
		t.Fatalf("expected appended text, got %q", got)
	}
	if committed != "lcdnav" {
		t.Fatalf("expected commit callback with final text, got %q", committed)
	}
}

func TestTextEditEscapeKeepsOriginal(t *testing.T) {
	var committed string
	table := menu.NewTable("Main Menu",
		menu.NewText("Device name", "lcd", func(s string) { committed = s }),
	)
	h, engine := newTestModel(t, table, Options{})

	h.Keys("enter", "xyz", "esc")
	if engine.IsEditing() {
		t.Fatalf("expected edit mode left")
	}
	if got := engine.ItemAt(1).Text(); got != "lcd" {
		t.Fatalf("expected original text kept, got %q", got)
	}
	if committed != "lcd" {
		t.Fatalf("expected commit callback with original text, got %q", committed)
	}
}

func TestFuzzyJump(t *testing.T) {
	h, engine := newTestModel(t, demoTable(), Options{})

	h.Keys("/", "contr", "enter")
	if engine.CursorPosition() != 2 {
		t.Fatalf("expected jump to Contrast at 2, got %d", engine.CursorPosition())
	}

	h.Keys("/", "zzzz", "enter")
	if engine.CursorPosition() != 2 {
		t.Fatalf("expected no movement for a hopeless query, got %d", engine.CursorPosition())
	}
}

func TestJumpSkipsHiddenEntries(t *testing.T) {
	table := demoTable()
	h, engine := newTestModel(t, table, Options{})
	engine.Hide()
	table.At(2).SetHidden(true)
	engine.Show()

	h.Keys("/", "contr", "enter")
	if engine.CursorPosition() == 2 {
		t.Fatalf("jump must not land on a hidden entry")
	}
}

func TestViewSections(t *testing.T) {
	h, _ := newTestModel(t, demoTable(), Options{ShowFooter: true})

	view := h.View()
	if !strings.Contains(view, "Main Menu") {
		t.Fatalf("expected breadcrumb in view:\n%s", view)
	}
	if !strings.Contains(view, "Backlight") {
		t.Fatalf("expected screen contents in view:\n%s", view)
	}
	if !strings.Contains(view, "q quit") {
		t.Fatalf("expected footer hints in view:\n%s", view)
	}

	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if v := h.View(); v == "" {
		t.Fatalf("expected non-empty sized view")
	}
}

func TestBreadcrumbFollowsDescent(t *testing.T) {
	h, _ := newTestModel(t, demoTable(), Options{})
	for i := 0; i < 4; i++ {
		h.Keys("down")
	}
	h.Keys("enter")
	if view := h.View(); !strings.Contains(view, "Main Menu → Settings") {
		t.Fatalf("expected full breadcrumb, got:\n%s", view)
	}
}
