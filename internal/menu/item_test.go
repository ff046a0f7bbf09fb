package menu

import "testing"

func TestSetIndexClampsList(t *testing.T) {
	it := NewList("Color", []string{"Red", "Green", "Blue"}, nil)
	if !it.SetIndex(2) {
		t.Fatalf("expected change to index 2")
	}
	if it.SetIndex(10) {
		t.Fatalf("expected no change when clamped onto current index")
	}
	if it.Index() != 2 {
		t.Fatalf("expected index 2, got %d", it.Index())
	}
	it.SetIndex(-5)
	if it.Index() != 0 {
		t.Fatalf("expected clamp to 0, got %d", it.Index())
	}
}

func TestSetIndexFiresChangeOnlyOnChange(t *testing.T) {
	calls := 0
	it := NewList("Color", []string{"Red", "Green"}, nil).WithChange(func(int) { calls++ })
	it.SetIndex(1)
	it.SetIndex(1)
	if calls != 1 {
		t.Fatalf("expected exactly one change callback, got %d", calls)
	}
}

func TestProgressSaturation(t *testing.T) {
	it := NewProgress("Volume", 8, 5, nil).WithBounds(0, 10)
	for i := 0; i < 20; i++ {
		it.Increment()
	}
	if it.Index() != 10 {
		t.Fatalf("expected saturation at 10, got %d", it.Index())
	}
	for i := 0; i < 20; i++ {
		it.Decrement()
	}
	if it.Index() != 0 {
		t.Fatalf("expected saturation at 0, got %d", it.Index())
	}
}

func TestProgressStepCrossingBoundsClamps(t *testing.T) {
	it := NewProgress("Volume", 9, 5, nil).WithBounds(0, 10)
	it.Increment()
	if it.Index() != 10 {
		t.Fatalf("expected clamp to 10, got %d", it.Index())
	}
	if it.Increment() {
		t.Fatalf("expected increment at maximum to report false")
	}
}

func TestProgressDefaultBounds(t *testing.T) {
	it := NewProgress("Raw", 5000, 1, nil)
	if it.Index() != MaxProgress {
		t.Fatalf("expected start clamped to %d, got %d", MaxProgress, it.Index())
	}
}

func TestSnapshotRestore(t *testing.T) {
	it := NewProgress("Volume", 4, 1, nil).WithBounds(0, 10)
	it.saveSnapshot()
	it.Increment()
	it.Increment()
	if it.Index() != 6 {
		t.Fatalf("expected 6 before restore, got %d", it.Index())
	}
	it.restoreSnapshot()
	if it.Index() != 4 {
		t.Fatalf("expected snapshot value 4, got %d", it.Index())
	}
}

func TestValueFormatting(t *testing.T) {
	toggle := NewToggle("Backlight", "", "", nil)
	if toggle.Value() != "OFF" {
		t.Fatalf("expected default OFF, got %q", toggle.Value())
	}
	toggle.SetOn(true)
	if toggle.Value() != "ON" {
		t.Fatalf("expected ON, got %q", toggle.Value())
	}

	list := NewList("Color", []string{"Red", "Green"}, nil)
	list.SetIndex(1)
	if list.Value() != "Green" {
		t.Fatalf("expected Green, got %q", list.Value())
	}

	progress := NewProgress("Brightness", 50, 5, nil).WithBounds(0, 100).WithFormat(func(v int) string {
		return "50%"
	})
	if progress.Value() != "50%" {
		t.Fatalf("expected mapped value, got %q", progress.Value())
	}

	plain := NewProgress("Contrast", 42, 1, nil).WithBounds(0, 63)
	if plain.Value() != "42" {
		t.Fatalf("expected numeric value, got %q", plain.Value())
	}

	command := NewCommand("Reset", nil)
	if command.Value() != "" {
		t.Fatalf("expected empty value for command, got %q", command.Value())
	}
}

func TestSetTextOnlyAffectsTextItems(t *testing.T) {
	text := NewText("Name", "lcd", nil)
	text.SetText("nav")
	if text.Text() != "nav" {
		t.Fatalf("expected updated text, got %q", text.Text())
	}
	command := NewCommand("Reset", nil)
	command.SetText("nope")
	if command.Text() != "" {
		t.Fatalf("expected SetText to be a no-op on commands")
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindCommand:  "command",
		KindToggle:   "toggle",
		KindList:     "list",
		KindProgress: "progress",
		KindText:     "text",
		KindSubMenu:  "submenu",
		KindHeader:   "header",
		KindEnd:      "end",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Fatalf("expected %q, got %q", want, kind.String())
		}
	}
	if !KindHeader.Structural() || !KindEnd.Structural() || KindList.Structural() {
		t.Fatalf("structural classification wrong")
	}
}
