package menu

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Hooks supplies the callbacks bound to items while a definition file is
// turned into tables. Any nil hook leaves the corresponding items silent.
type Hooks struct {
	Command func(label string)
	Toggle  func(label string, on bool)
	Change  func(label string, value int)
	Commit  func(label string, value int)
	Text    func(label, value string)
}

type menuFile struct {
	Title string    `toml:"title"`
	Items []itemDef `toml:"item"`
}

type itemDef struct {
	Type    string    `toml:"type"`
	Label   string    `toml:"label"`
	Hidden  bool      `toml:"hidden"`
	On      bool      `toml:"on"`
	TextOn  string    `toml:"text_on"`
	TextOff string    `toml:"text_off"`
	Options []string  `toml:"options"`
	Start   int       `toml:"start"`
	Step    int       `toml:"step"`
	Min     *int      `toml:"min"`
	Max     *int      `toml:"max"`
	Value   string    `toml:"value"`
	Title   string    `toml:"title"`
	Items   []itemDef `toml:"item"`
}

// LoadFile reads a TOML menu definition and builds the table tree.
func LoadFile(path string, hooks Hooks) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	table, err := Parse(data, hooks)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

// Parse builds the table tree from TOML menu definition data.
func Parse(data []byte, hooks Hooks) (*Table, error) {
	var file menuFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("menu definition has no items")
	}
	title := file.Title
	if title == "" {
		title = "Menu"
	}
	return buildTable(title, file.Items, hooks)
}

func buildTable(title string, defs []itemDef, hooks Hooks) (*Table, error) {
	entries := make([]*Item, 0, len(defs))
	for _, def := range defs {
		item, err := buildItem(def, hooks)
		if err != nil {
			return nil, err
		}
		entries = append(entries, item)
	}
	return NewTable(title, entries...), nil
}

func buildItem(def itemDef, hooks Hooks) (*Item, error) {
	if def.Label == "" {
		return nil, fmt.Errorf("item of type %q has no label", def.Type)
	}
	label := def.Label
	var item *Item
	switch def.Type {
	case "command":
		item = NewCommand(label, func() {
			if hooks.Command != nil {
				hooks.Command(label)
			}
		})
	case "toggle":
		item = NewToggle(label, def.TextOn, def.TextOff, func(on bool) {
			if hooks.Toggle != nil {
				hooks.Toggle(label, on)
			}
		})
		item.SetOn(def.On)
	case "list":
		if len(def.Options) == 0 {
			return nil, fmt.Errorf("list item %q has no options", label)
		}
		item = NewList(label, def.Options, func(v int) {
			if hooks.Commit != nil {
				hooks.Commit(label, v)
			}
		})
		item.SetIndex(def.Start)
		item.WithChange(func(v int) {
			if hooks.Change != nil {
				hooks.Change(label, v)
			}
		})
	case "progress":
		item = NewProgress(label, def.Start, def.Step, func(v int) {
			if hooks.Commit != nil {
				hooks.Commit(label, v)
			}
		})
		if def.Min != nil || def.Max != nil {
			min, max := MinProgress, MaxProgress
			if def.Min != nil {
				min = *def.Min
			}
			if def.Max != nil {
				max = *def.Max
			}
			if min > max {
				return nil, fmt.Errorf("progress item %q has invalid range [%d, %d]", label, min, max)
			}
			item.WithBounds(min, max)
		}
		item.WithChange(func(v int) {
			if hooks.Change != nil {
				hooks.Change(label, v)
			}
		})
	case "text":
		item = NewText(label, def.Value, func(v string) {
			if hooks.Text != nil {
				hooks.Text(label, v)
			}
		})
	case "submenu":
		if len(def.Items) == 0 {
			return nil, fmt.Errorf("submenu %q has no items", label)
		}
		title := def.Title
		if title == "" {
			title = label
		}
		child, err := buildTable(title, def.Items, hooks)
		if err != nil {
			return nil, err
		}
		item = NewSubMenu(label, child)
	default:
		return nil, fmt.Errorf("unknown item type %q for %q", def.Type, label)
	}
	item.SetHidden(def.Hidden)
	return item, nil
}
