package events

import "github.com/lcdnav/lcdnav/internal/logging"

type UITracer struct{}

type MenuTracer struct{}

var (
	UI   = UITracer{}
	Menu = MenuTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Jump(query string, target int) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "target": target})
}

func (MenuTracer) Cursor(table string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"table": table, "cursor": cursor})
}

func (MenuTracer) Select(table, item string) {
	logging.Trace("menu.select", map[string]interface{}{"table": table, "item": item})
}

func (MenuTracer) Enter(table string) {
	logging.Trace("menu.enter", map[string]interface{}{"table": table})
}

func (MenuTracer) Leave(table string) {
	logging.Trace("menu.leave", map[string]interface{}{"table": table})
}

func (MenuTracer) EditStart(item string) {
	logging.Trace("menu.edit-start", map[string]interface{}{"item": item})
}

func (MenuTracer) EditEnd(item string, cancelled bool) {
	logging.Trace("menu.edit-end", map[string]interface{}{"item": item, "cancelled": cancelled})
}

func (MenuTracer) Command(item string) {
	logging.Trace("menu.command", map[string]interface{}{"item": item})
}

func (MenuTracer) Toggle(item string, on bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"item": item, "on": on})
}

func (MenuTracer) Change(item string, value int) {
	logging.Trace("menu.change", map[string]interface{}{"item": item, "value": value})
}

func (MenuTracer) Commit(item string, value int) {
	logging.Trace("menu.commit", map[string]interface{}{"item": item, "value": value})
}

func (MenuTracer) Text(item, value string) {
	logging.Trace("menu.text", map[string]interface{}{"item": item, "value": value})
}
