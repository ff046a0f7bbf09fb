package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcdnav/lcdnav/internal/display"
	"github.com/lcdnav/lcdnav/internal/input"
	"github.com/lcdnav/lcdnav/internal/menu"
	"github.com/lcdnav/lcdnav/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the simulator around the engine.
type Options struct {
	ShowFooter bool
	Debounce   time.Duration
}

// Model implements the Bubble Tea program simulating the character display
// and its controller. All gestures funnel through the single engine; the
// engine redraws onto the in-memory screen, and View shows that screen.
type Model struct {
	engine   *menu.Engine
	screen   *Screen
	renderer *display.Renderer
	debounce *input.Debouncer

	showFooter bool
	width      int
	height     int

	editInput textinput.Model
	jumpInput textinput.Model
	jumping   bool
	status    string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the simulator for the given engine.
func NewModel(engine *menu.Engine, opts Options) *Model {
	screen := NewScreen(engine.Rows(), engine.Cols())
	m := &Model{
		engine:     engine,
		screen:     screen,
		renderer:   display.NewRenderer(screen, engine.Rows(), engine.Cols()),
		debounce:   input.NewDebouncer(opts.Debounce),
		showFooter: opts.ShowFooter,
	}

	edit := textinput.New()
	edit.Prompt = "edit> "
	if styles.Prompt != nil {
		edit.PromptStyle = *styles.Prompt
	}
	edit.CharLimit = engine.Cols() * 2
	m.editInput = edit

	jump := textinput.New()
	jump.Prompt = "/"
	if styles.Prompt != nil {
		jump.PromptStyle = *styles.Prompt
	}
	m.jumpInput = jump

	engine.SetRedraw(m.repaint)
	m.repaint()
	m.registerHandlers()
	return m
}

// repaint draws the current frame onto the simulated screen.
func (m *Model) repaint() {
	m.renderer.Render(m.engine.Frame())
}

// Engine exposes the engine for integration tests.
func (m *Model) Engine() *menu.Engine { return m.engine }

// Screen exposes the simulated display for integration tests.
func (m *Model) Screen() *Screen { return m.screen }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}
