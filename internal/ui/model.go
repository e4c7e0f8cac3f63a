package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/wirecalc/internal/backend"
	"github.com/atomicstack/wirecalc/internal/data/dispatcher"
	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/atomicstack/wirecalc/internal/panel"
	"github.com/atomicstack/wirecalc/internal/shell"
	"github.com/atomicstack/wirecalc/internal/state"
	"github.com/atomicstack/wirecalc/internal/theme"
	"github.com/atomicstack/wirecalc/internal/ui/command"
	uistate "github.com/atomicstack/wirecalc/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model. Zero values fall back to the built-in registry,
// the default theme and the default layout preferences.
type Options struct {
	Width       int
	Height      int
	Panel       string
	Title       string
	Preferences state.Preferences
	Registry    *panel.Registry
	Router      panel.Router
	Watcher     *backend.Watcher
	Styles      *theme.Styles
}

// contentKey identifies what is currently loaded into the content viewport.
type contentKey struct {
	id     string
	width  int
	height int
}

// Model implements the Bubble Tea model for the calculator shell.
type Model struct {
	nav    *uistate.Navigation
	shell  *shell.Shell
	router panel.Router
	styles *theme.Styles

	keys     keyMap
	help     help.Model
	showHelp bool
	content  viewport.Model
	rendered contentKey

	filter    textinput.Model
	filtering bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	prefs      state.PreferenceStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
	bus        *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the configured default panel.
func NewModel(opts Options) *Model {
	reg := opts.Registry
	if reg == nil {
		reg = panel.Default()
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	prefs := state.NewPreferenceStore(normalizePreferences(opts.Preferences))

	m := &Model{
		shell:      shell.New(reg, shell.WithTitle(opts.Title), shell.WithStyles(styles)),
		router:     opts.Router,
		styles:     styles,
		keys:       defaultKeyMap(),
		help:       help.New(),
		content:    viewport.New(0, 0),
		filter:     newFilterInput(styles),
		prefs:      prefs,
		dispatcher: dispatcher.New(prefs),
		backend:    opts.Watcher,
		bus:        command.New(),
	}

	panelID := opts.Panel
	if panelID == "" {
		first, _ := reg.At(0)
		panelID = first.ID
	}
	nav, err := uistate.NewNavigation(reg, panelID)
	if err != nil {
		events.Nav.Rejected(opts.Panel, err)
		first, _ := reg.At(0)
		nav, _ = uistate.NewNavigation(reg, first.ID)
		m.errMsg = fmt.Sprintf("Unknown panel %q", opts.Panel)
	}
	m.nav = nav

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.applyLayout()
	m.syncContent()
	m.registerHandlers()
	return m
}

func normalizePreferences(p state.Preferences) state.Preferences {
	if p.Breakpoint <= 0 {
		p.Breakpoint = layout.DefaultBreakpoint
	}
	if p.DrawerWidth <= 0 {
		p.DrawerWidth = layout.DefaultDrawerWidth
	}
	return p
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.filtering {
		// cursor blink and similar input housekeeping
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(PanelSelectedMsg{}):  m.handlePanelSelectedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncContent()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// ActiveID returns the id of the panel currently shown.
func (m *Model) ActiveID() string {
	return m.nav.ActiveID
}

// Navigation exposes the navigation state for inspection.
func (m *Model) Navigation() *uistate.Navigation {
	return m.nav
}

// Preferences returns the layout preferences in effect.
func (m *Model) Preferences() state.Preferences {
	return m.prefs.Snapshot()
}
