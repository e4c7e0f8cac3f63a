package ui

import (
	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	selectSourceKey    = "key"
	selectSourceDigit  = "digit"
	selectSourceCycle  = "cycle"
	selectSourceMouse  = "mouse"
	selectSourceFilter = "filter"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Stop("quit key")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(keyMsg, m.keys.Filter):
		return m.openFilter()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleDrawer()
	case key.Matches(keyMsg, m.keys.Close):
		m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Up):
		if !m.nav.DrawerVisible() {
			m.content.LineUp(1)
			return nil
		}
		if m.nav.MoveCursorUp() {
			events.Nav.Cursor(m.nav.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if !m.nav.DrawerVisible() {
			m.content.LineDown(1)
			return nil
		}
		if m.nav.MoveCursorDown() {
			events.Nav.Cursor(m.nav.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Home):
		if m.nav.DrawerVisible() && m.nav.MoveCursorHome() {
			events.Nav.Cursor(m.nav.Cursor)
		}
	case key.Matches(keyMsg, m.keys.End):
		if m.nav.DrawerVisible() && m.nav.MoveCursorEnd() {
			events.Nav.Cursor(m.nav.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Next):
		return m.requestSelect(m.nav.Neighbour(1), selectSourceCycle)
	case key.Matches(keyMsg, m.keys.Prev):
		return m.requestSelect(m.nav.Neighbour(-1), selectSourceCycle)
	case key.Matches(keyMsg, m.keys.Jump):
		return m.handleDigitKey(keyMsg)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.content.LineUp(m.pageSize())
	case key.Matches(keyMsg, m.keys.PageDown):
		m.content.LineDown(m.pageSize())
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if !m.nav.DrawerVisible() {
		return nil
	}
	d, ok := m.nav.Focused()
	if !ok {
		return nil
	}
	return m.requestSelect(d.ID, selectSourceKey)
}

func (m *Model) handleDigitKey(msg tea.KeyMsg) tea.Cmd {
	if len(msg.Runes) != 1 {
		return nil
	}
	idx := int(msg.Runes[0] - '1')
	d, ok := m.nav.Registry().At(idx)
	if !ok {
		return nil
	}
	return m.requestSelect(d.ID, selectSourceDigit)
}

// handleEscapeKey closes the overlay drawer first, then clears any message.
func (m *Model) handleEscapeKey() {
	if m.nav.CloseDrawer() {
		events.Drawer.Toggle(false, m.nav.Class.String())
		return
	}
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) toggleDrawer() {
	if !m.nav.ToggleDrawer() {
		return
	}
	events.Drawer.Toggle(m.nav.DrawerOpen, m.nav.Class.String())
	if m.nav.DrawerOpen {
		m.nav.ClampCursor()
	}
}

// applyLayout reclassifies the current width. Crossing the breakpoint closes
// the overlay drawer.
func (m *Model) applyLayout() {
	g := m.geometry()
	if m.nav.SetClass(g.Class) {
		events.Drawer.Toggle(false, g.Class.String())
	}
	m.keys.setNarrow(g.Class == layout.Narrow)
	m.help.Width = m.width
	events.Layout.Resize(m.width, m.height, g.Class.String())
}

func (m *Model) pageSize() int {
	if m.content.Height > 1 {
		return m.content.Height - 1
	}
	return 1
}
