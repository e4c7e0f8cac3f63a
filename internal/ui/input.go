package ui

import (
	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/atomicstack/wirecalc/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const filterPlaceholder = "type to filter panels"

func newFilterInput(styles *theme.Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = filterPlaceholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	return ti
}

// openFilter starts filter entry. In the narrow layout the overlay opens so
// the narrowed entries are visible while typing.
func (m *Model) openFilter() tea.Cmd {
	m.filtering = true
	m.filter.SetValue(m.nav.Filter)
	m.filter.CursorEnd()
	if m.nav.Class == layout.Narrow && !m.nav.DrawerOpen {
		m.toggleDrawer()
	}
	events.Filter.Open()
	return m.filter.Focus()
}

func (m *Model) closeFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		events.App.Stop("interrupt")
		return tea.Quit
	case tea.KeyEsc:
		m.closeFilter()
		if m.nav.ClearFilter() {
			events.Filter.Cleared()
		}
		return nil
	case tea.KeyEnter:
		d, ok := m.nav.Focused()
		m.closeFilter()
		if !ok {
			m.nav.ClearFilter()
			m.setInfo("No panel matches the filter")
			return nil
		}
		return m.requestSelect(d.ID, selectSourceFilter)
	case tea.KeyUp:
		if m.nav.MoveCursorUp() {
			events.Nav.Cursor(m.nav.Cursor)
		}
		return nil
	case tea.KeyDown:
		if m.nav.MoveCursorDown() {
			events.Nav.Cursor(m.nav.Cursor)
		}
		return nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if value := m.filter.Value(); value != before {
		m.nav.SetFilter(value)
		events.Filter.Update(value, len(m.nav.Visible()))
	}
	return cmd
}
