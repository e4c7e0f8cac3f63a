package ui

import (
	"fmt"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/atomicstack/wirecalc/internal/shell"
	"github.com/atomicstack/wirecalc/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// PanelSelectedMsg carries a drawer selection back into the update loop.
type PanelSelectedMsg struct {
	ID     string
	Source string
}

// requestSelect routes a user choice through the shell. The shell only
// reports the id; the active panel changes when PanelSelectedMsg arrives.
func (m *Model) requestSelect(id, source string) tea.Cmd {
	return m.shell.Select(id, m.onSelect(source))
}

func (m *Model) onSelect(source string) shell.SelectFunc {
	return func(id string) tea.Cmd {
		return m.bus.Execute(command.Request{
			ID:     id,
			Source: source,
			Handler: func(id string) tea.Msg {
				return PanelSelectedMsg{ID: id, Source: source}
			},
		})
	}
}

func (m *Model) handlePanelSelectedMsg(msg tea.Msg) tea.Cmd {
	sel, ok := msg.(PanelSelectedMsg)
	if !ok {
		return nil
	}
	prev := m.nav.ActiveID
	if err := m.nav.Select(sel.ID); err != nil {
		events.Nav.Rejected(sel.ID, err)
		m.errMsg = fmt.Sprintf("Unknown panel %q", sel.ID)
		return nil
	}
	m.errMsg = ""
	if m.nav.ClearFilter() {
		events.Filter.Cleared()
	}
	if m.nav.Class == layout.Narrow && m.nav.CloseDrawer() {
		events.Drawer.Toggle(false, m.nav.Class.String())
	}
	if prev != sel.ID {
		events.Nav.Selected(prev, sel.ID)
	}
	return nil
}
