package ui

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/wirecalc/internal/backend"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent feeds a reload through the dispatcher. A failed reload
// keeps the previous preferences and reports the error.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		events.Layout.ReloadError(res.Err)
		m.errMsg = fmt.Sprintf("reload %s: %v", m.reloadSource(evt), res.Err)
		return
	}
	if !res.PreferencesUpdated {
		return
	}
	p := m.prefs.Snapshot()
	events.Layout.Reload(p.Breakpoint, p.DrawerWidth, p.ShowFooter)
	m.applyLayout()
	m.setInfo("Preferences reloaded")
}

// reloadSource names the watched file when there is one.
func (m *Model) reloadSource(evt backend.Event) string {
	if m.backend != nil {
		return filepath.Base(m.backend.Path())
	}
	return evt.Kind.String()
}
