package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/atomicstack/wirecalc/internal/shell"
	"github.com/atomicstack/wirecalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	infoTTL         = 5 * time.Second
	wheelStep       = 3
	menuToggleCells = 3 // " ≡ " at the left edge of the top bar
)

// View implements tea.Model.
func (m *Model) View() string {
	frame := m.frame()
	return m.shell.Render(m.contentView(frame.Geometry), m.nav.ActiveID, frame)
}

func (m *Model) frame() shell.Frame {
	footer := m.footerLines()
	return shell.Frame{
		Geometry: m.geometryWithFooter(len(footer)),
		Focus:    m.nav.Cursor,
		Filter:   m.nav.Filter,
		Footer:   footer,
	}
}

func (m *Model) geometry() layout.Geometry {
	return m.geometryWithFooter(len(m.footerLines()))
}

func (m *Model) geometryWithFooter(rows int) layout.Geometry {
	prefs := m.prefs.Snapshot()
	return layout.Compute(m.width, m.height, m.nav.DrawerOpen, layout.Options{
		Breakpoint:  prefs.Breakpoint,
		DrawerWidth: prefs.DrawerWidth,
		FooterRows:  rows,
	})
}

// footerLines is the status row followed by the key help when enabled.
func (m *Model) footerLines() []string {
	lines := []string{m.statusLine()}
	if m.prefs.ShowFooter() || m.showHelp {
		help := theme.Render(m.styles.Footer, m.help.View(m.keys))
		lines = append(lines, strings.Split(help, "\n")...)
	}
	return lines
}

func (m *Model) statusLine() string {
	switch {
	case m.filtering:
		return m.filter.View()
	case m.errMsg != "":
		return theme.Render(m.styles.Error, fmt.Sprintf("Error: %s", m.errMsg))
	}
	if info := m.currentInfo(); info != "" {
		return theme.Render(m.styles.Info, info)
	}
	return ""
}

// syncContent loads the active panel into the content viewport whenever the
// panel or the content region changes size.
func (m *Model) syncContent() {
	g := m.geometry()
	d := m.nav.Active()
	m.content.Width = g.ContentWidth
	m.content.Height = g.BodyHeight
	next := contentKey{id: d.ID, width: g.ContentWidth, height: g.BodyHeight}
	if next == m.rendered {
		return
	}
	switched := next.id != m.rendered.id
	m.rendered = next
	m.content.SetContent(m.router.Resolve(d).View(g.ContentWidth, g.BodyHeight))
	if switched {
		m.content.GotoTop()
	}
}

func (m *Model) contentView(g layout.Geometry) string {
	if m.content.Height <= 0 {
		return m.router.Resolve(m.nav.Active()).View(g.ContentWidth, g.BodyHeight)
	}
	return theme.Render(m.styles.Content, m.content.View())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.applyLayout()
	return nil
}

// handleMouseMsg selects drawer rows on click and scrolls content on wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.content.LineUp(wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.content.LineDown(wheelStep)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	frame := m.frame()
	if id, ok := m.shell.EntryAt(ev.X, ev.Y, frame); ok {
		return m.requestSelect(id, selectSourceMouse)
	}
	g := frame.Geometry
	if g.Class != layout.Narrow {
		return nil
	}
	if ev.Y < layout.TopBarRows && ev.X < menuToggleCells {
		m.toggleDrawer()
		return nil
	}
	if g.DrawerVisible && ev.X >= g.DrawerWidth && m.nav.CloseDrawer() {
		events.Drawer.Toggle(false, g.Class.String())
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
