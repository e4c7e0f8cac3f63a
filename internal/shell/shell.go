// Package shell renders the navigation shell: a top bar, a drawer listing
// the registered panels, and a content region hosting whichever panel the
// caller says is active.
//
// The shell is a controlled component. It never changes the active panel
// itself; selecting an entry only invokes the caller's SelectFunc, and the
// caller decides whether to render a different active id next time. The
// selected highlight is derived by comparing each descriptor ID with the
// active id, so an unregistered id simply highlights nothing.
package shell

import (
	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/logging/events"
	"github.com/atomicstack/wirecalc/internal/panel"
	"github.com/atomicstack/wirecalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultTitle  = "Electrical Engineering Calculator"
	drawerHeading = "PANELS"
	// drawerHeaderRows is the number of body rows above the first entry.
	drawerHeaderRows = 1
)

// SelectFunc receives the id of the entry the user picked.
type SelectFunc func(id string) tea.Cmd

// Entry is one drawer row.
type Entry struct {
	Descriptor panel.Descriptor
	Selected   bool
	Focused    bool
}

// Frame carries per-render inputs that are not owned by the shell.
type Frame struct {
	Geometry layout.Geometry
	// Focus indexes the filtered entries; -1 hides the keyboard cursor.
	Focus  int
	Filter string
	// Footer lines are drawn below the body, one per footer row.
	Footer []string
}

// Shell lays out the top bar, drawer and content region.
type Shell struct {
	registry *panel.Registry
	styles   *theme.Styles
	title    string
}

type Option func(*Shell)

func WithTitle(title string) Option {
	return func(s *Shell) {
		if title != "" {
			s.title = title
		}
	}
}

func WithStyles(styles *theme.Styles) Option {
	return func(s *Shell) {
		if styles != nil {
			s.styles = styles
		}
	}
}

// New creates a shell over reg.
func New(reg *panel.Registry, opts ...Option) *Shell {
	s := &Shell{
		registry: reg,
		styles:   theme.Default(),
		title:    DefaultTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Shell) Registry() *panel.Registry {
	return s.registry
}

func (s *Shell) Title() string {
	return s.title
}

// Entries returns one Entry per registered panel in registry order.
func (s *Shell) Entries(activeID string, focus int) []Entry {
	return s.entriesFor(s.registry.List(), activeID, focus)
}

func (s *Shell) visibleEntries(activeID string, frame Frame) []Entry {
	return s.entriesFor(panel.Filter(s.registry.List(), frame.Filter), activeID, frame.Focus)
}

func (s *Shell) entriesFor(descs []panel.Descriptor, activeID string, focus int) []Entry {
	entries := make([]Entry, len(descs))
	for i, d := range descs {
		entries[i] = Entry{
			Descriptor: d,
			Selected:   d.ID == activeID,
			Focused:    i == focus,
		}
	}
	return entries
}

// Select forwards the user's choice to onSelect exactly once. The shell does
// not validate id and keeps no record of it.
func (s *Shell) Select(id string, onSelect SelectFunc) tea.Cmd {
	if onSelect == nil {
		return nil
	}
	events.Nav.Select(id, "shell")
	return onSelect(id)
}

// EntryAt maps a terminal cell to the drawer entry drawn there.
func (s *Shell) EntryAt(x, y int, frame Frame) (string, bool) {
	g := frame.Geometry
	if !g.DrawerVisible || x < 0 || x >= g.DrawerWidth {
		return "", false
	}
	bodyRow := y - layout.TopBarRows
	if bodyRow < drawerHeaderRows {
		return "", false
	}
	if g.BodyHeight > 0 && bodyRow >= g.BodyHeight {
		return "", false
	}
	entries := s.visibleEntries("", frame)
	offset := drawerOffset(len(entries), frame.Focus, entryRows(g))
	idx := offset + bodyRow - drawerHeaderRows
	if idx < 0 || idx >= len(entries) {
		return "", false
	}
	return entries[idx].Descriptor.ID, true
}

// entryRows is the number of drawer rows available for entries, or 0 when
// the height is unknown.
func entryRows(g layout.Geometry) int {
	if g.BodyHeight <= 0 {
		return 0
	}
	rows := g.BodyHeight - drawerHeaderRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// drawerOffset keeps the focused entry inside the visible window.
func drawerOffset(count, focus, rows int) int {
	if rows <= 0 || count <= rows || focus < rows {
		return 0
	}
	offset := focus - rows + 1
	if max := count - rows; offset > max {
		offset = max
	}
	return offset
}
