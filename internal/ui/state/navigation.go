package state

import (
	"fmt"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/panel"
)

// Navigation tracks which panel is active, whether the overlay drawer is
// open, and the keyboard cursor within the drawer.
//
// ActiveID always names a registered panel. Cursor indexes Visible(), which
// is the registry narrowed by Filter.
type Navigation struct {
	ActiveID   string
	DrawerOpen bool
	Cursor     int
	Filter     string
	Class      layout.Class

	registry *panel.Registry
	visible  []panel.Descriptor
}

// NewNavigation creates navigation state with defaultID active.
func NewNavigation(reg *panel.Registry, defaultID string) (*Navigation, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, panel.ErrEmptyRegistry
	}
	idx := reg.IndexOf(defaultID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", panel.ErrUnknownPanel, defaultID)
	}
	n := &Navigation{
		ActiveID: defaultID,
		Cursor:   idx,
		registry: reg,
	}
	n.visible = reg.List()
	return n, nil
}

// Registry returns the registry backing this state.
func (n *Navigation) Registry() *panel.Registry {
	return n.registry
}

// Active returns the descriptor of the active panel.
func (n *Navigation) Active() panel.Descriptor {
	d, _ := n.registry.Find(n.ActiveID)
	return d
}

// Select makes id the active panel. Unknown ids are rejected and leave the
// state untouched.
func (n *Navigation) Select(id string) error {
	if !n.registry.Contains(id) {
		return fmt.Errorf("%w: %q", panel.ErrUnknownPanel, id)
	}
	n.ActiveID = id
	if idx := n.visibleIndex(id); idx >= 0 {
		n.Cursor = idx
	}
	return nil
}

// SetClass records the presentation class for the current width. Any
// transition closes the drawer so narrow layouts always start closed.
func (n *Navigation) SetClass(c layout.Class) bool {
	if n.Class == c {
		return false
	}
	n.Class = c
	n.DrawerOpen = false
	return true
}

// ToggleDrawer flips the overlay drawer. It does nothing in the wide layout
// where the drawer is permanent.
func (n *Navigation) ToggleDrawer() bool {
	if n.Class != layout.Narrow {
		return false
	}
	n.DrawerOpen = !n.DrawerOpen
	return true
}

// CloseDrawer closes the overlay drawer, reporting whether it was open.
func (n *Navigation) CloseDrawer() bool {
	if !n.DrawerOpen {
		return false
	}
	n.DrawerOpen = false
	return true
}

// DrawerVisible reports whether drawer entries are on screen.
func (n *Navigation) DrawerVisible() bool {
	return n.Class == layout.Wide || n.DrawerOpen
}

// Visible returns the drawer entries after filtering.
func (n *Navigation) Visible() []panel.Descriptor {
	dup := make([]panel.Descriptor, len(n.visible))
	copy(dup, n.visible)
	return dup
}

// Focused returns the descriptor under the cursor.
func (n *Navigation) Focused() (panel.Descriptor, bool) {
	if n.Cursor < 0 || n.Cursor >= len(n.visible) {
		return panel.Descriptor{}, false
	}
	return n.visible[n.Cursor], true
}

// SetFilter narrows the drawer and moves the cursor to the best match.
func (n *Navigation) SetFilter(query string) {
	n.Filter = query
	n.visible = panel.Filter(n.registry.List(), query)
	if query == "" {
		n.Cursor = n.visibleIndex(n.ActiveID)
		if n.Cursor < 0 {
			n.Cursor = 0
		}
		return
	}
	n.Cursor = panel.BestMatch(n.visible, query)
	if n.Cursor < 0 {
		n.Cursor = 0
	}
}

// ClearFilter restores the full drawer with the cursor on the active panel.
func (n *Navigation) ClearFilter() bool {
	if n.Filter == "" {
		return false
	}
	n.SetFilter("")
	return true
}

// Neighbour returns the id offset by delta from the active panel in
// registry order, wrapping at both ends.
func (n *Navigation) Neighbour(delta int) string {
	count := n.registry.Len()
	idx := n.registry.IndexOf(n.ActiveID)
	if idx < 0 {
		idx = 0
	}
	next := ((idx+delta)%count + count) % count
	d, _ := n.registry.At(next)
	return d.ID
}

func (n *Navigation) visibleIndex(id string) int {
	for i, d := range n.visible {
		if d.ID == id {
			return i
		}
	}
	return -1
}
