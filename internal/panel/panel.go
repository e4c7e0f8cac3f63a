// Package panel holds the registry of calculator panels hosted by the shell.
// Descriptors are plain data: an identifier, a display label and a symbolic
// icon key. Glyph resolution happens in the theme package.
package panel

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRegistry  = errors.New("panel registry is empty")
	ErrDuplicatePanel = errors.New("duplicate panel id")
	ErrUnknownPanel   = errors.New("unknown panel")
	ErrInvalidPanel   = errors.New("invalid panel descriptor")
)

// Icon is a symbolic reference to a glyph.
type Icon int

const (
	IconNone Icon = iota
	IconBolt
	IconVoltageDrop
	IconConduit
	IconBreaker
	IconChart
	IconBook
)

var iconNames = map[Icon]string{
	IconNone:        "none",
	IconBolt:        "bolt",
	IconVoltageDrop: "voltage-drop",
	IconConduit:     "conduit",
	IconBreaker:     "breaker",
	IconChart:       "chart",
	IconBook:        "book",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return fmt.Sprintf("icon(%d)", int(i))
}

// Descriptor identifies a single panel in the drawer.
type Descriptor struct {
	ID    string
	Label string
	Icon  Icon
}

func (d Descriptor) validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: blank id (label %q)", ErrInvalidPanel, d.Label)
	}
	if strings.TrimSpace(d.Label) == "" {
		return fmt.Errorf("%w: blank label for %q", ErrInvalidPanel, d.ID)
	}
	return nil
}
