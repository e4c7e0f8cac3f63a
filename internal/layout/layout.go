// Package layout classifies the terminal width and derives the geometry of
// the shell regions. Everything here is a pure function of its inputs so the
// presentation mode is recomputed on every resize rather than cached.
package layout

const (
	DefaultBreakpoint  = 100
	DefaultDrawerWidth = 30
	TopBarRows         = 1
)

// Class is the presentation mode selected by the terminal width.
type Class int

const (
	// Wide keeps the drawer permanently visible beside the content.
	Wide Class = iota
	// Narrow hides the drawer behind a toggle and draws it as an overlay.
	Narrow
)

func (c Class) String() string {
	switch c {
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Classify maps a width to a Class. Unknown widths (<= 0) are Wide.
func Classify(width, breakpoint int) Class {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > 0 && width < breakpoint {
		return Narrow
	}
	return Wide
}

// Options tune the geometry calculation.
type Options struct {
	Breakpoint  int
	DrawerWidth int
	FooterRows  int
}

func (o Options) normalized() Options {
	if o.Breakpoint <= 0 {
		o.Breakpoint = DefaultBreakpoint
	}
	if o.DrawerWidth <= 0 {
		o.DrawerWidth = DefaultDrawerWidth
	}
	if o.FooterRows < 0 {
		o.FooterRows = 0
	}
	return o
}

// Geometry describes where each region of the shell is drawn. Zero widths or
// heights mean the dimension is unknown and rendering is unconstrained.
type Geometry struct {
	Class         Class
	Width         int
	Height        int
	DrawerWidth   int
	DrawerVisible bool
	Overlay       bool
	ContentX      int
	ContentWidth  int
	BodyHeight    int
	FooterRows    int
}

// Compute derives the region geometry for a terminal of width x height.
// drawerOpen only matters for the Narrow class.
func Compute(width, height int, drawerOpen bool, opts Options) Geometry {
	opts = opts.normalized()
	g := Geometry{
		Class:       Classify(width, opts.Breakpoint),
		Width:       width,
		Height:      height,
		DrawerWidth: opts.DrawerWidth,
		FooterRows:  opts.FooterRows,
	}
	if width > 0 && g.DrawerWidth > width {
		g.DrawerWidth = width
	}
	switch g.Class {
	case Narrow:
		g.DrawerVisible = drawerOpen
		g.Overlay = true
		g.ContentX = 0
		g.ContentWidth = width
	default:
		g.DrawerVisible = true
		g.ContentX = g.DrawerWidth
		if width > 0 {
			g.ContentWidth = width - g.DrawerWidth
		}
	}
	if height > 0 {
		g.BodyHeight = height - TopBarRows - opts.FooterRows
		if g.BodyHeight < 1 {
			g.BodyHeight = 1
		}
	}
	return g
}
