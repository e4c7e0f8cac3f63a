package shell

import (
	"strings"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	menuToggleGlyph  = "≡"
	topBarSeparator  = " · "
	drawerBorderRune = "│"

	markerSelected = "▌"
	markerFocused  = "›"
	markerNone     = " "
)

// Render draws the whole screen: top bar, body (drawer and content) and any
// footer lines. content is treated as opaque text and only clipped or padded
// to fit the content region.
func (s *Shell) Render(content, activeID string, frame Frame) string {
	g := frame.Geometry
	rows := make([]string, 0, g.Height+1)
	rows = append(rows, s.renderTopBar(activeID, g))
	rows = append(rows, s.renderBody(content, activeID, frame)...)
	rows = append(rows, renderFooter(frame.Footer, g)...)
	return strings.Join(rows, "\n")
}

func (s *Shell) renderTopBar(activeID string, g layout.Geometry) string {
	var b strings.Builder
	b.WriteString(theme.Render(s.styles.TopBar, " "))
	if g.Class == layout.Narrow {
		b.WriteString(theme.Render(s.styles.MenuToggle, menuToggleGlyph))
		b.WriteString(theme.Render(s.styles.TopBar, " "))
	}
	b.WriteString(theme.Render(s.styles.TopBarTitle, s.title))
	if d, ok := s.registry.Find(activeID); ok {
		b.WriteString(theme.Render(s.styles.TopBar, topBarSeparator))
		b.WriteString(theme.Render(s.styles.TopBarPanel, d.Label))
	}
	line := b.String()
	if g.Width <= 0 {
		return line
	}
	if w := ansi.StringWidth(line); w > g.Width {
		return ansi.Truncate(line, g.Width, "…")
	} else if w < g.Width {
		line += theme.Render(s.styles.TopBar, strings.Repeat(" ", g.Width-w))
	}
	return line
}

func (s *Shell) renderBody(content, activeID string, frame Frame) []string {
	g := frame.Geometry
	var drawer []string
	if g.DrawerVisible {
		drawer = s.renderDrawer(activeID, frame)
	}

	contentLines := splitLines(content)
	height := g.BodyHeight
	if height <= 0 {
		height = len(contentLines)
		if len(drawer) > height {
			height = len(drawer)
		}
	}

	rows := make([]string, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = fitWidth(line, g.ContentWidth)
		switch {
		case !g.DrawerVisible:
			rows[i] = line
		case g.Overlay:
			// The overlay covers the first DrawerWidth cells of the content
			// row; the content region keeps its full width underneath.
			rows[i] = drawerRow(drawer, i, g.DrawerWidth) + ansi.TruncateLeft(line, g.DrawerWidth, "")
		default:
			rows[i] = drawerRow(drawer, i, g.DrawerWidth) + line
		}
	}
	return rows
}

func drawerRow(drawer []string, i, width int) string {
	if i < len(drawer) {
		return drawer[i]
	}
	return strings.Repeat(" ", width)
}

// renderDrawer returns one fixed-width line per drawer row.
func (s *Shell) renderDrawer(activeID string, frame Frame) []string {
	g := frame.Geometry
	inner := g.DrawerWidth - 1
	border := theme.Render(s.styles.DrawerBorder, drawerBorderRune)
	if inner < 1 {
		inner = g.DrawerWidth
		border = ""
	}

	entries := s.visibleEntries(activeID, frame)
	rows := entryRows(g)
	offset := drawerOffset(len(entries), frame.Focus, rows)
	if rows > 0 && offset+rows < len(entries) {
		entries = entries[offset : offset+rows]
	} else {
		entries = entries[offset:]
	}

	lines := make([]string, 0, drawerHeaderRows+len(entries))
	lines = append(lines, theme.Render(s.styles.DrawerHeader, padRight(clip(drawerHeader(frame.Filter), inner), inner))+border)
	if len(entries) == 0 {
		lines = append(lines, theme.Render(s.styles.Item, padRight(clip("  No matches", inner), inner))+border)
	}
	for _, e := range entries {
		lines = append(lines, s.renderEntry(e, inner, frame.Focus >= 0)+border)
	}
	if g.BodyHeight > 0 {
		for len(lines) < g.BodyHeight {
			lines = append(lines, theme.Render(s.styles.Drawer, strings.Repeat(" ", inner))+border)
		}
		if len(lines) > g.BodyHeight {
			lines = lines[:g.BodyHeight]
		}
	}
	return lines
}

func drawerHeader(filter string) string {
	if filter != "" {
		return " /" + filter
	}
	return " " + drawerHeading
}

func (s *Shell) renderEntry(e Entry, width int, showFocus bool) string {
	marker, markerStyle, textStyle := markerNone, s.styles.ItemIndicator, s.styles.Item
	switch {
	case e.Selected:
		marker, markerStyle, textStyle = markerSelected, s.styles.SelectedItemIndicator, s.styles.SelectedItem
	case e.Focused && showFocus:
		marker, markerStyle = markerFocused, s.styles.FocusedItemIndicator
	}
	if e.Focused && showFocus && e.Selected {
		markerStyle = s.styles.FocusedItemIndicator
	}
	icon := " " + theme.Glyph(e.Descriptor.Icon) + " "
	textWidth := width - ansi.StringWidth(marker)
	if textWidth < 0 {
		textWidth = 0
	}
	row := theme.Render(markerStyle, marker)
	iconWidth := ansi.StringWidth(icon)
	if textWidth <= iconWidth {
		return row + theme.Render(textStyle, padRight(clip(icon+e.Descriptor.Label, textWidth), textWidth))
	}
	labelWidth := textWidth - iconWidth
	return row + theme.Render(s.glyphStyle(textStyle), icon) +
		theme.Render(textStyle, padRight(clip(e.Descriptor.Label, labelWidth), labelWidth))
}

// glyphStyle layers the glyph colour over the row style so the row
// background stays continuous.
func (s *Shell) glyphStyle(row *lipgloss.Style) *lipgloss.Style {
	if s.styles.Glyph == nil {
		return row
	}
	if row == nil {
		return s.styles.Glyph
	}
	style := s.styles.Glyph.Inherit(*row)
	return &style
}

func renderFooter(lines []string, g layout.Geometry) []string {
	n := g.FooterRows
	if n == 0 {
		n = len(lines)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(lines) {
			out[i] = fitWidth(lines[i], g.Width)
		} else {
			out[i] = fitWidth("", g.Width)
		}
	}
	return out
}

func splitLines(content string) []string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// fitWidth clips or pads line to exactly width cells. Width <= 0 leaves the
// line untouched.
func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "…")
	}
	return line + strings.Repeat(" ", width-w)
}

// clip shortens plain text to width cells.
func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func padRight(text string, width int) string {
	if w := ansi.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
