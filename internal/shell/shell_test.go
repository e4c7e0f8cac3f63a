package shell

import (
	"strings"
	"testing"

	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/panel"
	"github.com/atomicstack/wirecalc/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, descs ...panel.Descriptor) *Shell {
	t.Helper()
	if len(descs) == 0 {
		return New(panel.Default(), WithStyles(theme.Plain()))
	}
	reg, err := panel.NewRegistry(descs...)
	require.NoError(t, err)
	return New(reg, WithStyles(theme.Plain()))
}

func frameFor(width, height int, drawerOpen bool) Frame {
	return Frame{
		Geometry: layout.Compute(width, height, drawerOpen, layout.Options{}),
		Focus:    -1,
	}
}

func selectedIDs(entries []Entry) []string {
	var ids []string
	for _, e := range entries {
		if e.Selected {
			ids = append(ids, e.Descriptor.ID)
		}
	}
	return ids
}

func TestEntriesHighlightOnlyActivePanel(t *testing.T) {
	s := newTestShell(t)
	entries := s.Entries("voltage-drop", -1)
	require.Len(t, entries, panel.Default().Len())
	assert.Equal(t, []string{"voltage-drop"}, selectedIDs(entries))
	assert.Equal(t, "wire-calc", entries[0].Descriptor.ID)
}

func TestEntriesUnknownActiveHighlightsNothing(t *testing.T) {
	s := newTestShell(t)
	assert.Empty(t, selectedIDs(s.Entries("no-such-panel", -1)))
	assert.Empty(t, selectedIDs(s.Entries("", -1)))
}

func TestEntriesMarkFocus(t *testing.T) {
	s := newTestShell(t)
	entries := s.Entries("wire-calc", 2)
	for i, e := range entries {
		assert.Equal(t, i == 2, e.Focused, "entry %d", i)
	}
}

func TestSelectInvokesCallbackOnce(t *testing.T) {
	s := newTestShell(t)
	var calls []string
	type picked struct{ id string }
	cmd := s.Select("voltage-drop", func(id string) tea.Cmd {
		calls = append(calls, id)
		return func() tea.Msg { return picked{id: id} }
	})
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"voltage-drop"}, calls)
	assert.Equal(t, picked{id: "voltage-drop"}, cmd())
}

func TestSelectDoesNotValidate(t *testing.T) {
	s := newTestShell(t)
	var got string
	s.Select("not-registered", func(id string) tea.Cmd {
		got = id
		return nil
	})
	assert.Equal(t, "not-registered", got)
}

func TestSelectNilCallback(t *testing.T) {
	s := newTestShell(t)
	assert.Nil(t, s.Select("wire-calc", nil))
}

func TestRenderWideShowsDrawerBesideContent(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(120, 12, false)
	out := s.Render("hello", "wire-calc", frame)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	for i, line := range lines {
		assert.Equal(t, 120, ansi.StringWidth(line), "line %d", i)
	}
	assert.NotContains(t, lines[0], menuToggleGlyph)
	assert.Contains(t, lines[0], DefaultTitle)
	assert.Contains(t, lines[0], "· Wire Size Calculator")

	assert.Contains(t, lines[1], drawerHeading)
	assert.True(t, strings.HasPrefix(ansi.TruncateLeft(lines[1], 30, ""), "hello"))
	assert.True(t, strings.HasPrefix(lines[2], "▌ ↯ Wire Size Calculator"))
	assert.True(t, strings.HasPrefix(lines[3], "  ↘ Voltage Drop Calculator"))
}

func TestRenderNarrowClosedHidesDrawer(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(60, 10, false)
	out := s.Render("hello", "wire-calc", frame)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)

	assert.Contains(t, lines[0], menuToggleGlyph)
	assert.NotContains(t, out, drawerHeading)
	assert.True(t, strings.HasPrefix(lines[1], "hello"))
	assert.Equal(t, 60, ansi.StringWidth(lines[1]))
}

func TestRenderNarrowOpenOverlaysContent(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(60, 10, true)
	content := strings.Repeat("x", 60)
	out := s.Render(content, "wire-calc", frame)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)

	assert.Contains(t, lines[1], drawerHeading)
	assert.Equal(t, 60, ansi.StringWidth(lines[1]))
	// content keeps its full width; only the covered cells are hidden
	assert.Equal(t, strings.Repeat("x", 30), ansi.TruncateLeft(lines[1], 30, ""))
	assert.Equal(t, 60, frame.Geometry.ContentWidth)
}

func TestRenderUnknownActiveID(t *testing.T) {
	s := newTestShell(t)
	out := s.Render("", "missing", frameFor(120, 12, false))
	assert.NotContains(t, out, markerSelected)
	assert.NotContains(t, out, topBarSeparator)
	assert.Contains(t, out, "Wire Size Calculator")
}

func TestRenderClipsContentToRegion(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(100, 4, false)
	content := strings.Repeat("y", 200) + "\nline2\nline3\nline4\nline5"
	out := s.Render(content, "wire-calc", frame)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 100, ansi.StringWidth(line))
	}
	assert.NotContains(t, out, "line4")
}

func TestRenderUnknownSize(t *testing.T) {
	s := newTestShell(t)
	out := s.Render("a\nb", "wire-calc", frameFor(0, 0, false))
	lines := strings.Split(out, "\n")
	// top bar + header + one row per panel
	assert.Len(t, lines, 1+drawerHeaderRows+panel.Default().Len())
}

func TestRenderFooter(t *testing.T) {
	s := newTestShell(t)
	frame := Frame{
		Geometry: layout.Compute(120, 10, false, layout.Options{FooterRows: 1}),
		Focus:    -1,
		Footer:   []string{"? help"},
	}
	lines := strings.Split(s.Render("", "wire-calc", frame), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[9], "? help"))
}

func TestRenderFocusMarker(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(120, 12, false)
	frame.Focus = 1
	lines := strings.Split(s.Render("", "wire-calc", frame), "\n")
	assert.True(t, strings.HasPrefix(lines[3], markerFocused+" ↘ Voltage Drop Calculator"))
}

func TestRenderFilterNarrowsDrawer(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(120, 12, false)
	frame.Filter = "conduit"
	out := s.Render("", "wire-calc", frame)
	assert.Contains(t, out, "/conduit")
	assert.Contains(t, out, "Conduit Fill Calculator")
	assert.NotContains(t, out, "Voltage Drop Calculator")

	id, ok := s.EntryAt(3, 2, frame)
	require.True(t, ok)
	assert.Equal(t, "conduit-fill", id)
}

func TestRenderFilterWithoutMatches(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(120, 12, false)
	frame.Filter = "zzzz"
	assert.Contains(t, s.Render("", "wire-calc", frame), "No matches")
}

func TestRenderLongLabelFitsDrawer(t *testing.T) {
	s := newTestShell(t, panel.Descriptor{
		ID:    "long",
		Label: strings.Repeat("Very Long Label ", 6),
		Icon:  panel.IconBook,
	})
	lines := strings.Split(s.Render("", "long", frameFor(120, 6, false)), "\n")
	assert.Equal(t, 120, ansi.StringWidth(lines[2]))
	assert.Contains(t, lines[2], "…")
}

func TestRenderAppliesGlyphStyle(t *testing.T) {
	styles := theme.Plain()
	marked := lipgloss.NewStyle().Transform(func(s string) string {
		return "<" + strings.TrimSpace(s) + ">"
	})
	styles.Glyph = &marked
	reg, err := panel.NewRegistry(panel.Descriptor{ID: "wire-calc", Label: "Wire Size Calculator", Icon: panel.IconBolt})
	require.NoError(t, err)
	s := New(reg, WithStyles(styles))

	lines := strings.Split(s.Render("", "wire-calc", frameFor(120, 6, false)), "\n")
	assert.Contains(t, lines[2], "<"+theme.Glyph(panel.IconBolt)+">Wire Size Calculator")
}

func TestEntryAt(t *testing.T) {
	s := newTestShell(t)
	wide := frameFor(120, 12, false)

	id, ok := s.EntryAt(5, 2, wide)
	require.True(t, ok)
	assert.Equal(t, "wire-calc", id)

	id, ok = s.EntryAt(0, 3, wide)
	require.True(t, ok)
	assert.Equal(t, "voltage-drop", id)

	_, ok = s.EntryAt(5, 1, wide)
	assert.False(t, ok, "drawer header")
	_, ok = s.EntryAt(5, 0, wide)
	assert.False(t, ok, "top bar")
	_, ok = s.EntryAt(40, 2, wide)
	assert.False(t, ok, "content region")
	_, ok = s.EntryAt(5, 11, wide)
	assert.False(t, ok, "past last entry")

	_, ok = s.EntryAt(5, 2, frameFor(60, 12, false))
	assert.False(t, ok, "closed overlay")

	id, ok = s.EntryAt(5, 2, frameFor(60, 12, true))
	require.True(t, ok)
	assert.Equal(t, "wire-calc", id)
}

func TestDrawerScrollsToFocus(t *testing.T) {
	s := newTestShell(t)
	frame := frameFor(120, 5, false) // 4 body rows, 3 entry rows
	frame.Focus = 5
	lines := strings.Split(s.Render("", "wire-calc", frame), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "  ⊗ DC Breaker Sizing"))
	assert.True(t, strings.HasPrefix(lines[4], markerFocused+" ▤ IEC Reference Charts"))

	id, ok := s.EntryAt(1, 2, frame)
	require.True(t, ok)
	assert.Equal(t, "dc-breaker", id)
}

func TestWithTitle(t *testing.T) {
	reg := panel.Default()
	assert.Equal(t, "Amps", New(reg, WithTitle("Amps")).Title())
	assert.Equal(t, DefaultTitle, New(reg, WithTitle("")).Title())
	assert.Same(t, reg, New(reg).Registry())
}
