package theme

import "github.com/atomicstack/wirecalc/internal/panel"

const fallbackGlyph = "•"

var glyphs = map[panel.Icon]string{
	panel.IconBolt:        "↯",
	panel.IconVoltageDrop: "↘",
	panel.IconConduit:     "○",
	panel.IconBreaker:     "⊗",
	panel.IconChart:       "▤",
	panel.IconBook:        "§",
}

// Glyph resolves a symbolic panel icon to the glyph drawn in the drawer.
func Glyph(icon panel.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return fallbackGlyph
}
