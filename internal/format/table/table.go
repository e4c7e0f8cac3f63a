package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each column.
// Cells may carry ANSI styling; widths are measured on visible cells only.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(row, widths, alignments)
	}
	return out
}

// FormatWithHeader formats header followed by a rule line and the rows.
func FormatWithHeader(header []string, rows [][]string, alignments []Alignment) []string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)
	formatted := Format(all, alignments)
	widths := columnWidths(all)
	rules := make([]string, len(widths))
	for c, w := range widths {
		rules[c] = strings.Repeat("─", w)
	}
	out := make([]string, 0, len(formatted)+1)
	out = append(out, formatted[0], strings.Join(rules, columnGap))
	return append(out, formatted[1:]...)
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString(columnGap)
		}
		pad := widths[c] - cellWidth(cell)
		if pad < 0 {
			pad = 0
		}
		if c < len(alignments) && alignments[c] == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		// the last left-aligned column is not padded
		if c < len(row)-1 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}
