package panel

import (
	"strings"

	"github.com/atomicstack/wirecalc/internal/format/table"
)

// Content renders a panel body into a region of the given size. Width or
// height of 0 means the dimension is unknown.
type Content interface {
	View(width, height int) string
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func(width, height int) string

func (f ContentFunc) View(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}

// Router maps panel IDs to the content that renders them.
type Router map[string]Content

// Resolve returns the content registered for d, or a placeholder.
func (r Router) Resolve(d Descriptor) Content {
	if r != nil {
		if c, ok := r[d.ID]; ok && c != nil {
			return c
		}
	}
	return Placeholder(d)
}

// Placeholder describes a panel whose calculator has not been linked.
func Placeholder(d Descriptor) Content {
	return ContentFunc(func(width, height int) string {
		lines := []string{d.Label, ""}
		lines = append(lines, table.FormatWithHeader(
			[]string{"field", "value"},
			[][]string{
				{"id", d.ID},
				{"icon", d.Icon.String()},
			},
			[]table.Alignment{table.AlignRight, table.AlignLeft},
		)...)
		lines = append(lines, "", "No calculator is linked to this panel.")
		return strings.Join(lines, "\n")
	})
}
