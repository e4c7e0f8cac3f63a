package events

import "github.com/atomicstack/wirecalc/internal/logging"

type NavTracer struct{}

type DrawerTracer struct{}

type LayoutTracer struct{}

var (
	Nav    = NavTracer{}
	Drawer = DrawerTracer{}
	Layout = LayoutTracer{}
)

// Select records that the shell forwarded a selection to its caller.
func (NavTracer) Select(id, source string) {
	logging.Trace("nav.select", map[string]interface{}{"id": id, "source": source})
}

func (NavTracer) Selected(from, to string) {
	logging.Trace("nav.selected", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Rejected(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("nav.rejected", payload)
}

func (NavTracer) Cursor(cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"cursor": cursor})
}

func (DrawerTracer) Toggle(open bool, class string) {
	logging.Trace("drawer.toggle", map[string]interface{}{"open": open, "class": class})
}

func (LayoutTracer) Resize(width, height int, class string) {
	logging.Trace("layout.resize", map[string]interface{}{"width": width, "height": height, "class": class})
}

func (LayoutTracer) Reload(breakpoint, drawerWidth int, footer bool) {
	logging.Trace("layout.reload", map[string]interface{}{
		"breakpoint":  breakpoint,
		"drawerWidth": drawerWidth,
		"footer":      footer,
	})
}

func (LayoutTracer) ReloadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("layout.reload.error", map[string]interface{}{"error": err.Error()})
}
