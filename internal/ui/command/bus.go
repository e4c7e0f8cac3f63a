package command

import (
	"fmt"

	"github.com/atomicstack/wirecalc/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes a navigation intent raised by the drawer.
type Request struct {
	ID      string
	Source  string
	Handler func(id string) tea.Msg
}

// Bus turns navigation requests into Bubble Tea commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request handler into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Source)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Source)
			return nil
		}
		msg := req.Handler(req.ID)
		events.Command.Result(req.ID, req.Source, fmt.Sprintf("%T", msg))
		return msg
	}
}
