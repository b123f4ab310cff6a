package command

import (
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Router is the part of a menu registry the bus dispatches through.
type Router interface {
	HandleActivation(evt menu.ActivationEvent) int
}

// Result reports how one activation was routed.
type Result struct {
	Event     menu.ActivationEvent
	Activated int
}

// Bus routes activations into a registry while emitting trace logs.
type Bus struct {
	router Router
}

// New initialises a command bus over router.
func New(router Router) *Bus {
	return &Bus{router: router}
}

// Dispatch routes evt immediately, on the caller's goroutine, and returns a
// command delivering the Result. Registries are single-threaded, so routing
// must not move into the command itself.
func (b *Bus) Dispatch(evt menu.ActivationEvent) tea.Cmd {
	events.Command.Queue(evt.Title, evt.Slot)
	if b == nil || b.router == nil {
		events.Command.Skip(evt.Title, evt.Slot)
		return nil
	}
	activated := b.router.HandleActivation(evt)
	if activated == 0 {
		events.Command.NoOp(evt.Title, evt.Slot)
	} else {
		events.Command.Result(evt.Title, evt.Slot, activated)
	}
	result := Result{Event: evt, Activated: activated}
	return func() tea.Msg { return result }
}
