// Package movement turns per-tick pointer state into movement commands for
// the session layer.
package movement

import (
	"fmt"

	"westmarch/pkg/engine/input"
	"westmarch/pkg/engine/iso"
)

// Kind is the speed classification of a movement command.
type Kind int

const (
	Stopped Kind = iota
	Walking
	Running
)

// String returns the string representation of a movement kind
func (k Kind) String() string {
	switch k {
	case Stopped:
		return "Stopped"
	case Walking:
		return "Walking"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Command is a single movement request.
type Command struct {
	Direction iso.Direction
	Kind      Kind
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Kind, c.Direction)
}

// Sink receives movement commands. Calls are fire-and-forget.
type Sink interface {
	MoveRequest(dir iso.Direction, kind Kind)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(dir iso.Direction, kind Kind)

func (f SinkFunc) MoveRequest(dir iso.Direction, kind Kind) { f(dir, kind) }

// PanelState exposes which side panels currently cover the play area.
type PanelState interface {
	InventoryVisible() bool
	CharacterVisible() bool
}

// Panels is a fixed PanelState.
type Panels struct {
	Inventory bool
	Character bool
}

func (p Panels) InventoryVisible() bool { return p.Inventory }
func (p Panels) CharacterVisible() bool { return p.Character }

// Input is the snapshot evaluated by one tick.
type Input struct {
	Pointer input.PointerSample
	Panels  PanelState
	Run     bool
}
