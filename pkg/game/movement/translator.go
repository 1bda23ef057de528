package movement

import (
	"westmarch/pkg/engine/iso"
)

// Screen regions that never produce movement.
const (
	BottomBarY  = 530 // pointer rows below this belong to the control bar
	PanelSplitX = 400 // side panels each cover one half of the screen
	PanelShift  = 200 // anchor shift applied per open side panel
)

// Translator maps pointer input to movement commands, emitting only on
// transitions. It is not safe for concurrent use; the scene drives it from
// its update loop.
type Translator struct {
	sink Sink

	lastKind      Kind
	lastDirection iso.Direction
}

// NewTranslator creates a translator in the Stopped state with no recorded direction
func NewTranslator(sink Sink) *Translator {
	return &Translator{
		sink:          sink,
		lastKind:      Stopped,
		lastDirection: iso.NoDirection,
	}
}

// LastKind returns the most recently emitted movement kind.
func (t *Translator) LastKind() Kind {
	return t.lastKind
}

// LastDirection returns the most recently emitted direction, or iso.NoDirection.
func (t *Translator) LastDirection() iso.Direction {
	return t.lastDirection
}

// Gated reports whether the pointer sits over a region that suppresses movement.
func Gated(in Input) bool {
	p := in.Pointer
	if p.Y > BottomBarY {
		return true
	}
	if in.Panels == nil {
		return false
	}
	if in.Panels.InventoryVisible() && p.X >= PanelSplitX {
		return true
	}
	if in.Panels.CharacterVisible() && p.X < PanelSplitX {
		return true
	}
	return false
}

// AnchorOffset returns the horizontal shift of the movement anchor. Offsets
// from both panels add, so they cancel when both are open.
func AnchorOffset(panels PanelState) int {
	if panels == nil {
		return 0
	}
	offset := 0
	if panels.InventoryVisible() {
		offset -= PanelShift
	}
	if panels.CharacterVisible() {
		offset += PanelShift
	}
	return offset
}

// Tick evaluates one input sample. It returns the emitted command, if any,
// after handing it to the sink.
func (t *Translator) Tick(in Input) (Command, bool) {
	if Gated(in) {
		return Command{}, false
	}

	dir := iso.Quantize(in.Pointer.X, in.Pointer.Y, AnchorOffset(in.Panels))

	switch {
	case in.Pointer.LeftDown && (t.lastKind == Stopped || dir != t.lastDirection):
		kind := Walking
		if in.Run {
			kind = Running
		}
		return t.emit(dir, kind), true

	case !in.Pointer.LeftDown && t.lastKind != Stopped:
		return t.emit(dir, Stopped), true
	}

	return Command{}, false
}

func (t *Translator) emit(dir iso.Direction, kind Kind) Command {
	t.lastDirection = dir
	t.lastKind = kind
	if t.sink != nil {
		t.sink.MoveRequest(dir, kind)
	}
	return Command{Direction: dir, Kind: kind}
}
