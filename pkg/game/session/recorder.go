package session

import (
	"westmarch/pkg/engine/iso"
	"westmarch/pkg/game/movement"
)

// Recorder keeps every request in memory.
type Recorder struct {
	commands []movement.Command
}

func (r *Recorder) MoveRequest(dir iso.Direction, kind movement.Kind) {
	r.commands = append(r.commands, movement.Command{Direction: dir, Kind: kind})
}

// Commands returns a copy of the recorded requests.
func (r *Recorder) Commands() []movement.Command {
	out := make([]movement.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Reset forgets all recorded requests.
func (r *Recorder) Reset() {
	r.commands = nil
}
