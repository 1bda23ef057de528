// Package world is the client's local view of the map: the focused player and
// its motion as last requested from the session.
package world

import (
	"westmarch/pkg/engine/iso"
	"westmarch/pkg/game/movement"
)

// Player speeds in tiles per second.
const (
	WalkSpeed = 2.0
	RunSpeed  = 4.0
)

// Map tracks the focused player in tile coordinates.
type Map struct {
	focusedPlayerID int

	x, y   float64
	vx, vy float64
	facing iso.Direction
	kind   movement.Kind
}

// NewMap creates an empty map with no focused player
func NewMap() *Map {
	return &Map{facing: iso.NoDirection}
}

// Spawn places the focused player at a tile position.
func (m *Map) Spawn(playerID int, x, y float64) {
	m.focusedPlayerID = playerID
	m.x, m.y = x, y
	m.vx, m.vy = 0, 0
	m.kind = movement.Stopped
}

// FocusedPlayerID returns 0 until a player has been spawned.
func (m *Map) FocusedPlayerID() int {
	return m.focusedPlayerID
}

// MoveRequest applies a movement command to the local player.
func (m *Map) MoveRequest(dir iso.Direction, kind movement.Kind) {
	m.facing = dir
	m.kind = kind

	speed := 0.0
	switch kind {
	case movement.Walking:
		speed = WalkSpeed
	case movement.Running:
		speed = RunSpeed
	}
	tx, ty := dir.Vector()
	m.vx, m.vy = tx*speed, ty*speed
}

// Update advances the player by ms milliseconds.
func (m *Map) Update(ms int64) {
	if m.focusedPlayerID == 0 {
		return
	}
	seconds := float64(ms) / 1000
	m.x += m.vx * seconds
	m.y += m.vy * seconds
}

// Player returns the focused player's tile position.
func (m *Map) Player() (x, y float64) {
	return m.x, m.y
}

// Facing returns the last requested direction.
func (m *Map) Facing() iso.Direction {
	return m.facing
}

// Kind returns the last requested movement kind.
func (m *Map) Kind() movement.Kind {
	return m.kind
}
