// Package iso maps screen-space pointer offsets onto the 16 movement
// directions of the 2:1 isometric (diamond) projection.
package iso

import (
	"fmt"
	"math"
)

// Direction is one of 16 evenly spaced movement directions in iso tile space.
// Index n names the angular slot [n*22.5, (n+1)*22.5) degrees measured from
// the +X tile axis (screen down-right), growing clockwise on screen. The
// heading of a direction is the centre of its slot, so direction 0 heads
// 11.25 degrees off the +X axis.
type Direction int

// NoDirection marks a direction that has not been recorded yet.
const NoDirection Direction = -1

// DirectionCount is the number of discrete movement directions.
const DirectionCount = 16

// SlotDegrees is the angular width of one direction slot.
const SlotDegrees = 360.0 / DirectionCount

// Projection constants for the movement control area of the 800x600 scene.
const (
	AnchorX = 400 // screen X of the movement reference point
	AnchorY = 300 // screen Y of the movement reference point
	TileRun = 60  // horizontal screen run of one tile axis
	TileHop = 40  // vertical screen run of one tile axis
)

const rad2Deg = 180.0 / math.Pi

// IsValid returns true if the direction is one of the 16 slots
func (d Direction) IsValid() bool {
	return d >= 0 && d < DirectionCount
}

// String returns the slot index, or "unset" for NoDirection
func (d Direction) String() string {
	if !d.IsValid() {
		return "unset"
	}
	return fmt.Sprintf("dir%02d", int(d))
}

// Degrees returns the angle at the centre of the slot.
func (d Direction) Degrees() float64 {
	return float64(d)*SlotDegrees + SlotDegrees/2
}

// Vector returns the unit vector in tile space at the centre of the slot.
// Invalid directions return the zero vector.
func (d Direction) Vector() (tx, ty float64) {
	if !d.IsValid() {
		return 0, 0
	}
	rad := d.Degrees() / rad2Deg
	return math.Cos(rad), math.Sin(rad)
}

// ToTile converts a screen offset from the anchor into tile-space coordinates.
func ToTile(mx, my float64) (tx, ty float64) {
	tx = (mx/TileRun + my/TileHop) / 2
	ty = (my/TileHop - mx/TileRun) / 2
	return tx, ty
}

// ToScreen is the inverse of ToTile.
func ToScreen(tx, ty float64) (mx, my float64) {
	return (tx - ty) * TileRun, (tx + ty) * TileHop
}

// Angle returns the tile-space angle of a screen offset, rounded to whole
// degrees and normalised to [0, 360). A zero offset yields 0.
func Angle(mx, my float64) int {
	tx, ty := ToTile(mx, my)
	deg := int(math.Round(math.Atan2(ty, tx) * rad2Deg))
	if deg < 0 {
		deg += 360
	}
	// Rounding can carry 359.5 up to a full turn.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Slot maps a whole-degree angle in [0, 360) to its direction.
// Slot boundaries sit on multiples of 22.5 degrees, so 22 maps to 0 and 23 to 1.
func Slot(deg int) Direction {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return Direction(deg * 2 / 45)
}

// Quantize maps a pointer position to a direction. xOffset shifts the anchor
// horizontally; a pointer exactly on the shifted anchor yields direction 0.
func Quantize(px, py, xOffset int) Direction {
	mx := float64(px-AnchorX) - float64(xOffset)
	my := float64(py - AnchorY)
	return Slot(Angle(mx, my))
}
