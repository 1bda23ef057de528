// Package ui holds the scene's interactive widgets and the queue their
// notifications travel through.
package ui

import (
	"image"

	"westmarch/pkg/engine/input"
)

// ButtonKind identifies a control bar button
type ButtonKind int

const (
	ButtonRun ButtonKind = iota
	ButtonMenu

	// Mini panel buttons, live only while the mini panel is shown
	ButtonCharacter
	ButtonInventory
)

// String returns the button name
func (k ButtonKind) String() string {
	switch k {
	case ButtonRun:
		return "run"
	case ButtonMenu:
		return "menu"
	case ButtonCharacter:
		return "character"
	case ButtonInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// Designed control bar placement for the 800x600 scene.
var (
	RunButtonLocation  = image.Pt(256, 570)
	MenuButtonLocation = image.Pt(393, 561)
	RunButtonSize      = image.Pt(18, 22)
	MenuButtonSize     = image.Pt(16, 27)
)

// Mini panel placement. The panel sits on the control bar above the menu
// button, so clicks on it never reach movement.
var (
	MiniPanelLocation           = image.Pt(325, 532)
	MiniPanelSize               = image.Pt(150, 26)
	MiniCharacterButtonLocation = image.Pt(329, 534)
	MiniInventoryButtonLocation = image.Pt(353, 534)
	MiniButtonSize              = image.Pt(20, 22)
)

// ToggleButton is a two-state button that notifies its handlers on every flip.
type ToggleButton struct {
	Kind     ButtonKind
	Location image.Point
	Size     image.Point

	toggled  bool
	wasDown  bool
	handlers []func(bool)
}

// NewToggleButton creates a button at the designed location for its kind
func NewToggleButton(kind ButtonKind) *ToggleButton {
	b := &ToggleButton{Kind: kind}
	switch kind {
	case ButtonRun:
		b.Location, b.Size = RunButtonLocation, RunButtonSize
	case ButtonMenu:
		b.Location, b.Size = MenuButtonLocation, MenuButtonSize
	case ButtonCharacter:
		b.Location, b.Size = MiniCharacterButtonLocation, MiniButtonSize
	case ButtonInventory:
		b.Location, b.Size = MiniInventoryButtonLocation, MiniButtonSize
	}
	return b
}

// OnToggle registers a handler called with the new state after each flip.
func (b *ToggleButton) OnToggle(fn func(bool)) {
	b.handlers = append(b.handlers, fn)
}

// Toggled returns the current state.
func (b *ToggleButton) Toggled() bool {
	return b.toggled
}

// Bounds returns the clickable rectangle.
func (b *ToggleButton) Bounds() image.Rectangle {
	return image.Rectangle{Min: b.Location, Max: b.Location.Add(b.Size)}
}

// Contains reports whether a screen point is on the button.
func (b *ToggleButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds())
}

// Toggle flips the button and notifies handlers.
func (b *ToggleButton) Toggle() {
	b.SetToggled(!b.toggled)
}

// SetToggled sets the state, notifying handlers only when it changes.
func (b *ToggleButton) SetToggled(on bool) {
	if b.toggled == on {
		return
	}
	b.toggled = on
	for _, fn := range b.handlers {
		fn(on)
	}
}

// Update flips the button on a press edge inside its bounds.
func (b *ToggleButton) Update(p input.PointerSample) {
	pressed := p.LeftDown && !b.wasDown
	b.wasDown = p.LeftDown
	if pressed && b.Contains(p.X, p.Y) {
		b.Toggle()
	}
}
