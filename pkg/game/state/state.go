package state

import (
	"github.com/zyedidia/generic/mapset"
)

// Panel identifies an overlay panel of the in-world scene
type Panel int

// Panels
const (
	PanelInventory Panel = iota
	PanelCharacter
	PanelMini
)

// String returns the panel name
func (p Panel) String() string {
	switch p {
	case PanelInventory:
		return "inventory"
	case PanelCharacter:
		return "character"
	case PanelMini:
		return "minipanel"
	default:
		return "unknown"
	}
}

const maxMessages = 5

// UI represents the presentation state of the scene: which panels are open
// and the recent message log.
type UI struct {
	visible mapset.Set[Panel]

	Messages []string
}

// NewUI creates a UI state with every panel hidden
func NewUI() *UI {
	return &UI{
		visible:  mapset.New[Panel](),
		Messages: make([]string, 0),
	}
}

// Show makes a panel visible
func (u *UI) Show(p Panel) {
	u.visible.Put(p)
}

// Hide hides a panel
func (u *UI) Hide(p Panel) {
	u.visible.Remove(p)
}

// SetVisible shows or hides a panel
func (u *UI) SetVisible(p Panel, visible bool) {
	if visible {
		u.Show(p)
	} else {
		u.Hide(p)
	}
}

// Toggle flips a panel and returns its new visibility
func (u *UI) Toggle(p Panel) bool {
	if u.visible.Has(p) {
		u.Hide(p)
		return false
	}
	u.Show(p)
	return true
}

// IsVisible reports whether a panel is open
func (u *UI) IsVisible(p Panel) bool {
	return u.visible.Has(p)
}

// VisibleCount returns the number of open panels
func (u *UI) VisibleCount() int {
	return u.visible.Size()
}

// InventoryVisible reports whether the inventory panel covers the right half.
func (u *UI) InventoryVisible() bool {
	return u.IsVisible(PanelInventory)
}

// CharacterVisible reports whether the character panel covers the left half.
func (u *UI) CharacterVisible() bool {
	return u.IsVisible(PanelCharacter)
}

// AddMessage adds a message to the scene's message log
func (u *UI) AddMessage(msg string) {
	u.Messages = append(u.Messages, msg)

	// Keep only the last maxMessages
	if len(u.Messages) > maxMessages {
		u.Messages = u.Messages[len(u.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (u *UI) ClearMessages() {
	u.Messages = make([]string, 0)
}
