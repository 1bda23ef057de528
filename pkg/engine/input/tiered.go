package input

import (
	"fmt"
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceScript
)

// Action represents a high‑level intent in the scene.
type Action int

const (
	ActionNone Action = iota

	// Toggles
	ActionToggleRun
	ActionToggleInventory
	ActionToggleCharacter
	ActionToggleMenu

	// Meta
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "r", "escape", "menu").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Keyboard toggles are edge-triggered by the polling layer (inpututil), so
// each RawInput is already a single press.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reservedCodes can never be rebound away from their action.
var reservedCodes = map[string]bool{
	"escape": true,
	"menu":   true,
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		"r":   ActionToggleRun,
		"run": ActionToggleRun,

		"i":         ActionToggleInventory,
		"b":         ActionToggleInventory,
		"inventory": ActionToggleInventory,

		"c":         ActionToggleCharacter,
		"a":         ActionToggleCharacter,
		"character": ActionToggleCharacter,

		"escape": ActionToggleMenu,
		"menu":   ActionToggleMenu,

		"q":    ActionQuit,
		"quit": ActionQuit,
	}
}

var bindings = defaultBindings()

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentsFor maps every code of a frame to its intent, skipping unbound codes.
func IntentsFor(device Device, codes []string) []Intent {
	var out []Intent
	for _, code := range codes {
		intent := MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code}))
		if intent.Action != ActionNone {
			out = append(out, intent)
		}
	}
	return out
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionToggleRun:
		return "Toggle Run"
	case ActionToggleInventory:
		return "Toggle Inventory"
	case ActionToggleCharacter:
		return "Toggle Character"
	case ActionToggleMenu:
		return "Toggle Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help overlay doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

// actionNames are the config names accepted by ApplyBindings.
var actionNames = map[string]Action{
	"run":       ActionToggleRun,
	"inventory": ActionToggleInventory,
	"character": ActionToggleCharacter,
	"menu":      ActionToggleMenu,
	"quit":      ActionQuit,
}

// ActionByName looks up an action by its config name ("run", "inventory",
// "character", "menu" or "quit").
func ActionByName(name string) (Action, bool) {
	act, ok := actionNames[name]
	return act, ok
}

// ApplyBindings rebinds each named action to a single code. Entries are
// applied in name order; the first unknown action or reserved code stops
// the pass with an error.
func ApplyBindings(byName map[string]string) error {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		code := byName[name]
		if reservedCodes[code] {
			return fmt.Errorf("action %s: code %q is reserved", name, code)
		}
		SetSingleBinding(act, code)
	}
	return nil
}
