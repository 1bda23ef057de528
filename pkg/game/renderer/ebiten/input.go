package ebiten

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "westmarch/pkg/engine/input"
)

// Update polls input and advances the scene by one tick (Ebiten interface)
func (e *Renderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.scene.Update(tickMillis(), e.pollFrame())

	if e.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// pollFrame reads pointer and keyboard state into one consistent frame.
func (e *Renderer) pollFrame() engineinput.Frame {
	x, y := ebiten.CursorPosition()
	frame := engineinput.Frame{
		Device: engineinput.DeviceKeyboard,
		Pointer: engineinput.PointerSample{
			X:        x,
			Y:        y,
			LeftDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		},
	}

	// An unfocused window keeps reporting the last cursor position; treat it
	// as released so the player stops instead of walking on.
	if !ebiten.IsFocused() {
		frame.Pointer.LeftDown = false
		return frame
	}

	// Codes are lower-cased key names ("r", "escape", "space") so any key
	// can be bound from the config.
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		frame.Codes = append(frame.Codes, strings.ToLower(k.String()))
	}
	return frame
}

func tickMillis() int64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return int64(1000 / tps)
}
