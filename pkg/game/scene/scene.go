// Package scene composes the in-world scene: panels, the control bar toggles,
// the movement translator and the local map, advanced once per tick.
package scene

import (
	"log"

	"github.com/leonelquinteros/gotext"

	engineinput "westmarch/pkg/engine/input"
	"westmarch/pkg/game/config"
	"westmarch/pkg/game/movement"
	"westmarch/pkg/game/session"
	"westmarch/pkg/game/state"
	"westmarch/pkg/game/ui"
	"westmarch/pkg/game/world"
)

// Scene is the in-world game scene. It is driven from a single goroutine.
type Scene struct {
	ui         *state.UI
	runButton  *ui.ToggleButton
	menuButton *ui.ToggleButton
	events     *ui.Events

	// Mini panel buttons mirror the side panels they open
	miniCharacter *ui.ToggleButton
	miniInventory *ui.ToggleButton

	translator *movement.Translator
	session    *session.Manager
	world      *world.Map

	run  bool
	quit bool
}

// New builds a scene that sends movement requests to sess and draws m.
func New(sess *session.Manager, m *world.Map, runByDefault bool) *Scene {
	if sess == nil {
		sess = session.NewManager()
	}
	s := &Scene{
		ui:         state.NewUI(),
		runButton:  ui.NewToggleButton(ui.ButtonRun),
		menuButton: ui.NewToggleButton(ui.ButtonMenu),
		events:     ui.NewEvents(),
		translator: movement.NewTranslator(sess),
		session:    sess,
		world:      m,

		miniCharacter: ui.NewToggleButton(ui.ButtonCharacter),
		miniInventory: ui.NewToggleButton(ui.ButtonInventory),
	}
	s.events.Watch(s.runButton)
	s.events.Watch(s.menuButton)
	s.events.Watch(s.miniCharacter)
	s.events.Watch(s.miniInventory)

	if runByDefault {
		s.runButton.SetToggled(true)
	}
	s.applyToggles()
	return s
}

// Update advances the scene by one tick.
func (s *Scene) Update(ms int64, frame engineinput.Frame) {
	for _, intent := range engineinput.IntentsFor(frame.Device, frame.Codes) {
		if config.Current().Logging.Debug {
			log.Printf("Intent: %s", engineinput.ActionName(intent.Action))
		}
		s.processIntent(intent)
	}
	if s.quit {
		return
	}

	s.runButton.Update(frame.Pointer)
	s.menuButton.Update(frame.Pointer)
	if s.ui.IsVisible(state.PanelMini) {
		s.miniCharacter.Update(frame.Pointer)
		s.miniInventory.Update(frame.Pointer)
	}
	s.applyToggles()

	s.translator.Tick(movement.Input{
		Pointer: frame.Pointer,
		Panels:  s.ui,
		Run:     s.run,
	})

	if s.world != nil {
		s.world.Update(ms)
	}
}

func (s *Scene) processIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionToggleRun:
		s.runButton.Toggle()
	case engineinput.ActionToggleMenu:
		s.menuButton.Toggle()
	case engineinput.ActionToggleInventory:
		s.miniInventory.Toggle()
	case engineinput.ActionToggleCharacter:
		s.miniCharacter.Toggle()
	case engineinput.ActionQuit:
		s.quit = true
	}
}

// applyToggles drains button notifications into scene state.
func (s *Scene) applyToggles() {
	s.events.Drain(func(ev ui.ToggleEvent) {
		switch ev.Button {
		case ui.ButtonRun:
			s.run = ev.On
			if config.Current().Logging.Debug {
				log.Printf("Run toggle: %v", ev.On)
			}
			if ev.On {
				s.ui.AddMessage(gotext.Get("RUN_ON"))
			} else {
				s.ui.AddMessage(gotext.Get("RUN_OFF"))
			}
		case ui.ButtonMenu:
			s.ui.SetVisible(state.PanelMini, ev.On)
		case ui.ButtonCharacter:
			s.ui.SetVisible(state.PanelCharacter, ev.On)
		case ui.ButtonInventory:
			s.ui.SetVisible(state.PanelInventory, ev.On)
		}
	})
}

// UI returns the panel and message state.
func (s *Scene) UI() *state.UI { return s.ui }

// RunButton returns the run toggle of the control bar.
func (s *Scene) RunButton() *ui.ToggleButton { return s.runButton }

// MenuButton returns the menu toggle of the control bar.
func (s *Scene) MenuButton() *ui.ToggleButton { return s.menuButton }

// MiniCharacterButton returns the mini panel's character button.
func (s *Scene) MiniCharacterButton() *ui.ToggleButton { return s.miniCharacter }

// MiniInventoryButton returns the mini panel's inventory button.
func (s *Scene) MiniInventoryButton() *ui.ToggleButton { return s.miniInventory }

// World returns the local map, which may be nil.
func (s *Scene) World() *world.Map { return s.world }

// Session returns the session the scene reports to.
func (s *Scene) Session() *session.Manager { return s.session }

// Running reports the run toggle as last applied.
func (s *Scene) Running() bool { return s.run }

// QuitRequested reports whether the player asked to leave.
func (s *Scene) QuitRequested() bool { return s.quit }

// Ready reports whether a player is focused; nothing is drawn before that.
func (s *Scene) Ready() bool {
	return s.world != nil && s.world.FocusedPlayerID() != 0
}
