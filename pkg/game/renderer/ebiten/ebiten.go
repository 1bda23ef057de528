// Package ebiten runs the in-world scene in an Ebiten window.
package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"westmarch/pkg/game/scene"
)

// Renderer adapts a scene to ebiten.Game.
type Renderer struct {
	scene *scene.Scene

	// Logical screen size; the scene geometry is designed for 800x600
	windowWidth  int
	windowHeight int
	title        string

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	cachedSansFace *text.GoTextFace
	cachedBarFace  *text.GoTextFace

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Reused buffer for just-pressed keys
	keys []ebiten.Key
}

// New creates a renderer for the scene
func New(s *scene.Scene, width, height int, title string) (*Renderer, error) {
	src, err := loadSansFontSource()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		scene:          s,
		windowWidth:    width,
		windowHeight:   height,
		title:          title,
		sansFontSource: src,
	}, nil
}

// Run opens the window and blocks until it closes or the scene asks to quit.
func (e *Renderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	log.Printf("Starting scene (%dx%d)", e.windowWidth, e.windowHeight)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Layout returns the scene's fixed logical screen size (Ebiten interface)
func (e *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
