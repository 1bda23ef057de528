package ebiten

import "image/color"

// Color palette for the scene
var (
	colorBackground      = color.RGBA{16, 12, 10, 255}    // Near-black earth
	colorGridLine        = color.RGBA{58, 48, 38, 255}    // Dim brown tile edges
	colorPlayer          = color.RGBA{230, 200, 120, 255} // Warm gold
	colorFacing          = color.RGBA{255, 240, 190, 255} // Pale gold facing marker
	colorPanelBackground = color.RGBA{30, 24, 20, 235}    // Near-opaque panel body
	colorPanelBorder     = color.RGBA{120, 96, 60, 255}   // Bronze border
	colorBar             = color.RGBA{40, 34, 30, 255}    // Control bar
	colorHealth          = color.RGBA{170, 20, 20, 255}   // Health globe
	colorMana            = color.RGBA{30, 40, 170, 255}   // Mana globe
	colorButton          = color.RGBA{80, 70, 60, 255}    // Button at rest
	colorButtonOn        = color.RGBA{170, 140, 70, 255}  // Toggled button
	colorText            = color.RGBA{220, 210, 190, 255} // Panel and HUD text
	colorSubtle          = color.RGBA{150, 140, 120, 255} // Secondary HUD text
)

// Screen regions of the 800x600 scene
const (
	screenWidth   = 800
	barTop        = 530
	panelHalf     = 400
	globeRadius   = 32
	gridExtent    = 10 // tiles drawn on each side of the player
	playerRadius  = 8
	facingLength  = 18
	hudLineHeight = 16
)
