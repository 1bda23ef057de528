package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"westmarch/pkg/engine/iso"
	"westmarch/pkg/game/movement"
	"westmarch/pkg/game/state"
	"westmarch/pkg/game/ui"
)

// Draw renders the scene (Ebiten interface)
func (e *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	// Nothing to show until the session has focused a player.
	if !e.scene.Ready() {
		e.drawText(screen, gotext.Get("CONNECTING"), 360, 290, colorSubtle, e.getSansFontFace())
		return
	}

	e.drawMap(screen)
	e.drawPanels(screen)
	e.drawHUD(screen)
}

// cameraCenter is the screen point under the player, following the movement anchor.
func (e *Renderer) cameraCenter() (float64, float64) {
	return float64(iso.AnchorX + movement.AnchorOffset(e.scene.UI())), float64(iso.AnchorY)
}

// drawMap draws the diamond tile grid around the player, the player and its facing.
func (e *Renderer) drawMap(screen *ebiten.Image) {
	m := e.scene.World()
	px, py := m.Player()
	cx, cy := e.cameraCenter()

	toScreen := func(tx, ty float64) (float32, float32) {
		sx, sy := iso.ToScreen(tx-px, ty-py)
		return float32(cx + sx), float32(cy + sy)
	}

	baseX, baseY := math.Floor(px), math.Floor(py)
	for i := -gridExtent; i <= gridExtent; i++ {
		// Lines of constant tile X
		x0, y0 := toScreen(baseX+float64(i), baseY-gridExtent)
		x1, y1 := toScreen(baseX+float64(i), baseY+gridExtent)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorGridLine, false)

		// Lines of constant tile Y
		x0, y0 = toScreen(baseX-gridExtent, baseY+float64(i))
		x1, y1 = toScreen(baseX+gridExtent, baseY+float64(i))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorGridLine, false)
	}

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), playerRadius, colorPlayer, true)

	if facing := m.Facing(); facing.IsValid() {
		tx, ty := facing.Vector()
		fx, fy := iso.ToScreen(tx, ty)
		l := math.Hypot(fx, fy)
		ex := float32(cx + fx/l*facingLength)
		ey := float32(cy + fy/l*facingLength)
		vector.StrokeLine(screen, float32(cx), float32(cy), ex, ey, 2, colorFacing, true)
	}
}

// drawPanels draws the side panels, the control bar and its buttons.
func (e *Renderer) drawPanels(screen *ebiten.Image) {
	u := e.scene.UI()

	if u.IsVisible(state.PanelInventory) {
		e.drawPanel(screen, panelHalf, 0, screenWidth-panelHalf, barTop, gotext.Get("INVENTORY"))
	}
	if u.IsVisible(state.PanelCharacter) {
		e.drawPanel(screen, 0, 0, panelHalf, barTop, gotext.Get("CHARACTER"))
	}

	// Control bar with health and mana globes
	vector.DrawFilledRect(screen, 0, barTop, screenWidth, float32(e.windowHeight-barTop), colorBar, false)
	vector.StrokeLine(screen, 0, barTop, screenWidth, barTop, 2, colorPanelBorder, false)
	globeY := float32(barTop+e.windowHeight) / 2
	vector.DrawFilledCircle(screen, 30+globeRadius, globeY, globeRadius, colorHealth, true)
	vector.DrawFilledCircle(screen, screenWidth-30-globeRadius, globeY, globeRadius, colorMana, true)

	if u.IsVisible(state.PanelMini) {
		e.drawMiniPanel(screen)
	}

	e.drawButton(screen, e.scene.RunButton(), runButtonLabel(e.scene.RunButton().Toggled()))
	e.drawButton(screen, e.scene.MenuButton(), gotext.Get("MENU_SHORT"))
}

// drawMiniPanel draws the mini panel body and its panel buttons.
func (e *Renderer) drawMiniPanel(screen *ebiten.Image) {
	loc, size := ui.MiniPanelLocation, ui.MiniPanelSize
	vector.DrawFilledRect(screen, float32(loc.X), float32(loc.Y), float32(size.X), float32(size.Y), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(loc.X), float32(loc.Y), float32(size.X), float32(size.Y), 1, colorPanelBorder, false)

	e.drawButton(screen, e.scene.MiniCharacterButton(), gotext.Get("CHARACTER_SHORT"))
	e.drawButton(screen, e.scene.MiniInventoryButton(), gotext.Get("INVENTORY_SHORT"))

	label := gotext.Get("MENU")
	face := e.getBarFontFace()
	_, h := text.Measure(label, face, 0)
	e.drawText(screen, label, float64(ui.MiniInventoryButtonLocation.X+ui.MiniButtonSize.X+8), float64(loc.Y)+(float64(size.Y)-h)/2, colorSubtle, face)
}

func runButtonLabel(running bool) string {
	if running {
		return gotext.Get("RUN_SHORT")
	}
	return gotext.Get("WALK_SHORT")
}

func (e *Renderer) drawPanel(screen *ebiten.Image, x, y, w, h int, title string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(w)-2, float32(h)-2, 2, colorPanelBorder, false)
	e.drawText(screen, title, float64(x+10), float64(y+8), colorText, e.getSansFontFace())
}

func (e *Renderer) drawButton(screen *ebiten.Image, b *ui.ToggleButton, label string) {
	r := b.Bounds()
	fill := colorButton
	if b.Toggled() {
		fill = colorButtonOn
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorPanelBorder, false)

	face := e.getBarFontFace()
	w, h := text.Measure(label, face, 0)
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	e.drawText(screen, label, x, y, colorText, face)
}

// drawHUD draws session counters and the message log in the top left corner.
func (e *Renderer) drawHUD(screen *ebiten.Image) {
	sess := e.scene.Session()
	face := e.getSansFontFace()

	id := sess.ID().String()
	lines := []string{
		fmt.Sprintf(gotext.Get("HUD_SESSION"), id[:8]),
		fmt.Sprintf(gotext.Get("HUD_SENT"), humanize.Comma(int64(sess.Sent()))),
	}
	if last, ok := sess.Last(); ok {
		lines = append(lines, fmt.Sprintf(gotext.Get("HUD_LAST"), last.Kind, last.Direction))
	}

	x := 10.0
	// Keep the HUD clear of the character panel.
	if e.scene.UI().CharacterVisible() {
		x = panelHalf + 10
	}
	y := 10.0
	for _, line := range lines {
		e.drawText(screen, line, x, y, colorSubtle, face)
		y += hudLineHeight
	}
	for _, msg := range e.scene.UI().Messages {
		e.drawText(screen, msg, x, y, colorText, face)
		y += hudLineHeight
	}
}

func (e *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
