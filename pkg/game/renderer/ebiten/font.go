package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	uiFontSize  = 12
	barFontSize = 10
)

func loadSansFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// getSansFontFace returns a cached face for panel titles and the HUD
func (e *Renderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedSansFace
}

// getBarFontFace returns a cached smaller face for the control bar labels
func (e *Renderer) getBarFontFace() *text.GoTextFace {
	if e.cachedBarFace == nil {
		e.cachedBarFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   barFontSize,
		}
	}
	return e.cachedBarFace
}
