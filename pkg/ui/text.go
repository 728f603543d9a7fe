// Package ui renders HUD text and the title and loading screens with the
// bitmap font.
package ui

import (
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/horizon/pkg/hud"
)

// FontScale maps hud.Text scale 1 to on-screen size.
const FontScale = 2.5

var face = text.NewGoXFace(bitmapfont.Face)

// DrawText draws one HUD text item.
func DrawText(screen *ebiten.Image, t hud.Text) {
	scale := t.Scale * FontScale
	w, h := text.Measure(t.Str, face, 0)
	w *= scale
	h *= scale

	x, y := t.X, t.Y
	switch t.Anchor {
	case hud.Center:
		x -= w / 2
		y -= h / 2
	case hud.TopRight:
		x -= w
	case hud.BottomRight:
		x -= w
		y -= h
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(t.Color)
	text.Draw(screen, t.Str, face, op)
}

// DrawTexts draws a batch of text items.
func DrawTexts(screen *ebiten.Image, ts []hud.Text) {
	for _, t := range ts {
		DrawText(screen, t)
	}
}
