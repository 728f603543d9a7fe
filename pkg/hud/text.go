package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/render"
)

// Anchor says which point of a text's box sits at (X, Y).
type Anchor uint8

const (
	TopLeft Anchor = iota
	Center
	TopRight
	BottomRight
)

// Text is one string to render. Scale 1 is the regular HUD size.
type Text struct {
	Str    string
	X, Y   float64
	Anchor Anchor
	Scale  float64
	Color  color.RGBA
}

const highlightTolerance = 0.001

var (
	gold     = color.RGBA{R: 255, G: 215, A: 255}
	grey     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	lavender = color.RGBA{R: 200, G: 200, B: 255, A: 255}
	sky      = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	salmon   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	mint     = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	cyan     = color.RGBA{G: 255, B: 255, A: 255}
	dim      = color.RGBA{A: 200}
)

var ordinals = [...]string{"1st", "2nd", "3rd", "4th", "5th"}

// Status is the top-left readout while racing.
func Status(stage int, elapsed float64, remaining int) []Text {
	return []Text{
		{Str: fmt.Sprintf("STAGE: %d", stage), X: 20, Y: 20, Scale: 1.5, Color: yellow},
		{Str: fmt.Sprintf("TIME: %.2f", elapsed), X: 20, Y: 60, Scale: 1, Color: white},
		{Str: fmt.Sprintf("DIST: %dm", remaining), X: 20, Y: 100, Scale: 1, Color: grey},
	}
}

// KmhLabel sits under the speedometer digits.
func KmhLabel(screenW, screenH int) Text {
	x, y := LabelPosition(screenW, screenH)
	return Text{Str: "km/h", X: x, Y: y, Anchor: BottomRight, Scale: 0.6, Color: grey}
}

// Banner is the centred message for the goal and stage clear holds.
func Banner(state race.State, stage, screenW, screenH int) (Text, bool) {
	cx, cy := float64(screenW)/2, float64(screenH)/2
	switch state {
	case race.Goal:
		return Text{Str: "GOAL!!", X: cx, Y: cy, Anchor: Center, Scale: 1, Color: red}, true
	case race.StageClear:
		return Text{Str: fmt.Sprintf("STAGE %d CLEAR", stage), X: cx, Y: cy, Anchor: Center, Scale: 3, Color: cyan}, true
	}
	return Text{}, false
}

// DimScreen darkens everything under the game clear menu.
func DimScreen(dst render.Surface) {
	w, h := dst.Size()
	dst.FillRect(0, 0, float64(w), float64(h), dim)
}

// GameClear is the results screen: total time, the top five with the
// current run highlighted, and the menu keys.
func GameClear(total float64, ranking []float64, screenW int) []Text {
	cx := float64(screenW) / 2
	out := []Text{
		{Str: "ALL STAGES CLEARED!", X: cx, Y: 60, Anchor: Center, Scale: 1, Color: gold},
		{Str: "CONGRATULATIONS!", X: cx, Y: 110, Anchor: Center, Scale: 1, Color: gold},
		{Str: fmt.Sprintf("TOTAL TIME: %.2f", total), X: cx, Y: 170, Anchor: Center, Scale: 1, Color: white},
		{Str: "TOP 5 RECORDS", X: cx, Y: 230, Anchor: Center, Scale: 1, Color: lavender},
	}
	for i, score := range ranking {
		c := white
		if math.Abs(score-total) < highlightTolerance {
			c = yellow
		}
		rank := fmt.Sprintf("%dth", i+1)
		if i < len(ordinals) {
			rank = ordinals[i]
		}
		out = append(out, Text{
			Str: fmt.Sprintf("%s %.2f", rank, score), X: cx, Y: 270 + float64(i)*40,
			Anchor: Center, Scale: 1, Color: c,
		})
	}
	return append(out,
		Text{Str: "[R] REPLAY", X: cx - 150, Y: 500, Anchor: Center, Scale: 1, Color: sky},
		Text{Str: "[ESC] EXIT", X: cx + 130, Y: 500, Anchor: Center, Scale: 1, Color: salmon},
		Text{Str: "[ENTER] CONTINUE", X: cx, Y: 550, Anchor: Center, Scale: 1, Color: mint},
	)
}

// ReplayStatus is the blinking replay tag. clock is in seconds; the colour
// alternates every half second.
func ReplayStatus(clock float64, screenW int) []Text {
	c := red
	if int(clock*2)%2 != 0 {
		c = pink
	}
	x := float64(screenW - 20)
	return []Text{
		{Str: "REPLAY", X: x, Y: 20, Anchor: TopRight, Scale: 2, Color: c},
		{Str: "Press the brake key to exit", X: x, Y: 95, Anchor: TopRight, Scale: 1, Color: yellow},
	}
}
