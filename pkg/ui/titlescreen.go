package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/horizon/pkg/hud"
)

// TitleScreen shows the name, the best times and waits for a start key.
type TitleScreen struct {
	startTime      time.Time
	best           []float64
	onStartPressed func()
}

// NewTitleScreen creates a title screen listing the given best times.
func NewTitleScreen(best []float64, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		best:           best,
		onStartPressed: onStartPressed,
	}
}

// Update starts the race on Enter, Space or the pad's A button.
func (ts *TitleScreen) Update() error {
	pressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			pressed = true
		}
	}
	if pressed && ts.onStartPressed != nil {
		ts.onStartPressed()
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulse between 1.0 and 1.1 of the base size.
	pulse := 1.0 + 0.1*math.Sin(elapsed*2)
	brightness := math.Min(1, 1+0.2*math.Sin(elapsed*1.5))
	DrawText(screen, hud.Text{
		Str: "HORIZON", X: centerX, Y: centerY, Anchor: hud.Center, Scale: 3 * pulse,
		Color: color.RGBA{uint8(255 * brightness), uint8(200 * brightness), uint8(50 * brightness), 255},
	})
	DrawText(screen, hud.Text{
		Str: "Five Stages to the Finish", X: centerX, Y: centerY + 60, Anchor: hud.Center, Scale: 0.8,
		Color: color.RGBA{180, 180, 200, 255},
	})

	for i, score := range ts.best {
		DrawText(screen, hud.Text{
			Str: fmt.Sprintf("%d. %.2f", i+1, score), X: centerX, Y: centerY + 110 + float64(i)*24,
			Anchor: hud.Center, Scale: 0.6, Color: color.RGBA{200, 200, 255, 255},
		})
	}

	if int(elapsed*2)%2 == 0 {
		DrawText(screen, hud.Text{
			Str: "Press ENTER or SPACE to Start", X: centerX, Y: float64(height) - 100, Anchor: hud.Center, Scale: 0.6,
			Color: color.RGBA{150, 200, 255, 255},
		})
	}

	drawDecorativeElements(screen, width, height)
}

// drawDecorativeElements frames the title with two rules.
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.NRGBA{50, 60, 80, 100}
	for _, y := range []float32{float32(height) / 6, float32(height) * 5 / 6} {
		vector.DrawFilledRect(screen, 0, y, float32(width), 2, lineColor, false)
	}
}
