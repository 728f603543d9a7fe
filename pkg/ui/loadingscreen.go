package ui

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/horizon/pkg/hud"
)

const (
	barWidth  = 300.0
	barHeight = 12.0
)

// LoadingScreen runs a slow setup step off the game loop and hands over to
// the next screen once it finishes.
type LoadingScreen struct {
	startTime time.Time
	done      chan struct{}
	onLoaded  func()
	finished  bool
}

// NewLoadingScreen starts load in the background. onLoaded is called from
// Update, on the game loop, after load returns.
func NewLoadingScreen(load func(), onLoaded func()) *LoadingScreen {
	ls := &LoadingScreen{
		startTime: time.Now(),
		done:      make(chan struct{}),
		onLoaded:  onLoaded,
	}
	go func() {
		defer close(ls.done)
		if load != nil {
			load()
		}
	}()
	return ls
}

// Update polls the background step.
func (ls *LoadingScreen) Update() error {
	if ls.finished {
		return nil
	}
	select {
	case <-ls.done:
		ls.finished = true
		if ls.onLoaded != nil {
			ls.onLoaded()
		}
	default:
	}
	return nil
}

// Draw shows the label and a bar sweeping back and forth.
func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	elapsed := time.Since(ls.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 2

	dots := strings.Repeat(".", int(elapsed*3)%4)
	DrawText(screen, hud.Text{
		Str: "LOADING" + dots, X: centerX - 60, Y: centerY - 40, Scale: 0.8,
		Color: color.RGBA{255, 200, 50, 255},
	})

	x := float32(centerX - barWidth/2)
	y := float32(centerY)
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, color.NRGBA{40, 40, 60, 255}, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 2, color.NRGBA{80, 80, 100, 255}, false)

	// A block a quarter of the bar wide bounces between the ends.
	block := barWidth / 4
	t := (1 - math.Cos(elapsed*math.Pi)) / 2
	bx := x + float32(t*(barWidth-block))
	vector.DrawFilledRect(screen, bx, y, float32(block), barHeight, color.NRGBA{60, 100, 140, 255}, false)
}
