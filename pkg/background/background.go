package background

import (
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/road"
)

// Generator paints stand-in backdrops and ground textures for stages whose
// image files are missing.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a generator for images of the given size.
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateBackdrop paints a sky with scenery for the stage and grass below
// it. The skyline sits on the row that meets the road horizon once the
// backdrop is drawn at the stage offset.
func (g *Generator) GenerateBackdrop(dst render.Surface, st road.Stage) {
	rng := mathutil.NewRand(uint64(st.ID) * 7919)
	horizon := camera.HorizonY - st.BackgroundOffsetY
	w := float64(g.Width)

	// Sky gets lighter toward the horizon.
	top := mathutil.LerpRGB(st.Sky, color.RGBA{A: 255}, 0.35)
	low := mathutil.LerpRGB(st.Sky, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.3)
	if st.HasFog {
		low = st.Fog
	}
	for y := 0.0; y < horizon; y += 4 {
		dst.FillRect(0, y, w, 4, mathutil.LerpRGB(top, low, y/horizon))
	}
	dst.FillRect(0, horizon, w, float64(g.Height)-horizon, st.Grass)

	switch st.ID {
	case 2:
		g.drawCoast(dst, horizon, &rng)
	case 3:
		g.drawCity(dst, horizon, &rng)
	case 4:
		g.drawDunes(dst, st, horizon, &rng)
	case 5:
		g.drawMountains(dst, st, horizon, &rng)
		g.drawTreeline(dst, horizon, 0.6, &rng)
	default:
		g.drawTreeline(dst, horizon, 1, &rng)
	}
}

// GenerateGround paints a noisy grass or sand texture.
func (g *Generator) GenerateGround(dst render.Surface, st road.Stage) {
	rng := mathutil.NewRand(uint64(st.ID) * 104729)
	dst.FillRect(0, 0, float64(g.Width), float64(g.Height), st.Grass)

	for i := 0; i < g.Width*g.Height/40; i++ {
		x := float64(rng.Intn(g.Width))
		y := float64(rng.Intn(g.Height))
		f := rng.Range(0.75, 1.25)
		c := color.RGBA{
			R: scale8(st.Grass.R, f),
			G: scale8(st.Grass.G, f),
			B: scale8(st.Grass.B, f),
			A: 255,
		}
		dst.FillRect(x, y, 2, 2, c)
	}
	if st.SandEnabled {
		for i := 0; i < g.Width*g.Height/400; i++ {
			dst.FillRect(float64(rng.Intn(g.Width)), float64(rng.Intn(g.Height)), 3, 1, st.SandColor)
		}
	}
}

// drawTreeline fills the strip above the horizon with trees and bushes.
func (g *Generator) drawTreeline(dst render.Surface, horizon, density float64, rng *mathutil.Rand) {
	for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
		if rng.Float64() > 0.7*density {
			continue
		}
		drawX := float64(x + rng.Intn(10) - 5)
		drawY := horizon + float64(rng.Intn(6))
		if rng.Float64() < 0.3 {
			g.drawTree(dst, drawX, drawY, rng)
		} else {
			g.drawBush(dst, drawX, drawY, rng)
		}
	}
}

// drawTree draws a pine: a trunk under three stacked triangles.
func (g *Generator) drawTree(dst render.Surface, x, y float64, rng *mathutil.Rand) {
	height := float64(40 + rng.Intn(30))
	width := float64(20 + rng.Intn(15))

	trunkW := float64(4 + rng.Intn(4))
	dst.FillRect(x-trunkW/2, y-height/3, trunkW, height/3, color.RGBA{R: 60, G: 40, B: 20, A: 255})

	leaves := color.RGBA{
		R: uint8(20 + rng.Intn(30)),
		G: uint8(80 + rng.Intn(60)),
		B: uint8(20 + rng.Intn(30)),
		A: 255,
	}
	for l := 0.0; l < 3; l++ {
		base := y - height/3 - l*height/4
		half := math.Max(5, width-l*5) / 2
		dst.FillPolygon([]render.Vec{
			{X: x - half, Y: base},
			{X: x, Y: base - height/3},
			{X: x + half, Y: base},
		}, leaves)
	}
}

// drawBush draws a round bush.
func (g *Generator) drawBush(dst render.Surface, x, y float64, rng *mathutil.Rand) {
	radius := float64(5 + rng.Intn(10))
	c := color.RGBA{
		R: uint8(40 + rng.Intn(40)),
		G: uint8(100 + rng.Intn(50)),
		B: uint8(40 + rng.Intn(40)),
		A: 255,
	}
	dst.FillCircle(x, y-radius/2, radius, c)
}

func (g *Generator) drawCoast(dst render.Surface, horizon float64, rng *mathutil.Rand) {
	w := float64(g.Width)
	sun := color.RGBA{R: 255, G: 220, B: 120, A: 255}
	dst.FillCircle(w/2, horizon-40, 60, sun)
	sea := color.RGBA{R: 40, G: 90, B: 150, A: 255}
	dst.FillRect(0, horizon-12, w, 12, sea)
	for i := 0; i < g.Width/8; i++ {
		x := float64(rng.Intn(g.Width))
		y := horizon - float64(rng.Intn(12))
		dst.FillRect(x, y, float64(4+rng.Intn(12)), 1, mathutil.LerpRGB(sea, sun, 0.6))
	}
	for x := 0; x < g.Width; x += 40 + rng.Intn(80) {
		g.drawBush(dst, float64(x), horizon+4, rng)
	}
}

func (g *Generator) drawCity(dst render.Surface, horizon float64, rng *mathutil.Rand) {
	block := color.RGBA{R: 25, G: 25, B: 40, A: 255}
	window := color.RGBA{R: 250, G: 220, B: 120, A: 255}
	for x := 0; x < g.Width; {
		bw := float64(30 + rng.Intn(50))
		bh := float64(40 + rng.Intn(140))
		left := float64(x)
		dst.FillRect(left, horizon-bh, bw, bh, block)
		for wy := horizon - bh + 6; wy < horizon-6; wy += 8 {
			for wx := left + 4; wx < left+bw-4; wx += 7 {
				if rng.Float64() < 0.35 {
					dst.FillRect(wx, wy, 3, 4, window)
				}
			}
		}
		x += int(bw) + rng.Intn(6)
	}
}

func (g *Generator) drawDunes(dst render.Surface, st road.Stage, horizon float64, rng *mathutil.Rand) {
	far := mathutil.LerpRGB(st.Grass, st.Fog, 0.5)
	for layer := 0; layer < 2; layer++ {
		c := far
		if layer == 1 {
			c = mathutil.LerpRGB(st.Grass, st.SandColor, 0.4)
		}
		for x := -100.0; x < float64(g.Width); {
			span := float64(150 + rng.Intn(250))
			peak := float64(15 + rng.Intn(40))
			dst.FillPolygon([]render.Vec{
				{X: x, Y: horizon},
				{X: x + span*rng.Range(0.3, 0.7), Y: horizon - peak},
				{X: x + span, Y: horizon},
			}, c)
			x += span * 0.7
		}
	}
}

func (g *Generator) drawMountains(dst render.Surface, st road.Stage, horizon float64, rng *mathutil.Rand) {
	rock := mathutil.LerpRGB(color.RGBA{R: 70, G: 80, B: 95, A: 255}, st.Fog, 0.3)
	snow := color.RGBA{R: 235, G: 240, B: 245, A: 255}
	for x := -150.0; x < float64(g.Width); {
		span := float64(200 + rng.Intn(250))
		peak := float64(60 + rng.Intn(110))
		apex := x + span*rng.Range(0.35, 0.65)
		dst.FillPolygon([]render.Vec{
			{X: x, Y: horizon},
			{X: apex, Y: horizon - peak},
			{X: x + span, Y: horizon},
		}, rock)
		snowLine := 0.25
		dst.FillPolygon([]render.Vec{
			{X: apex - (apex-x)*snowLine, Y: horizon - peak*(1-snowLine)},
			{X: apex, Y: horizon - peak},
			{X: apex + (x+span-apex)*snowLine, Y: horizon - peak*(1-snowLine)},
		}, snow)
		x += span * 0.6
	}
}

func scale8(v uint8, f float64) uint8 {
	return uint8(mathutil.Clamp(float64(v)*f, 0, 255))
}
