// Package background lays out the parallax backdrop and the perspective
// ground texture behind the road, and blends the seam between them.
package background

import (
	"image"
	"image/color"
	"math"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/road"
)

const (
	SkyFactorX    = 0.01
	SkyFactorY    = 0.1
	GroundFactorX = 0.1
	GroundSpeedY  = 2.3

	// SkyExtraHeight is added to the screen height when the backdrop is
	// scaled, leaving room for pitch.
	SkyExtraHeight = 250
	// The ground source is scaled to GroundSourceHeight and only rows from
	// GroundCropY down are used.
	GroundSourceHeight = 1200
	GroundCropY        = GroundSourceHeight/2 + 200

	DefaultGroundOffset = 17.0

	stripHeight   = 2
	perspectiveK  = 0.01
	upperBand     = 20
	lowerBand     = 40
	fogBandOffset = 30
	bandAlpha     = 180
	fogBandAlpha  = 100
	horizonSample = 5
)

var (
	fallbackBackdrop = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	fallbackGround   = color.RGBA{R: 80, G: 60, B: 40, A: 255}
)

// Strip is one horizontal slice of the ground texture and where it lands on
// screen. Source rows are relative to the cropped texture.
type Strip struct {
	SrcY, Height int
	DstX, DstY   float64
	Width        float64
}

// Layers holds the per-stage backdrop state. Images are only sampled for
// colours; drawing them is left to the caller.
type Layers struct {
	ScreenW, ScreenH int

	Stage  road.Stage
	Sky    *render.Parallax
	Ground *render.Parallax

	// GroundOffset is the gap between the horizon and the top of the
	// ground texture.
	GroundOffset float64

	horizonColor color.RGBA
	groundColor  color.RGBA
	sky          image.Image
	groundH      int
	curveShift   float64
	loaded       bool
	strips       []Strip

	log zerolog.Logger
}

func NewLayers(screenW, screenH int, log zerolog.Logger) *Layers {
	return &Layers{
		ScreenW:      screenW,
		ScreenH:      screenH,
		GroundOffset: DefaultGroundOffset,
		log:          log.With().Str("component", "background").Logger(),
	}
}

// SkySize is the size the backdrop image is scaled to.
func (l *Layers) SkySize() (int, int) {
	return l.ScreenW * 2, l.ScreenH + SkyExtraHeight
}

// GroundSize is the size of the cropped ground texture.
func (l *Layers) GroundSize() (int, int) {
	return l.ScreenW * 2, GroundSourceHeight - GroundCropY
}

// SetStage swaps in a stage's images, already scaled to SkySize and
// GroundSize. Loading the stage that is already active keeps the scroll.
func (l *Layers) SetStage(st road.Stage, sky, ground image.Image) {
	if l.loaded && l.Stage.ID == st.ID {
		return
	}
	l.loaded = true
	l.Stage = st
	l.sky = sky

	skyW, _ := l.SkySize()
	groundW, groundH := l.GroundSize()
	l.groundH = groundH
	l.Sky = render.NewParallax(float64(l.ScreenW), float64(skyW), SkyFactorX, SkyFactorY, true)
	l.Ground = render.NewParallax(float64(l.ScreenW), float64(groundW), GroundFactorX, GroundSpeedY, false)

	l.horizonColor = l.sampleSky(camera.HorizonY - horizonSample)
	l.groundColor = averageGround(ground)
	l.log.Debug().Int("stage", st.ID).Interface("horizon", l.horizonColor).Msg("backdrop loaded")
}

// Update scrolls both layers.
func (l *Layers) Update(dt, curve, speed float64) {
	if !l.loaded {
		return
	}
	l.Sky.Update(dt, curve, speed)
	l.Ground.Update(dt, curve, speed)
}

// SetCurveOffset takes the renderer's accumulated turn for the next frame.
func (l *Layers) SetCurveOffset(accumulatedTurn float64) {
	l.curveShift = render.VanishingShift(accumulatedTurn)
}

// AdjustGroundOffset nudges the ground texture up or down.
func (l *Layers) AdjustGroundOffset(delta float64) {
	l.GroundOffset += delta
	l.log.Info().Float64("offset", l.GroundOffset).Msg("ground offset")
}

// Fog is the colour distant road fades into: the stage override, else the
// backdrop just above the horizon.
func (l *Layers) Fog() color.RGBA {
	if l.Stage.HasFog {
		return l.Stage.Fog
	}
	if l.sky == nil {
		return l.Stage.FogColor()
	}
	return l.horizonColor
}

// SkyPosition is where the backdrop is drawn for a pitch offset.
func (l *Layers) SkyPosition(pitch float64) (x, y float64) {
	return l.Sky.X, l.Stage.BackgroundOffsetY + pitch*l.Sky.FactorY
}

func (l *Layers) groundTop(offset float64) float64 {
	return camera.HorizonY + l.GroundOffset + math.Trunc(offset)
}

// Strips slices the ground texture into rows that widen toward the viewer.
// Sampling advances faster near the bottom so the texture reads as a plane.
// The returned slice is reused by the next call.
func (l *Layers) Strips(offset float64) []Strip {
	l.strips = l.strips[:0]
	if !l.loaded || l.groundH <= 0 {
		return l.strips
	}
	top := l.groundTop(offset)
	target := int(float64(l.ScreenH) - top)
	if target <= 0 {
		return l.strips
	}
	texW, _ := l.GroundSize()
	centerX := float64(l.ScreenW / 2)
	height := float64(l.groundH)

	cumulative := wrap(l.Ground.Y, height)
	for dy := 0; dy < target; dy += stripHeight {
		scale := 1 + float64(dy)*perspectiveK
		shift := l.curveShift * (1 - float64(dy)/float64(target))
		src := int(wrap(cumulative, height))
		cumulative += stripHeight * (float64(target) / 2) / float64(max(1, dy+1))

		h := min(stripHeight, target-dy)
		width := math.Trunc(float64(texW) * scale)
		x := centerX - math.Floor(width/2) + math.Trunc(shift)
		y := top + float64(dy)

		if src+h > l.groundH {
			a := l.groundH - src
			l.strips = append(l.strips,
				Strip{SrcY: src, Height: a, DstX: x, DstY: y, Width: width},
				Strip{SrcY: 0, Height: h - a, DstX: x, DstY: y + float64(a), Width: width})
			continue
		}
		l.strips = append(l.strips, Strip{SrcY: src, Height: h, DstX: x, DstY: y, Width: width})
	}
	return l.strips
}

// DrawUpperBand fades the backdrop into the ground colour just above where
// the ground texture starts. Draw it before the strips.
func (l *Layers) DrawUpperBand(dst render.Surface, offset float64) {
	if !l.loaded {
		return
	}
	w, _ := dst.Size()
	start := l.groundTop(offset) - upperBand
	top := l.sampleSky(start)
	bottom := mathutil.LerpRGB(l.horizonColor, l.groundColor, 0.5)
	for i := 0; i < upperBand; i++ {
		t := float64(i) / upperBand
		c := mathutil.LerpRGB(top, bottom, t)
		c.A = uint8(t * t * bandAlpha)
		if c.A == 0 {
			continue
		}
		dst.FillRect(0, start+float64(i), float64(w), 1, c)
	}
}

// DrawLowerBands softens the top of the ground texture and, on foggy
// stages, lays a haze over it. Draw them after the strips.
func (l *Layers) DrawLowerBands(dst render.Surface, offset float64) {
	if !l.loaded {
		return
	}
	fade := func(t float64) float64 { return (1 - t) * (1 - t) }
	top := l.groundTop(offset)
	render.Gradient(dst, top, lowerBand, mathutil.LerpRGB(l.horizonColor, l.groundColor, 0.5), bandAlpha, fade)
	if l.Stage.FogGradient {
		render.Gradient(dst, top+fogBandOffset, l.Stage.FogGradientHeight, l.horizonColor, fogBandAlpha, fade)
	}
}

func (l *Layers) sampleSky(screenY float64) color.RGBA {
	if l.sky == nil {
		return fallbackBackdrop
	}
	b := l.sky.Bounds()
	y := int(mathutil.Clamp(screenY-l.Stage.BackgroundOffsetY, 0, float64(b.Dy()-1)))
	return rgba(l.sky.At(b.Min.X+b.Dx()/2, b.Min.Y+y))
}

// averageGround samples the middle column at three depths so the blend
// colour does not flicker with the scroll.
func averageGround(img image.Image) color.RGBA {
	if img == nil {
		return fallbackGround
	}
	b := img.Bounds()
	x := b.Min.X + b.Dx()/2
	var r, g, bl int
	rows := []int{0, b.Dy() / 4, b.Dy() / 2}
	for _, y := range rows {
		c := rgba(img.At(x, b.Min.Y+y))
		r += int(c.R)
		g += int(c.G)
		bl += int(c.B)
	}
	n := len(rows)
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
}

func rgba(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	return v
}
