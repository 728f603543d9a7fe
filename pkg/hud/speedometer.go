// Package hud lays out the heads-up display: a seven-segment speedometer
// drawn from polygons, and the text items the ui package renders.
package hud

import (
	"image/color"
	"strconv"

	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

const (
	// KmhPerUnit converts world units per tick to km/h.
	KmhPerUnit = 334.0 / vehicle.NormalMaxSpeed

	displayRate = 0.08
	jitterRatio = 0.99

	digitSize    = 40.0
	digitSpacing = 47.0
	digitSkew    = -0.3
	// labelWidth approximates the rendered width of the "km/h" label.
	labelWidth = 48.0
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	orange = color.RGBA{R: 255, G: 140, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	pink   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	ghost  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	panel  = color.RGBA{A: 100}
)

// digitSegments lists segments a..g for each digit.
var digitSegments = [10][7]bool{
	{true, true, true, true, true, true, false},
	{false, true, true, false, false, false, false},
	{true, true, false, true, true, false, true},
	{true, true, true, true, false, false, true},
	{false, true, true, false, false, true, true},
	{true, false, true, true, false, true, true},
	{true, false, true, true, true, true, true},
	{true, true, true, false, false, false, false},
	{true, true, true, true, true, true, true},
	{true, true, true, true, false, true, true},
}

// Reading is what the speedometer shows this frame.
type Reading struct {
	Kmh   int
	Color color.RGBA
}

// Speedometer smooths the displayed speed and picks its colour.
type Speedometer struct {
	display float64
	rng     mathutil.Rand
	poly    []render.Vec
	last    Reading
}

func NewSpeedometer(seed uint64) *Speedometer {
	return &Speedometer{rng: mathutil.NewRand(seed)}
}

// Update eases the needle toward speed. At top speed the last digit
// trembles unless the value is frozen.
func (s *Speedometer) Update(speed float64, frozen bool) Reading {
	s.display += (speed - s.display) * displayRate
	kmh := int(s.display * KmhPerUnit)
	if speed >= vehicle.NormalMaxSpeed*jitterRatio && !frozen {
		kmh += s.rng.IntRange(-1, 1)
	}
	s.last = Reading{Kmh: kmh, Color: s.colorFor(kmh)}
	return s.last
}

// Last returns the most recent reading.
func (s *Speedometer) Last() Reading { return s.last }

func (s *Speedometer) colorFor(kmh int) color.RGBA {
	if kmh < 0 {
		kmh = -kmh
	}
	switch {
	case kmh > 280:
		if s.rng.Float64() < 0.2 {
			return pink
		}
		return red
	case kmh > 240:
		return orange
	case kmh > 200:
		return yellow
	}
	return white
}

// LabelPosition is the bottom-right corner of the "km/h" label.
func LabelPosition(screenW, screenH int) (x, y float64) {
	return float64(screenW - 20), float64(screenH - 15)
}

// Draw paints the panel and the digits, right to left from the label.
func (s *Speedometer) Draw(dst render.Surface, r Reading) {
	w, h := dst.Size()
	dst.FillRect(float64(w-10-185), float64(h-10-110), 185, 110, panel)

	lx, _ := LabelPosition(w, h)
	cursor := lx - labelWidth - 10
	top := float64(h-30) - 80
	digits := strconv.Itoa(r.Kmh)
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d >= '0' && d <= '9' {
			s.drawDigit(dst, cursor-digitSpacing+10, top, int(d-'0'), r.Color)
		}
		cursor -= digitSpacing
	}
}

// segments returns the seven skewed segment outlines of a digit whose top
// left corner is at (x, y).
func segments(x, y float64) [7][]render.Vec {
	const (
		w     = digitSize
		h     = digitSize
		thick = digitSize * 0.25
		gap   = digitSize * 0.1
	)
	t := func(px, py float64) render.Vec {
		return render.Vec{X: x + px + py*digitSkew + 40, Y: y + py}
	}
	return [7][]render.Vec{
		{t(gap, 0), t(w-gap, 0), t(w-gap-thick, thick), t(gap+thick, thick)},
		{t(w, gap), t(w, h-gap), t(w-thick, h-gap-thick/2), t(w-thick, gap+thick)},
		{t(w, h+gap), t(w, 2*h-gap), t(w-thick, 2*h-gap-thick), t(w-thick, h+gap+thick/2)},
		{t(w-gap, 2*h), t(gap, 2*h), t(gap+thick, 2*h-thick), t(w-gap-thick, 2*h-thick)},
		{t(0, 2*h-gap), t(0, h+gap), t(thick, h+gap+thick/2), t(thick, 2*h-gap-thick)},
		{t(0, h-gap), t(0, gap), t(thick, gap+thick), t(thick, h-gap-thick/2)},
		{t(gap, h), t(gap+thick, h-thick/2), t(w-gap-thick, h-thick/2),
			t(w-gap, h), t(w-gap-thick, h+thick/2), t(gap+thick, h+thick/2)},
	}
}

// glowOffsets spread translucent copies of lit segments around the core.
var glowOffsets = [4][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

func (s *Speedometer) drawDigit(dst render.Surface, x, y float64, digit int, c color.RGBA) {
	segs := segments(x, y)
	for _, seg := range segs {
		dst.FillPolygon(seg, ghost)
	}

	lit := digitSegments[digit]
	glow := c
	glow.A = 70
	hot := c.R > 200 && c.G < 150
	for i, on := range lit {
		if !on {
			continue
		}
		for _, o := range glowOffsets {
			dst.FillPolygon(s.shifted(segs[i], o[0], o[1]), glow)
			if hot {
				wide := c
				wide.A = 35
				dst.FillPolygon(s.shifted(segs[i], o[0]*2, o[1]*2), wide)
			}
		}
	}
	for i, on := range lit {
		if on {
			dst.FillPolygon(segs[i], c)
		}
	}
}

func (s *Speedometer) shifted(pts []render.Vec, dx, dy float64) []render.Vec {
	s.poly = s.poly[:0]
	for _, p := range pts {
		s.poly = append(s.poly, render.Vec{X: p.X + dx, Y: p.Y + dy})
	}
	return s.poly
}
