// Package car draws the player's car from behind, leaning with the sway
// angle, with brake lights and exhaust flames.
package car

import (
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/effects"
	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/render"
)

const (
	widthRatio  = 0.4
	heightRatio = 0.5
	centerYFrac = 0.82

	afterfireMinSpeed = 1.0
	afterfireMaxSpeed = 55.0
	afterfireProb     = 0.4
)

var (
	outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	glassColor   = color.RGBA{R: 40, G: 60, B: 80, A: 255}
	tyreColor    = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	lampColor    = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	bumperColor  = color.RGBA{R: 45, G: 45, B: 50, A: 255}
)

// Rect is the unrotated sprite box, centred on (CX, CY).
type Rect struct {
	CX, CY        float64
	Width, Height float64
}

// Layout places the car in the lower middle of a screen.
func Layout(screenW, screenH int) Rect {
	w := float64(screenW) * widthRatio
	return Rect{
		CX:     float64(screenW) / 2,
		CY:     math.Floor(float64(screenH) * centerYFrac),
		Width:  w,
		Height: w * heightRatio,
	}
}

// Body is the on-screen box the particle spawner anchors to.
func (r Rect) Body() effects.Body {
	return effects.Body{
		Left:   r.CX - r.Width/2,
		Right:  r.CX + r.Width/2,
		Bottom: r.CY + r.Height/2,
	}
}

// Pose is the per-frame state of the sprite.
type Pose struct {
	Angle            float64 // degrees, positive leans counter-clockwise
	OffsetX, OffsetY float64
	Braking          bool
	Accelerating     bool
	Speed            float64
	// Shadow hides the part of a tyre that dips below the road when the
	// car leans; it should match the road colour.
	Shadow color.RGBA
}

// Sprite is a procedural car. The zero value is not usable; see NewSprite.
type Sprite struct {
	Paint color.RGBA
	rng   mathutil.Rand
	pts   []render.Vec
}

func NewSprite(paint color.RGBA, seed uint64) *Sprite {
	return &Sprite{Paint: paint, rng: mathutil.NewRand(seed)}
}

// rotator maps sprite-local offsets to screen positions.
type rotator struct {
	cx, cy   float64
	cos, sin float64
}

func newRotator(cx, cy, angle float64) rotator {
	rad := angle * math.Pi / 180
	return rotator{cx: cx, cy: cy, cos: math.Cos(rad), sin: math.Sin(rad)}
}

func (r rotator) at(ox, oy float64) render.Vec {
	return render.Vec{
		X: r.cx + ox*r.cos + oy*r.sin,
		Y: r.cy - ox*r.sin + oy*r.cos,
	}
}

func (s *Sprite) poly(dst render.Surface, rot rotator, c color.RGBA, offsets ...float64) {
	s.pts = s.pts[:0]
	for i := 0; i+1 < len(offsets); i += 2 {
		s.pts = append(s.pts, rot.at(offsets[i], offsets[i+1]))
	}
	dst.FillPolygon(s.pts, c)
}

// RenderCar draws the car at r with the given pose.
func (s *Sprite) RenderCar(dst render.Surface, r Rect, p Pose) {
	cx, cy := r.CX+p.OffsetX, r.CY+p.OffsetY
	rot := newRotator(cx, cy, p.Angle)
	w, h := r.Width, r.Height
	hw := w / 2

	// Cabin and rear window.
	s.poly(dst, rot, outlineColor, -hw*0.72, 0, -hw*0.52, -h*0.48, hw*0.52, -h*0.48, hw*0.72, 0)
	s.poly(dst, rot, s.Paint, -hw*0.68, 0, -hw*0.5, -h*0.45, hw*0.5, -h*0.45, hw*0.68, 0)
	s.poly(dst, rot, glassColor, -hw*0.58, -h*0.05, -hw*0.45, -h*0.38, hw*0.45, -h*0.38, hw*0.58, -h*0.05)

	// Lower body.
	s.poly(dst, rot, outlineColor, -hw, -h*0.02, hw, -h*0.02, hw, h*0.36, -hw, h*0.36)
	s.poly(dst, rot, shade(s.Paint, 0.85), -hw+2, 0, hw-2, 0, hw-2, h*0.34, -hw+2, h*0.34)
	s.poly(dst, rot, bumperColor, -hw*0.9, h*0.24, hw*0.9, h*0.24, hw*0.9, h*0.34, -hw*0.9, h*0.34)

	// Lamp housings sit where the brake lights glow.
	lampY := h*0.15 - 20
	lampW, lampH := w*0.08, h*0.06
	for _, ox := range lampOffsets(w) {
		s.poly(dst, rot, lampColor,
			ox-lampW/2, lampY-lampH/2, ox+lampW/2, lampY-lampH/2,
			ox+lampW/2, lampY+lampH/2, ox-lampW/2, lampY+lampH/2)
	}

	s.drawTyres(dst, r, cx, cy, p)

	if p.Braking {
		s.drawBrakeLights(dst, rot, w, lampY)
	}
	if p.Accelerating && p.Speed > afterfireMinSpeed && p.Speed < afterfireMaxSpeed && s.rng.Float64() < afterfireProb {
		s.drawAfterfire(dst, cx-w*0.28, cy+h*0.35, w)
	}
}

func lampOffsets(w float64) [4]float64 {
	inner := w*0.25 + 2.5
	outer := w*0.38 - 6
	return [4]float64{-outer, -inner, inner, outer}
}

// drawTyres keeps the tyres level under a leaning body. The lower edge is
// masked with the road colour wherever it sinks below the resting line.
func (s *Sprite) drawTyres(dst render.Surface, r Rect, cx, cy float64, p Pose) {
	w, h := r.Width, r.Height
	ext := math.Floor(w * 0.02)
	tw := math.Floor(w*0.14) + ext
	th := math.Floor(h * 0.08)
	oy := h * 0.35
	lift := math.Floor(h * 0.1)

	rad := p.Angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	for _, side := range []float64{-1, 1} {
		ox := side * (w*0.38 + 15)
		rx := ox*cos + oy*sin
		ry := -ox*sin + oy*cos

		tx := cx + rx - side*math.Floor(ext/2)
		ty := cy + ry + lift
		left, top := tx-tw/2, ty-th/2
		width := tw + ext
		if side > 0 {
			left -= ext
		}
		dst.FillRect(left, top, width, th, tyreColor)

		ground := cy + oy + lift + math.Floor(th/2)
		bottom := top + th
		if bottom <= ground {
			continue
		}
		up := math.Max(1, math.Floor(h*0.01)) * math.Max(1, th/15)
		maskY := ground - up + 3
		maskH := bottom - maskY + up + math.Floor(math.Abs(math.Sin(math.Abs(rad)))*th*0.5) + math.Max(5, math.Floor(th*0.2))
		inward := math.Max(5, math.Floor(w*0.03125))
		if side > 0 {
			left -= inward
		}
		dst.FillRect(left, maskY, width+inward, maskH, p.Shadow)
	}
}

func (s *Sprite) drawBrakeLights(dst render.Surface, rot rotator, w, lampY float64) {
	radius := math.Floor(w * 0.05)
	for _, ox := range lampOffsets(w) {
		c := rot.at(ox, lampY)
		dst.FillCircle(c.X, c.Y, radius, color.RGBA{R: 255, A: 100})
		dst.FillCircle(c.X, c.Y, math.Floor(radius*0.6), color.RGBA{R: 255, G: 100, B: 100, A: 150})
		dst.FillCircle(c.X, c.Y, math.Floor(radius*0.3), color.RGBA{R: 255, G: 255, B: 255, A: 200})
	}
}

// drawAfterfire flickers a flame out of the left exhaust.
func (s *Sprite) drawAfterfire(dst render.Surface, x, y, carW float64) {
	scale := s.rng.Range(0.8, 1.2)
	size := carW * 0.3 * scale
	tilt := s.rng.Range(-10, 10) * math.Pi / 180
	dx, dy := math.Sin(tilt), math.Cos(tilt)

	dst.FillCircle(x, y, size*0.22, color.RGBA{R: 255, G: 90, B: 20, A: 150})
	dst.FillCircle(x+dx*size*0.12, y+dy*size*0.12, size*0.16, color.RGBA{R: 255, G: 170, B: 40, A: 190})
	dst.FillCircle(x, y, size*0.08, color.RGBA{R: 255, G: 250, B: 210, A: 230})
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
