package render

import (
	"math"

	"github.com/golangdaddy/horizon/pkg/mathutil"
)

const (
	parallaxSmoothing = 5.0
	parallaxDeadZone  = 0.005

	pitchScale        = 300.0
	cameraOffsetScale = 0.02
	maxVerticalOffset = 15.0
	vanishingPointMix = 0.3
)

// Parallax tracks the horizontal scroll of an image wider than the screen.
// Curves push it sideways in proportion to speed; it stops at the image
// edges instead of wrapping.
type Parallax struct {
	FactorX float64
	// FactorY scrolls the texture toward the viewer with speed. Zero
	// disables vertical scrolling.
	FactorY float64
	// Smooth low-pass filters the curve input and ignores a small dead zone.
	Smooth bool

	X, Y     float64
	MinX     float64
	smoothed float64
}

// NewParallax centres an image of imageW pixels on a screen of screenW.
func NewParallax(screenW, imageW, factorX, factorY float64, smooth bool) *Parallax {
	return &Parallax{
		FactorX: factorX,
		FactorY: factorY,
		Smooth:  smooth,
		X:       (screenW - imageW) / 2,
		MinX:    math.Min(0, screenW-imageW),
	}
}

// Update advances the scroll by one tick.
func (p *Parallax) Update(dt, curve, speed float64) {
	use := curve
	if p.Smooth {
		p.smoothed += (curve - p.smoothed) * parallaxSmoothing * dt
		use = p.smoothed
		if math.Abs(use) < parallaxDeadZone {
			use = 0
		}
	}
	p.X = mathutil.Clamp(p.X-use*speed*p.FactorX*dt, p.MinX, 0)
	p.Y -= speed * p.FactorY * dt
}

// PitchOffset converts the smoothed road slope into a vertical backdrop shift.
func PitchOffset(slope float64) float64 {
	return -slope * pitchScale
}

// VerticalOffset combines pitch with the camera elevation so the backdrop
// horizon stays on the road's vanishing point, clamped to a few pixels.
func VerticalOffset(pitch, cameraElevation float64) float64 {
	cam := mathutil.Clamp(cameraElevation*cameraOffsetScale, -maxVerticalOffset, maxVerticalOffset)
	return mathutil.Clamp(pitch+cam, -maxVerticalOffset, maxVerticalOffset)
}

// VanishingShift turns the renderer's accumulated turn into the horizontal
// shift applied to the top of the ground texture.
func VanishingShift(accumulatedTurn float64) float64 {
	return accumulatedTurn * vanishingPointMix
}
