package effects

import (
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

const (
	dustMinSpeed  = 10.0
	tyreEmitProb  = 0.3
	sparkMinSpeed = 150.0
	sparkCurve    = 1.5
	sparkSteer    = 0.7
	sparkOutset   = 15.0
)

// SandColor tints sand clouds. It is kept bright so the clouds read over
// the desert ground.
var SandColor = color.RGBA{R: 255, G: 245, B: 225, A: 0xff}

// Body is the car sprite rectangle on screen.
type Body struct {
	Left, Right, Bottom float64
}

func (b Body) centerX() float64 { return (b.Left + b.Right) / 2 }
func (b Body) width() float64   { return b.Right - b.Left }

// Emission is everything the spawner needs for one tick.
type Emission struct {
	Car     Body
	State   vehicle.State
	Surface road.Surface
	Curve   float64 // track curvature under the car
}

// Emit spawns the tyre and chassis effects implied by the car state.
func (s *System) Emit(e Emission) {
	st := e.State
	sand := e.Surface == road.SurfaceSand
	b := e.Car

	tyre := func(x, y float64) {
		if sand {
			s.AddSandDust(x, y, 0.5, SandColor)
			return
		}
		s.AddDust(x, y, st.Steering)
	}

	if st.OffroadLeft && st.Speed > dustMinSpeed && s.rng.Float64() < tyreEmitProb {
		tyre(b.Left+5+s.rng.Range(-10, 10), b.Bottom-25)
	}

	// Wheel spin on sand.
	if sand && st.Accelerating && st.Speed < 107 {
		prob := 0.025
		if st.Speed < 73 {
			prob *= 1.5
		}
		if s.rng.Float64() < prob {
			s.AddSandDust(b.centerX()+s.rng.Range(-40, 40), b.Bottom-10, 0.8, SandColor)
		}
	}

	// Locked wheels on sand.
	if sand && st.Braking && st.Speed > dustMinSpeed && s.rng.Float64() < tyreEmitProb {
		for n := s.rng.IntRange(1, 2); n > 0; n-- {
			side := 1.0
			if s.rng.Float64() < 0.5 {
				side = -1
			}
			x := b.centerX() + side*b.width()*0.38 + s.rng.Range(-10, 10)
			s.AddSandDust(x, b.Bottom-15, 0.6, SandColor)
		}
	}

	if st.OffroadRight && st.Speed > dustMinSpeed && s.rng.Float64() < tyreEmitProb {
		tyre(b.Right-5+s.rng.Range(-10, 10), b.Bottom-25)
	}

	if st.Speed > sparkMinSpeed {
		s.emitSpark(b, st.Steering, e.Curve)
	}
}

// emitSpark scrapes the inside of sharp curves, or the side being steered
// toward when the wheel is cranked over.
func (s *System) emitSpark(b Body, steer, curve float64) {
	right, ok := false, false
	switch {
	case curve > sparkCurve:
		ok, right = s.rng.Float64() < 0.03, true
	case curve < -sparkCurve:
		ok = s.rng.Float64() < 0.03
	}
	if !ok && math.Abs(steer) > sparkSteer && s.rng.Float64() < 0.02 {
		ok, right = true, steer > 0
	}
	if !ok {
		return
	}
	x := b.Left - sparkOutset
	if right {
		x = b.Right + sparkOutset
	}
	s.AddSpark(x, b.Bottom-20, right)
}
