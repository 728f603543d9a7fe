// Package effects simulates the tyre dust, sand clouds and chassis sparks
// around the player car, plus the sway and shake applied to its sprite.
package effects

import (
	"image/color"

	"github.com/golangdaddy/horizon/pkg/mathutil"
)

const (
	MaxParticles = 30
	MaxSparks    = 50
)

type Kind uint8

const (
	Dust Kind = iota
	Sand
)

// Particle is a dust or sand puff in screen space.
type Particle struct {
	Active bool
	Kind   Kind

	X, Y   float64
	VX, VY float64

	Life    float64 // seconds (sand) or a 0..1 fraction (dust)
	MaxLife float64

	Scale float64
	Angle float64
	Color color.RGBA
}

// Spark is a short-lived scrape spark.
type Spark struct {
	Active bool

	X, Y   float64
	VX, VY float64

	Life    float64
	MaxLife float64

	Scale     float64
	BaseScale float64
	FlipX     bool
}

// System owns fixed pools of particles and sparks. When a pool is full the
// oldest slot is overwritten.
type System struct {
	Particles [MaxParticles]Particle
	Sparks    [MaxSparks]Spark

	next      int
	nextSpark int
	rng       mathutil.Rand
}

// NewSystem returns an empty system with a seeded generator.
func NewSystem(seed uint64) *System {
	return &System{rng: mathutil.NewRand(seed)}
}

func (s *System) slot() *Particle {
	p := &s.Particles[s.next]
	s.next = (s.next + 1) % MaxParticles
	return p
}

// AddDust kicks up mud behind a tyre. Steering pushes the puff the other way.
func (s *System) AddDust(x, y, steer float64) {
	p := s.slot()
	*p = Particle{
		Active:  true,
		Kind:    Dust,
		X:       x,
		Y:       y,
		Life:    1,
		MaxLife: 1,
		Scale:   s.rng.Range(0.5, 1.0),
		Angle:   s.rng.Range(0, 360),
		VX:      -steer*15 + s.rng.Range(-1, 1),
		VY:      s.rng.Range(-4.5, -2),
		Color:   color.RGBA{R: 100, G: 80, B: 50, A: 0xff},
	}
}

// AddSandDust spawns a sand cloud about a third of the time. slip scales the
// cloud size.
func (s *System) AddSandDust(x, y, slip float64, ground color.RGBA) {
	if s.rng.Float64() > 0.3 {
		return
	}
	p := s.slot()
	life := s.rng.Range(0.8, 1.5)
	vx := s.rng.Range(-15, 15) * 0.5
	vy := s.rng.Range(-3, -1)
	scale := s.rng.Range(0.5, 0.9) * (1 + slip)
	angle := s.rng.Range(0, 360)
	v := s.rng.Range(0.9, 1.1)
	*p = Particle{
		Active:  true,
		Kind:    Sand,
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Life:    life,
		MaxLife: life,
		Scale:   scale,
		Angle:   angle,
		Color: color.RGBA{
			R: tint(ground.R, v),
			G: tint(ground.G, v),
			B: tint(ground.B, v),
			A: 0xff,
		},
	}
}

func tint(c uint8, v float64) uint8 {
	return uint8(min(255, int(float64(c)*v)))
}

// AddSpark spawns a spark. flipX mirrors it for the right side of the car.
func (s *System) AddSpark(x, y float64, flipX bool) {
	sp := &s.Sparks[s.nextSpark]
	s.nextSpark = (s.nextSpark + 1) % MaxSparks

	life := s.rng.Range(0.05, 0.25)
	var scale float64
	switch r := s.rng.Float64(); {
	case r < 0.2:
		scale = s.rng.Range(0.06, 0.075)
	case r < 0.6:
		scale = s.rng.Range(0.04, 0.06)
	default:
		scale = s.rng.Range(0.02, 0.04)
	}
	*sp = Spark{
		Active:    true,
		X:         x,
		Y:         y,
		Life:      life,
		MaxLife:   life,
		Scale:     scale,
		BaseScale: scale,
		FlipX:     flipX,
	}
}

// Update advances every live particle by dt seconds. Velocities are in
// pixels per 60 Hz frame.
func (s *System) Update(dt float64) {
	frames := dt * 60
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		switch p.Kind {
		case Dust:
			p.VY += 1.5 * frames * 0.1
			p.VX *= 0.92
			p.VY *= 0.92
			p.X += p.VX * frames
			p.Y += p.VY * frames
			p.Life -= 2.5 * dt
			p.Scale += 0.5 * dt
		case Sand:
			p.VX *= 0.96
			p.VY *= 0.96
			p.VY += 0.2 * frames * 0.05
			if s.rng.Float64() < 0.2 {
				p.VX += s.rng.Range(-0.8, 0.8)
			}
			p.X += p.VX * frames
			p.Y += p.VY * frames
			p.Life -= dt
		}
		if p.Life <= 0 {
			p.Active = false
		}
	}

	for i := range s.Sparks {
		sp := &s.Sparks[i]
		if !sp.Active {
			continue
		}
		sp.X += sp.VX * frames
		sp.Y += sp.VY * frames
		sp.VY += frames
		sp.Life -= dt

		progress := sp.Progress()
		if progress < 0.2 {
			sp.Scale = sp.BaseScale * (1 + progress*2)
		} else {
			sp.Scale = max(0, sp.BaseScale*(1.4-(progress-0.2)))
		}
		if sp.Life <= 0 {
			sp.Active = false
		}
	}
}

// Progress runs from 0 at spawn to 1 at death.
func (sp *Spark) Progress() float64 {
	return 1 - sp.Life/sp.MaxLife
}

// Clear deactivates everything, e.g. before a replay.
func (s *System) Clear() {
	for i := range s.Particles {
		s.Particles[i].Active = false
	}
	for i := range s.Sparks {
		s.Sparks[i].Active = false
	}
}

// Live counts active particles and sparks.
func (s *System) Live() (particles, sparks int) {
	for i := range s.Particles {
		if s.Particles[i].Active {
			particles++
		}
	}
	for i := range s.Sparks {
		if s.Sparks[i].Active {
			sparks++
		}
	}
	return particles, sparks
}
