package effects

import (
	"image/color"

	"github.com/golangdaddy/horizon/pkg/render"
)

const (
	dustRadius  = 18.0
	sandRadius  = 26.0
	sparkLength = 160.0
)

// Alpha returns the particle opacity. Sand fades in over the first fifth of
// its life then fades out; dust fades linearly.
func (p *Particle) Alpha() uint8 {
	if p.Kind == Dust {
		return uint8(255 * max(0, min(1, p.Life)))
	}
	maxLife := p.MaxLife
	if maxLife <= 0 {
		maxLife = 0.01
	}
	prog := 1 - p.Life/maxLife
	var a float64
	if prog < 0.2 {
		a = 255 * 0.7 * (prog / 0.2)
	} else {
		a = 255 * 0.7 * (1 - (prog-0.2)/0.8)
	}
	return uint8(max(0, min(255, a)))
}

// SparkColor ramps white-yellow to orange to dark red over the spark's life.
func SparkColor(progress float64) color.RGBA {
	c := color.RGBA{R: 255, A: 0xff}
	switch {
	case progress < 0.2:
		c.G = 255
		c.B = uint8(max(0, 255*(1-progress/0.2)))
	case progress < 0.6:
		c.G = uint8(255 - 155*((progress-0.2)/0.4))
	default:
		c.G = uint8(max(0, 100*(1-(progress-0.6)/0.4)))
	}
	return c
}

// Draw paints the dust and sand clouds.
func (s *System) Draw(dst render.Surface) {
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		c := p.Color
		if p.Kind == Dust {
			c = color.RGBA{R: 200, G: 200, B: 200}
		}
		c.A = p.Alpha()
		if c.A == 0 {
			continue
		}
		r := dustRadius
		if p.Kind == Sand {
			r = sandRadius
		}
		dst.FillCircle(p.X, p.Y, r*p.Scale, c)
	}
}

// DrawSparks paints the sparks as short streaks trailing away from the car.
func (s *System) DrawSparks(dst render.Surface) {
	for i := range s.Sparks {
		sp := &s.Sparks[i]
		if !sp.Active {
			continue
		}
		c := SparkColor(sp.Progress())
		c.A = uint8(255 * s.rng.Range(0.6, 1))

		length := max(1, sparkLength*sp.Scale)
		dx := -length
		if sp.FlipX {
			dx = length
		}
		dst.StrokeLine(sp.X, sp.Y, sp.X+dx, sp.Y-length*0.3, max(1, length*0.25), c)
	}
}
