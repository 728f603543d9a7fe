package road

import "math/rand"

const (
	openingSegments = 50
	closingSegments = 300
)

// builder appends runs of segments while keeping elevation continuous.
type builder struct {
	segments []Segment
}

func (b *builder) add(count int, curvature, slope float64) {
	elevation := 0.0
	if n := len(b.segments); n > 0 {
		elevation = b.segments[n-1].End.Elevation
	}
	for i := 0; i < count; i++ {
		idx := len(b.segments)
		stripe := StripeDark
		if idx%2 == 0 {
			stripe = StripeLight
		}
		next := elevation + slope*StripeLength
		b.segments = append(b.segments, Segment{
			Index:     idx,
			Start:     Point{Z: float64(idx) * StripeLength, Elevation: elevation},
			End:       Point{Z: float64(idx+1) * StripeLength, Elevation: next},
			Curvature: curvature,
			Stripe:    stripe,
		})
		elevation = next
	}
}

func (b *builder) length() float64 {
	return float64(len(b.segments)) * StripeLength
}

// Generate builds the track for a stage. The sequence of runs is drawn from
// a source seeded by the stage id, so the same stage always yields the same
// road.
func Generate(stage Stage) *Track {
	rng := rand.New(rand.NewSource(int64(stage.ID)))
	b := &builder{segments: make([]Segment, 0, int(GoalDistance/StripeLength)+closingSegments+1200)}

	b.add(openingSegments, 0, 0)

	for GoalDistance-b.length() > 0 {
		r := rng.Float64()
		dir := -1.0
		if rng.Float64() > 0.5 {
			dir = 1.0
		}
		count := 50 + rng.Intn(101)
		slope := 0.0
		if rng.Float64() < 0.7 {
			slope = uniform(rng, -0.05, 0.05)
		}

		switch {
		case r < 0.2:
			b.add(count, 0, slope)
		case r < 0.5:
			c := uniform(rng, 0.5, 1.5) * dir * stage.CurveMult
			b.add(30, c/2, slope)
			b.add(count, c, slope)
			b.add(30, c/2, slope)
		case r < 0.5+stage.SharpProb:
			c := uniform(rng, 2.0, 4.0) * dir * stage.CurveMult
			b.add(40, c/2, slope)
			b.add(count, c, slope)
			b.add(40, c/2, slope)
		default:
			// S-curve: ease in, hold, ease out, then the mirror image.
			c := uniform(rng, 2.0, 4.0) * dir * stage.CurveMult
			b.add(30, c/2, slope)
			b.add(40, c, slope)
			b.add(30, c/2, slope)
			b.add(30, -c/2, slope)
			b.add(40, -c, slope)
			b.add(30, -c/2, slope)
		}
	}

	b.add(closingSegments, 0, 0)

	return &Track{
		Segments:     b.segments,
		GoalDistance: GoalDistance,
		Stage:        stage,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
