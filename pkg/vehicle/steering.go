package vehicle

import "math"

// SteeringSources is the raw steering hardware state for one tick.
type SteeringSources struct {
	Left, Right bool

	// HasPad is false when no controller is attached; the pad fields are
	// ignored then.
	HasPad bool
	HatX   int     // d-pad: -1, 0 or 1
	AxisX  float64 // analog stick, -1..1
}

// ResolveSteering picks the steering value by precedence: keys, then the
// d-pad, then the analog stick once it leaves its dead zone. Holding both
// arrow keys cancels keyboard steering.
func ResolveSteering(src SteeringSources) float64 {
	steer := 0.0
	switch {
	case src.Left && src.Right:
	case src.Left:
		steer = -1
	case src.Right:
		steer = 1
	}
	if !src.HasPad {
		return steer
	}
	if src.HatX != 0 {
		steer = float64(src.HatX)
	}
	if math.Abs(src.AxisX) > stickDeadZone {
		steer = src.AxisX
	}
	return steer
}
