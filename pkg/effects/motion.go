package effects

import "math"

// Sway is the sprite roll in degrees: a lean against the steering, plus a
// fast wobble while offroad.
func Sway(steer float64, offroad bool, t float64) float64 {
	angle := -steer * 2.5
	if offroad {
		angle += math.Sin(t * 50)
	}
	return angle
}

// Shake returns a sprite offset. Above 50 units the car buzzes with speed;
// offroad it bounces instead.
func (s *System) Shake(speed float64, offroad bool, t float64) (x, y float64) {
	if speed > 50 && !offroad {
		mag := 2 * min(1, (speed-50)/100)
		x = s.rng.Range(-mag, mag)
		y = s.rng.Range(-mag, mag)
	}
	if offroad {
		y += math.Sin(t*60) * 5
		x += s.rng.Range(-2, 2)
	}
	return x, y
}
