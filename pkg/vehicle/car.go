package vehicle

// Speeds are world units per tick. 150 units is roughly 310 km/h.
const (
	NormalMaxSpeed  = 162.0
	OffroadMaxSpeed = NormalMaxSpeed * 0.2

	// DefaultTireOffset is the lateral distance from the car centre to the
	// outside of a rear tyre for a 320px wide sprite.
	DefaultTireOffset = 320*0.38 + 15
)

// Car holds the tuning of a drivable car.
type Car struct {
	TopSpeed      float64
	OffroadSpeed  float64
	DownhillBoost float64

	Accel      float64
	Decel      float64
	Brake      float64
	Gravity    float64
	SteerLow   float64 // lateral units per tick at standstill
	SteerHigh  float64 // lateral units per tick at top speed
	Drift      float64
	TireOffset float64
}

// DefaultCar returns the player car.
func DefaultCar() Car {
	return Car{
		TopSpeed:      NormalMaxSpeed,
		OffroadSpeed:  OffroadMaxSpeed,
		DownhillBoost: 5.0,
		Accel:         0.525,
		Decel:         1.25,
		Brake:         1.2,
		Gravity:       0.8,
		SteerLow:      12.0,
		SteerHigh:     5.0,
		Drift:         4.0,
		TireOffset:    DefaultTireOffset,
	}
}

// BrakingEfficiency returns the fraction of brake force available at speed.
func (c Car) BrakingEfficiency(speed float64) float64 {
	switch {
	case speed > 130:
		return 0.4
	case speed > 80:
		return 0.6
	}
	return 1
}

// AccelEfficiency returns the fraction of engine force available at speed.
// Acceleration tails off near the top of the rev range.
func (c Car) AccelEfficiency(speed float64) float64 {
	switch {
	case speed > 150:
		return 0.1
	case speed > 136:
		return 0.5
	}
	return 1
}

// SteerRate returns the lateral step per tick for a speed ratio in [0,1].
func (c Car) SteerRate(speedRatio float64) float64 {
	return c.SteerLow + (c.SteerHigh-c.SteerLow)*speedRatio
}
