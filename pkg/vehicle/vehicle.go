// Package vehicle integrates the player car: steering, centrifugal drift,
// offroad detection, slope gravity and the throttle/brake speed model.
package vehicle

import (
	"math"

	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/road"
)

const (
	steerDeadZone   = 0.01
	stickDeadZone   = 0.1
	safeWidthFactor = 0.9
	safeWidthInset  = 500.0
	curbAllowance   = 200.0

	downhillSlope    = -0.01
	maxSpeedLerpRate = 8.0

	wetSteerSpeed  = 48.5 // ~100 km/h
	wetSteerFactor = 0.85
	wetDrift       = 5.5

	sandBrakeFactor = 0.5
	sandSlipSpeed   = 107.0 // ~220 km/h
	sandSlipFreq    = 15.0
	sandUphill      = 0.02
	sandCoastFactor = 1.2

	offroadDecelFactor = 4.0
	coastFactor        = 0.5
)

// Terrain is the road the car drives on.
type Terrain interface {
	CurveAt(z float64) float64
	SlopeAt(z float64) float64
	CurbAt(z float64) (left, right bool)
}

// Input is one tick of driver intent.
type Input struct {
	Steer      float64 // -1 (left) .. 1 (right)
	Accelerate bool
	Brake      bool
}

// State is the kinematic state of the car.
type State struct {
	X, Z     float64
	Speed    float64
	Steering float64

	OffroadLeft  bool
	OffroadRight bool
	Braking      bool
	Accelerating bool

	DynamicMaxSpeed float64
}

// Offroad reports whether either side has left the road.
func (s State) Offroad() bool {
	return s.OffroadLeft || s.OffroadRight
}

// SpeedRatio returns speed as a fraction of the car's top speed.
func (s State) SpeedRatio() float64 {
	return mathutil.Clamp(s.Speed/NormalMaxSpeed, 0, 1)
}

// Model advances a car through fixed ticks.
type Model struct {
	State
	Car Car

	// clock is simulated seconds, used for sand traction oscillation.
	clock float64
}

// NewModel returns a car parked on the start line.
func NewModel(car Car) *Model {
	m := &Model{Car: car}
	m.Reset()
	return m
}

// Reset puts the car back on the start line.
func (m *Model) Reset() {
	m.State = State{DynamicMaxSpeed: m.Car.TopSpeed}
	m.clock = 0
}

// Stop halts the car where it is and clears the offroad flags.
func (m *Model) Stop() {
	m.Speed = 0
	m.OffroadLeft = false
	m.OffroadRight = false
	m.Accelerating = false
	m.Braking = false
}

// Tick integrates one fixed step. Speed changes are per tick; dt only
// drives the smoothing of the dynamic max speed and the sand oscillator.
func (m *Model) Tick(in Input, t Terrain, dt float64, stage road.Stage) {
	m.clock += dt
	car := m.Car
	ratio := mathutil.Clamp(m.Speed/car.TopSpeed, 0, 1)

	// Steering.
	turn := car.SteerRate(ratio)
	if stage.Surface == road.SurfaceWet && m.Speed >= wetSteerSpeed {
		turn *= wetSteerFactor
	}
	m.Steering = mathutil.Clamp(in.Steer, -1, 1)
	if math.Abs(m.Steering) > steerDeadZone {
		m.X += m.Steering * turn
	}

	// Centrifugal drift pushes the car to the outside of the curve.
	drift := car.Drift
	if stage.Surface == road.SurfaceWet {
		drift = wetDrift
	}
	m.X -= t.CurveAt(m.Z) * ratio * drift

	// Offroad: curbs widen the drivable band on their side.
	half := road.RoadWorldWidth/2*safeWidthFactor - safeWidthInset
	left, right := -half, half
	curbL, curbR := t.CurbAt(m.Z)
	if curbL {
		left -= curbAllowance
	}
	if curbR {
		right += curbAllowance
	}
	m.OffroadLeft = m.X-car.TireOffset < left
	m.OffroadRight = m.X+car.TireOffset > right
	offroad := m.Offroad()

	// Dynamic max speed rises on distinct downhills.
	slope := t.SlopeAt(m.Z)
	target := car.TopSpeed
	if slope < downhillSlope {
		target += car.DownhillBoost
	}
	m.DynamicMaxSpeed += (target - m.DynamicMaxSpeed) * math.Min(1, maxSpeedLerpRate*dt)

	gravity := -slope * car.Gravity * 10
	if in.Brake {
		gravity *= 0.2
	}
	m.Speed += gravity

	limit := m.DynamicMaxSpeed
	if offroad {
		limit = car.OffroadSpeed
	}

	// Accelerating is set only on ticks where the throttle adds speed.
	m.Braking = in.Brake
	m.Accelerating = false
	throttle := in.Accelerate && !in.Brake

	switch {
	case m.Braking:
		brake := car.Brake * car.BrakingEfficiency(m.Speed)
		if stage.Surface == road.SurfaceSand && !offroad {
			brake *= sandBrakeFactor
		}
		m.Speed -= brake
	case throttle && m.Speed < limit:
		m.Accelerating = true
		accel := car.Accel * car.AccelEfficiency(m.Speed)
		if stage.Surface == road.SurfaceSand && m.Speed < sandSlipSpeed {
			accel *= sandGrip(slope, m.clock)
		}
		m.Speed = math.Min(m.Speed+accel, limit)
	case m.Speed > limit:
		decel := car.Decel
		if offroad {
			decel *= offroadDecelFactor
		}
		m.Speed -= decel
	}

	if !m.Accelerating && !m.Braking && m.Speed > 0 {
		coast := car.Decel * coastFactor
		if stage.Surface == road.SurfaceSand && offroad {
			coast *= sandCoastFactor
		}
		m.Speed -= coast
	}

	if m.Speed < 0 {
		m.Speed = 0
	}
	m.Z += m.Speed
}

// sandGrip is the intermittent traction loss on sand. Steep uphills keep
// most of their grip so the car cannot stall.
func sandGrip(slope, clock float64) float64 {
	base, amp := 0.7, 0.3
	if slope > sandUphill {
		base, amp = 0.85, 0.15
	}
	return base + amp*math.Sin(clock*sandSlipFreq)
}
