package road

import "math"

const (
	StripeLength   = 300.0
	RoadWorldWidth = 3388.0
	GoalDistance   = 600000.0

	CurbWidthRatio     = 0.06
	CurbStartZone      = 20000.0 // both sides are curbed until here
	CurbCurveThreshold = 1.5
)

// Stripe selects the light or dark road colour of a segment.
type Stripe uint8

const (
	StripeLight Stripe = iota
	StripeDark
)

// Point is a segment endpoint in world space.
type Point struct {
	Z         float64
	Elevation float64
}

// Segment is one stripe of road. Segments are never modified once the
// track is generated.
type Segment struct {
	Index     int
	Start     Point
	End       Point
	Curvature float64
	Stripe    Stripe
}

// Slope returns dy/dz across the segment.
func (s *Segment) Slope() float64 {
	return (s.End.Elevation - s.Start.Elevation) / StripeLength
}

// Track is the ordered segment list for one stage. A new Track is built for
// every stage; callers swap the pointer rather than mutating segments.
type Track struct {
	Segments     []Segment
	GoalDistance float64
	Stage        Stage
}

// Len returns the number of segments.
func (t *Track) Len() int {
	return len(t.Segments)
}

// Length returns the world length covered by the segments.
func (t *Track) Length() float64 {
	return float64(len(t.Segments)) * StripeLength
}

// indexAt returns the segment index under z, or -1 when z is off the track.
func (t *Track) indexAt(z float64) int {
	if z < 0 {
		return -1
	}
	idx := int(math.Floor(z / StripeLength))
	if idx >= len(t.Segments) {
		return -1
	}
	return idx
}

// SegmentAt returns the segment under z.
func (t *Track) SegmentAt(z float64) (*Segment, bool) {
	idx := t.indexAt(z)
	if idx < 0 {
		return nil, false
	}
	return &t.Segments[idx], true
}

// CurveAt returns the curvature of the segment under z.
func (t *Track) CurveAt(z float64) float64 {
	seg, ok := t.SegmentAt(z)
	if !ok {
		return 0
	}
	return seg.Curvature
}

// HeightAt returns the road elevation at z, interpolated inside the segment.
func (t *Track) HeightAt(z float64) float64 {
	seg, ok := t.SegmentAt(z)
	if !ok {
		return 0
	}
	f := (z - seg.Start.Z) / StripeLength
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return seg.Start.Elevation + (seg.End.Elevation-seg.Start.Elevation)*f
}

// SlopeAt returns dy/dz of the segment under z.
func (t *Track) SlopeAt(z float64) float64 {
	seg, ok := t.SegmentAt(z)
	if !ok {
		return 0
	}
	return seg.Slope()
}

// CurbAt reports which sides of the road carry a curb at z.
func (t *Track) CurbAt(z float64) (left, right bool) {
	if !t.Stage.CurbEnabled {
		return false, false
	}
	seg, ok := t.SegmentAt(z)
	if !ok {
		return false, false
	}
	return seg.Curbs()
}

// Curbs reports the curbed sides of a segment, ignoring the stage switch.
// The start zone is curbed on both sides; afterwards only the inside of
// sharp curves is.
func (s *Segment) Curbs() (left, right bool) {
	if s.Start.Z < CurbStartZone {
		return true, true
	}
	switch {
	case s.Curvature > CurbCurveThreshold:
		return false, true
	case s.Curvature < -CurbCurveThreshold:
		return true, false
	}
	return false, false
}
