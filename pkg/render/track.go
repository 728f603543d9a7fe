package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/mathutil"
	"github.com/golangdaddy/horizon/pkg/road"
)

const (
	DrawDistance  = 50000.0
	EdgeRoughness = 22.0

	horizonClamp    = 10.0  // projected y never rises above HorizonY+horizonClamp
	horizonFadeBand = 120.0 // far edges this close to the horizon fade into fog
	fogDensity      = 2.25
	goalSlabHeight  = road.StripeLength * 0.3
	curbBorderWidth = 2.0
)

var (
	curbRed    = color.RGBA{R: 220, G: 50, B: 50, A: 0xff}
	curbWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 0xff}
	curbBorder = color.RGBA{R: 30, G: 30, B: 30, A: 0xff}
	goalWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 0xff}
)

// View is everything the renderer needs for one frame.
type View struct {
	Track           *road.Track
	VehicleZ        float64
	VehicleX        float64
	CameraElevation float64
	// Fog is the colour distant geometry fades into.
	Fog color.RGBA
}

type renderPoint struct {
	z, x, y float64
}

// TrackRenderer draws the visible window of a track back to front. It keeps
// scratch buffers between frames and is not safe for concurrent use.
type TrackRenderer struct {
	points []renderPoint
	poly   [4]Vec
}

// NewTrackRenderer returns a renderer sized for the default draw distance.
func NewTrackRenderer() *TrackRenderer {
	return &TrackRenderer{
		points: make([]renderPoint, 0, int(DrawDistance/road.StripeLength)+2),
	}
}

// Render paints the road and returns the accumulated turn of the visible
// window, which the background uses to shift its vanishing point.
func (r *TrackRenderer) Render(s Surface, v View) float64 {
	if v.Track == nil || v.Track.Len() == 0 {
		return 0
	}
	segs := v.Track.Segments
	n := len(segs)
	w, h := s.Size()
	screenW, screenH := float64(w), float64(h)

	start := int(v.VehicleZ / road.StripeLength)
	if start < 0 {
		start = 0
	}
	if start >= n {
		start = n - 1
	}
	last := start + int(DrawDistance/road.StripeLength)
	if last > n-1 {
		last = n - 1
	}

	// Integrate curvature twice: dx is the heading drift, turn the offset.
	r.points = r.points[:0]
	dx, turn := 0.0, 0.0
	for i := start; i <= last+1; i++ {
		if i > start {
			dx += segs[i-1].Curvature
			turn += dx
		}
		var elevation float64
		if i < n {
			elevation = segs[i].Start.Elevation
		} else {
			elevation = segs[i-1].End.Elevation
		}
		r.points = append(r.points, renderPoint{z: float64(i) * road.StripeLength, x: turn, y: elevation})
	}

	stage := v.Track.Stage
	roadFog := stage.RoadFogColor(v.Fog)

	for i := last; i >= start; i-- {
		k := i - start
		near, far := r.points[k], r.points[k+1]
		seg := &segs[i]

		zNear := near.z - v.VehicleZ
		zFar := far.z - v.VehicleZ
		xNear := near.x - v.VehicleX
		xFar := far.x - v.VehicleX
		yNear, yFar := near.y, far.y

		if zNear < camera.ProjectionPlaneDist {
			if zFar < camera.ProjectionPlaneDist {
				continue
			}
			f := (camera.ProjectionPlaneDist - zNear) / (zFar - zNear)
			zNear = camera.ProjectionPlaneDist
			xNear += (xFar - xNear) * f
			yNear += (yFar - yNear) * f
		}

		p1, ok1 := camera.Project(xNear, camera.RelativeY(yNear, v.CameraElevation), zNear, screenW)
		p2, ok2 := camera.Project(xFar, camera.RelativeY(yFar, v.CameraElevation), zFar, screenW)
		if !ok1 || !ok2 {
			continue
		}
		y1 := math.Max(p1.Y, camera.HorizonY+horizonClamp)
		y2 := math.Max(p2.Y, camera.HorizonY+horizonClamp)

		fog := fogAmount(zNear, y2)
		roadColor := mathutil.LerpRGB(stage.StripeColor(seg.Stripe), roadFog, fog)

		w1 := road.RoadWorldWidth * p1.Scale
		w2 := road.RoadWorldWidth * p2.Scale

		// Jitter is keyed by the edge's segment index so neighbouring
		// segments share the edge between them.
		jl1 := edgeJitter(seg.Index, 0, p1.Scale)
		jr1 := edgeJitter(seg.Index, 1, p1.Scale)
		jl2 := edgeJitter(seg.Index+1, 0, p2.Scale)
		jr2 := edgeJitter(seg.Index+1, 1, p2.Scale)

		r.poly[0] = Vec{p2.X - w2/2 + jl2, y2}
		r.poly[1] = Vec{p2.X + w2/2 + jr2, y2}
		r.poly[2] = Vec{p1.X + w1/2 + jr1, y1}
		r.poly[3] = Vec{p1.X - w1/2 + jl1, y1}
		s.FillPolygon(r.poly[:], roadColor)

		if stage.SandEnabled && y1 > y2 {
			drawSand(s, sandStrip{
				index:     seg.Index,
				x1:        p1.X,
				y1:        y1,
				w1:        w1,
				x2:        p2.X,
				y2:        y2,
				w2:        w2,
				screenH:   screenH,
				fog:       fog,
				fogColor:  v.Fog,
				roadColor: roadColor,
				sand:      stage.SandColor,
			})
		}

		if stage.CurbEnabled {
			r.drawCurbs(s, seg, p1.X, y1, w1, p1.Scale, p2.X, y2, w2, p2.Scale, roadFog, fog)
		}

		if seg.Start.Z <= v.Track.GoalDistance && v.Track.GoalDistance < seg.End.Z {
			drawGoal(s, near, far, v, screenW)
		}
	}

	return dx
}

// fogAmount combines distance fog with the extra fade applied to segments
// whose far edge sits just under the horizon.
func fogAmount(zNear, farY float64) float64 {
	d := zNear / DrawDistance
	fog := d * d * fogDensity
	if farY < camera.HorizonY+horizonFadeBand {
		t := mathutil.Clamp((farY-camera.HorizonY)/horizonFadeBand, 0, 1)
		fog += 1 - t*t*t
	}
	return mathutil.Clamp(fog, 0, 1)
}

func edgeJitter(index, side int, scale float64) float64 {
	return (mathutil.Hash01(index, side) - 0.5) * 2 * EdgeRoughness * scale
}

func (r *TrackRenderer) drawCurbs(s Surface, seg *road.Segment, x1, y1, w1, s1, x2, y2, w2, s2 float64, fogColor color.RGBA, fog float64) {
	cw1 := road.RoadWorldWidth * road.CurbWidthRatio * s1
	cw2 := road.RoadWorldWidth * road.CurbWidthRatio * s2
	if cw1 <= 0.5 || cw2 < 0 {
		return
	}

	base := curbWhite
	if seg.Index%2 == 0 {
		base = curbRed
	}
	fill := mathutil.LerpRGB(base, fogColor, fog)
	border := mathutil.LerpRGB(curbBorder, fogColor, fog)

	left, right := seg.Curbs()
	if left {
		r.poly[0] = Vec{x2 - w2/2 - cw2, y2}
		r.poly[1] = Vec{x2 - w2/2, y2}
		r.poly[2] = Vec{x1 - w1/2, y1}
		r.poly[3] = Vec{x1 - w1/2 - cw1, y1}
		s.FillPolygon(r.poly[:], fill)
		s.StrokeLine(x1-w1/2, y1, x2-w2/2, y2, curbBorderWidth, border)
	}
	if right {
		r.poly[0] = Vec{x2 + w2/2, y2}
		r.poly[1] = Vec{x2 + w2/2 + cw2, y2}
		r.poly[2] = Vec{x1 + w1/2 + cw1, y1}
		r.poly[3] = Vec{x1 + w1/2, y1}
		s.FillPolygon(r.poly[:], fill)
		s.StrokeLine(x1+w1/2, y1, x2+w2/2, y2, curbBorderWidth, border)
	}
}

// drawGoal paints the finish slab standing on the road at the goal line,
// interpolated between the unclipped endpoints of its segment.
func drawGoal(s Surface, near, far renderPoint, v View, screenW float64) {
	f := (v.Track.GoalDistance - near.z) / road.StripeLength
	z := v.Track.GoalDistance - v.VehicleZ
	x := near.x + (far.x-near.x)*f - v.VehicleX
	elevation := near.y + (far.y-near.y)*f

	p, ok := camera.Project(x, camera.RelativeY(elevation, v.CameraElevation), z, screenW)
	if !ok {
		return
	}
	gw := road.RoadWorldWidth * p.Scale
	gh := goalSlabHeight * p.Scale
	s.FillRect(p.X-gw/2, p.Y-gh, gw, gh, goalWhite)
}
