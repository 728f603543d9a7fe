package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/road"
)

type drawCall struct {
	op    string
	pts   []Vec
	x, y  float64
	w, h  float64
	color color.RGBA
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	w, h  int
	calls []drawCall
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) FillPolygon(pts []Vec, c color.RGBA) {
	cp := make([]Vec, len(pts))
	copy(cp, pts)
	r.calls = append(r.calls, drawCall{op: "poly", pts: cp, color: c})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "line", x: x0, y: y0, w: x1, h: y1, color: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "circle", x: cx, y: cy, w: rad, color: c})
}

// grains counts the single-pixel rects used for sand.
func (r *recorder) grains(t *testing.T) int {
	t.Helper()
	n := 0
	for _, c := range r.calls {
		if c.op == "rect" && c.w == 1 && c.h == 1 {
			n++
			assert.Equal(t, math.Floor(c.x), c.x)
			assert.Equal(t, math.Floor(c.y), c.y)
		}
	}
	return n
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func straightTrack(n int, stage road.Stage) *road.Track {
	t := &road.Track{Stage: stage, GoalDistance: road.GoalDistance}
	for i := 0; i < n; i++ {
		stripe := road.StripeDark
		if i%2 == 0 {
			stripe = road.StripeLight
		}
		t.Segments = append(t.Segments, road.Segment{
			Index:  i,
			Start:  road.Point{Z: float64(i) * road.StripeLength},
			End:    road.Point{Z: float64(i+1) * road.StripeLength},
			Stripe: stripe,
		})
	}
	return t
}

func TestRenderBackToFront(t *testing.T) {
	plain := road.StageByID(1)
	plain.CurbEnabled = false
	track := straightTrack(400, plain)

	surf := &recorder{w: 800, h: 600}
	NewTrackRenderer().Render(surf, View{Track: track, VehicleZ: 1000, Fog: plain.FogColor()})
	require.Equal(t, surf.count("poly"), len(surf.calls))
	require.NotEmpty(t, surf.calls)

	// Near edges move down the screen as painting approaches the camera.
	prev := 0.0
	for _, c := range surf.calls {
		assert.GreaterOrEqual(t, c.pts[2].Y, prev)
		prev = c.pts[2].Y
		for _, v := range c.pts {
			assert.GreaterOrEqual(t, v.Y, camera.HorizonY+horizonClamp)
		}
	}
	last := surf.calls[len(surf.calls)-1]
	assert.Greater(t, last.pts[2].Y, float64(surf.h), "nearest segment reaches past the bottom edge")
}

func TestRenderReturnsTurn(t *testing.T) {
	b := road.Generate(road.StageByID(1))
	flat := &road.Track{Segments: b.Segments[:40], GoalDistance: road.GoalDistance, Stage: b.Stage}
	surf := &recorder{w: 800, h: 600}
	assert.Zero(t, NewTrackRenderer().Render(surf, View{Track: flat}))

	curved := &road.Track{Stage: road.StageByID(4), GoalDistance: road.GoalDistance}
	for i := 0; i < 10; i++ {
		curved.Segments = append(curved.Segments, road.Segment{
			Index:     i,
			Start:     road.Point{Z: float64(i) * road.StripeLength},
			End:       road.Point{Z: float64(i+1) * road.StripeLength},
			Curvature: 1,
		})
	}
	// Curvature of every visible segment is summed once.
	assert.InDelta(t, 10, NewTrackRenderer().Render(surf, View{Track: curved}), 1e-9)
}

func TestRenderEmptyTrack(t *testing.T) {
	surf := &recorder{w: 800, h: 600}
	assert.Zero(t, NewTrackRenderer().Render(surf, View{}))
	assert.Zero(t, NewTrackRenderer().Render(surf, View{Track: &road.Track{}}))
	assert.Empty(t, surf.calls)
}

func TestRenderGoalLine(t *testing.T) {
	track := road.Generate(road.StageByID(2))
	surf := &recorder{w: 800, h: 600}
	NewTrackRenderer().Render(surf, View{Track: track, VehicleZ: road.GoalDistance - 5000, Fog: track.Stage.FogColor()})

	found := false
	for _, c := range surf.calls {
		if c.op == "rect" && c.color == goalWhite {
			found = true
			assert.Greater(t, c.w, 0.0)
		}
	}
	assert.True(t, found)

	surf = &recorder{w: 800, h: 600}
	NewTrackRenderer().Render(surf, View{Track: track, VehicleZ: 1000})
	assert.Zero(t, surf.count("rect"))
}

func TestRenderCurbsAndSand(t *testing.T) {
	curbed := road.Generate(road.StageByID(1))
	surf := &recorder{w: 800, h: 600}
	NewTrackRenderer().Render(surf, View{Track: curbed, VehicleZ: 0})
	assert.Positive(t, surf.count("line"), "start zone is curbed")
	assert.Zero(t, surf.grains(t))

	desert := road.Generate(road.StageByID(4))
	surf = &recorder{w: 800, h: 600}
	NewTrackRenderer().Render(surf, View{Track: desert, VehicleZ: 0, Fog: desert.Stage.FogColor()})
	assert.Zero(t, surf.count("line"), "desert has no curbs")
	assert.Positive(t, surf.grains(t))
	assert.Positive(t, surf.count("circle"))
}

func TestRenderStable(t *testing.T) {
	track := road.Generate(road.StageByID(4))
	v := View{Track: track, VehicleZ: 12345, VehicleX: 40, Fog: track.Stage.FogColor()}
	a := &recorder{w: 800, h: 600}
	b := &recorder{w: 800, h: 600}
	r := NewTrackRenderer()
	r.Render(a, v)
	r.Render(b, v)
	assert.Equal(t, a.calls, b.calls)
}

func TestFogAmount(t *testing.T) {
	assert.Zero(t, fogAmount(0, 600))
	assert.InDelta(t, 0.5625, fogAmount(DrawDistance/2, 600), 1e-9)
	assert.Equal(t, 1.0, fogAmount(DrawDistance, 600))
	assert.Equal(t, 1.0, fogAmount(0, camera.HorizonY))
	assert.Less(t, fogAmount(0, camera.HorizonY+100), 1.0)
}

func TestEdgeJitterShared(t *testing.T) {
	for i := 0; i < 20; i++ {
		j := edgeJitter(i, 0, 1)
		assert.LessOrEqual(t, j, EdgeRoughness)
		assert.GreaterOrEqual(t, j, -EdgeRoughness)
		assert.Equal(t, j, edgeJitter(i, 0, 1))
	}
}

func TestHorizonFog(t *testing.T) {
	surf := &recorder{w: 800, h: 600}
	HorizonFog(surf, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	require.NotEmpty(t, surf.calls)
	assert.Equal(t, camera.HorizonY, surf.calls[0].y)
	assert.Equal(t, uint8(horizonFogAlpha), surf.calls[0].color.A)
	for i := 1; i < len(surf.calls); i++ {
		assert.LessOrEqual(t, surf.calls[i].color.A, surf.calls[i-1].color.A)
		assert.Less(t, surf.calls[i].y, camera.HorizonY+HorizonFogHeight)
	}
}

func TestParallax(t *testing.T) {
	p := NewParallax(800, 1600, 0.1, 2, false)
	assert.Equal(t, -400.0, p.X)
	assert.Equal(t, -800.0, p.MinX)

	p.Update(1, 2, 100)
	assert.InDelta(t, -420, p.X, 1e-9)
	assert.InDelta(t, -200, p.Y, 1e-9)

	for i := 0; i < 1000; i++ {
		p.Update(1, 5, 100)
	}
	assert.Equal(t, p.MinX, p.X)
	for i := 0; i < 1000; i++ {
		p.Update(1, -5, 100)
	}
	assert.Equal(t, 0.0, p.X)

	smooth := NewParallax(800, 1600, 0.1, 0, true)
	smooth.Update(1.0/60, 0.05, 100)
	assert.Equal(t, -400.0, smooth.X, "smoothed curve is still inside the dead zone")
}

func TestVerticalOffset(t *testing.T) {
	assert.InDelta(t, -6, PitchOffset(0.02), 1e-9)
	assert.Equal(t, 15.0, VerticalOffset(10, 5000))
	assert.Equal(t, -15.0, VerticalOffset(-20, 0))
	assert.InDelta(t, 3, VerticalOffset(1, 100), 1e-9)
	assert.InDelta(t, 3, VanishingShift(10), 1e-9)
}
