package hud

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

type polyRecorder struct {
	polys []color.RGBA
	rects int
}

func (p *polyRecorder) Size() (int, int)                               { return 800, 600 }
func (p *polyRecorder) FillRect(_, _, _, _ float64, _ color.RGBA)      { p.rects++ }
func (p *polyRecorder) FillPolygon(_ []render.Vec, c color.RGBA)       { p.polys = append(p.polys, c) }
func (p *polyRecorder) StrokeLine(_, _, _, _, _ float64, _ color.RGBA) {}
func (p *polyRecorder) FillCircle(_, _, _ float64, _ color.RGBA)       {}

func (p *polyRecorder) lit(c color.RGBA) int {
	n := 0
	for _, got := range p.polys {
		if got == c {
			n++
		}
	}
	return n
}

func TestSpeedometerEases(t *testing.T) {
	s := NewSpeedometer(1)
	r := s.Update(100, false)
	assert.Equal(t, int(8*KmhPerUnit), r.Kmh)

	for i := 0; i < 300; i++ {
		r = s.Update(100, false)
	}
	assert.InDelta(t, 100*KmhPerUnit, float64(r.Kmh), 1)
	assert.Equal(t, r, s.Last())
}

func TestSpeedometerFrozenDoesNotJitter(t *testing.T) {
	s := NewSpeedometer(1)
	for i := 0; i < 400; i++ {
		s.Update(vehicle.NormalMaxSpeed, true)
	}
	first := s.Update(vehicle.NormalMaxSpeed, true).Kmh
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.Update(vehicle.NormalMaxSpeed, true).Kmh)
	}

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[s.Update(vehicle.NormalMaxSpeed, false).Kmh] = true
	}
	assert.Greater(t, len(seen), 1, "top speed trembles")
}

func TestSpeedometerColor(t *testing.T) {
	tests := []struct {
		kmh  int
		want []color.RGBA
	}{
		{120, []color.RGBA{white}},
		{200, []color.RGBA{white}},
		{220, []color.RGBA{yellow}},
		{260, []color.RGBA{orange}},
		{300, []color.RGBA{red, pink}},
	}
	s := NewSpeedometer(3)
	for _, tt := range tests {
		assert.Contains(t, tt.want, s.colorFor(tt.kmh), "%d km/h", tt.kmh)
	}
}

func TestSpeedometerDraw(t *testing.T) {
	s := NewSpeedometer(1)
	p := &polyRecorder{}
	s.Draw(p, Reading{Kmh: 188, Color: white})

	assert.Equal(t, 1, p.rects, "panel")
	assert.Equal(t, 21, p.lit(ghost), "three digits of seven segments")
	// 1 lights two segments, 8 lights seven.
	assert.Equal(t, 2+7+7, p.lit(white))
}

func TestSegmentsAreSkewed(t *testing.T) {
	segs := segments(0, 0)
	top, bottom := segs[0][0], segs[3][1]
	assert.Equal(t, 40+digitSize*0.1, top.X)
	assert.Less(t, bottom.X, top.X, "the bottom leans left")
}

func TestStatus(t *testing.T) {
	lines := Status(3, 12.346, 42)
	require.Len(t, lines, 3)
	assert.Equal(t, "STAGE: 3", lines[0].Str)
	assert.Equal(t, "TIME: 12.35", lines[1].Str)
	assert.Equal(t, "DIST: 42m", lines[2].Str)
}

func TestBanner(t *testing.T) {
	b, ok := Banner(race.Goal, 2, 800, 600)
	require.True(t, ok)
	assert.Equal(t, "GOAL!!", b.Str)
	assert.Equal(t, red, b.Color)

	b, ok = Banner(race.StageClear, 2, 800, 600)
	require.True(t, ok)
	assert.Equal(t, "STAGE 2 CLEAR", b.Str)
	assert.Equal(t, 3.0, b.Scale)

	_, ok = Banner(race.Playing, 2, 800, 600)
	assert.False(t, ok)
}

func TestGameClearHighlightsRun(t *testing.T) {
	lines := GameClear(250.5, []float64{200.25, 250.5, 260, 270, 280, 290}, 800)
	var entries []Text
	for _, l := range lines {
		if l.Y >= 270 && l.Y < 500 {
			entries = append(entries, l)
		}
	}
	require.Len(t, entries, 6)
	assert.Equal(t, "1st 200.25", entries[0].Str)
	assert.Equal(t, white, entries[0].Color)
	assert.Equal(t, "2nd 250.50", entries[1].Str)
	assert.Equal(t, yellow, entries[1].Color)
	assert.Equal(t, "6th 290.00", entries[5].Str)
}

func TestReplayStatusBlinks(t *testing.T) {
	assert.Equal(t, red, ReplayStatus(0.1, 800)[0].Color)
	assert.Equal(t, pink, ReplayStatus(0.6, 800)[0].Color)
	assert.Equal(t, 780.0, ReplayStatus(0, 800)[0].X)
}
