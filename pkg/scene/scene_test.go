package scene

import (
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/horizon/pkg/background"
	"github.com/golangdaddy/horizon/pkg/engine"
	"github.com/golangdaddy/horizon/pkg/hud"
	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

const dt = 1.0 / 60

type fakeLoader struct{ stages []int }

func (f *fakeLoader) StageArt(st road.Stage) (image.Image, image.Image) {
	f.stages = append(f.stages, st.ID)
	return nil, nil
}

type fakeMusic struct{ fades, restarts int }

func (f *fakeMusic) FadeOutBGM(float64) { f.fades++ }
func (f *fakeMusic) RestartBGM()        { f.restarts++ }

type voice struct{ volume float64 }

func (v *voice) SetVolume(x float64) { v.volume = x }

type fakeRanker struct{}

func (fakeRanker) Submit(total float64) []float64 { return []float64{total} }

type recorder struct {
	fills []color.RGBA
	prims int
}

func (r *recorder) Size() (int, int) { return 800, 600 }
func (r *recorder) FillRect(_, _, _, _ float64, c color.RGBA) {
	r.fills = append(r.fills, c)
}
func (r *recorder) FillPolygon([]render.Vec, color.RGBA)           { r.prims++ }
func (r *recorder) StrokeLine(_, _, _, _, _ float64, _ color.RGBA) { r.prims++ }
func (r *recorder) FillCircle(_, _, _ float64, _ color.RGBA)       { r.prims++ }

type fakeArt struct {
	sky    int
	strips int
}

func (a *fakeArt) DrawSky(float64, float64)             { a.sky++ }
func (a *fakeArt) DrawGround(strips []background.Strip) { a.strips += len(strips) }

type texts struct{ got []hud.Text }

func (t *texts) DrawTexts(ts []hud.Text) { t.got = append(t.got, ts...) }

func (t *texts) has(s string) bool {
	for _, x := range t.got {
		if x.Str == s {
			return true
		}
	}
	return false
}

type fixture struct {
	scene  *Scene
	loader *fakeLoader
	music  *fakeMusic
	voices [3]*voice
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{loader: &fakeLoader{}, music: &fakeMusic{}}
	for i := range f.voices {
		f.voices[i] = &voice{}
	}
	mixer := engine.NewMixer(zerolog.Nop(), f.voices[0], f.voices[1], f.voices[2])
	f.scene = New(Options{
		Width:  800,
		Height: 600,
		Seed:   7,
		Car:    vehicle.DefaultCar(),
		Ranker: fakeRanker{},
		Mixer:  mixer,
		Music:  f.music,
		Loader: f.loader,
		Log:    zerolog.Nop(),
	})
	return f
}

func (f *fixture) volume() float64 {
	return f.voices[0].volume + f.voices[1].volume + f.voices[2].volume
}

// skipToClear uses the stage skip control until the results screen shows.
func (f *fixture) skipToClear(t *testing.T) {
	t.Helper()
	for i := 0; i < road.LastStage+2; i++ {
		f.scene.Update(race.Controls{SkipStage: true}, Extras{}, dt)
		if f.scene.Session.State == race.GameClear {
			return
		}
	}
	require.FailNow(t, "game clear not reached")
}

func TestNewLoadsFirstStageArt(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []int{1}, f.loader.stages)
	assert.Equal(t, 1, f.scene.Layers.Stage.ID)
	assert.Equal(t, race.Playing, f.scene.Session.State)
}

func TestStageArtFollowsStageChange(t *testing.T) {
	f := newFixture(t)
	f.scene.Update(race.Controls{SkipStage: true}, Extras{}, dt)
	assert.Equal(t, 2, f.scene.Session.Stage)
	assert.Equal(t, []int{1, 2}, f.loader.stages)
	assert.Equal(t, 2, f.scene.Layers.Stage.ID)
}

func TestUpdateDrivesEngineAndClock(t *testing.T) {
	f := newFixture(t)
	throttle := race.Controls{Vehicle: vehicle.Input{Accelerate: true}}
	for i := 0; i < 120; i++ {
		assert.False(t, f.scene.Update(throttle, Extras{}, dt))
	}
	assert.InDelta(t, 2.0, f.scene.Clock, 1e-9)
	assert.Positive(t, f.scene.Session.Car.Speed)
	assert.Positive(t, f.volume())
	assert.Positive(t, f.scene.parts.speedo.Last().Kmh)
}

func TestToggleMute(t *testing.T) {
	f := newFixture(t)
	throttle := race.Controls{Vehicle: vehicle.Input{Accelerate: true}}
	for i := 0; i < 30; i++ {
		f.scene.Update(throttle, Extras{}, dt)
	}
	f.scene.Update(throttle, Extras{ToggleMute: true}, dt)
	assert.True(t, f.scene.Mixer.Muted())
	assert.Zero(t, f.volume())

	f.scene.Update(throttle, Extras{ToggleMute: true}, dt)
	assert.False(t, f.scene.Mixer.Muted())
	assert.Positive(t, f.volume())
}

func TestGroundOffsetNudge(t *testing.T) {
	f := newFixture(t)
	f.scene.Update(race.Controls{}, Extras{GroundOffset: -1}, dt)
	assert.Equal(t, float64(background.DefaultGroundOffset-1), f.scene.Layers.GroundOffset)
}

func TestGameClearAndContinue(t *testing.T) {
	f := newFixture(t)
	f.skipToClear(t)
	assert.Equal(t, 1, f.music.fades)
	assert.Zero(t, f.volume())

	// The engine stays quiet on the results screen.
	f.scene.Update(race.Controls{}, Extras{}, dt)
	assert.Zero(t, f.volume())

	f.scene.Update(race.Controls{Continue: true}, Extras{}, dt)
	assert.Equal(t, 1, f.music.restarts)
	f.scene.Update(race.Controls{}, Extras{}, dt)
	assert.Equal(t, race.Playing, f.scene.Session.State)
	assert.Equal(t, 1, f.scene.Session.Stage)
	assert.Equal(t, 1, f.music.restarts)
}

func TestReplayDoesNotRestartMusic(t *testing.T) {
	f := newFixture(t)
	f.skipToClear(t)
	f.scene.Update(race.Controls{Replay: true}, Extras{}, dt)
	assert.Equal(t, race.Replay, f.scene.Session.State)
	assert.Zero(t, f.music.restarts)
}

func TestExitFromResults(t *testing.T) {
	f := newFixture(t)
	f.skipToClear(t)
	assert.True(t, f.scene.Update(race.Controls{Exit: true}, Extras{}, dt))
}

func TestDrawPlaying(t *testing.T) {
	f := newFixture(t)
	f.scene.Update(race.Controls{}, Extras{}, dt)

	dst := &recorder{}
	art := &fakeArt{}
	out := &texts{}
	f.scene.Draw(dst, art, out)

	st := road.StageByID(1)
	require.GreaterOrEqual(t, len(dst.fills), 2)
	assert.Equal(t, st.Sky, dst.fills[0])
	assert.Equal(t, st.Grass, dst.fills[1])
	assert.Equal(t, 1, art.sky)
	assert.Positive(t, art.strips)
	assert.Positive(t, dst.prims)
	assert.True(t, out.has("STAGE: 1"))
	assert.True(t, out.has("km/h"))
	assert.False(t, out.has("GOAL!!"))
}

func TestDrawResults(t *testing.T) {
	f := newFixture(t)
	f.skipToClear(t)

	out := &texts{}
	f.scene.Draw(&recorder{}, nil, out)
	assert.True(t, out.has("ALL STAGES CLEARED!"))
	assert.True(t, out.has("[ENTER] CONTINUE"))
	assert.False(t, out.has("STAGE: 6"))
}

func TestDrawReplay(t *testing.T) {
	f := newFixture(t)
	throttle := race.Controls{Vehicle: vehicle.Input{Accelerate: true}}
	for i := 0; i < 10; i++ {
		f.scene.Update(throttle, Extras{}, dt)
	}
	f.skipToClear(t)
	f.scene.Update(race.Controls{Replay: true}, Extras{}, dt)
	require.Equal(t, race.Replay, f.scene.Session.State)

	out := &texts{}
	f.scene.Draw(&recorder{}, &fakeArt{}, out)
	assert.True(t, out.has("REPLAY"))
}
