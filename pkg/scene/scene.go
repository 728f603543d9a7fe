// Package scene runs one race frame: it ticks the session, keeps the
// backdrop, particles, engine sound and HUD in step with it, and draws the
// layers back to front.
package scene

import (
	"image"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/background"
	"github.com/golangdaddy/horizon/pkg/engine"
	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

// MusicFade is how long the music takes to fade out after the last stage.
const MusicFade = 1.0

var playerPaint = color.RGBA{R: 200, G: 30, B: 30, A: 255}

// Loader supplies the backdrop and ground images for a stage, already
// scaled to the sizes background.Layers asks for.
type Loader interface {
	StageArt(st road.Stage) (sky, ground image.Image)
}

// Music is the background track.
type Music interface {
	FadeOutBGM(seconds float64)
	RestartBGM()
}

// Extras are presentation controls outside the race.
type Extras struct {
	ToggleMute   bool
	GroundOffset float64
}

type Options struct {
	Width, Height int
	Seed          uint64
	Car           vehicle.Car
	Ranker        race.Ranker
	Mixer         *engine.Mixer
	Music         Music
	Loader        Loader
	Log           zerolog.Logger
}

// Scene owns the session and everything drawn around it.
type Scene struct {
	Session *race.Session
	Layers  *background.Layers
	Mixer   *engine.Mixer

	// Clock is simulated seconds since the scene started. It drives the
	// sway wobble and the replay blink.
	Clock float64

	width, height int
	parts         *parts
	music         Music
	loader        Loader
	pending       *road.Stage
	prev          race.State
	log           zerolog.Logger
}

func New(o Options) *Scene {
	s := &Scene{
		Mixer:  o.Mixer,
		width:  o.Width,
		height: o.Height,
		music:  o.Music,
		loader: o.Loader,
		log:    o.Log.With().Str("component", "scene").Logger(),
	}
	if s.Mixer == nil {
		s.Mixer = engine.NewMixer(o.Log, nil, nil, nil)
	}
	s.Layers = background.NewLayers(o.Width, o.Height, o.Log)
	s.parts = newParts(o.Width, o.Height, o.Seed)

	s.Session = race.NewSession(o.Car, o.Ranker, race.Hooks{
		OnStageLoaded: s.stageLoaded,
		OnReplayStart: s.replayStarted,
		OnGameClear:   s.gameCleared,
	}, o.Log)
	s.prev = s.Session.State
	s.applyStage()
	return s
}

func (s *Scene) stageLoaded(t *road.Track) {
	st := t.Stage
	s.pending = &st
	s.parts.fx.Clear()
}

func (s *Scene) replayStarted() {
	s.parts.fx.Clear()
}

func (s *Scene) gameCleared(total float64, ranking []float64) {
	s.Mixer.Silence()
	if s.music != nil {
		s.music.FadeOutBGM(MusicFade)
	}
	s.log.Info().Float64("total", total).Int("entries", len(ranking)).Msg("results")
}

// applyStage swaps the backdrop once per stage load, outside the session
// tick so image reads happen on the frame loop.
func (s *Scene) applyStage() {
	if s.pending == nil {
		return
	}
	st := *s.pending
	s.pending = nil
	var sky, ground image.Image
	if s.loader != nil {
		sky, ground = s.loader.StageArt(st)
	}
	s.Layers.SetStage(st, sky, ground)
}

// Update advances one fixed tick and reports whether the player quit.
func (s *Scene) Update(c race.Controls, x Extras, dt float64) bool {
	if x.ToggleMute {
		s.Mixer.ToggleMute()
	}
	if x.GroundOffset != 0 {
		s.Layers.AdjustGroundOffset(x.GroundOffset)
	}

	sess := s.Session
	sess.Tick(c, dt)
	if sess.Done() {
		return true
	}
	s.applyStage()
	s.Clock += dt

	if s.prev == race.GameClear && sess.State == race.NextStageInit && s.music != nil {
		s.music.RestartBGM()
	}
	s.prev = sess.State

	m := sess.Car
	if sess.State != race.GameClear {
		s.Mixer.Update(m.Speed, m.Accelerating)
	}
	if sess.State == race.Playing || sess.State == race.Replay {
		s.Layers.Update(dt, sess.Track.CurveAt(m.Z), m.Speed)
	}

	s.parts.fx.Update(dt)
	if sess.State == race.Playing {
		s.parts.emit(sess.Car.State, sess.Track)
	}
	s.parts.speedo.Update(sess.DisplaySpeed())
	return false
}
