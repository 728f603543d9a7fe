package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/config"
	"github.com/golangdaddy/horizon/pkg/engine"
	"github.com/golangdaddy/horizon/pkg/hud"
	"github.com/golangdaddy/horizon/pkg/platform"
	"github.com/golangdaddy/horizon/pkg/ranking"
	"github.com/golangdaddy/horizon/pkg/scene"
	"github.com/golangdaddy/horizon/pkg/ui"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

// RaceScreen runs the five stages, the results menu and the replay.
type RaceScreen struct {
	scene  *scene.Scene
	input  *platform.Input
	audio  *platform.Audio
	screen *platform.Screen
	art    *platform.StageArt
	dt     float64
}

// NewRaceScreen must be called from the game loop: the first stage's art
// is loaded and sampled immediately.
func NewRaceScreen(cfg *config.Config, board *ranking.Board, assets *platform.Assets, audio *platform.Audio, mixer *engine.Mixer, log zerolog.Logger) *RaceScreen {
	w, h := cfg.Window.Width, cfg.Window.Height
	rs := &RaceScreen{
		input:  platform.NewInput(cfg.Debug.Keys),
		audio:  audio,
		screen: platform.NewScreen(),
		dt:     1 / float64(cfg.Game.TPS),
	}
	rs.art = platform.NewStageArt(assets, rs.screen, w, h)

	opts := scene.Options{
		Width:  w,
		Height: h,
		Seed:   cfg.Game.Seed,
		Car:    vehicle.DefaultCar(),
		Ranker: board,
		Mixer:  mixer,
		Loader: rs.art,
		Log:    log,
	}
	// A nil *Audio must not become a non-nil Music.
	if audio != nil {
		opts.Music = audio
	}
	rs.scene = scene.New(opts)
	return rs
}

// Update polls input and advances the scene one tick. Choosing exit on the
// results menu ends the game loop.
func (rs *RaceScreen) Update() error {
	c, x := rs.input.Poll()
	if rs.scene.Update(c, x, rs.dt) {
		return ebiten.Termination
	}
	if rs.audio != nil {
		rs.audio.Update(rs.dt)
	}
	return nil
}

func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	rs.scene.Draw(rs.screen.Target(screen), rs.art, textWriter{screen})
}

type textWriter struct {
	img *ebiten.Image
}

func (w textWriter) DrawTexts(ts []hud.Text) {
	ui.DrawTexts(w.img, ts)
}
