// Package game wires the race scene to ebiten: screens, input, audio and
// the stage art.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/config"
	"github.com/golangdaddy/horizon/pkg/engine"
	"github.com/golangdaddy/horizon/pkg/logging"
	"github.com/golangdaddy/horizon/pkg/platform"
	"github.com/golangdaddy/horizon/pkg/ranking"
	"github.com/golangdaddy/horizon/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game and switches between the title and the race.
type Game struct {
	cfg    *config.Config
	board  *ranking.Board
	assets *platform.Assets
	audio  *platform.Audio
	mixer  *engine.Mixer
	log    zerolog.Logger

	currentScreen Screen
}

// NewGame builds the audio and asset layers and opens on the title screen.
func NewGame(cfg *config.Config, board *ranking.Board, log zerolog.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		board:  board,
		assets: platform.NewAssets(cfg.Assets.Dir, log),
		log:    log.With().Str("component", "game").Logger(),
	}
	if cfg.Audio.Enabled {
		g.audio = platform.NewAudio(log)
	}
	g.currentScreen = ui.NewTitleScreen(board.Best(), func() {
		g.currentScreen = ui.NewLoadingScreen(g.loadAudio, g.startRace)
	})
	return g
}

// loadAudio synthesizes the engine loops. It runs off the game loop.
func (g *Game) loadAudio() {
	defer logging.CaptureCrash(g.log, g.cfg.Crash.Dir)
	if g.audio == nil {
		return
	}
	start := time.Now()
	g.mixer = g.audio.LoadEngine(g.assets.Path(g.cfg.Audio.Engine))
	g.log.Debug().Dur("took", time.Since(start)).Bool("engine", g.mixer.Enabled()).Msg("audio loaded")
}

// startRace runs from inside Update, so the stage art can be read back.
func (g *Game) startRace() {
	if g.audio != nil {
		if err := g.audio.PlayBGM(g.assets.Path(g.cfg.Audio.BGM), g.cfg.Audio.BGMVolume); err != nil {
			g.log.Warn().Err(err).Msg("music disabled")
		}
	}
	g.currentScreen = NewRaceScreen(g.cfg, g.board, g.assets, g.audio, g.mixer, g.log)
	g.log.Info().Msg("race started")
}

// Update handles game logic updates. ebiten calls Update and Draw off the
// main goroutine, so each guards itself for crash reports.
func (g *Game) Update() error {
	defer logging.CaptureCrash(g.log, g.cfg.Crash.Dir)
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	defer logging.CaptureCrash(g.log, g.cfg.Crash.Dir)
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the audio players.
func (g *Game) Close() {
	if g.audio != nil {
		g.audio.Close()
	}
}
