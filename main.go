package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/horizon/pkg/config"
	"github.com/golangdaddy/horizon/pkg/game"
	"github.com/golangdaddy/horizon/pkg/logging"
	"github.com/golangdaddy/horizon/pkg/ranking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()
	defer logging.CaptureCrash(log, cfg.Crash.Dir)

	log.Info().Str("session", logging.Session.String()).Msg("starting")

	store, err := ranking.Open(cfg.Ranking.Backend, cfg.RankingPath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("opening ranking")
	}
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}

	g := game.NewGame(cfg, ranking.NewBoard(store, log), log)
	defer g.Close()

	ebiten.SetTPS(cfg.Game.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop")
		return
	}
	log.Info().Msg("bye")
}
