package platform

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/horizon/pkg/background"
	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/scene"
)

var (
	_ scene.Loader = (*StageArt)(nil)
	_ scene.Art    = (*StageArt)(nil)
)

// StageArt holds the current stage's backdrop and ground images and draws
// them onto a Screen. Images are read back for colour sampling, so
// StageArt must only load once the game loop is running.
type StageArt struct {
	assets *Assets
	screen *Screen

	skyW, skyH int
	groundW    int

	sky, ground *ebiten.Image
}

func NewStageArt(assets *Assets, screen *Screen, screenW, screenH int) *StageArt {
	return &StageArt{
		assets:  assets,
		screen:  screen,
		skyW:    screenW * 2,
		skyH:    screenH + background.SkyExtraHeight,
		groundW: screenW * 2,
	}
}

// StageArt loads and scales the images for st, replacing the current pair.
func (a *StageArt) StageArt(st road.Stage) (image.Image, image.Image) {
	if a.sky != nil {
		a.sky.Deallocate()
	}
	if a.ground != nil {
		a.ground.Deallocate()
	}
	a.sky = a.assets.Backdrop(st, a.skyW, a.skyH)
	a.ground = a.assets.Ground(st, a.groundW, background.GroundSourceHeight, background.GroundCropY)
	return a.sky, a.ground
}

func (a *StageArt) DrawSky(x, y float64) {
	a.screen.DrawSky(a.sky, x, y)
}

func (a *StageArt) DrawGround(strips []background.Strip) {
	a.screen.DrawGround(a.ground, strips)
}
