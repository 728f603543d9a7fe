package platform

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/background"
	"github.com/golangdaddy/horizon/pkg/road"
)

// Assets loads images from a directory. Missing stage art is replaced by
// a generated stand-in.
type Assets struct {
	Dir    string
	log    zerolog.Logger
	screen *Screen
}

func NewAssets(dir string, log zerolog.Logger) *Assets {
	return &Assets{
		Dir:    dir,
		log:    log.With().Str("component", "assets").Logger(),
		screen: NewScreen(),
	}
}

// Path resolves an asset name.
func (a *Assets) Path(name string) string {
	return filepath.Join(a.Dir, name)
}

// Image loads an image file as is.
func (a *Assets) Image(name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(a.Path(name))
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", name, err)
	}
	return img, nil
}

// Backdrop returns the stage backdrop scaled to w×h.
func (a *Assets) Backdrop(st road.Stage, w, h int) *ebiten.Image {
	dst := ebiten.NewImage(w, h)
	src, err := a.Image(st.Background)
	if err != nil {
		a.log.Warn().Err(err).Int("stage", st.ID).Msg("using generated backdrop")
		background.NewGenerator(w, h).GenerateBackdrop(a.screen.Target(dst), st)
		return dst
	}
	drawScaled(dst, src, float64(w), float64(h), 0)
	return dst
}

// Ground returns the stage ground texture: the source scaled to
// w×sourceH, keeping the rows from cropY down.
func (a *Assets) Ground(st road.Stage, w, sourceH, cropY int) *ebiten.Image {
	dst := ebiten.NewImage(w, sourceH-cropY)
	src, err := a.Image(st.Ground)
	if err != nil {
		a.log.Warn().Err(err).Int("stage", st.ID).Msg("using generated ground")
		background.NewGenerator(w, sourceH-cropY).GenerateGround(a.screen.Target(dst), st)
		return dst
	}
	drawScaled(dst, src, float64(w), float64(sourceH), -float64(cropY))
	return dst
}

func drawScaled(dst, src *ebiten.Image, w, h, y float64) {
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(0, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}
