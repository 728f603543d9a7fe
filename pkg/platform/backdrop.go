package platform

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/horizon/pkg/background"
)

// DrawSky draws the scaled backdrop at its scroll position.
func (s *Screen) DrawSky(sky *ebiten.Image, x, y float64) {
	if sky == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.img.DrawImage(sky, op)
}

// DrawGround stretches each texture row to its strip width.
func (s *Screen) DrawGround(ground *ebiten.Image, strips []background.Strip) {
	if ground == nil {
		return
	}
	texW := ground.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	for _, st := range strips {
		if st.Height <= 0 || st.Width <= 0 {
			continue
		}
		row := ground.SubImage(image.Rect(0, st.SrcY, texW, st.SrcY+st.Height)).(*ebiten.Image)
		op.GeoM.Reset()
		op.GeoM.Scale(st.Width/float64(texW), 1)
		op.GeoM.Translate(st.DstX, st.DstY)
		s.img.DrawImage(row, op)
	}
}
