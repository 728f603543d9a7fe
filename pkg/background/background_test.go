package background

import (
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/road"
)

type rect struct {
	x, y, w, h float64
	c          color.RGBA
}

type recorder struct {
	rects []rect
	other int
}

func (r *recorder) Size() (int, int) { return 800, 600 }
func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}
func (r *recorder) FillPolygon([]render.Vec, color.RGBA)           { r.other++ }
func (r *recorder) StrokeLine(_, _, _, _, _ float64, _ color.RGBA) { r.other++ }
func (r *recorder) FillCircle(_, _, _ float64, _ color.RGBA)       { r.other++ }

// rowImage colours every row y with R = y/4.
func rowImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(y / 4), G: 50, B: 60, A: 255})
		}
	}
	return img
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func newLayers(t *testing.T, stage int) *Layers {
	t.Helper()
	l := NewLayers(800, 600, zerolog.Nop())
	skyW, skyH := l.SkySize()
	gw, gh := l.GroundSize()
	require.Equal(t, 400, gh)
	l.SetStage(road.StageByID(stage), rowImage(skyW, skyH), solid(gw, gh, color.RGBA{R: 30, G: 90, B: 30, A: 255}))
	return l
}

func TestStripsCoverGround(t *testing.T) {
	l := newLayers(t, 1)
	strips := l.Strips(0)
	require.NotEmpty(t, strips)

	top := camera.HorizonY + DefaultGroundOffset
	assert.Equal(t, top, strips[0].DstY)
	assert.Equal(t, 1600.0, strips[0].Width)
	assert.Equal(t, -400.0, strips[0].DstX)

	y := top
	prevW := 0.0
	for _, s := range strips {
		assert.Equal(t, y, s.DstY, "strips are contiguous")
		assert.GreaterOrEqual(t, s.Width, prevW)
		assert.GreaterOrEqual(t, s.SrcY, 0)
		assert.LessOrEqual(t, s.SrcY+s.Height, 400)
		y += float64(s.Height)
		prevW = s.Width
	}
	assert.Equal(t, 600.0, y)
}

func TestStripsOffsetAndShift(t *testing.T) {
	l := newLayers(t, 1)
	l.SetCurveOffset(100)
	strips := l.Strips(-7.9)

	assert.Equal(t, camera.HorizonY+DefaultGroundOffset-7, strips[0].DstY)
	assert.Equal(t, -370.0, strips[0].DstX, "top strip takes the full vanishing shift")
	last := strips[len(strips)-1]
	assert.InDelta(t, 400-last.Width/2, last.DstX, 1, "bottom strip is barely shifted")
}

func TestStripsWrapTexture(t *testing.T) {
	l := newLayers(t, 1)
	l.Ground.Y = -1 // samples from the last row
	strips := l.Strips(0)
	require.GreaterOrEqual(t, len(strips), 2)
	assert.Equal(t, Strip{SrcY: 399, Height: 1, DstX: -400, DstY: 317, Width: 1600}, strips[0])
	assert.Equal(t, 0, strips[1].SrcY)
	assert.Equal(t, 318.0, strips[1].DstY)
}

func TestUpdateScrollsGroundTowardViewer(t *testing.T) {
	l := newLayers(t, 1)
	l.Update(1.0/60, 0, 120)
	assert.InDelta(t, -120*GroundSpeedY/60, l.Ground.Y, 1e-9)
	assert.InDelta(t, l.Sky.X, -400, 1e-9, "straight road does not pan the sky")
}

func TestSetStageKeepsScrollForSameStage(t *testing.T) {
	l := newLayers(t, 1)
	l.Sky.X = -123
	l.SetStage(road.StageByID(1), nil, nil)
	assert.Equal(t, -123.0, l.Sky.X)

	l.SetStage(road.StageByID(2), nil, nil)
	assert.Equal(t, -400.0, l.Sky.X)
}

func TestFog(t *testing.T) {
	l := newLayers(t, 1)
	// Row HorizonY-5 on screen is row 435 of the image at offset -140.
	assert.Equal(t, color.RGBA{R: 108, G: 50, B: 60, A: 255}, l.Fog())

	desert := newLayers(t, 4)
	assert.Equal(t, road.StageByID(4).Fog, desert.Fog())

	bare := NewLayers(800, 600, zerolog.Nop())
	bare.SetStage(road.StageByID(1), nil, nil)
	assert.Equal(t, road.StageByID(1).Sky, bare.Fog())
}

func TestSkyPosition(t *testing.T) {
	l := newLayers(t, 1)
	x, y := l.SkyPosition(20)
	assert.Equal(t, -400.0, x)
	assert.Equal(t, -140.0+2, y)
}

func TestBands(t *testing.T) {
	l := newLayers(t, 1)
	r := &recorder{}
	l.DrawUpperBand(r, 0)
	require.Len(t, r.rects, upperBand-2, "the top rows round to transparent")
	assert.Equal(t, 299.0, r.rects[0].y)
	for i := 1; i < len(r.rects); i++ {
		assert.Greater(t, r.rects[i].c.A, r.rects[i-1].c.A)
	}

	r = &recorder{}
	l.DrawLowerBands(r, 0)
	assert.Len(t, r.rects, 38)
	assert.Equal(t, 317.0, r.rects[0].y)

	fog := newLayers(t, 4)
	r = &recorder{}
	fog.DrawLowerBands(r, 0)
	require.Greater(t, len(r.rects), 38)
	assert.Equal(t, 317.0+fogBandOffset, r.rects[38].y)
}

func TestGenerator(t *testing.T) {
	for id := 1; id <= road.LastStage; id++ {
		st := road.StageByID(id)
		g := NewGenerator(1600, 850)

		a, b := &recorder{}, &recorder{}
		g.GenerateBackdrop(a, st)
		g.GenerateBackdrop(b, st)
		assert.Equal(t, a, b, "stage %d backdrop is deterministic", id)
		skyRows := int((camera.HorizonY-st.BackgroundOffsetY)/4) + 1
		assert.Greater(t, len(a.rects)+a.other, skyRows, "stage %d has scenery", id)

		ground := &recorder{}
		NewGenerator(1600, 400).GenerateGround(ground, st)
		assert.Equal(t, st.Grass, ground.rects[0].c)
		for _, rc := range ground.rects {
			assert.Less(t, rc.y, 400.0)
		}
	}
}
