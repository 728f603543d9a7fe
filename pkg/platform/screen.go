// Package platform adapts ebiten to the engine-agnostic interfaces used by
// the game: drawing surface, input snapshot, audio voices and assets.
package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/horizon/pkg/render"
)

// Screen draws render primitives onto an ebiten image. Colours are straight
// (non-premultiplied) alpha.
type Screen struct {
	img      *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*Screen)(nil)

func NewScreen() *Screen {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Screen{white: white}
}

// Target sets the image drawn to. Call it at the start of each Draw.
func (s *Screen) Target(img *ebiten.Image) *Screen {
	s.img = img
	return s
}

// Image returns the current target.
func (s *Screen) Image() *ebiten.Image {
	return s.img
}

func (s *Screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect draws two triangles from the white image, so runs of rects
// (sand grains, gradient rows) merge into one draw call with the polygons.
func (s *Screen) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.vertices = s.vertices[:0]
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 3, 2)
	for _, p := range [4]render.Vec{{X: x, Y: y}, {X: x + w, Y: y}, {X: x, Y: y + h}, {X: x + w, Y: y + h}} {
		s.vertices = append(s.vertices, vertex(p, c))
	}
	s.flush()
}

// FillPolygon fans triangles out from the first vertex. Polygons from the
// renderer are convex.
func (s *Screen) FillPolygon(pts []render.Vec, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for i, p := range pts {
		s.vertices = append(s.vertices, vertex(p, c))
		if i >= 2 {
			s.indices = append(s.indices, 0, uint16(i-1), uint16(i))
		}
	}
	s.flush()
}

func (s *Screen) flush() {
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleFillAll
	s.img.DrawTriangles(s.vertices, s.indices, s.white, op)
}

func vertex(p render.Vec, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), straight(c), false)
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), straight(c), true)
}

func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
