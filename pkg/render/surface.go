// Package render rasterizes the projected road onto an abstract Surface.
package render

import "image/color"

// Vec is a screen-space point.
type Vec struct {
	X, Y float64
}

// Surface is the drawing target. Colours carry alpha; implementations
// blend anything that is not fully opaque.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillPolygon(pts []Vec, c color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
}
