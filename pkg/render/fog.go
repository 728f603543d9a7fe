package render

import (
	"image/color"

	"github.com/golangdaddy/horizon/pkg/camera"
)

const (
	HorizonFogHeight = 80
	horizonFogAlpha  = 200
)

// HorizonFog blends the band just under the horizon into the fog colour,
// opaque at the top and falling off cubically.
func HorizonFog(s Surface, fog color.RGBA) {
	Gradient(s, camera.HorizonY, HorizonFogHeight, fog, horizonFogAlpha, func(t float64) float64 {
		return (1 - t) * (1 - t) * (1 - t)
	})
}

// Gradient fills a horizontal band whose alpha follows fade(t) for t in
// [0,1) from top to bottom.
func Gradient(s Surface, y float64, height int, c color.RGBA, maxAlpha float64, fade func(t float64) float64) {
	w, _ := s.Size()
	for i := 0; i < height; i++ {
		t := float64(i) / float64(height)
		line := c
		line.A = uint8(fade(t) * maxAlpha)
		if line.A == 0 {
			continue
		}
		s.FillRect(0, y+float64(i), float64(w), 1, line)
	}
}
