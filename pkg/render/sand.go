package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/mathutil"
)

const (
	sandSeed          = 7777
	sandClusterChance = 0.75
	sandFarCutoff     = 0.85 // nothing is drawn beyond this depth
	sandOffRoadCutoff = 0.35 // off-road grains stop here
	sandFadeStart     = 0.6
)

var sandNeighbours = [4][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// sandStrip is one projected road segment viewed as a sand bed.
type sandStrip struct {
	index      int
	x1, y1, w1 float64 // near edge
	x2, y2, w2 float64 // far edge
	screenH    float64
	fog        float64
	fogColor   color.RGBA
	roadColor  color.RGBA
	sand       color.RGBA
}

// drawSand scatters clustered grains over a segment. Every draw comes from a
// generator seeded by the segment index, so grains stay put between frames.
func drawSand(s Surface, st sandStrip) {
	rng := mathutil.NewRand(uint64(st.index) * sandSeed)
	if rng.Float64() >= sandClusterChance {
		return
	}

	clusters := rng.IntRange(1, 4)
	for c := 0; c < clusters; c++ {
		grains := rng.IntRange(5, 15)
		centreT := rng.Float64()
		var centreX float64
		if rng.Intn(2) == 0 {
			centreX = rng.Range(-0.1, 0.2)
		} else {
			centreX = rng.Range(0.8, 1.1)
		}

		for g := 0; g < grains; g++ {
			t := mathutil.Clamp(centreT+rng.Gauss(0, 0.5), 0, 1)
			px := centreX + rng.Gauss(0, 0.15)

			x := st.x2 + (st.x1-st.x2)*t
			w := st.w2 + (st.w1-st.w2)*t
			x += (px - 0.5) * w
			y := st.y2 + (st.y1-st.y2)*t

			depth := mathutil.Clamp(1-(y-camera.HorizonY)/(st.screenH-camera.HorizonY), 0, 1)
			if depth > sandOffRoadCutoff && (px < 0 || px > 1) {
				continue
			}
			if depth > sandFarCutoff {
				continue
			}

			fog := st.fog
			if depth > sandFadeStart {
				fog = mathutil.Clamp(fog+(depth-sandFadeStart)/(sandFarCutoff-sandFadeStart)*0.5, 0, 1)
			}
			grain := mathutil.LerpRGB(st.sand, st.fogColor, fog)

			// Grains are single-pixel rects.
			ix, iy := math.Floor(x), math.Floor(y)
			if rng.Float64() < 0.9 {
				s.FillRect(ix, iy, 1, 1, grain)
				if rng.Float64() < 0.3 {
					n := sandNeighbours[rng.Intn(len(sandNeighbours))]
					s.FillRect(ix+n[0], iy+n[1], 1, 1, mathutil.LerpRGB(st.roadColor, grain, 0.5))
				}
			} else {
				s.FillCircle(ix, iy, 2, grain)
			}
		}
	}
}
