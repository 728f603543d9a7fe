// Package camera projects world coordinates onto the screen and tracks the
// smoothed camera elevation that follows the road.
package camera

const (
	ProjectionPlaneDist = 300.0
	HorizonY            = 300.0
	CameraHeight        = 1500.0

	// FollowRate is the per-tick low-pass factor for elevation and slope.
	FollowRate = 0.1
)

// Projection is a projected point.
type Projection struct {
	X, Y  float64
	Scale float64
}

// Project maps a point relative to the camera onto the screen. Points at or
// behind the camera have no projection.
func Project(worldX, relativeY, worldZ, screenWidth float64) (Projection, bool) {
	if worldZ <= 0 {
		return Projection{}, false
	}
	scale := ProjectionPlaneDist / worldZ
	return Projection{
		X:     screenWidth/2 + worldX*scale,
		Y:     HorizonY - relativeY*scale,
		Scale: scale,
	}, true
}

// RelativeY returns a road elevation relative to the camera eye.
func RelativeY(pointElevation, cameraElevation float64) float64 {
	return pointElevation - (cameraElevation + CameraHeight)
}

// Terrain is the part of a track the camera follows.
type Terrain interface {
	HeightAt(z float64) float64
	SlopeAt(z float64) float64
}

// Follow is the low-pass filtered camera state.
type Follow struct {
	Elevation float64
	Slope     float64
}

// Update moves the camera a fraction of the way toward the road under z.
func (f *Follow) Update(t Terrain, z float64) {
	f.Elevation += (t.HeightAt(z) - f.Elevation) * FollowRate
	f.Slope += (t.SlopeAt(z) - f.Slope) * FollowRate
}

// Reset puts the camera back on the flat start line.
func (f *Follow) Reset() {
	f.Elevation = 0
	f.Slope = 0
}
