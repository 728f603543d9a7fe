package road

import "image/color"

// LastStage is the final stage of a run.
const LastStage = 5

// Surface is the traction model a stage applies to the vehicle.
type Surface int

const (
	SurfacePaved Surface = iota
	SurfaceSand
	SurfaceWet
)

func (s Surface) String() string {
	switch s {
	case SurfaceSand:
		return "sand"
	case SurfaceWet:
		return "wet"
	}
	return "paved"
}

// Stage is the static description of one stage: palette, backdrop assets
// and the knobs fed to the generator and vehicle model.
type Stage struct {
	ID   int
	Name string

	Sky       color.RGBA
	Grass     color.RGBA
	RoadLight color.RGBA
	RoadDark  color.RGBA

	// Fog overrides the colour sampled from the backdrop when HasFog is set.
	Fog    color.RGBA
	HasFog bool
	// RoadFog replaces the fog colour for the road surface only.
	RoadFog    color.RGBA
	HasRoadFog bool

	Background        string
	Ground            string
	BackgroundOffsetY float64

	CurveMult float64
	SharpProb float64

	CurbEnabled bool
	SandEnabled bool
	SandColor   color.RGBA

	FogGradient       bool
	FogGradientHeight int

	Surface Surface
}

// FogColor returns the stage fog override, or the sky colour.
func (s Stage) FogColor() color.RGBA {
	if s.HasFog {
		return s.Fog
	}
	return s.Sky
}

// RoadFogColor returns the colour the road surface fades into.
func (s Stage) RoadFogColor(fog color.RGBA) color.RGBA {
	if s.HasRoadFog {
		return s.RoadFog
	}
	return fog
}

// StripeColor returns the road colour for a stripe.
func (s Stage) StripeColor(st Stripe) color.RGBA {
	if st == StripeLight {
		return s.RoadLight
	}
	return s.RoadDark
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var stages = map[int]Stage{
	1: {
		ID: 1, Name: "Countryside",
		Sky: rgb(100, 149, 237), Grass: rgb(34, 139, 34),
		RoadLight: rgb(105, 105, 105), RoadDark: rgb(95, 95, 95),
		Background: "bg1.png", Ground: "bg1v.png", BackgroundOffsetY: -140,
		CurveMult: 0.8, SharpProb: 0.1,
		CurbEnabled: true,
	},
	2: {
		ID: 2, Name: "Sunset Coast",
		Sky: rgb(255, 140, 0), Grass: rgb(210, 180, 140),
		RoadLight: rgb(110, 110, 110), RoadDark: rgb(100, 100, 100),
		Background: "bg2.png", Ground: "bg2v.png", BackgroundOffsetY: -135,
		CurveMult: 1.0, SharpProb: 0.2,
		CurbEnabled: true,
	},
	3: {
		ID: 3, Name: "Night City",
		Sky: rgb(20, 40, 110), Grass: rgb(20, 20, 20),
		RoadLight: rgb(120, 120, 130), RoadDark: rgb(110, 110, 120),
		Background: "bg3.png", Ground: "bg3v.png", BackgroundOffsetY: -169,
		CurveMult: 1.2, SharpProb: 0.3,
		CurbEnabled: true,
	},
	4: {
		ID: 4, Name: "Desert",
		Sky: rgb(200, 240, 255), Grass: rgb(139, 69, 19),
		RoadLight: rgb(130, 130, 130), RoadDark: rgb(120, 120, 120),
		Fog: rgb(190, 160, 130), HasFog: true,
		Background: "bg4.png", Ground: "bg4v.png", BackgroundOffsetY: -175,
		CurveMult: 1.5, SharpProb: 0.5,
		SandEnabled: true, SandColor: rgb(230, 200, 100),
		FogGradient: true, FogGradientHeight: 80,
		Surface: SurfaceSand,
	},
	5: {
		ID: 5, Name: "Mountain Rain",
		Sky: rgb(100, 149, 237), Grass: rgb(34, 139, 34),
		RoadLight: rgb(105, 105, 105), RoadDark: rgb(95, 95, 95),
		Fog: rgb(175, 185, 195), HasFog: true,
		RoadFog: rgb(169, 171, 166), HasRoadFog: true,
		Background: "bg5.png", Ground: "bg5v.png", BackgroundOffsetY: -135,
		CurveMult: 1.8, SharpProb: 0.6,
		CurbEnabled: true,
		FogGradient: true, FogGradientHeight: 80,
		Surface: SurfaceWet,
	},
}

// StageByID returns the stage with the given id. Unknown ids use stage 1's
// styling but keep their id so generation stays seeded by it.
func StageByID(id int) Stage {
	if s, ok := stages[id]; ok {
		return s
	}
	s := stages[1]
	s.ID = id
	return s
}
