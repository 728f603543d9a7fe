package scene

import (
	"github.com/golangdaddy/horizon/pkg/background"
	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/car"
	"github.com/golangdaddy/horizon/pkg/effects"
	"github.com/golangdaddy/horizon/pkg/hud"
	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/render"
	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

// Art draws the stage images, which live outside the Surface abstraction.
type Art interface {
	DrawSky(x, y float64)
	DrawGround(strips []background.Strip)
}

// Writer renders HUD text.
type Writer interface {
	DrawTexts(ts []hud.Text)
}

type parts struct {
	fx       *effects.System
	sprite   *car.Sprite
	speedo   *hud.Speedometer
	renderer *render.TrackRenderer
	rect     car.Rect
}

func newParts(w, h int, seed uint64) *parts {
	return &parts{
		fx:       effects.NewSystem(seed),
		sprite:   car.NewSprite(playerPaint, seed+1),
		speedo:   hud.NewSpeedometer(seed + 2),
		renderer: render.NewTrackRenderer(),
		rect:     car.Layout(w, h),
	}
}

func (p *parts) emit(st vehicle.State, t *road.Track) {
	p.fx.Emit(effects.Emission{
		Car:     p.rect.Body(),
		State:   st,
		Surface: t.Stage.Surface,
		Curve:   t.CurveAt(st.Z),
	})
}

// Draw paints the frame: backdrop, road, haze, car, particles, HUD.
func (s *Scene) Draw(dst render.Surface, art Art, text Writer) {
	sess := s.Session
	st := road.StageByID(sess.RenderStage())
	w, h := dst.Size()

	dst.FillRect(0, 0, float64(w), camera.HorizonY, st.Sky)
	dst.FillRect(0, camera.HorizonY, float64(w), float64(h)-camera.HorizonY, st.Grass)

	pitch := render.PitchOffset(sess.Camera.Slope)
	offset := render.VerticalOffset(pitch, sess.Camera.Elevation)
	if art != nil {
		art.DrawSky(s.Layers.SkyPosition(pitch))
	}
	s.Layers.DrawUpperBand(dst, offset)
	if art != nil {
		art.DrawGround(s.Layers.Strips(offset))
	}
	s.Layers.DrawLowerBands(dst, offset)

	fog := s.Layers.Fog()
	turn := s.parts.renderer.Render(dst, render.View{
		Track:           sess.Track,
		VehicleZ:        sess.Car.Z,
		VehicleX:        sess.Car.X,
		CameraElevation: sess.Camera.Elevation,
		Fog:             fog,
	})
	s.Layers.SetCurveOffset(turn)
	render.HorizonFog(dst, fog)

	m := sess.Car
	offroad := m.Offroad()
	sx, sy := s.parts.fx.Shake(m.Speed, offroad, s.Clock)
	s.parts.sprite.RenderCar(dst, s.parts.rect, car.Pose{
		Angle:        effects.Sway(m.Steering, offroad, s.Clock),
		OffsetX:      sx,
		OffsetY:      sy,
		Braking:      m.Braking,
		Accelerating: m.Accelerating,
		Speed:        m.Speed,
		Shadow:       st.RoadDark,
	})
	s.parts.fx.Draw(dst)
	s.parts.fx.DrawSparks(dst)

	s.drawHUD(dst, text)
}

func (s *Scene) drawHUD(dst render.Surface, text Writer) {
	sess := s.Session
	var lines []hud.Text
	switch sess.State {
	case race.GameClear:
		hud.DimScreen(dst)
		lines = hud.GameClear(sess.Total, sess.Ranking, s.width)
	case race.Replay:
		lines = hud.ReplayStatus(s.Clock, s.width)
	default:
		lines = hud.Status(sess.Stage, sess.DisplayTime(), sess.Remaining())
	}

	s.parts.speedo.Draw(dst, s.parts.speedo.Last())
	lines = append(lines, hud.KmhLabel(s.width, s.height))
	if b, ok := hud.Banner(sess.State, sess.Stage, s.width, s.height); ok {
		lines = append(lines, b)
	}
	if text != nil {
		text.DrawTexts(lines)
	}
}
