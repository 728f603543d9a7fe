package race

import (
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/camera"
	"github.com/golangdaddy/horizon/pkg/logging"
	"github.com/golangdaddy/horizon/pkg/road"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

// Ranker records a finished run and returns the current best times.
type Ranker interface {
	Submit(total float64) []float64
}

// Hooks let the frame loop react to transitions. Nil hooks are skipped.
type Hooks struct {
	OnStageLoaded func(t *road.Track)
	OnReplayStart func()
	OnGameClear   func(total float64, ranking []float64)
}

// Session owns every piece of mutable game state. It is driven from a
// single goroutine.
type Session struct {
	State  State
	Stage  int
	Track  *road.Track
	Car    *vehicle.Model
	Camera camera.Follow

	// Elapsed is simulated seconds since the current stage started.
	Elapsed    float64
	FinishTime float64
	GoalSpeed  float64
	StageTimes map[int]float64

	Total   float64
	Ranking []float64

	Recording Recording
	cursor    int

	timer float64
	done  bool

	ranker Ranker
	hooks  Hooks
	log    zerolog.Logger
}

// NewSession starts a run on stage 1.
func NewSession(car vehicle.Car, ranker Ranker, hooks Hooks, log zerolog.Logger) *Session {
	s := &Session{
		Car:        vehicle.NewModel(car),
		StageTimes: make(map[int]float64),
		ranker:     ranker,
		hooks:      hooks,
		log:        log.With().Str("component", "race").Logger(),
	}
	s.Stage = 1
	s.load(s.Stage)
	s.State = Playing
	return s
}

// Done reports that the player chose to exit.
func (s *Session) Done() bool { return s.done }

// Tick advances the session by one fixed step.
func (s *Session) Tick(c Controls, dt float64) {
	s.debug(c)

	// A new stage starts playing on the same tick it is loaded.
	if s.State == NextStageInit {
		s.advance()
	}

	switch s.State {
	case Playing:
		s.play(c, dt)
	case Goal:
		s.timer += dt
		if s.timer >= GoalHold {
			s.setState(StageClear)
		}
	case StageClear:
		s.timer += dt
		if s.timer >= StageClearHold {
			s.setState(NextStageInit)
		}
	case GameClear:
		s.menu(c)
	case Replay:
		s.replay(c)
	}
}

func (s *Session) setState(st State) {
	if s.State != st {
		s.log.Debug().Stringer("from", s.State).Stringer("to", st).Int("stage", s.Stage).Msg("state change")
	}
	s.State = st
	s.timer = 0
}

func (s *Session) debug(c Controls) {
	if s.State == GameClear || s.State == Replay {
		return
	}
	switch {
	case c.WarpToGoal:
		if s.State == Playing && s.Track.GoalDistance > WarpDistance {
			s.Car.Z = s.Track.GoalDistance - WarpDistance
		}
	case c.SkipStage:
		s.setState(NextStageInit)
	case c.PrevStage:
		// advance adds one back, so this restarts the previous stage.
		s.Stage = max(1, s.Stage-1) - 1
		s.setState(NextStageInit)
	}
}

// load swaps in the road for a stage.
func (s *Session) load(stage int) {
	s.Track = road.Generate(road.StageByID(stage))
	logging.Phase(s.log, "stage", map[string]any{
		"stage":    stage,
		"name":     s.Track.Stage.Name,
		"segments": s.Track.Len(),
		"goal":     s.Track.GoalDistance,
	})
	if s.hooks.OnStageLoaded != nil {
		s.hooks.OnStageLoaded(s.Track)
	}
}

func (s *Session) advance() {
	s.Stage++
	if s.Stage > road.LastStage {
		s.Total = 0
		for id := 1; id <= road.LastStage; id++ {
			s.Total += s.StageTimes[id]
		}
		if s.ranker != nil {
			s.Ranking = s.ranker.Submit(s.Total)
		}
		s.log.Info().Float64("total", s.Total).Msg("game clear")
		s.setState(GameClear)
		if s.hooks.OnGameClear != nil {
			s.hooks.OnGameClear(s.Total, s.Ranking)
		}
		return
	}

	s.load(s.Stage)
	s.Car.Reset()
	s.Camera.Reset()
	s.Elapsed = 0
	s.setState(Playing)
}

func (s *Session) play(c Controls, dt float64) {
	s.Car.Tick(c.Vehicle, s.Track, dt, s.Track.Stage)
	s.Elapsed += dt

	// The frame keeps the camera the car was rendered with last tick.
	s.Recording = append(s.Recording, Frame{
		X:               s.Car.X,
		Z:               s.Car.Z,
		Speed:           s.Car.Speed,
		Steering:        s.Car.Steering,
		Stage:           s.Stage,
		OffroadLeft:     s.Car.OffroadLeft,
		OffroadRight:    s.Car.OffroadRight,
		Braking:         s.Car.Braking,
		CameraElevation: s.Camera.Elevation,
	})
	s.Camera.Update(s.Track, s.Car.Z)

	if s.Car.Z+FrontOffset >= s.Track.GoalDistance {
		s.GoalSpeed = s.Car.Speed
		s.Car.Stop()
		s.FinishTime = s.Elapsed
		s.StageTimes[s.Stage] = s.FinishTime
		s.log.Info().Int("stage", s.Stage).Float64("time", s.FinishTime).Float64("speed", s.GoalSpeed).Msg("goal")
		s.setState(Goal)
	}
}

func (s *Session) menu(c Controls) {
	switch {
	case c.Continue:
		s.Stage = 0
		s.StageTimes = make(map[int]float64)
		s.Recording = nil
		s.Camera.Reset()
		s.setState(NextStageInit)
	case c.Exit:
		s.done = true
	case c.Replay:
		s.startReplay()
	}
}

// DisplaySpeed is the speed for the HUD: frozen at the goal speed while the
// banners show.
func (s *Session) DisplaySpeed() (speed float64, frozen bool) {
	if s.State == Goal || s.State == StageClear {
		return s.GoalSpeed, true
	}
	return s.Car.Speed, false
}

// DisplayTime is the running stage clock, frozen after the goal.
func (s *Session) DisplayTime() float64 {
	if s.State == Playing {
		return s.Elapsed
	}
	return s.FinishTime
}

// Remaining is the distance to the goal in HUD units.
func (s *Session) Remaining() int {
	return max(0, int((s.Track.GoalDistance-s.Car.Z)/100))
}

// RenderStage is the stage whose styling is on screen.
func (s *Session) RenderStage() int {
	return min(max(s.Stage, 1), road.LastStage)
}
