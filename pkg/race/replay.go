package race

// startReplay rewinds to the first recorded frame and loads its road.
func (s *Session) startReplay() {
	s.setState(Replay)
	s.cursor = 0
	s.Car.OffroadLeft = false
	s.Car.OffroadRight = false
	if len(s.Recording) > 0 {
		s.Stage = s.Recording[0].Stage
		s.load(s.Stage)
	}
	s.log.Info().Int("frames", len(s.Recording)).Msg("replay start")
	if s.hooks.OnReplayStart != nil {
		s.hooks.OnReplayStart()
	}
}

// replay copies one frame into the car verbatim. Braking leaves the replay.
func (s *Session) replay(c Controls) {
	if s.cursor < len(s.Recording) {
		f := s.Recording[s.cursor]
		if f.Stage != s.Stage {
			s.Stage = f.Stage
			s.load(s.Stage)
		}

		car := s.Car
		car.X = f.X
		car.Z = f.Z
		car.Speed = f.Speed
		car.Steering = f.Steering
		car.OffroadLeft = f.OffroadLeft
		car.OffroadRight = f.OffroadRight
		car.Braking = f.Braking
		car.Accelerating = false

		s.Camera.Elevation = s.replayCamera(f)
		s.cursor++
	} else {
		s.setState(GameClear)
	}

	if c.Vehicle.Brake {
		s.setState(GameClear)
	}
}

// replayCamera returns the recorded camera elevation unless it is an exact
// zero over ground that is not at zero, which only happens when the camera
// was never updated for that frame.
func (s *Session) replayCamera(f Frame) float64 {
	if f.CameraElevation != 0 {
		return f.CameraElevation
	}
	return s.Track.HeightAt(f.Z)
}

// ReplayProgress returns the playback cursor and the recording length.
func (s *Session) ReplayProgress() (cursor, total int) {
	return s.cursor, len(s.Recording)
}
