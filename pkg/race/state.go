// Package race runs a game session: stage progression, goal detection and
// the replay recorder.
package race

import "github.com/golangdaddy/horizon/pkg/vehicle"

// State is the top-level game state.
type State uint8

const (
	Playing State = iota
	Goal
	StageClear
	NextStageInit
	GameClear
	Replay
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Goal:
		return "goal"
	case StageClear:
		return "stage-clear"
	case NextStageInit:
		return "next-stage"
	case GameClear:
		return "game-clear"
	case Replay:
		return "replay"
	}
	return "unknown"
}

const (
	// FrontOffset puts the goal check at the car's nose rather than its
	// camera position.
	FrontOffset = 700.0

	GoalHold       = 1.5 // seconds on the GOAL banner
	StageClearHold = 1.0 // seconds on the STAGE CLEAR banner

	// WarpDistance is how far before the goal the warp debug control drops
	// the car.
	WarpDistance = 1000.0
)

// Controls is one tick of player input. Menu and debug fields are edge
// triggered by the input layer.
type Controls struct {
	Vehicle vehicle.Input

	Continue bool
	Exit     bool
	Replay   bool

	WarpToGoal bool
	SkipStage  bool
	PrevStage  bool
}

// Frame is one recorded tick of play.
type Frame struct {
	X, Z     float64
	Speed    float64
	Steering float64
	Stage    int

	OffroadLeft  bool
	OffroadRight bool
	Braking      bool

	CameraElevation float64
}

// Recording is the append-only list of frames for a run.
type Recording []Frame
