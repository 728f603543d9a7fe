package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/horizon/pkg/race"
	"github.com/golangdaddy/horizon/pkg/scene"
	"github.com/golangdaddy/horizon/pkg/vehicle"
)

// Input reads the keyboard and the first standard-layout gamepad.
type Input struct {
	DebugKeys bool
	pads      []ebiten.GamepadID
}

func NewInput(debugKeys bool) *Input {
	return &Input{DebugKeys: debugKeys}
}

func (in *Input) pad() (ebiten.GamepadID, bool) {
	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for _, id := range in.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Poll snapshots this tick's input.
func (in *Input) Poll() (race.Controls, scene.Extras) {
	id, hasPad := in.pad()
	held := func(b ebiten.StandardGamepadButton) bool {
		return hasPad && ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	tapped := func(b ebiten.StandardGamepadButton) bool {
		return hasPad && inpututil.IsStandardGamepadButtonJustPressed(id, b)
	}

	src := vehicle.SteeringSources{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		HasPad: hasPad,
	}
	if hasPad {
		switch {
		case held(ebiten.StandardGamepadButtonLeftLeft):
			src.HatX = -1
		case held(ebiten.StandardGamepadButtonLeftRight):
			src.HatX = 1
		}
		src.AxisX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	}

	c := race.Controls{
		Vehicle: vehicle.Input{
			Steer:      vehicle.ResolveSteering(src),
			Accelerate: anyPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace) || held(ebiten.StandardGamepadButtonRightBottom),
			Brake:      anyPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyB) || held(ebiten.StandardGamepadButtonRightRight),
		},
		Continue: anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyC) || tapped(ebiten.StandardGamepadButtonRightBottom),
		Exit:     anyJustPressed(ebiten.KeyEscape, ebiten.KeyE) || tapped(ebiten.StandardGamepadButtonRightRight),
		Replay:   inpututil.IsKeyJustPressed(ebiten.KeyR) || tapped(ebiten.StandardGamepadButtonRightLeft),
	}

	x := scene.Extras{ToggleMute: inpututil.IsKeyJustPressed(ebiten.KeyDigit0)}
	if in.DebugKeys {
		c.WarpToGoal = inpututil.IsKeyJustPressed(ebiten.KeyF1)
		c.SkipStage = inpututil.IsKeyJustPressed(ebiten.KeyF2)
		c.PrevStage = inpututil.IsKeyJustPressed(ebiten.KeyF3)
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			x.GroundOffset++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
			x.GroundOffset--
		}
	}
	return c, x
}
