package engine

import (
	"github.com/rs/zerolog"

	"github.com/golangdaddy/horizon/pkg/mathutil"
)

const (
	crossfadeSpeed = 150.0
	lowBand        = 0.4
	highBand       = 0.7

	idleVolume     = 0.6
	throttleVolume = 0.8
)

// Weights are per-layer volumes in [0,1].
type Weights struct {
	Low, Mid, High float64
}

// Crossfade maps speed to layer volumes. The low layer fades into the mid
// layer up to 40% of the range, the mid layer holds to 70%, then fades into
// the high layer.
func Crossfade(speed float64, accelerating bool) Weights {
	ratio := mathutil.Clamp(speed/crossfadeSpeed, 0, 1)

	var w Weights
	switch {
	case ratio < lowBand:
		t := ratio / lowBand
		w.Low, w.Mid = 1-t, t
	case ratio < highBand:
		w.Mid = 1
	default:
		t := (ratio - highBand) / (1 - highBand)
		w.Mid, w.High = 1-t, t
	}

	master := idleVolume
	if accelerating {
		master = throttleVolume
	}
	w.Low *= master
	w.Mid *= master
	w.High *= master
	return w
}

// Channel is a looping voice whose volume can be set.
type Channel interface {
	SetVolume(v float64)
}

// Mixer drives the three engine voices.
type Mixer struct {
	log            zerolog.Logger
	low, mid, high Channel
	weights        Weights
	muted          bool
}

// NewMixer returns a mixer over three voices. A nil voice disables the
// mixer, matching a missing engine sample.
func NewMixer(log zerolog.Logger, low, mid, high Channel) *Mixer {
	m := &Mixer{
		log:  log.With().Str("component", "engine").Logger(),
		low:  low,
		mid:  mid,
		high: high,
	}
	m.Silence()
	return m
}

// Enabled reports whether all three voices are present.
func (m *Mixer) Enabled() bool {
	return m.low != nil && m.mid != nil && m.high != nil
}

// Update recomputes the weights and applies them unless muted.
func (m *Mixer) Update(speed float64, accelerating bool) {
	if !m.Enabled() {
		return
	}
	m.weights = Crossfade(speed, accelerating)
	if m.muted {
		m.apply(Weights{})
		return
	}
	m.apply(m.weights)
}

// Silence zeroes every voice without changing the mute state.
func (m *Mixer) Silence() {
	if !m.Enabled() {
		return
	}
	m.apply(Weights{})
}

// ToggleMute flips the mute state and returns it.
func (m *Mixer) ToggleMute() bool {
	if !m.Enabled() {
		return m.muted
	}
	m.muted = !m.muted
	if m.muted {
		m.apply(Weights{})
		m.log.Info().Msg("engine sound muted")
	} else {
		m.apply(m.weights)
		m.log.Info().Msg("engine sound unmuted")
	}
	return m.muted
}

// Muted reports the mute state.
func (m *Mixer) Muted() bool { return m.muted }

// Weights returns the last computed weights, including while muted.
func (m *Mixer) Weights() Weights { return m.weights }

func (m *Mixer) apply(w Weights) {
	m.low.SetVolume(w.Low)
	m.mid.SetVolume(w.Mid)
	m.high.SetVolume(w.High)
}
