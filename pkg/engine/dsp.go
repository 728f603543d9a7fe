package engine

import "time"

const (
	clipLimit = 32767

	// DefaultWindow is the low-pass moving average width.
	DefaultWindow = 5
	// DefaultEchoDelay and DefaultEchoDecay thicken the filtered sample.
	DefaultEchoDelay = 60 * time.Millisecond
	DefaultEchoDecay = 0.4
)

// Pitch factors for the three layers. Above 1 plays faster and higher.
const (
	LowPitch  = 0.6
	MidPitch  = 0.9
	HighPitch = 1.3
)

// Layers are the pitch-shifted engine loops.
type Layers struct {
	Low, Mid, High PCM
}

// Synthesize runs the offline chain: low-pass, echo, then one resample per
// layer.
func Synthesize(p PCM) Layers {
	base := Echo(LowPass(p, DefaultWindow), DefaultEchoDelay, DefaultEchoDecay)
	return Layers{
		Low:  Resample(base, LowPitch),
		Mid:  Resample(base, MidPitch),
		High: Resample(base, HighPitch),
	}
}

// LowPass applies a centred moving average per channel. The window is
// truncated at the edges and averages round toward negative infinity.
func LowPass(p PCM, window int) PCM {
	half := window / 2
	frames := p.Frames()
	out := PCM{Channels: p.Channels, SampleRate: p.SampleRate, Samples: make([]int16, frames*p.Channels)}

	for ch := 0; ch < p.Channels; ch++ {
		for i := 0; i < frames; i++ {
			start := max(0, i-half)
			end := min(frames, i+half+1)
			sum := 0
			for j := start; j < end; j++ {
				sum += int(p.Samples[j*p.Channels+ch])
			}
			out.Samples[i*p.Channels+ch] = int16(floorDiv(sum, end-start))
		}
	}
	return out
}

// Echo mixes a delayed, decayed copy of the input into itself. The delayed
// tap reads the dry input so there is no feedback.
func Echo(p PCM, delay time.Duration, decay float64) PCM {
	offset := int(float64(p.SampleRate)*delay.Seconds()) * p.Channels
	out := PCM{Channels: p.Channels, SampleRate: p.SampleRate, Samples: make([]int16, len(p.Samples))}

	for i, s := range p.Samples {
		mixed := int(s)
		if j := i - offset; j >= 0 {
			mixed += int(float64(p.Samples[j]) * decay)
		}
		out.Samples[i] = int16(min(clipLimit, max(-clipLimit, mixed)))
	}
	return out
}

// Resample shifts pitch by nearest-neighbour stepping through the frames.
// The result has floor(frames/factor) frames.
func Resample(p PCM, factor float64) PCM {
	frames := p.Frames()
	n := int(float64(frames) / factor)
	out := PCM{Channels: p.Channels, SampleRate: p.SampleRate, Samples: make([]int16, 0, n*p.Channels)}

	for i := 0; i < n; i++ {
		src := int(float64(i) * factor)
		if src >= frames {
			break
		}
		base := src * p.Channels
		out.Samples = append(out.Samples, p.Samples[base:base+p.Channels]...)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
