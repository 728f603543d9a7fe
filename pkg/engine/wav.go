package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errNotWAV = errors.New("engine: not a RIFF/WAVE file")

// DecodeWAV reads a 16-bit mono or stereo WAV file into PCM at its own rate
// and layout.
func DecodeWAV(r io.ReadSeeker) (PCM, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return PCM{}, fmt.Errorf("%w: %v", errNotWAV, err)
		}
		return PCM{}, errNotWAV
	}
	if d.BitDepth != 16 {
		return PCM{}, fmt.Errorf("%w: got %d-bit", ErrSampleWidth, d.BitDepth)
	}
	if d.NumChans > 2 {
		return PCM{}, fmt.Errorf("engine: unsupported channel count %d", d.NumChans)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return PCM{}, fmt.Errorf("engine: reading samples: %w", err)
	}
	channels := int(d.NumChans)
	samples := make([]int16, len(buf.Data)/channels*channels)
	for i := range samples {
		samples[i] = int16(buf.Data[i])
	}
	return PCM{Channels: channels, SampleRate: int(d.SampleRate), Samples: samples}, nil
}

// EncodeWAV writes p as a 16-bit PCM WAV file.
func EncodeWAV(w io.WriteSeeker, p PCM) error {
	e := wav.NewEncoder(w, p.SampleRate, 16, p.Channels, 1)
	data := make([]int, len(p.Samples))
	for i, s := range p.Samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("engine: writing samples: %w", err)
	}
	return e.Close()
}

// Stereo duplicates a mono signal into two channels and converts the rate
// by nearest-neighbour stepping.
func Stereo(p PCM, rate int) PCM {
	if p.Channels == 1 {
		st := PCM{Channels: 2, SampleRate: p.SampleRate, Samples: make([]int16, 0, len(p.Samples)*2)}
		for _, s := range p.Samples {
			st.Samples = append(st.Samples, s, s)
		}
		p = st
	}
	if p.SampleRate != rate && p.SampleRate > 0 {
		p = Resample(p, float64(p.SampleRate)/float64(rate))
		p.SampleRate = rate
	}
	return p
}
