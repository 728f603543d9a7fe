// Package engine synthesizes the three engine loops from a recorded sample
// and crossfades them by vehicle speed.
package engine

import (
	"encoding/binary"
	"errors"
)

// ErrSampleWidth is returned for PCM that is not 16-bit.
var ErrSampleWidth = errors.New("engine: only 16-bit PCM is supported")

// PCM is interleaved signed 16-bit audio.
type PCM struct {
	Channels   int
	SampleRate int
	Samples    []int16
}

// Frames returns the number of complete frames.
func (p PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Bytes encodes the samples as little-endian 16-bit PCM.
func (p PCM) Bytes() []byte {
	b := make([]byte, len(p.Samples)*2)
	for i, s := range p.Samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}
