// Package mathutil holds the small numeric helpers shared by the simulation
// and the renderer: clamping, colour interpolation and a stateless hash.
package mathutil

import (
	"image/color"
	"math"
)

// splitmix64 is a fast 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hash returns a deterministic 64-bit hash of (index, salt).
func Hash(index, salt int) uint64 {
	h := uint64(uint32(index)) * 0x9E3779B185EBCA87
	h ^= uint64(uint32(salt)) * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

// Hash01 maps (index, salt) to a float in [0,1).
func Hash01(index, salt int) float64 {
	return float64(Hash(index, salt)>>11) * (1.0 / (1 << 53))
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// LerpRGB blends the colour channels of a toward b, keeping a's alpha.
func LerpRGB(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t), A: a.A}
}

// Rand is a tiny deterministic xorshift64* generator. It is a value type so
// hot loops can seed one per segment without allocating.
type Rand struct {
	s uint64
}

// NewRand seeds a generator; zero seeds are remapped.
func NewRand(seed uint64) Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return Rand{s: seed}
}

func (r *Rand) next() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.next()>>11) * (1.0 / (1 << 53))
}

// Range returns a value in [lo,hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Intn returns a value in [0,n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// IntRange returns a value in [lo,hi], inclusive.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Gauss draws from a normal distribution (Box-Muller).
func (r *Rand) Gauss(mean, stddev float64) float64 {
	u1 := r.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := r.Float64()
	return mean + stddev*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
}
