package mathutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash01Stable(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := Hash01(i, 7)
		assert.Equal(t, a, Hash01(i, 7))
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 1.0)
	}
	assert.NotEqual(t, Hash01(3, 0), Hash01(4, 0))
	assert.NotEqual(t, Hash01(3, 0), Hash01(3, 1))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.v, 0, 1))
	}
}

func TestLerpRGB(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 10}
	assert.Equal(t, a, LerpRGB(a, b, 0))
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, LerpRGB(a, b, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, LerpRGB(a, b, 0.5))
}

func TestRandDeterministic(t *testing.T) {
	r1 := NewRand(42)
	r2 := NewRand(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, r1.Float64(), r2.Float64())
	}

	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
		f := r.Range(-0.1, 0.2)
		assert.GreaterOrEqual(t, f, -0.1)
		assert.Less(t, f, 0.2)
	}
}
