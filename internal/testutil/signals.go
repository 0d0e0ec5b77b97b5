// Package testutil holds deterministic test signals and tolerance checks
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine32 returns a single-precision sine of the given frequency.
func Sine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}

	return out
}

// Noise32 returns uniform white noise in [-amplitude, amplitude] from a
// fixed seed.
func Noise32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}

	return out
}

// Ramp32 returns length values rising linearly from start to end inclusive.
func Ramp32(start, end float64, length int) []float32 {
	out := make([]float32, length)
	if length == 1 {
		out[0] = float32(start)
		return out
	}

	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = float32(start + step*float64(i))
	}

	return out
}

// CloneBlock deep-copies a multichannel block.
func CloneBlock(block [][]float32) [][]float32 {
	out := make([][]float32, len(block))
	for i, ch := range block {
		out[i] = append([]float32(nil), ch...)
	}

	return out
}
