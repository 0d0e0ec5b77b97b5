package remap

import (
	"math"

	"github.com/cwbudde/algo-galois/dsp/waveshape"
)

const (
	maxBitDepth    = 1024
	maskResolution = 1024
	harmonicScale  = 0.2
	powerRange     = 10
	foldSinRange   = 9
)

// Params holds the scalar controls of the pipeline. The zero value with
// DefaultOrder is a transparent identity mapping.
type Params struct {
	Shape    waveshape.Shape
	Power    float64 // [-1, 1]
	HarmFreq float64 // sine multiples of the input sample
	HarmAmp  float64 // [-1, 1], sign selects the window
	BitDepth float64 // [2, 1024]; <= 2 disables quantization
	BitMask  int     // [-1023, 1023]; >0 XOR, <0 AND with 1023-|mask|
	Fold     float64 // [-1, 1]
	Order    Order
}

// DefaultParams returns the knob defaults: identity shape with the finest
// quantization (about 1018 levels). The mapping stays within 1/1000 of the
// input but is not exact; Remap(1) is slightly below 1.
func DefaultParams() Params {
	return Params{
		Shape:    waveshape.ShapeIdentity,
		HarmFreq: 1,
		BitDepth: maxBitDepth,
		Order:    DefaultOrder,
	}
}

// Remap runs x through every stage of p.Order. Zero always maps to zero,
// whatever the stages, because several shapers are unstable there.
func Remap(x float64, p *Params) float64 {
	if x == 0 {
		return 0
	}

	v := x
	for _, s := range p.Order {
		switch s {
		case StageWaveshape:
			v = p.Shape.Apply(v)
		case StagePower:
			v = Power(v, p.Power)
		case StageHarmonics:
			v = Harmonics(v, x, p.HarmFreq, p.HarmAmp)
		case StageBit:
			v = Bits(v, p.BitDepth, p.BitMask)
		case StageFold:
			v = FoldStage(v, p.Fold)
		}
	}

	return v
}

// Curve fills dst with Remap evaluated at len(dst) evenly spaced points
// across [-1, 1], endpoints included.
func Curve(dst []float64, p *Params) {
	n := len(dst)
	if n == 0 {
		return
	}

	if n == 1 {
		dst[0] = Remap(0, p)
		return
	}

	step := 2 / float64(n-1)
	for i := range dst {
		dst[i] = Remap(-1+float64(i)*step, p)
	}
}

// PowerExponent maps power in [-1, 1] to the exponent applied to |v|:
// 1+10p for p > 0 and 1/(1+10|p|) for p < 0.
func PowerExponent(power float64) float64 {
	if power >= 0 {
		return 1 + powerRange*power
	}

	return 1 / (1 + powerRange*-power)
}

// Power raises |v| to PowerExponent(power) keeping the sign of v.
func Power(v, power float64) float64 {
	if power == 0 {
		return v
	}

	r := math.Pow(math.Abs(v), PowerExponent(power))
	if (r < 0) != (v < 0) {
		r = -r
	}

	return r
}

// Harmonics adds a sine at freq multiples of the original sample x0,
// windowed so it fades out towards |v| = 1 (amp > 0) or towards v = 0
// (amp < 0).
func Harmonics(v, x0, freq, amp float64) float64 {
	if amp == 0 {
		return v
	}

	var window float64
	if amp > 0 {
		window = 1 - v*v
	} else {
		d := 1 - math.Abs(v)
		window = 1 - d*d
		amp = -amp
	}

	return v + math.Sin(math.Pi*freq*x0)*window*harmonicScale*amp
}

// QuantizeSteps returns the effective number of quantization steps for a
// bit depth, using a cubic remap of (1024-|depth|+2)/1024.
func QuantizeSteps(bitDepth float64) float64 {
	q := (maxBitDepth - math.Abs(bitDepth) + 2) / maxBitDepth
	r := 1 - q

	return maxBitDepth * r * r * r
}

// Quantize floors |v| onto QuantizeSteps(bitDepth) levels. No-op for depths
// of 2 or below.
func Quantize(v, bitDepth float64) float64 {
	if bitDepth <= 2 {
		return v
	}

	steps := QuantizeSteps(bitDepth)

	return math.Copysign(math.Floor(math.Abs(v)*steps)/steps, v)
}

// Mask converts |v| to an integer in [0, 1024), XORs it with mask (mask > 0)
// or ANDs it with 1023-|mask| (mask < 0) and converts back.
func Mask(v float64, mask int) float64 {
	if mask == 0 {
		return v
	}

	i := int(math.Abs(v) * maskResolution)
	if i < 0 {
		i = 0
	} else if i > maskResolution-1 {
		i = maskResolution - 1
	}

	if mask > 0 {
		i ^= mask
	} else {
		i &= maskResolution - 1 + mask
	}

	out := float64(i) / maskResolution
	if v < 0 {
		out = -out
	}

	return out
}

// Bits applies Quantize then Mask.
func Bits(v, bitDepth float64, mask int) float64 {
	return Mask(Quantize(v, bitDepth), mask)
}

// FoldStage scales v by amt+1 and folds it for amt > 0. For amt < 0 it folds
// sin(-v*(1+9|amt|)).
func FoldStage(v, amt float64) float64 {
	switch {
	case amt > 0:
		return waveshape.Fold(v * (amt + 1))
	case amt < 0:
		return waveshape.Fold(math.Sin(-v * (1 + foldSinRange*-amt)))
	default:
		return v
	}
}
