package remap

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-galois/dsp/waveshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyParams() Params {
	return Params{
		Shape:    waveshape.ShapeChebyshev5,
		Power:    0.4,
		HarmFreq: 7,
		HarmAmp:  -0.6,
		BitDepth: 600,
		BitMask:  -300,
		Fold:     0.8,
		Order:    DefaultOrder,
	}
}

func TestDefaultParamsNearIdentity(t *testing.T) {
	p := DefaultParams()
	for _, x := range []float64{-1, -0.5, 0.123, 0.999} {
		// Default bit depth still quantizes, finely.
		assert.InDelta(t, x, Remap(x, &p), 1.0/1000)
	}

	assert.Less(t, Remap(1, &p), 1.0)
	assert.InDelta(t, 1018.0/QuantizeSteps(maxBitDepth), Remap(1, &p), 1e-12)
}

func TestZeroMapsToZero(t *testing.T) {
	orders := []Order{
		DefaultOrder,
		{StageFold, StageBit, StageHarmonics, StagePower, StageWaveshape},
		{StageHarmonics, StageHarmonics, StageFold, StageFold, StageWaveshape},
	}

	for _, shape := range waveshape.All() {
		for _, o := range orders {
			p := busyParams()
			p.Shape = shape
			p.Order = o
			require.Equal(t, 0.0, Remap(0, &p), "%s %v", shape, o)
		}
	}
}

func TestStageOrderMatters(t *testing.T) {
	p := busyParams()
	a := Remap(0.31, &p)

	p.Order = Order{StageFold, StagePower, StageWaveshape, StageBit, StageHarmonics}
	b := Remap(0.31, &p)

	assert.NotZero(t, a)
	assert.NotZero(t, b)
	assert.NotEqual(t, a, b)
}

func TestRepeatedStage(t *testing.T) {
	p := DefaultParams()
	p.Power = 1
	p.BitDepth = 2
	p.Order = Order{StagePower, StagePower, StageBit, StageBit, StageBit}

	// Exponent 11 twice.
	want := math.Pow(math.Pow(0.9, 11), 11)
	assert.InDelta(t, want, Remap(0.9, &p), 1e-12)
}

func TestHarmonicsUsesOriginalSample(t *testing.T) {
	p := DefaultParams()
	p.BitDepth = 2
	p.Shape = waveshape.ShapeCubic
	p.HarmAmp = 1
	p.HarmFreq = 3
	p.Order = Order{StageWaveshape, StageHarmonics, StageBit, StageBit, StageBit}

	x := 0.3
	v := waveshape.ShapeCubic.Apply(x)
	want := v + math.Sin(math.Pi*3*x)*(1-v*v)*0.2
	assert.InDelta(t, want, Remap(x, &p), 1e-12)
}

func TestPower(t *testing.T) {
	assert.Equal(t, 0.5, Power(0.5, 0))
	assert.InDelta(t, math.Pow(0.5, 6), Power(0.5, 0.5), 1e-15)
	assert.InDelta(t, -math.Pow(0.5, 6), Power(-0.5, 0.5), 1e-15)
	assert.InDelta(t, -math.Pow(0.5, 1.0/11), Power(-0.5, -1), 1e-15)

	assert.Equal(t, 1.0, PowerExponent(0))
	assert.Equal(t, 11.0, PowerExponent(1))
	assert.InDelta(t, 1.0/11, PowerExponent(-1), 1e-15)
	for p := -1.0; p < 0; p += 0.1 {
		e := PowerExponent(p)
		assert.True(t, e > 0 && e <= 1)
	}
}

func TestHarmonicsWindows(t *testing.T) {
	assert.Equal(t, 0.4, Harmonics(0.4, 0.2, 5, 0))

	// Positive amplitude fades out at |v| = 1.
	assert.InDelta(t, 1, Harmonics(1, 0.3, 2, 1), 1e-15)

	// Negative amplitude fades out at v = 0 and uses |amp|.
	v := 0.5
	want := v + math.Sin(math.Pi*2*0.3)*(1-0.25)*0.2*0.5
	assert.InDelta(t, want, Harmonics(v, 0.3, 2, -0.5), 1e-15)
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 0.37, Quantize(0.37, 2))

	steps := QuantizeSteps(300)
	got := Quantize(0.37, 300)
	assert.NotZero(t, got)
	assert.InDelta(t, math.Floor(0.37*steps)/steps, got, 1e-15)
	assert.InDelta(t, -got, Quantize(-0.37, 300), 1e-15)

	// More depth, more steps.
	assert.Greater(t, QuantizeSteps(1024), QuantizeSteps(512))
	assert.Greater(t, QuantizeSteps(512), QuantizeSteps(3))
}

func TestQuantizeMutesBelowOneStep(t *testing.T) {
	// steps = 1024*(1-q)^3 crosses 1 between depths 103 and 104.
	assert.Less(t, QuantizeSteps(103), 1.0)
	assert.Greater(t, QuantizeSteps(104), 1.0)

	for _, depth := range []float64{3, 40, 103} {
		for _, v := range []float64{0.99, -0.5, 0.01} {
			assert.Zero(t, Quantize(v, depth), "depth %v v %v", depth, v)
		}
	}

	assert.NotZero(t, Quantize(0.99, 104))
	assert.NotZero(t, Quantize(-0.99, 104))
}

func TestBusyParamsAreAudible(t *testing.T) {
	p := busyParams()
	for _, x := range []float64{0.31, 0.9} {
		assert.NotZero(t, Remap(x, &p), "x %v", x)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, 0.0, Mask(0.5, 512))
	assert.Equal(t, 0.25, Mask(0.25, 0))
	assert.Equal(t, 768.0/1024, Mask(0.25, 512))
	assert.Equal(t, -768.0/1024, Mask(-0.25, 512))

	// AND with 1023-512 = 511 clears the top bit.
	assert.Equal(t, 0.0, Mask(0.5, -512))
	assert.Equal(t, 100.0/1024, Mask(612.0/1024, -512))

	// Out of range input saturates at 1023.
	assert.Equal(t, 1022.0/1024, Mask(1.7, 1))
}

func TestBitStageScenario(t *testing.T) {
	p := DefaultParams()
	p.BitDepth = 2
	p.BitMask = 512
	p.Order = Order{StageBit, StageWaveshape, StageWaveshape, StageWaveshape, StageWaveshape}

	assert.Equal(t, 0.0, Remap(0.5, &p))
}

func TestFoldStage(t *testing.T) {
	assert.Equal(t, 0.6, FoldStage(0.6, 0))
	assert.InDelta(t, waveshape.Fold(1.2), FoldStage(0.6, 1), 1e-15)
	assert.InDelta(t, waveshape.Fold(math.Sin(-0.6*10)), FoldStage(0.6, -1), 1e-15)
	for x := -1.0; x <= 1; x += 0.05 {
		assert.LessOrEqual(t, math.Abs(FoldStage(x, 0.7)), 0.95+1e-12)
	}
}

func TestCurve(t *testing.T) {
	p := DefaultParams()
	p.BitDepth = 2
	dst := make([]float64, 201)
	Curve(dst, &p)
	assert.InDelta(t, -1, dst[0], 1e-15)
	assert.InDelta(t, 0, dst[100], 1e-12)
	assert.InDelta(t, 1, dst[200], 1e-15)

	Curve(nil, &p)
	one := make([]float64, 1)
	Curve(one, &p)
	assert.Equal(t, 0.0, one[0])
}

func TestOrderValidate(t *testing.T) {
	require.NoError(t, DefaultOrder.Validate())
	assert.Error(t, Order{0, 1, 2, 3, 9}.Validate())

	s, err := ParseStage("fold")
	require.NoError(t, err)
	assert.Equal(t, StageFold, s)
	_, err = ParseStage("reverb")
	assert.Error(t, err)
	assert.Equal(t, "harmonics", StageHarmonics.String())
	assert.Equal(t, "stage(7)", Stage(7).String())
}

func BenchmarkRemap(b *testing.B) {
	p := busyParams()
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Remap(float64(i%200)/100-1, &p)
	}
	_ = sink
}
