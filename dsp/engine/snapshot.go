package engine

import (
	"math"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/filter/biquad"
	"github.com/cwbudde/algo-galois/dsp/filter/design"
	"github.com/cwbudde/algo-galois/dsp/remap"
	"github.com/cwbudde/algo-galois/dsp/waveshape"
)

const (
	// outputAttenuation leaves headroom after the output gain.
	outputAttenuation = 0.7

	// cutoffBase is the cutoff in Hz for a raw cutoff of 0.
	cutoffBase = 16

	// bandwidthOffset maps raw q in [0, 1] to bandwidth 1.01-q octaves.
	bandwidthOffset = 1.01
)

// Snapshot is the immutable, fully derived state the audio path reads.
// A published Snapshot is never modified.
type Snapshot struct {
	// Params is the source of this snapshot, clamped to the table ranges.
	Params Params

	SampleRate float64
	Divider    int

	// InputGain is √((input_level·√2)²); OutputGain is (output_level·√2)².
	InputGain  float64
	OutputGain float64

	DryAbs  float64
	DrySign float64

	FilterPre   bool
	FilterBlend float64
	FilterType  design.Type
	Cutoff      float64 // Hz, below Nyquist
	Bandwidth   float64 // octaves
	FilterGain  float64 // dB
	Coeffs      biquad.Coefficients

	Remap remap.Params

	shaperName string
	curve      []float64
}

// Curve returns the remap curve sampled across [-1, 1]. The slice is shared
// and must not be modified.
func (s *Snapshot) Curve() []float64 {
	return s.curve
}

// ShaperName returns the display name of the active waveshaper.
func (s *Snapshot) ShaperName() string {
	return s.shaperName
}

// buildSnapshot derives a snapshot from p for the given sample rate.
func buildSnapshot(p *Params, sampleRate float64, curveLen int) *Snapshot {
	s := &Snapshot{SampleRate: sampleRate}

	for i, spec := range paramSpecs {
		s.Params.values[i] = spec.Clamp(p.values[i])
	}

	c := &s.Params

	s.Divider = int(c.clamped(ParamSampleRate))

	in := c.clamped(ParamInputLevel) * math.Sqrt2
	s.InputGain = math.Sqrt(in * in)

	out := c.clamped(ParamOutputLevel) * math.Sqrt2
	s.OutputGain = out * out

	dry := c.clamped(ParamDryBlend)
	s.DryAbs = math.Abs(dry)
	s.DrySign = core.Sign(dry)

	s.FilterPre = c.clamped(ParamFilterPre) >= 0.5
	s.FilterBlend = c.clamped(ParamFilterBlend)
	s.FilterType = design.Type(c.clamped(ParamFilterType))
	s.FilterGain = c.clamped(ParamFilterGain)
	s.Cutoff = CutoffHz(c.clamped(ParamFilterCutoff), sampleRate)
	s.Bandwidth = BandwidthOctaves(c.clamped(ParamFilterQ))
	s.Coeffs = design.Cookbook(s.FilterType, sampleRate, s.Cutoff, s.Bandwidth, s.FilterGain)

	s.Remap = remap.Params{
		Shape:    waveshape.Shape(c.clamped(ParamBaseWave)),
		Power:    c.clamped(ParamPower),
		HarmFreq: c.clamped(ParamHarmFreq),
		HarmAmp:  c.clamped(ParamHarmAmp),
		BitDepth: c.clamped(ParamBitDepth),
		BitMask:  int(c.clamped(ParamBitMask)),
		Fold:     c.clamped(ParamFold),
	}
	for i, id := range stageParams {
		s.Remap.Order[i] = remap.Stage(c.clamped(id))
	}

	s.shaperName = s.Remap.Shape.String()
	s.curve = make([]float64, curveLen)
	remap.Curve(s.curve, &s.Remap)

	return s
}

// CutoffHz maps a raw cutoff in [0, 10] to 16·2^raw Hz, held at least 1 Hz
// below Nyquist.
func CutoffHz(raw, sampleRate float64) float64 {
	f := cutoffBase * math.Exp2(raw)
	if nyq := sampleRate/2 - 1; f > nyq {
		f = nyq
	}

	return f
}

// BandwidthOctaves maps a raw q in [0, 1] to a bandwidth of 1.01-q octaves.
func BandwidthOctaves(rawQ float64) float64 {
	return bandwidthOffset - rawQ
}
