package preset

import (
	"maps"
	"strings"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/filter/design"
	"github.com/cwbudde/algo-galois/dsp/remap"
	"github.com/cwbudde/algo-galois/dsp/waveshape"
)

var factory = []Preset{
	{
		Name:        "Init",
		Description: "All parameters at their defaults.",
		Params:      map[engine.ParamID]float64{},
	},
	{
		Name:        "Warm Tape",
		Description: "Gentle tanh saturation with a soft top end.",
		Params: map[engine.ParamID]float64{
			engine.ParamBaseWave:     float64(waveshape.ShapeTanh),
			engine.ParamInputLevel:   0.9,
			engine.ParamOutputLevel:  0.9,
			engine.ParamFilterBlend:  0.6,
			engine.ParamFilterCutoff: 9.5,
			engine.ParamFilterQ:      0.2,
		},
	},
	{
		Name:        "Crushed",
		Description: "Sample rate and bit depth reduction.",
		Params: map[engine.ParamID]float64{
			engine.ParamSampleRate: 6,
			engine.ParamBitDepth:   180,
			engine.ParamBitMask:    64,
		},
	},
	{
		Name:        "Wavefolder",
		Description: "Folded sine into a resonant lowpass.",
		Params: map[engine.ParamID]float64{
			engine.ParamBaseWave:     float64(waveshape.ShapeFoldSine),
			engine.ParamFold:         0.35,
			engine.ParamFilterBlend:  1,
			engine.ParamFilterCutoff: 8,
			engine.ParamFilterQ:      0.85,
		},
	},
	{
		Name:        "Harmonic Bloom",
		Description: "Chebyshev shaping with added harmonics, folded first.",
		Params: map[engine.ParamID]float64{
			engine.ParamBaseWave: float64(waveshape.ShapeChebyshev3),
			engine.ParamHarmFreq: 4,
			engine.ParamHarmAmp:  0.5,
			engine.ParamFold:     0.2,
			engine.ParamStage1:   float64(remap.StageFold),
			engine.ParamStage5:   float64(remap.StageWaveshape),
			engine.ParamDryBlend: 0.3,
		},
	},
	{
		Name:        "Telephone",
		Description: "Bandpassed grit.",
		Params: map[engine.ParamID]float64{
			engine.ParamBaseWave:     float64(waveshape.ShapeGrit),
			engine.ParamFilterPre:    1,
			engine.ParamFilterBlend:  1,
			engine.ParamFilterType:   float64(design.Bandpass),
			engine.ParamFilterCutoff: 6.8,
			engine.ParamFilterQ:      0.4,
		},
	},
}

// Factory returns copies of the built-in presets.
func Factory() []Preset {
	out := make([]Preset, len(factory))
	for i, p := range factory {
		p.Params = maps.Clone(p.Params)
		out[i] = p
	}

	return out
}

// FactoryByName finds a built-in preset, ignoring case.
func FactoryByName(name string) (Preset, bool) {
	for _, p := range Factory() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return Preset{}, false
}
