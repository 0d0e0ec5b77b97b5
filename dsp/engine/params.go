package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-galois/dsp/core"
)

var (
	// ErrUnknownParam is returned for a key that is not in the parameter table.
	ErrUnknownParam = errors.New("engine: unknown parameter")
	// ErrOutOfRange is returned for a value outside the documented range.
	ErrOutOfRange = errors.New("engine: parameter value out of range")
)

// ParamID is the stable key of one parameter.
type ParamID string

const (
	ParamBitDepth     ParamID = "bit_depth"
	ParamSampleRate   ParamID = "sample_rate"
	ParamInputLevel   ParamID = "input_level"
	ParamOutputLevel  ParamID = "output_level"
	ParamBaseWave     ParamID = "wf_base_wave"
	ParamPower        ParamID = "wf_power"
	ParamHarmFreq     ParamID = "wf_harm_freq"
	ParamHarmAmp      ParamID = "wf_harm_amp"
	ParamFold         ParamID = "wf_fold"
	ParamBitMask      ParamID = "bit_mask"
	ParamDryBlend     ParamID = "dry_blend"
	ParamFilterPre    ParamID = "filter_pre"
	ParamFilterBlend  ParamID = "filter_blend"
	ParamFilterCutoff ParamID = "filter_cutoff"
	ParamFilterQ      ParamID = "filter_q"
	ParamFilterGain   ParamID = "filter_gain"
	ParamFilterType   ParamID = "filter_type"
	ParamStage1       ParamID = "wf_stage_1"
	ParamStage2       ParamID = "wf_stage_2"
	ParamStage3       ParamID = "wf_stage_3"
	ParamStage4       ParamID = "wf_stage_4"
	ParamStage5       ParamID = "wf_stage_5"
)

// ParamSpec documents one parameter.
type ParamSpec struct {
	ID      ParamID
	Label   string
	Min     float64
	Max     float64
	Default float64
	Integer bool
}

// Clamp limits v to the parameter range, rounding integer parameters.
// NaN maps to the default.
func (s ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Default
	}

	if s.Integer {
		v = math.Round(v)
	}

	return core.Clamp(v, s.Min, s.Max)
}

var paramSpecs = [...]ParamSpec{
	{ID: ParamBitDepth, Label: "Bit Depth", Min: 2, Max: 1024, Default: 1024},
	{ID: ParamSampleRate, Label: "Sample Rate Divider", Min: 1, Max: 256, Default: 1, Integer: true},
	{ID: ParamInputLevel, Label: "Input Level", Min: 0, Max: 5, Default: 1 / math.Sqrt2},
	{ID: ParamOutputLevel, Label: "Output Level", Min: 0, Max: 5, Default: 1 / math.Sqrt2},
	{ID: ParamBaseWave, Label: "Wave Shape", Min: 0, Max: 30, Default: 0, Integer: true},
	{ID: ParamPower, Label: "Power", Min: -1, Max: 1, Default: 0},
	{ID: ParamHarmFreq, Label: "Harmonic Freq", Min: 1, Max: 32, Default: 1},
	{ID: ParamHarmAmp, Label: "Harmonic Amp", Min: -1, Max: 1, Default: 0},
	{ID: ParamFold, Label: "Fold", Min: -1, Max: 1, Default: 0},
	{ID: ParamBitMask, Label: "Bit Mask", Min: -1023, Max: 1023, Default: 0, Integer: true},
	{ID: ParamDryBlend, Label: "Dry Blend", Min: -1, Max: 1, Default: 0},
	{ID: ParamFilterPre, Label: "Filter Pre", Min: 0, Max: 1, Default: 0, Integer: true},
	{ID: ParamFilterBlend, Label: "Filter Blend", Min: 0, Max: 1, Default: 0},
	{ID: ParamFilterCutoff, Label: "Filter Cutoff", Min: 0, Max: 10, Default: 10},
	{ID: ParamFilterQ, Label: "Filter Q", Min: 0, Max: 1, Default: 0.3},
	{ID: ParamFilterGain, Label: "Filter Gain", Min: -24, Max: 24, Default: 0},
	{ID: ParamFilterType, Label: "Filter Type", Min: 0, Max: 6, Default: 0, Integer: true},
	{ID: ParamStage1, Label: "Stage 1", Min: 0, Max: 4, Default: 0, Integer: true},
	{ID: ParamStage2, Label: "Stage 2", Min: 0, Max: 4, Default: 1, Integer: true},
	{ID: ParamStage3, Label: "Stage 3", Min: 0, Max: 4, Default: 2, Integer: true},
	{ID: ParamStage4, Label: "Stage 4", Min: 0, Max: 4, Default: 3, Integer: true},
	{ID: ParamStage5, Label: "Stage 5", Min: 0, Max: 4, Default: 4, Integer: true},
}

const numParams = len(paramSpecs)

var paramIndex = func() map[ParamID]int {
	m := make(map[ParamID]int, len(paramSpecs))
	for i, s := range paramSpecs {
		m[s.ID] = i
	}

	return m
}()

var stageParams = [5]ParamID{ParamStage1, ParamStage2, ParamStage3, ParamStage4, ParamStage5}

// Specs returns the parameter table in display order.
func Specs() []ParamSpec {
	return slices.Clone(paramSpecs[:])
}

// LookupSpec returns the spec for id.
func LookupSpec(id ParamID) (ParamSpec, bool) {
	i, ok := paramIndex[id]
	if !ok {
		return ParamSpec{}, false
	}

	return paramSpecs[i], true
}

// Params is a complete set of parameter values. The zero value holds the
// minimum of every range once a snapshot is built from it; use
// DefaultParams for the neutral setting. Params is a value type and safe
// to copy.
type Params struct {
	values [numParams]float64
}

// DefaultParams returns every parameter at its default.
func DefaultParams() Params {
	var p Params
	for i, s := range paramSpecs {
		p.values[i] = s.Default
	}

	return p
}

// Get returns the value of id.
func (p Params) Get(id ParamID) (float64, bool) {
	i, ok := paramIndex[id]
	if !ok {
		return 0, false
	}

	return p.values[i], true
}

// Set validates and stores v. Integer parameters are rounded.
func (p *Params) Set(id ParamID, v float64) error {
	i, ok := paramIndex[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, id)
	}

	s := paramSpecs[i]
	if math.IsNaN(v) || v < s.Min || v > s.Max {
		return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrOutOfRange, id, v, s.Min, s.Max)
	}

	if s.Integer {
		v = math.Round(v)
	}

	p.values[i] = v

	return nil
}

// SetValues applies every entry of values and joins the errors. Valid
// entries are stored even when others fail.
func (p *Params) SetValues(values map[ParamID]float64) error {
	var errs []error

	ids := make([]ParamID, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		if err := p.Set(id, values[id]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Values returns a flat map view of the parameters.
func (p Params) Values() map[ParamID]float64 {
	m := make(map[ParamID]float64, numParams)
	for i, s := range paramSpecs {
		m[s.ID] = p.values[i]
	}

	return m
}

func (p *Params) clamped(id ParamID) float64 {
	i := paramIndex[id]

	return paramSpecs[i].Clamp(p.values[i])
}
