// Package thd measures the harmonic content a static nonlinearity adds to a
// pure sine.
//
// A sine with an integer number of cycles per FFT frame is passed through
// the nonlinearity. The result is exactly periodic in the frame, so every
// harmonic lands on a single bin and no window is needed.
package thd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-galois/dsp/remap"
)

const (
	defaultFFTSize        = 4096
	defaultFundamentalBin = 16
	defaultMaxHarmonics   = 15
)

// ErrNoFundamental is returned when the fundamental bin holds no energy.
var ErrNoFundamental = errors.New("thd: no energy at the fundamental")

// Config holds the analysis parameters. Zero fields take defaults.
type Config struct {
	FFTSize        int     // power of two
	FundamentalBin int     // cycles of the test sine per frame
	Amplitude      float64 // peak of the test sine, default 1
	MaxHarmonics   int     // highest harmonic number evaluated
}

// Result holds levels relative to the fundamental amplitude.
//
//nolint:revive
type Result struct {
	FundamentalLevel float64 // amplitude of the fundamental
	DC               float64
	THD              float64 // RSS of harmonics 2..MaxHarmonics
	THD_dB           float64
	OddHD            float64
	EvenHD           float64
	Harmonics        []float64 // index 0 is harmonic 2
	Peak             float64   // largest |output| sample
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.FundamentalBin == 0 {
		cfg.FundamentalBin = defaultFundamentalBin
	}

	if cfg.Amplitude == 0 {
		cfg.Amplitude = 1
	}

	if cfg.MaxHarmonics == 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	if cfg.FFTSize < 4 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return cfg, fmt.Errorf("thd: FFT size must be a power of two >= 4: %d", cfg.FFTSize)
	}

	if cfg.FundamentalBin < 1 || cfg.FundamentalBin >= cfg.FFTSize/2 {
		return cfg, fmt.Errorf("thd: fundamental bin out of range: %d", cfg.FundamentalBin)
	}

	if cfg.MaxHarmonics < 2 {
		return cfg, fmt.Errorf("thd: max harmonics must be >= 2: %d", cfg.MaxHarmonics)
	}

	if math.IsNaN(cfg.Amplitude) || math.IsInf(cfg.Amplitude, 0) {
		return cfg, fmt.Errorf("thd: invalid amplitude: %f", cfg.Amplitude)
	}

	return cfg, nil
}

// Analyze drives fn with a bin-centred sine and measures its harmonics.
func Analyze(fn func(float64) float64, cfg Config) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	n := cfg.FFTSize
	signal := make([]float64, n)
	step := 2 * math.Pi * float64(cfg.FundamentalBin) / float64(n)

	for i := range signal {
		signal[i] = fn(cfg.Amplitude * math.Sin(step*float64(i)))
	}

	return analyzeFrame(signal, cfg)
}

// AnalyzeRemap measures the remap pipeline configured by p.
func AnalyzeRemap(p *remap.Params, cfg Config) (Result, error) {
	return Analyze(func(x float64) float64 { return remap.Remap(x, p) }, cfg)
}

// AnalyzeSignal measures one frame that holds exactly fundamentalBin
// cycles. len(signal) must be a power of two.
func AnalyzeSignal(signal []float64, fundamentalBin, maxHarmonics int) (Result, error) {
	cfg, err := normalizeConfig(Config{
		FFTSize:        len(signal),
		FundamentalBin: fundamentalBin,
		MaxHarmonics:   maxHarmonics,
	})
	if err != nil {
		return Result{}, err
	}

	return analyzeFrame(signal, cfg)
}

func analyzeFrame(signal []float64, cfg Config) (Result, error) {
	n := cfg.FFTSize

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("thd: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("thd: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	// Amplitude of a one-sided bin is 2|X|/N; DC is |X|/N.
	scale := 2 / float64(n)
	level := func(bin int) float64 {
		return math.Sqrt(max(power[bin], 0)) * scale
	}

	abs := make([]float64, n)
	for i, v := range signal {
		abs[i] = math.Abs(v)
	}

	res := Result{
		DC:   math.Sqrt(max(power[0], 0)) / float64(n),
		Peak: floats.Max(abs),
	}

	fund := level(cfg.FundamentalBin)
	res.FundamentalLevel = fund

	if fund <= 1e-12*max(cfg.Amplitude, 1) {
		return res, ErrNoFundamental
	}

	var oddSq, evenSq []float64
	for k := 2; k <= cfg.MaxHarmonics; k++ {
		bin := k * cfg.FundamentalBin
		if bin >= bins {
			break
		}

		rel := level(bin) / fund
		res.Harmonics = append(res.Harmonics, rel)

		if k%2 == 0 {
			evenSq = append(evenSq, rel*rel)
		} else {
			oddSq = append(oddSq, rel*rel)
		}
	}

	res.OddHD = math.Sqrt(floats.Sum(oddSq))
	res.EvenHD = math.Sqrt(floats.Sum(evenSq))
	res.THD = math.Hypot(res.OddHD, res.EvenHD)
	res.THD_dB = ratioToDB(res.THD)

	return res, nil
}

func ratioToDB(r float64) float64 {
	if r <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(r)
}
