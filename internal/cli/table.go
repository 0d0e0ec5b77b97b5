package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/filter/biquad"
	"github.com/cwbudde/algo-galois/dsp/waveshape"
	"github.com/cwbudde/algo-galois/measure/thd"
)

// responseFrequencies are the octave points of PrintResponse.
var responseFrequencies = []float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// PrintShapers lists the waveshaper catalog, marking active.
func PrintShapers(w io.Writer, active waveshape.Shape) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%5s  %s", "index", "name")))

	for _, s := range waveshape.All() {
		line := fmt.Sprintf("%5d  %s", int(s), s)
		if s == active {
			line = ActiveStyle.Render(line + "  *")
		}

		fmt.Fprintln(w, line)
	}
}

// PrintParams lists every parameter with its range. Values that differ
// from the default are highlighted.
func PrintParams(w io.Writer, p engine.Params) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%-14s %10s  %-18s %s", "key", "value", "range", "default")))

	for _, spec := range engine.Specs() {
		v, _ := p.Get(spec.ID)
		line := fmt.Sprintf("%-14s %10s  %-18s %s",
			spec.ID, formatValue(v, spec.Integer),
			"["+formatValue(spec.Min, spec.Integer)+", "+formatValue(spec.Max, spec.Integer)+"]",
			formatValue(spec.Default, spec.Integer))

		if !core.NearlyEqual(v, spec.Default, 1e-9) {
			line = ActiveStyle.Render(line)
		}

		fmt.Fprintln(w, line)
	}
}

func formatValue(v float64, integer bool) string {
	if integer {
		return fmt.Sprintf("%d", int(math.Round(v)))
	}

	return fmt.Sprintf("%.3f", v)
}

// PrintSnapshot summarizes the derived processing state.
func PrintSnapshot(w io.Writer, s *engine.Snapshot) {
	stages := make([]string, len(s.Remap.Order))
	for i, st := range s.Remap.Order {
		stages[i] = st.String()
	}

	placement := "post"
	if s.FilterPre {
		placement = "pre"
	}

	PrintKV(w, "shaper", s.ShaperName())
	PrintKV(w, "stages", strings.Join(stages, " > "))
	PrintKV(w, "hold", fmt.Sprintf("%d samples", s.Divider))
	PrintKV(w, "input gain", fmt.Sprintf("%.3f", s.InputGain))
	PrintKV(w, "output gain", fmt.Sprintf("%.3f", s.OutputGain))
	PrintKV(w, "filter", fmt.Sprintf("%s %s, %.1f Hz, %.2f oct, %+.1f dB (x%.2f), blend %.2f",
		s.FilterType, placement, s.Cutoff, s.Bandwidth, s.FilterGain, core.DBToLinear(s.FilterGain), s.FilterBlend))
}

// PrintResponse prints the filter magnitude and phase at octave points below
// Nyquist.
func PrintResponse(w io.Writer, c biquad.Coefficients, sampleRate float64) {
	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%10s  %9s  %7s", "Hz", "dB", "deg")))

	for _, f := range responseFrequencies {
		if f >= sampleRate/2 {
			break
		}

		fmt.Fprintf(w, "%10.2f  %+9.2f  %+7.1f\n", f, c.MagnitudeDB(f, sampleRate),
			c.Phase(f, sampleRate)*180/math.Pi)
	}
}

// PrintTHD prints a harmonic analysis. Harmonics below floorDB relative to
// the fundamental are omitted.
func PrintTHD(w io.Writer, r thd.Result, floorDB float64) {
	PrintKV(w, "fundamental", fmt.Sprintf("%.4f", r.FundamentalLevel))
	PrintKV(w, "DC", fmt.Sprintf("%.4f", r.DC))
	PrintKV(w, "peak", fmt.Sprintf("%.4f", r.Peak))
	PrintKV(w, "THD", fmt.Sprintf("%.2f%% (%.1f dB)", 100*r.THD, r.THD_dB))
	PrintKV(w, "odd / even", fmt.Sprintf("%.2f%% / %.2f%%", 100*r.OddHD, 100*r.EvenHD))

	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("%9s  %9s  %9s", "harmonic", "level", "dB")))

	for i, h := range r.Harmonics {
		db := core.LinearToDB(h)
		if h <= 0 || db < floorDB {
			continue
		}

		fmt.Fprintf(w, "%9d  %9.5f  %+9.1f\n", i+2, h, db)
	}
}
