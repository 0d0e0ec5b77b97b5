package design

import (
	"math"

	"github.com/cwbudde/algo-galois/dsp/filter/biquad"
)

const (
	// minOmega keeps ω inside [minOmega, π-minOmega] so sin(ω) never
	// reaches zero.
	minOmega = 1e-6

	// minBandwidth is the narrowest accepted bandwidth in octaves.
	minBandwidth = 1e-3

	defaultBandwidth = 1.0
)

// Omega returns the normalized angular frequency 2π·freq/sampleRate with
// freq clamped below Nyquist. ok is false for an unusable sample rate.
func Omega(freq, sampleRate float64) (w0 float64, ok bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	if math.IsNaN(freq) {
		freq = 0
	}

	w0 = 2 * math.Pi * freq / sampleRate

	return min(max(w0, minOmega), math.Pi-minOmega), true
}

// Alpha returns sin(ω)·sinh(ln2/2·bw·ω/sin(ω)).
func Alpha(w0, bandwidthOct float64) float64 {
	if bandwidthOct <= 0 || math.IsNaN(bandwidthOct) || math.IsInf(bandwidthOct, 0) {
		bandwidthOct = defaultBandwidth
	}

	bandwidthOct = max(bandwidthOct, minBandwidth)
	sw := math.Sin(w0)

	return sw * math.Sinh(math.Ln2/2*bandwidthOct*w0/sw)
}

// Cookbook designs one biquad section of type t centred on freq (Hz) with
// the given bandwidth in octaves. gainDB only affects Peak and the shelves;
// the shelves use a fixed slope and ignore the bandwidth.
// The result is always finite; inputs that cannot produce a filter yield
// [biquad.Identity].
func Cookbook(t Type, sampleRate, freq, bandwidthOct, gainDB float64) biquad.Coefficients {
	if !t.Valid() {
		return unknownType(t)
	}

	w0, ok := Omega(freq, sampleRate)
	if !ok {
		return biquad.Identity
	}

	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		gainDB = 0
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := Alpha(w0, bandwidthOct)
	a := math.Pow(10, gainDB/40)

	var b0, b1, b2, a0, a1, a2 float64

	switch t {
	case Lowpass:
		b0 = (1 - cw) / 2
		b1 = 1 - cw
		b2 = (1 - cw) / 2
		a0 = 1 + alpha
		a1 = -2 * cw
		a2 = 1 - alpha
	case Highpass:
		b0 = (1 + cw) / 2
		b1 = -(1 + cw)
		b2 = (1 + cw) / 2
		a0 = 1 + alpha
		a1 = -2 * cw
		a2 = 1 - alpha
	case Bandpass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
		a0 = 1 + alpha
		a1 = -2 * cw
		a2 = 1 - alpha
	case Notch:
		b0 = 1
		b1 = -2 * cw
		b2 = 1
		a0 = 1 + alpha
		a1 = -2 * cw
		a2 = 1 - alpha
	case Peak:
		b0 = 1 + alpha*a
		b1 = -2 * cw
		b2 = 1 - alpha*a
		a0 = 1 + alpha/a
		a1 = -2 * cw
		a2 = 1 - alpha/a
	case LowShelf:
		beta := math.Sqrt(2*a) * sw

		b0 = a * ((a + 1) - (a-1)*cw + beta)
		b1 = 2 * a * ((a - 1) - (a+1)*cw)
		b2 = a * ((a + 1) - (a-1)*cw - beta)
		a0 = (a + 1) + (a-1)*cw + beta
		a1 = -2 * ((a - 1) + (a+1)*cw)
		a2 = (a + 1) + (a-1)*cw - beta
	case HighShelf:
		beta := math.Sqrt(2*a) * sw

		b0 = a * ((a + 1) + (a-1)*cw + beta)
		b1 = -2 * a * ((a - 1) + (a+1)*cw)
		b2 = a * ((a + 1) + (a-1)*cw - beta)
		a0 = (a + 1) - (a-1)*cw + beta
		a1 = 2 * ((a - 1) - (a+1)*cw)
		a2 = (a + 1) - (a-1)*cw - beta
	}

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity
	}

	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
	if !c.IsFinite() {
		return biquad.Identity
	}

	return c
}
