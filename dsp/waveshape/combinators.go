package waveshape

import "math"

// foldMargin keeps folded signals slightly inside [-1, 1].
const foldMargin = 0.95

// Scaler blends out into in, weighted by 2*(0.5 - ||in| - 0.5|).
func Scaler(in, out float64) float64 {
	return in + out*2*(0.5-math.Abs(math.Abs(in)-0.5))
}

// Expando scales in by |out|.
func Expando(in, out float64) float64 {
	return in * math.Abs(out)
}

// Fold reflects x around ±1 until it lies in [-1, 1], then scales by 0.95.
// |Fold(x)| <= 0.95 for every finite x.
func Fold(x float64) float64 {
	// Triangle wave with period 4 that is the identity on [-1, 1].
	t := math.Mod(x+1, 4)
	if t < 0 {
		t += 4
	}

	if t > 2 {
		t = 4 - t
	}

	return (t - 1) * foldMargin
}
