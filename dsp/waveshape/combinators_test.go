package waveshape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalerWindow(t *testing.T) {
	// No side signal at the extremes, full weight at |in| = 0.5.
	assert.Equal(t, 0.0, Scaler(0, 5))
	assert.Equal(t, 1.0, Scaler(1, 5))
	assert.Equal(t, -1.0, Scaler(-1, 5))
	assert.InDelta(t, 0.75, Scaler(0.5, 0.25), 1e-15)
	assert.InDelta(t, -0.25, Scaler(-0.5, 0.25), 1e-15)
}

func TestExpando(t *testing.T) {
	assert.Equal(t, 0.25, Expando(0.5, -0.5))
	assert.Equal(t, -0.25, Expando(-0.5, 0.5))
}

func TestFoldInsideRange(t *testing.T) {
	for _, x := range []float64{-1, -0.5, 0, 0.3, 1} {
		assert.InDelta(t, x*0.95, Fold(x), 1e-12)
	}
}

func TestFoldReflects(t *testing.T) {
	assert.InDelta(t, 0.5*0.95, Fold(1.5), 1e-12)
	assert.InDelta(t, -0.5*0.95, Fold(-1.5), 1e-12)
	assert.InDelta(t, 0, Fold(2), 1e-12)
	assert.InDelta(t, -1*0.95, Fold(3), 1e-12)
	assert.InDelta(t, 0, Fold(4), 1e-12)
}

func TestFoldEnvelope(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		x := float64(i) * 0.0137
		y := Fold(x)
		assert.LessOrEqual(t, math.Abs(y), 0.95+1e-12)

		// A folded value is already in range: folding again only rescales it.
		first := math.Abs(y - x)
		second := math.Abs(Fold(y) - y)
		assert.LessOrEqual(t, second, first+1e-12)
	}
}
