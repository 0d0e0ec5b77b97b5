package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.value, tt.min, tt.max))
		})
	}
}

func TestClamp32AndInt(t *testing.T) {
	assert.Equal(t, float32(1), Clamp32(1.5, -1, 1))
	assert.Equal(t, float32(-1), Clamp32(-3, -1, 1))
	assert.Equal(t, float32(0.25), Clamp32(0.25, -1, 1))
	assert.Equal(t, 1023, ClampInt(1024, 0, 1023))
	assert.Equal(t, 0, ClampInt(-5, 0, 1023))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.3))
	assert.Equal(t, 1.0, Sign(2))
	assert.Equal(t, 0.0, Sign(0))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.0+1e-13, 1e-12))
	assert.False(t, NearlyEqual(1.0, 1.1, 1e-3))
}

func TestDBConversions(t *testing.T) {
	db := LinearToDB(DBToLinear(-6))
	assert.InDelta(t, -6, db, 1e-10)
	assert.True(t, math.IsInf(LinearToDB(0), -1))
	assert.True(t, math.IsNaN(LinearToDB(-1)))
}

func TestFlushDenormals(t *testing.T) {
	assert.Equal(t, 0.0, FlushDenormals(1e-35))
	assert.Equal(t, 1e-3, FlushDenormals(1e-3))
}
