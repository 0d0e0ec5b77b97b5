//go:build !amd64 || purego

package biquad

import (
	_ "github.com/cwbudde/algo-galois/dsp/filter/biquad/internal/arch/generic"
)
