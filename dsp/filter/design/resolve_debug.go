//go:build galoisdebug

package design

import (
	"fmt"

	"github.com/cwbudde/algo-galois/dsp/filter/biquad"
)

// unknownType fails fast on an out-of-range filter type in debug builds.
func unknownType(t Type) biquad.Coefficients {
	panic(fmt.Sprintf("design: filter type out of range: %d", int(t)))
}
