//go:build galoisdebug

package waveshape

import "fmt"

// resolve fails fast on an out-of-catalog index in debug builds.
func resolve(s Shape) Shape {
	if !s.Valid() {
		panic(fmt.Sprintf("waveshape: shape index out of range: %d", int(s)))
	}

	return s
}
