//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-galois/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 2x-unrolled scalar kernel selected for AVX2-capable CPUs.
// The finiteness check runs once per pair; a bad pair is redone one sample
// at a time.
func processBlock(c registry.Coefficients, st registry.State, buf []float64) registry.State {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := st.X1, st.X2, st.Y1, st.Y2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		xa := buf[i]
		ya := b0*xa + b1*x1 + b2*x2 - a1*y1 - a2*y2

		xb := buf[i+1]
		yb := b0*xb + b1*xa + b2*x1 - a1*ya - a2*y1

		if ya-ya != 0 || yb-yb != 0 {
			break
		}

		x2, x1 = xa, xb
		y2, y1 = ya, yb
		buf[i] = ya
		buf[i+1] = yb
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		if y-y != 0 {
			x1, x2, y1, y2 = 0, 0, 0, 0
			buf[i] = 0

			continue
		}

		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
