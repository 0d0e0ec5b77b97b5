package biquad

import (
	"sync"

	"github.com/cwbudde/algo-galois/dsp/core"
	archregistry "github.com/cwbudde/algo-galois/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function of one section, divided by a0.
//
//	y = B0*x + B1*x1 + B2*x2 - A1*y1 - A2*y2
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity passes every sample through unchanged.
var Identity = Coefficients{B0: 1}

// IsFinite reports whether every coefficient is a finite number.
func (c Coefficients) IsFinite() bool {
	return core.IsFinite(c.B0) && core.IsFinite(c.B1) && core.IsFinite(c.B2) && core.IsFinite(c.A1) && core.IsFinite(c.A2)
}

// State is the Direct Form I history of one channel.
type State struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Step filters one sample with c. A non-finite result clears the history
// and returns 0 so that a NaN never gets stuck in the feedback path.
func (st *State) Step(c *Coefficients, x float64) float64 {
	y := c.B0*x + c.B1*st.X1 + c.B2*st.X2 - c.A1*st.Y1 - c.A2*st.Y2
	if !core.IsFinite(y) {
		*st = State{}
		return 0
	}

	st.X2, st.X1 = st.X1, x
	st.Y2, st.Y1 = st.Y1, y

	return y
}

// ProcessBlock filters buf in place with c using the fastest registered
// kernel. Zero-alloc. Denormal feedback history is flushed to zero at the
// end of the block.
func (st *State) ProcessBlock(c *Coefficients, buf []float64) {
	if len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	out := processBlockImpl(archregistry.Coefficients(*c), archregistry.State(*st), buf)
	*st = State(out)
	st.Y1 = core.FlushDenormals(st.Y1)
	st.Y2 = core.FlushDenormals(st.Y2)
}

// Reset clears the history.
func (st *State) Reset() {
	*st = State{}
}

// Section couples coefficients with one history.
type Section struct {
	Coefficients
	State

	ready bool
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with c and zero history.
func NewSection(c Coefficients) *Section {
	s := &Section{}
	s.SetCoefficients(c)

	return s
}

// SetCoefficients replaces the coefficients and keeps the history, so a
// change mid-stream does not click but may ring briefly.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
	s.ready = true
}

// Ready reports whether coefficients have been set.
func (s *Section) Ready() bool {
	return s.ready
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	if !s.ready {
		return x
	}

	return s.Step(&s.Coefficients, x)
}

// ProcessBlock filters a block of samples in place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	if !s.ready {
		return
	}

	s.State.ProcessBlock(&s.Coefficients, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

func (s *Section) processBlockScalar(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}
