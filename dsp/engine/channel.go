package engine

import (
	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/filter/biquad"
	"github.com/cwbudde/algo-galois/dsp/remap"
	"github.com/cwbudde/algo-vecmath"
)

// channelState is the per-channel slice of the arena.
type channelState struct {
	counter int
	held    float64
	filter  biquad.State
}

func (c *channelState) reset() {
	*c = channelState{}
}

// arena owns every buffer the audio path touches. It is sized once by
// Prepare and never grows.
type arena struct {
	channels []channelState

	dry  []float64
	wet  []float64
	filt []float64
}

func newArena(channels, blockSize int) *arena {
	return &arena{
		channels: make([]channelState, channels),
		dry:      make([]float64, blockSize),
		wet:      make([]float64, blockSize),
		filt:     make([]float64, blockSize),
	}
}

// processChunk runs the chain over buf, which is at most len(a.wet) long.
func (a *arena) processChunk(s *Snapshot, ch *channelState, buf []float32) {
	n := len(buf)
	dry := a.dry[:n]
	wet := a.wet[:n]
	filt := a.filt[:n]

	for i, x32 := range buf {
		x := float64(x32)
		dry[i] = x

		ch.counter++
		if ch.counter >= s.Divider {
			ch.counter = 0
			ch.held = x
		} else {
			x = ch.held
		}

		wet[i] = x * s.InputGain
	}

	if s.FilterPre {
		applyFilter(s, ch, wet, filt)
	}

	for i, v := range wet {
		wet[i] = remap.Remap(v, &s.Remap)
	}

	if !s.FilterPre {
		applyFilter(s, ch, wet, filt)
	}

	// (dry·sign·|dry| + wet·(1-|dry|)) / 2
	vecmath.ScaleBlockInPlace(wet, (1-s.DryAbs)*0.5)
	vecmath.ScaleBlock(filt, dry, s.DrySign*s.DryAbs*0.5)
	vecmath.AddBlockInPlace(wet, filt)

	vecmath.ScaleBlockInPlace(wet, s.OutputGain*outputAttenuation)

	storeClamped(buf, wet)
}

// storeClamped writes wet into buf limited to [-1, 1]. Non-finite samples
// become silence.
func storeClamped(buf []float32, wet []float64) {
	for i, v := range wet {
		if !core.IsFinite(v) {
			v = 0
		}
		buf[i] = core.Clamp32(float32(v), -1, 1)
	}
}

// applyFilter replaces wet with (filtered·blend + wet·(1-blend)) / 2.
// The filter history advances even at blend 0.
func applyFilter(s *Snapshot, ch *channelState, wet, filt []float64) {
	copy(filt, wet)
	ch.filter.ProcessBlock(&s.Coeffs, filt)

	vecmath.ScaleBlockInPlace(filt, s.FilterBlend*0.5)
	vecmath.ScaleBlockInPlace(wet, (1-s.FilterBlend)*0.5)
	vecmath.AddBlockInPlace(wet, filt)
}
