// Package playback streams a clip through the engine to the sound card.
package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/internal/audioio"
	"github.com/tphakala/simd/f32"
)

const bytesPerSample = 4

// ErrEmptySource is returned by NewStream for a clip without frames.
var ErrEmptySource = errors.New("playback: source clip is empty")

// Stream is an io.Reader producing interleaved float32 little-endian
// frames: the source clip processed block by block through the engine.
//
// Read runs on the audio goroutine and takes no locks. Parameter changes
// go through the engine's control methods from any other goroutine.
type Stream struct {
	eng    *engine.Engine
	src    [][]float32
	frames int
	loop   bool

	pos    int
	planar [][]float32
	views  [][]float32
	pair   []float32

	played atomic.Int64
}

// NewStream wraps clip for playback through e. e must already be prepared
// for the clip's channel count.
func NewStream(e *engine.Engine, clip *audioio.Clip, loop bool) (*Stream, error) {
	frames := clip.Frames()
	if frames == 0 {
		return nil, ErrEmptySource
	}

	if got := e.Config().Channels; got != len(clip.Channels) {
		return nil, fmt.Errorf("%w: engine has %d, clip has %d", engine.ErrChannelCount, got, len(clip.Channels))
	}

	s := &Stream{
		eng:    e,
		src:    clip.Channels,
		frames: frames,
		loop:   loop,
		planar: make([][]float32, len(clip.Channels)),
		views:  make([][]float32, len(clip.Channels)),
	}
	s.grow(e.Config().MaxBlockSize)

	return s, nil
}

// BufferFrames converts a device buffer length to frames at sampleRate.
func BufferFrames(sampleRate int, d time.Duration) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}

// Reserve sizes the scratch buffers for reads of up to frames frames. Call
// it before handing the stream to a player; a later Read asking for more
// frames reallocates once on the audio goroutine.
func (s *Stream) Reserve(frames int) {
	if frames > len(s.planar[0]) {
		s.grow(frames)
	}
}

func (s *Stream) grow(frames int) {
	for ch := range s.planar {
		s.planar[ch] = make([]float32, frames)
	}

	s.pair = make([]float32, 2*frames)
}

// Played returns the number of frames delivered so far.
func (s *Stream) Played() int64 {
	return s.played.Load()
}

// Read fills p with whole frames. It returns io.EOF once a non-looping
// source is exhausted. Reads within the reserved size do not allocate.
func (s *Stream) Read(p []byte) (int, error) {
	numCh := len(s.planar)

	n := len(p) / (bytesPerSample * numCh)
	if n == 0 {
		return 0, nil
	}

	if !s.loop {
		if s.pos >= s.frames {
			return 0, io.EOF
		}

		n = min(n, s.frames-s.pos)
	}

	if n > len(s.planar[0]) {
		s.grow(n)
	}

	for ch := range s.planar {
		s.fill(s.planar[ch][:n], s.src[ch])
		s.views[ch] = s.planar[ch][:n]
	}

	s.advance(n)

	if err := s.eng.Process(s.views); err != nil {
		return 0, err
	}

	s.encode(p, n)
	s.played.Add(int64(n))

	return n * numCh * bytesPerSample, nil
}

func (s *Stream) fill(dst, src []float32) {
	pos := s.pos
	for off := 0; off < len(dst); {
		k := copy(dst[off:], src[pos:s.frames])
		off += k
		pos = 0
	}
}

func (s *Stream) advance(n int) {
	s.pos += n
	if s.loop {
		s.pos %= s.frames
	}
}

func (s *Stream) encode(p []byte, n int) {
	if len(s.views) == 2 {
		f32.Interleave2(s.pair[:2*n], s.views[0], s.views[1])

		for i, v := range s.pair[:2*n] {
			binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
		}

		return
	}

	numCh := len(s.views)
	for ch, view := range s.views {
		for i, v := range view {
			binary.LittleEndian.PutUint32(p[(i*numCh+ch)*bytesPerSample:], math.Float32bits(v))
		}
	}
}
