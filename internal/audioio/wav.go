// Package audioio reads and writes PCM WAV files as planar float32 clips.
package audioio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f32"
)

const (
	chunkFrames = 4096
	pcmFormat   = 1
)

var (
	// ErrInvalidFile is returned when the input is not a RIFF/WAVE stream.
	ErrInvalidFile = errors.New("audioio: invalid WAV file")
	// ErrUnsupportedFormat is returned for non-PCM data or bit depths other
	// than 16, 24 and 32.
	ErrUnsupportedFormat = errors.New("audioio: unsupported WAV format")
	// ErrEmptyClip is returned when encoding a clip without channels.
	ErrEmptyClip = errors.New("audioio: clip has no channels")
)

// Clip is decoded audio, one slice per channel, samples in [-1, 1].
type Clip struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float32
}

// NewClip allocates a silent clip.
func NewClip(sampleRate, bitDepth, channels, frames int) *Clip {
	c := &Clip{SampleRate: sampleRate, BitDepth: bitDepth, Channels: make([][]float32, channels)}
	for i := range c.Channels {
		c.Channels[i] = make([]float32, frames)
	}

	return c
}

// Frames returns the length of the shortest channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}

	n := len(c.Channels[0])
	for _, ch := range c.Channels[1:] {
		n = min(n, len(ch))
	}

	return n
}

// fullScale is the integer magnitude that maps to 1.0.
func fullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float32(int64(1)<<(bitDepth-1) - 1), nil
	default:
		return 0, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, bitDepth)
	}
}

// Decode reads a whole PCM WAV stream.
func Decode(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	format := dec.Format()
	bitDepth := int(dec.BitDepth)

	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	numCh := format.NumChannels
	if numCh < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, numCh)
	}

	clip := &Clip{SampleRate: format.SampleRate, BitDepth: bitDepth, Channels: make([][]float32, numCh)}
	buf := &audio.IntBuffer{Data: make([]int, chunkFrames*numCh), Format: format}
	tmp := make([]float32, chunkFrames)

	for {
		buf.Data = buf.Data[:cap(buf.Data)]

		n, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("audioio: read PCM: %w", err)
		}

		frames := n / numCh
		if frames == 0 {
			break
		}

		for ch := range numCh {
			for i := range frames {
				tmp[i] = float32(buf.Data[i*numCh+ch])
			}

			f32.Scale(tmp[:frames], tmp[:frames], 1/scale)
			clip.Channels[ch] = append(clip.Channels[ch], tmp[:frames]...)
		}
	}

	return clip, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audioio: %w", err)
	}
	defer f.Close()

	clip, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}

// Encode writes c as integer PCM. Samples are clamped to [-1, 1]; channels
// longer than the shortest are truncated.
func Encode(w io.WriteSeeker, c *Clip) error {
	numCh := len(c.Channels)
	if numCh == 0 {
		return ErrEmptyClip
	}

	scale, err := fullScale(c.BitDepth)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, c.SampleRate, c.BitDepth, numCh, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numCh, SampleRate: c.SampleRate},
		Data:           make([]int, chunkFrames*numCh),
		SourceBitDepth: c.BitDepth,
	}
	tmp := make([]float32, chunkFrames)
	pair := make([]float32, 2*chunkFrames)

	total := c.Frames()
	for start := 0; start < total; start += chunkFrames {
		frames := min(chunkFrames, total-start)
		buf.Data = buf.Data[:frames*numCh]

		if numCh == 2 {
			f32.Interleave2(pair[:2*frames], c.Channels[0][start:start+frames], c.Channels[1][start:start+frames])
			quantize(buf.Data, pair[:2*frames], scale)
		} else {
			for ch := range numCh {
				copy(tmp, c.Channels[ch][start:start+frames])
				quantizeStrided(buf.Data[ch:], tmp[:frames], numCh, scale)
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("audioio: write PCM: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audioio: finalize WAV: %w", err)
	}

	return nil
}

// WriteFile encodes c to a new file at path.
func WriteFile(path string, c *Clip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audioio: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, c)
}

func quantize(dst []int, src []float32, scale float32) {
	quantizeStrided(dst, src, 1, scale)
}

func quantizeStrided(dst []int, src []float32, stride int, scale float32) {
	limit := int(scale)
	if scale >= 1<<31 {
		limit = 1<<31 - 1
	}

	f32.Scale(src, src, scale)

	for i, v := range src {
		dst[i*stride] = core.ClampInt(int(v), -limit, limit)
	}
}
