//go:build !headless

package playback

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// DefaultBufferSize is the device buffer requested from the driver.
const DefaultBufferSize = 40 * time.Millisecond

// Player owns the audio device. Only one Player may be opened per process.
type Player struct {
	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// Open initializes the audio device for float32 output and waits until it
// is ready.
func Open(sampleRate, channels int, bufferSize time.Duration) (*Player, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("playback: open device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Play starts pulling frames from r, replacing any current source.
func (p *Player) Play(r io.Reader) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player != nil {
		_ = p.player.Close()
	}

	p.player = p.ctx.NewPlayer(r)
	p.player.Play()
}

// IsPlaying reports whether the current source is still producing audio.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.player != nil && p.player.IsPlaying()
}

// Err returns the first device error, if any.
func (p *Player) Err() error {
	return p.ctx.Err()
}

// Close stops playback.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player == nil {
		return nil
	}

	err := p.player.Close()
	p.player = nil

	return err
}
