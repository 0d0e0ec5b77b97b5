//go:build headless

package playback

import (
	"errors"
	"io"
	"time"
)

// DefaultBufferSize is the device buffer requested from the driver.
const DefaultBufferSize = 40 * time.Millisecond

// ErrUnavailable is returned by Open in headless builds.
var ErrUnavailable = errors.New("playback: audio output not compiled in (headless build)")

// Player is a stub in headless builds.
type Player struct{}

// Open always fails in headless builds.
func Open(int, int, time.Duration) (*Player, error) {
	return nil, ErrUnavailable
}

// Play is a no-op.
func (*Player) Play(io.Reader) {}

// IsPlaying always reports false.
func (*Player) IsPlaying() bool { return false }

// Err always returns nil.
func (*Player) Err() error { return nil }

// Close is a no-op.
func (*Player) Close() error { return nil }
