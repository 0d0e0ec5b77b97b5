package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-galois/dsp/core"
)

// DefaultCurveResolution is the number of points in the display curve.
const DefaultCurveResolution = 512

var (
	// ErrNotPrepared is returned by Process before the first Prepare.
	ErrNotPrepared = errors.New("engine: not prepared")
	// ErrChannelCount is returned by Process when the block does not have
	// the prepared number of channels.
	ErrChannelCount = errors.New("engine: channel count mismatch")
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the control-path logger. Process never logs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCurveResolution sets the number of display curve points.
func WithCurveResolution(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.curveLen = n
		}
	}
}

// WithParams sets the initial parameters.
func WithParams(p Params) Option {
	return func(e *Engine) {
		e.params = p
	}
}

// Engine owns the parameter set, the published snapshot and the channel
// arena.
//
// Control methods (Prepare, Rebuild, ParameterChanged, SetParams) are safe
// for concurrent use with each other and with Process. Process and Reset
// run on the audio goroutine; Prepare must not overlap them.
type Engine struct {
	mu       sync.Mutex
	params   Params
	cfg      core.ProcessorConfig
	curveLen int
	logger   *slog.Logger

	snap  atomic.Pointer[Snapshot]
	arena *arena
}

// New returns an engine with default parameters and a published snapshot
// for the default configuration. Call Prepare before Process.
func New(opts ...Option) *Engine {
	e := &Engine{
		params:   DefaultParams(),
		cfg:      core.DefaultProcessorConfig(),
		curveLen: DefaultCurveResolution,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	e.mu.Lock()
	e.rebuildLocked()
	e.mu.Unlock()

	return e
}

// Prepare fixes the stream format, allocates the channel arena and
// rebuilds. It resets all channel state.
func (e *Engine) Prepare(opts ...core.ProcessorOption) error {
	cfg := core.ApplyProcessorOptions(opts...)
	if cfg.Channels < 1 {
		return fmt.Errorf("engine: invalid channel count: %d", cfg.Channels)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg = cfg
	e.arena = newArena(cfg.Channels, cfg.MaxBlockSize)
	e.rebuildLocked()

	e.logger.Debug("engine prepared",
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"max_block", cfg.MaxBlockSize)

	return nil
}

// Config returns the configuration of the last Prepare, or the default
// before it.
func (e *Engine) Config() core.ProcessorConfig {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cfg
}

// Rebuild derives a fresh snapshot from the current parameters and
// publishes it. It is idempotent.
func (e *Engine) Rebuild() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebuildLocked()
}

func (e *Engine) rebuildLocked() {
	s := buildSnapshot(&e.params, e.cfg.SampleRate, e.curveLen)
	e.snap.Store(s)

	e.logger.Debug("snapshot published",
		"shaper", s.shaperName,
		"cutoff_hz", s.Cutoff,
		"filter", s.FilterType.String())
}

// ParameterChanged stores value under id and rebuilds. An unknown key or
// an out-of-range value leaves the parameters unchanged, still rebuilds
// and returns the error.
func (e *Engine) ParameterChanged(id ParamID, value float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.params.Set(id, value)
	if err != nil {
		e.logger.Debug("parameter rejected", "id", string(id), "value", value, "err", err)
	}

	e.rebuildLocked()

	return err
}

// SetParams replaces every parameter and rebuilds.
func (e *Engine) SetParams(p Params) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.params = p
	e.rebuildLocked()
}

// Params returns a copy of the current parameters.
func (e *Engine) Params() Params {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.params
}

// Snapshot returns the published snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// Curve returns the display curve of the published snapshot. The slice is
// shared and must not be modified.
func (e *Engine) Curve() []float64 {
	return e.snap.Load().Curve()
}

// ShaperName returns the name of the active waveshaper.
func (e *Engine) ShaperName() string {
	return e.snap.Load().ShaperName()
}

// Process transforms block in place. block holds one slice per channel;
// channels may differ in length. Process does not lock or allocate.
func (e *Engine) Process(block [][]float32) error {
	a := e.arena
	if a == nil {
		return ErrNotPrepared
	}

	if len(block) != len(a.channels) {
		return ErrChannelCount
	}

	s := e.snap.Load()
	chunk := len(a.wet)

	for c, buf := range block {
		ch := &a.channels[c]
		for len(buf) > 0 {
			n := min(len(buf), chunk)
			a.processChunk(s, ch, buf[:n])
			buf = buf[n:]
		}
	}

	return nil
}

// Reset clears hold registers and filter history on every channel.
func (e *Engine) Reset() {
	if e.arena == nil {
		return
	}

	for i := range e.arena.channels {
		e.arena.channels[i].reset()
	}
}
