package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/preset"
	"github.com/cwbudde/algo-galois/internal/audioio"
	"github.com/cwbudde/algo-galois/internal/testutil"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errb bytes.Buffer
	err := run(args, &out, &errb)

	return out.String(), errb.String(), err
}

func writeClip(t *testing.T, channels, frames int) string {
	t.Helper()

	c := audioio.NewClip(44100, 16, channels, frames)
	for ch := range c.Channels {
		c.Channels[ch] = testutil.Sine32(440*float64(ch+1), 44100, 0.5, frames)
	}

	path := filepath.Join(t.TempDir(), "in.wav")
	require.NoError(t, audioio.WriteFile(path, c))

	return path
}

func TestShapersMarksActive(t *testing.T) {
	out, _, err := runArgs(t, "shapers", "--set", "wf_base_wave=2")
	require.NoError(t, err)
	assert.Contains(t, out, "Tanh  *")
	assert.Contains(t, out, "Cubic")
}

func TestParamsAppliesPreset(t *testing.T) {
	out, _, err := runArgs(t, "params", "--preset", "warm tape")
	require.NoError(t, err)
	assert.Contains(t, out, "filter_cutoff")
	assert.Contains(t, out, "9.500")
}

func TestCurve(t *testing.T) {
	out, _, err := runArgs(t, "curve", "--set", "wf_base_wave=4", "--width", "21", "--height", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Sine")
	assert.Contains(t, out, "Hz")
}

func TestRenderNeutral(t *testing.T) {
	in := writeClip(t, 2, 2000)
	outPath := filepath.Join(t.TempDir(), "out.wav")

	_, logs, err := runArgs(t, "render", in, outPath, "--bits", "24", "--set", "bit_depth=2", "--block", "100")
	require.NoError(t, err)
	assert.Contains(t, logs, "rendered")

	src, err := audioio.ReadFile(in)
	require.NoError(t, err)

	got, err := audioio.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, 24, got.BitDepth)
	assert.Equal(t, 44100, got.SampleRate)
	require.Len(t, got.Channels, 2)
	require.Equal(t, 2000, got.Frames())

	const gain = 0.5 * 0.5 * 0.7
	for ch := range src.Channels {
		for i := range src.Channels[ch] {
			require.InDelta(t, gain*src.Channels[ch][i], got.Channels[ch][i], 1e-4)
		}
	}
}

func TestRenderMatchesEngine(t *testing.T) {
	in := writeClip(t, 1, 3000)
	outPath := filepath.Join(t.TempDir(), "out.wav")

	args := []string{"render", in, outPath, "--preset", "Crushed", "--bits", "32"}
	_, _, err := runArgs(t, args...)
	require.NoError(t, err)

	want, err := audioio.ReadFile(in)
	require.NoError(t, err)

	p, ok := preset.FactoryByName("Crushed")
	require.True(t, ok)

	params, err := p.Resolve()
	require.NoError(t, err)

	e := engine.New(engine.WithParams(params))
	require.NoError(t, e.Prepare(core.WithSampleRate(float64(want.SampleRate)), core.WithChannels(1)))
	require.NoError(t, e.Process(want.Channels))

	got, err := audioio.ReadFile(outPath)
	require.NoError(t, err)

	for i := range want.Channels[0] {
		require.InDelta(t, want.Channels[0][i], got.Channels[0][i], 1e-6, "frame %d", i)
	}
}

func TestAnalyzeIdentity(t *testing.T) {
	out, _, err := runArgs(t, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Identity")
	assert.Contains(t, out, "0.00%")
}

func TestAnalyzeInvalidFFTSize(t *testing.T) {
	_, _, err := runArgs(t, "analyze", "--fft-size", "1000")
	require.Error(t, err)
}

func TestPresetCommands(t *testing.T) {
	out, _, err := runArgs(t, "preset", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Warm Tape")
	assert.Contains(t, out, "Telephone")

	out, _, err = runArgs(t, "preset", "show", "wavefolder")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Wavefolder")

	path := filepath.Join(t.TempDir(), "mine.yaml")
	_, _, err = runArgs(t, "preset", "save", path, "--name", "Mine", "--set", "wf_fold=0.5")
	require.NoError(t, err)

	p, err := preset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mine", p.Name)
	assert.Equal(t, 0.5, p.Params[engine.ParamFold])

	out, _, err = runArgs(t, "params", "--preset", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0.500")
}

func TestErrors(t *testing.T) {
	_, _, err := runArgs(t, "params", "--set", "nope=1")
	require.ErrorIs(t, err, engine.ErrUnknownParam)

	_, _, err = runArgs(t, "params", "--set", "wf_fold=3")
	require.ErrorIs(t, err, engine.ErrOutOfRange)

	_, _, err = runArgs(t, "params", "--preset", "does not exist")
	require.ErrorContains(t, err, "unknown preset")

	_, _, err = runArgs(t, "render", filepath.Join(t.TempDir(), "missing.wav"), "out.wav")
	require.Error(t, err)

	_, _, err = runArgs(t, "bogus")
	require.Error(t, err)
}
