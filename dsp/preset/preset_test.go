package preset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryPresetsAreValid(t *testing.T) {
	names := map[string]bool{}
	for _, p := range Factory() {
		require.NoError(t, p.Validate(), p.Name)
		assert.False(t, names[p.Name], "duplicate %q", p.Name)
		names[p.Name] = true
	}

	_, ok := FactoryByName("wavefolder")
	assert.True(t, ok)
	_, ok = FactoryByName("missing")
	assert.False(t, ok)
}

func TestFactoryReturnsCopies(t *testing.T) {
	p, _ := FactoryByName("Crushed")
	p.Params[engine.ParamSampleRate] = 200

	again, _ := FactoryByName("Crushed")
	assert.Equal(t, 6.0, again.Params[engine.ParamSampleRate])
}

func TestLoad(t *testing.T) {
	doc := `
name: Test
description: folded
params:
  wf_base_wave: 16
  wf_fold: 0.5
  filter_type: 4
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Test", p.Name)
	assert.Equal(t, 0.5, p.Params[engine.ParamFold])

	params, err := p.Resolve()
	require.NoError(t, err)
	v, _ := params.Get(engine.ParamBaseWave)
	assert.Equal(t, 16.0, v)
	v, _ = params.Get(engine.ParamBitDepth)
	assert.Equal(t, 1024.0, v, "unset keys keep defaults")
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown key":  {doc: "name: x\nparams:\n  reverb: 1\n", want: engine.ErrUnknownParam},
		"out of range": {doc: "name: x\nparams:\n  wf_power: 4\n", want: engine.ErrOutOfRange},
		"no name":      {doc: "params:\n  wf_power: 0.1\n", want: ErrNoName},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Load(strings.NewReader("name: x\ncolour: red\n"))
	require.Error(t, err, "unknown document fields")

	_, err = Load(strings.NewReader("name: [unterminated"))
	require.Error(t, err)
}

func TestSaveLoadFile(t *testing.T) {
	p := savedPreset(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")

	require.NoError(t, p.SaveFile(path))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func savedPreset(t *testing.T) Preset {
	t.Helper()

	params := engine.DefaultParams()
	require.NoError(t, params.Set(engine.ParamHarmAmp, -0.75))

	return FromParams("Saved", params)
}

func TestSaveWritesSortedYAML(t *testing.T) {
	var buf bytes.Buffer
	p := Preset{Name: "S", Params: map[engine.ParamID]float64{
		engine.ParamFold:     0.25,
		engine.ParamBitDepth: 64,
	}}
	require.NoError(t, p.Save(&buf))

	out := buf.String()
	assert.Contains(t, out, "name: S")
	assert.Less(t, strings.Index(out, "bit_depth"), strings.Index(out, "wf_fold"))

	require.ErrorIs(t, Preset{}.Save(&buf), ErrNoName)
}

func TestApplyRebuildsEngine(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Prepare(core.WithChannels(1)))
	before := e.Snapshot()

	p, _ := FactoryByName("Warm Tape")
	require.NoError(t, Apply(e, p))
	assert.NotSame(t, before, e.Snapshot())
	assert.Equal(t, "Tanh", e.ShaperName())

	bad := Preset{Name: "bad", Params: map[engine.ParamID]float64{engine.ParamFold: 9}}
	snap := e.Snapshot()
	require.ErrorIs(t, Apply(e, bad), engine.ErrOutOfRange)
	assert.Same(t, snap, e.Snapshot(), "invalid presets are not applied")
}
