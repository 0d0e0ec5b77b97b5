package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-galois/dsp/core"
	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/preset"
)

// loadPreset resolves name against the factory set first, then as a file.
func loadPreset(name string) (preset.Preset, error) {
	if p, ok := preset.FactoryByName(name); ok {
		return p, nil
	}

	if _, err := os.Stat(name); err != nil {
		return preset.Preset{}, fmt.Errorf("unknown preset %q", name)
	}

	return preset.LoadFile(name)
}

// params resolves --preset then applies every --set override.
func (g *Globals) params() (engine.Params, error) {
	p := engine.DefaultParams()

	if g.Preset != "" {
		pr, err := loadPreset(g.Preset)
		if err != nil {
			return p, err
		}

		if p, err = pr.Resolve(); err != nil {
			return p, err
		}
	}

	overrides := make(map[engine.ParamID]float64, len(g.Set))
	for k, v := range g.Set {
		overrides[engine.ParamID(k)] = v
	}

	if err := p.SetValues(overrides); err != nil {
		return p, err
	}

	return p, nil
}

// newEngine builds a prepared engine for the given stream layout.
func (g *Globals) newEngine(e *env, sampleRate float64, channels, blockSize int) (*engine.Engine, error) {
	p, err := g.params()
	if err != nil {
		return nil, err
	}

	eng := engine.New(
		engine.WithParams(p),
		engine.WithLogger(e.logger),
		engine.WithCurveResolution(g.Resolution),
	)

	err = eng.Prepare(
		core.WithSampleRate(sampleRate),
		core.WithChannels(channels),
		core.WithMaxBlockSize(blockSize),
	)
	if err != nil {
		return nil, err
	}

	return eng, nil
}
