package main

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/preset"
	"github.com/cwbudde/algo-galois/dsp/waveshape"
	"github.com/cwbudde/algo-galois/internal/audioio"
	"github.com/cwbudde/algo-galois/internal/cli"
	"github.com/cwbudde/algo-galois/measure/thd"
)

const defaultBlockSize = 1024

// ShapersCmd lists the catalog.
type ShapersCmd struct{}

func (c *ShapersCmd) Run(g *Globals, e *env) error {
	p, err := g.params()
	if err != nil {
		return err
	}

	active := waveshape.ShapeIdentity
	if v, ok := p.Get(engine.ParamBaseWave); ok {
		active = waveshape.Shape(int(v))
	}

	cli.PrintShapers(e.out, active)

	return nil
}

// ParamsCmd lists the resolved parameters.
type ParamsCmd struct{}

func (c *ParamsCmd) Run(g *Globals, e *env) error {
	p, err := g.params()
	if err != nil {
		return err
	}

	cli.PrintParams(e.out, p)

	return nil
}

// CurveCmd plots the transfer curve.
type CurveCmd struct {
	Width  int `default:"61" help:"Plot width in characters."`
	Height int `default:"21" help:"Plot height in characters."`
}

func (c *CurveCmd) Run(g *Globals, e *env) error {
	eng, err := g.newEngine(e, g.SampleRate, 1, defaultBlockSize)
	if err != nil {
		return err
	}

	s := eng.Snapshot()

	fmt.Fprintln(e.out, cli.TitleStyle.Render(s.ShaperName()))
	fmt.Fprintln(e.out, cli.PlotCurve(s.Curve(), c.Width, c.Height))
	cli.PrintSnapshot(e.out, s)
	fmt.Fprintln(e.out)
	cli.PrintResponse(e.out, s.Coeffs, s.SampleRate)

	return nil
}

// RenderCmd processes a file offline.
type RenderCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input WAV file."`
	Output string `arg:"" help:"Output WAV file."`
	Bits   int    `default:"0" help:"Output bit depth (16, 24, 32); 0 keeps the input depth."`
	Block  int    `default:"1024" help:"Processing block size."`
}

func (c *RenderCmd) Run(g *Globals, e *env) error {
	start := time.Now()

	clip, err := audioio.ReadFile(c.Input)
	if err != nil {
		return err
	}

	eng, err := g.newEngine(e, float64(clip.SampleRate), len(clip.Channels), c.Block)
	if err != nil {
		return err
	}

	if err := eng.Process(clip.Channels); err != nil {
		return err
	}

	if c.Bits != 0 {
		clip.BitDepth = c.Bits
	}

	if err := audioio.WriteFile(c.Output, clip); err != nil {
		return err
	}

	e.logger.Info("rendered",
		"input", c.Input,
		"output", c.Output,
		"frames", clip.Frames(),
		"channels", len(clip.Channels),
		"shaper", eng.ShaperName(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return nil
}

// AnalyzeCmd runs the harmonic analysis of the remap curve.
type AnalyzeCmd struct {
	FFTSize   int     `name:"fft-size" default:"4096" help:"Analysis frame length, power of two."`
	Bin       int     `default:"16" help:"Cycles of the test sine per frame."`
	Amplitude float64 `default:"1" help:"Peak of the test sine."`
	Harmonics int     `default:"15" help:"Highest harmonic evaluated."`
	Floor     float64 `default:"-90" help:"Hide harmonics below this level in dB."`
}

func (c *AnalyzeCmd) Run(g *Globals, e *env) error {
	eng, err := g.newEngine(e, g.SampleRate, 1, defaultBlockSize)
	if err != nil {
		return err
	}

	s := eng.Snapshot()

	res, err := thd.AnalyzeRemap(&s.Remap, thd.Config{
		FFTSize:        c.FFTSize,
		FundamentalBin: c.Bin,
		Amplitude:      c.Amplitude,
		MaxHarmonics:   c.Harmonics,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, cli.TitleStyle.Render(s.ShaperName()))
	cli.PrintTHD(e.out, res, c.Floor)

	return nil
}

// PresetCmd groups the preset commands.
type PresetCmd struct {
	List PresetListCmd `cmd:"" help:"List factory presets."`
	Show PresetShowCmd `cmd:"" help:"Print a preset as YAML."`
	Save PresetSaveCmd `cmd:"" help:"Save the resolved parameters as a preset file."`
}

// PresetListCmd lists the factory presets.
type PresetListCmd struct{}

func (c *PresetListCmd) Run(e *env) error {
	for _, p := range preset.Factory() {
		cli.PrintKV(e.out, p.Name, p.Description)
	}

	return nil
}

// PresetShowCmd prints one preset.
type PresetShowCmd struct {
	Name string `arg:"" help:"Factory preset name or preset file."`
}

func (c *PresetShowCmd) Run(e *env) error {
	p, err := loadPreset(c.Name)
	if err != nil {
		return err
	}

	return p.Save(e.out)
}

// PresetSaveCmd writes the resolved parameters.
type PresetSaveCmd struct {
	Path        string `arg:"" help:"Destination file."`
	Name        string `default:"User" help:"Preset name."`
	Description string `help:"Preset description."`
}

func (c *PresetSaveCmd) Run(g *Globals, e *env) error {
	params, err := g.params()
	if err != nil {
		return err
	}

	p := preset.FromParams(c.Name, params)
	p.Description = c.Description

	if err := p.SaveFile(c.Path); err != nil {
		return err
	}

	e.logger.Info("preset saved", "path", c.Path, "name", c.Name)

	return nil
}
