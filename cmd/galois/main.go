package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-galois/internal/cli"
)

var version = "0.1.0"

// Globals are the flags shared by every command.
type Globals struct {
	Preset     string             `short:"p" help:"Factory preset name or preset file."`
	Set        map[string]float64 `short:"s" help:"Override a parameter, key=value. Repeatable."`
	SampleRate float64            `name:"sample-rate" default:"48000" help:"Sample rate for curve and analyze."`
	Resolution int                `name:"curve-resolution" default:"512" help:"Points in the display curve."`
	Verbose    bool               `short:"v" help:"Debug logging on stderr."`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version information."`

	Shapers ShapersCmd `cmd:"" help:"List the waveshaper catalog."`
	Params  ParamsCmd  `cmd:"" help:"List every parameter with its range."`
	Curve   CurveCmd   `cmd:"" help:"Plot the transfer curve and filter response."`
	Render  RenderCmd  `cmd:"" help:"Process a WAV file."`
	Analyze AnalyzeCmd `cmd:"" help:"Measure the harmonics the curve adds to a sine."`
	Preset  PresetCmd  `cmd:"" help:"List, show and save presets."`
	Play    PlayCmd    `cmd:"" help:"Monitor a WAV file live with a knob panel."`
}

// env carries the command outputs.
type env struct {
	out    io.Writer
	logger *slog.Logger
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var c CLI

	parser, err := kong.New(&c,
		kong.Name("galois"),
		kong.Description("Waveshaping distortion toolkit"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Help(cli.StyledHelpPrinter("Galois", "Waveshaping distortion toolkit")),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}

	e := &env{
		out:    stdout,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	if err := ctx.Run(&c.Globals, e); err != nil {
		return fmt.Errorf("%s: %w", ctx.Command(), err)
	}

	return nil
}
