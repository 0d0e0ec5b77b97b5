package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-galois/internal/audioio"
	"github.com/cwbudde/algo-galois/internal/playback"
	"github.com/cwbudde/algo-galois/internal/ui"
)

const pollInterval = 50 * time.Millisecond

// PlayCmd monitors a file through the sound card.
type PlayCmd struct {
	Input  string        `arg:"" type:"existingfile" help:"Input WAV file."`
	Loop   bool          `help:"Loop the input."`
	NoUI   bool          `name:"no-ui" help:"Play without the knob panel."`
	Buffer time.Duration `default:"40ms" help:"Device buffer length."`
	Save   string        `help:"Preset file written by the panel's save key."`
}

func (c *PlayCmd) Run(g *Globals, e *env) error {
	clip, err := audioio.ReadFile(c.Input)
	if err != nil {
		return err
	}

	eng, err := g.newEngine(e, float64(clip.SampleRate), len(clip.Channels), defaultBlockSize)
	if err != nil {
		return err
	}

	stream, err := playback.NewStream(eng, clip, c.Loop)
	if err != nil {
		return err
	}

	// The driver may ask for up to two device buffers per read.
	stream.Reserve(2 * playback.BufferFrames(clip.SampleRate, c.Buffer))

	player, err := playback.Open(clip.SampleRate, len(clip.Channels), c.Buffer)
	if err != nil {
		return err
	}
	defer player.Close()

	player.Play(stream)
	e.logger.Debug("playback started", "input", c.Input, "loop", c.Loop)

	if c.NoUI {
		return wait(player)
	}

	m := ui.NewModel(eng)
	m.Position = stream.Played
	m.SampleRate = float64(clip.SampleRate)
	m.PresetPath = c.Save

	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		p.Send(ui.PlaybackDoneMsg{Err: wait(player)})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

// wait blocks until the player drains or the device reports an error.
func wait(player *playback.Player) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := player.Err(); err != nil {
			return err
		}

		if !player.IsPlaying() {
			return nil
		}
	}

	return nil
}
