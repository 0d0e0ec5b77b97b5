// Package ui provides the Bubbletea knob panel used while monitoring.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/preset"
)

const (
	fineSteps   = 100
	coarseScale = 10
)

// Target is the engine surface the panel edits.
type Target interface {
	ParameterChanged(id engine.ParamID, value float64) error
	Params() engine.Params
	Snapshot() *engine.Snapshot
}

// Model is the Bubbletea model for the knob panel. Every edit runs on the
// Bubbletea goroutine and goes through Target.ParameterChanged.
type Model struct {
	target Target
	specs  []engine.ParamSpec
	cursor int

	// Position reports played frames; nil hides the transport line.
	Position   func() int64
	SampleRate float64

	// PresetPath is where the save key writes; empty disables saving.
	PresetPath string

	Status string
	Err    error
	Done   bool
	Width  int
	Height int
}

// NewModel returns a panel editing t.
func NewModel(t Target) Model {
	return Model{
		target: t,
		specs:  engine.Specs(),
	}
}

// Selected returns the parameter under the cursor.
func (m Model) Selected() engine.ParamSpec {
	return m.specs[m.cursor]
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		if m.Done {
			return m, nil
		}

		return m, tick()

	case PlaybackDoneMsg:
		m.Done = true
		m.Err = msg.Err
		if msg.Err == nil {
			m.Status = "playback finished"
		}

	case PresetSavedMsg:
		m.Err = msg.Err
		if msg.Err == nil {
			m.Status = "saved " + msg.Path
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		m.cursor = (m.cursor + len(m.specs) - 1) % len(m.specs)

	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.specs)

	case "right", "l":
		m = m.nudge(1)

	case "left", "h":
		m = m.nudge(-1)

	case "shift+right", "L":
		m = m.nudge(coarseScale)

	case "shift+left", "H":
		m = m.nudge(-coarseScale)

	case "r":
		m = m.set(m.Selected().Default)

	case "s":
		if m.PresetPath == "" {
			m.Status = "no preset path"
			return m, nil
		}

		return m, savePreset(m.PresetPath, m.target.Params())
	}

	return m, nil
}

// step returns the fine increment of spec.
func step(spec engine.ParamSpec) float64 {
	if spec.Integer {
		return 1
	}

	return (spec.Max - spec.Min) / fineSteps
}

func (m Model) nudge(steps float64) Model {
	spec := m.Selected()
	p := m.target.Params()
	v, _ := p.Get(spec.ID)

	return m.set(v + steps*step(spec))
}

func (m Model) set(v float64) Model {
	spec := m.Selected()
	v = spec.Clamp(v)

	if err := m.target.ParameterChanged(spec.ID, v); err != nil {
		m.Err = err
		return m
	}

	m.Err = nil
	m.Status = fmt.Sprintf("%s = %s", spec.ID, formatValue(spec, v))

	return m
}

func savePreset(path string, p engine.Params) tea.Cmd {
	return func() tea.Msg {
		err := preset.FromParams("Live", p).SaveFile(path)
		return PresetSavedMsg{Path: path, Err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	return renderPanel(m)
}
