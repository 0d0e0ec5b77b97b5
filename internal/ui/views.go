package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/internal/cli"
)

const (
	gaugeWidth  = 20
	plotWidth   = 33
	plotHeight  = 13
	labelWidth  = 20
	minWideView = 90
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	gaugeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	helpLine    = "↑/↓ select  ←/→ adjust  shift+←/→ coarse  r reset  s save  q quit"
)

func renderPanel(m Model) string {
	snap := m.target.Snapshot()

	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("Galois") + "  " + mutedStyle.Render(snap.ShaperName()))
	b.WriteString("\n\n")

	knobs := renderKnobs(m)
	plot := cli.PlotCurve(snap.Curve(), plotWidth, plotHeight)

	if m.Width == 0 || m.Width >= minWideView {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, knobs, "  ", plot))
	} else {
		b.WriteString(knobs + "\n" + plot)
	}

	b.WriteString("\n")
	b.WriteString(renderStatus(m))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(helpLine))

	return b.String()
}

func renderKnobs(m Model) string {
	p := m.target.Params()

	var b strings.Builder

	for i, spec := range m.specs {
		v, _ := p.Get(spec.ID)
		line := fmt.Sprintf("%-*s %s %8s", labelWidth, spec.Label, gauge(spec, v), formatValue(spec, v))

		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}

		b.WriteString("\n")
	}

	return b.String()
}

func renderStatus(m Model) string {
	var parts []string

	if m.Position != nil && m.SampleRate > 0 {
		played := time.Duration(float64(m.Position()) / m.SampleRate * float64(time.Second))
		parts = append(parts, "▶ "+played.Truncate(100*time.Millisecond).String())
	}

	if m.Err != nil {
		parts = append(parts, cli.ErrorStyle.Render("Error: "+m.Err.Error()))
	} else if m.Status != "" {
		parts = append(parts, m.Status)
	}

	return strings.Join(parts, "  ")
}

// gauge draws v as a bar across the parameter range.
func gauge(spec engine.ParamSpec, v float64) string {
	frac := 0.0
	if spec.Max > spec.Min {
		frac = (v - spec.Min) / (spec.Max - spec.Min)
	}

	filled := int(frac*gaugeWidth + 0.5)
	filled = min(max(filled, 0), gaugeWidth)

	return gaugeStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", gaugeWidth-filled)
}

func formatValue(spec engine.ParamSpec, v float64) string {
	if spec.Integer {
		return fmt.Sprintf("%d", int(v))
	}

	return fmt.Sprintf("%.3f", v)
}
