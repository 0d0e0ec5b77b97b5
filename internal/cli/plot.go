package cli

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// PlotCurve draws a transfer curve sampled across [-1, 1] into a width by
// height character grid, y spanning [-1, 1], framed with PlotStyle.
func PlotCurve(curve []float64, width, height int) string {
	rows := curveGrid(curve, width, height)
	body := strings.Join(rows, "\n")

	if len(curve) > 0 {
		body += "\n" + KeyStyle.Render(fmt.Sprintf("min %+.3f  max %+.3f", floats.Min(curve), floats.Max(curve)))
	}

	return PlotStyle.Render(body)
}

// curveGrid rasterizes curve. The axes cross at the centre; points outside
// [-1, 1] are pinned to the border rows.
func curveGrid(curve []float64, width, height int) []string {
	width = max(width, 3)
	height = max(height, 3)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	midRow, midCol := height/2, width/2
	for c := range width {
		grid[midRow][c] = '─'
	}

	for r := range height {
		grid[r][midCol] = '│'
	}

	grid[midRow][midCol] = '┼'

	if len(curve) > 0 {
		for c := range width {
			i := c * (len(curve) - 1) / (width - 1)
			grid[rowOf(curve[i], height)][c] = '•'
		}
	}

	out := make([]string, height)
	for r, row := range grid {
		out[r] = string(row)
	}

	return out
}

func rowOf(y float64, height int) int {
	r := int((1-y)/2*float64(height-1) + 0.5)
	return min(max(r, 0), height-1)
}
