package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quadsim/internal/robot"
)

// PlotSeries renders one float series as an ASCII chart.
func PlotSeries(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Axis extracts one coordinate axis from a pose history.
func Axis(history []robot.Vec3, axis int) []float64 {
	out := make([]float64, len(history))
	for i, p := range history {
		switch axis {
		case 0:
			out[i] = p.X
		case 1:
			out[i] = p.Y
		default:
			out[i] = p.Z
		}
	}
	return out
}
