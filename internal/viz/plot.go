package viz

import "github.com/guptarohit/asciigraph"

// RadialPlot renders a spanwise distribution, hub to tip, as an ascii
// chart.
func RadialPlot(values []float64, caption string) string {
	return asciigraph.Plot(values, asciigraph.Height(8), asciigraph.Width(56), asciigraph.Caption(caption))
}

// SweepPlot renders one sweep quantity across the rpm range.
func SweepPlot(values []float64, caption string) string {
	return asciigraph.Plot(values, asciigraph.Height(10), asciigraph.Width(56), asciigraph.Caption(caption))
}
