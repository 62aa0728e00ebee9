// Package export renders stored results into portable formats beyond the
// terminal, currently SVG line charts of sweep curves.
package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/phaniraghava1234/propeller-model/internal/metrics"
)

// ErrNoData reports a sweep too small to chart.
var ErrNoData = errors.New("export: too few points to chart")

// SweepSVG renders the sweep's thrust, power, and efficiency curves as an
// SVG line chart over rpm. Each curve is normalized to its own range so
// shapes stay visible across magnitudes. Failed points are skipped; an
// empty string is returned when fewer than two points survive.
func SweepSVG(res *metrics.SweepResult, width, height int) string {
	if res == nil {
		return ""
	}

	idx := make([]int, 0, res.Len())
	for i := 0; i < res.Len(); i++ {
		if res.Errs[i] != nil {
			continue
		}
		idx = append(idx, i)
	}
	if len(idx) < 2 {
		return ""
	}

	rpms := pick(res.RPM, idx)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	series := []struct {
		name   string
		values []float64
		color  string
	}{
		{"thrust", pick(res.Thrust, idx), "#00ff00"},
		{"power", pick(res.Power, idx), "#00bfff"},
		{"eta", pick(res.Eta, idx), "#ff8c00"},
	}

	for si, s := range series {
		sb.WriteString(seriesPath(rpms, s.values, width, height, s.color))
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+si*16, s.color, s.name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSweepSVG renders the chart and writes it to path.
func WriteSweepSVG(path string, res *metrics.SweepResult, width, height int) error {
	svg := SweepSVG(res, width, height)
	if svg == "" {
		return ErrNoData
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func seriesPath(xs, ys []float64, width, height int, color string) string {
	minX, maxX := seriesBounds(xs)
	minY, maxY := seriesBounds(ys)

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n")
	return sb.String()
}

func seriesBounds(vals []float64) (float64, float64) {
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func pick(vals []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}
