package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phaniraghava1234/propeller-model/internal/metrics"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

func sampleSweep() *metrics.SweepResult {
	return &metrics.SweepResult{
		RPM:    []float64{4000, 5000, 6000},
		Thrust: []float64{2.918481, 2.918481, 2.918481},
		Torque: []float64{0.098913, 0.098913, 0.098913},
		Power:  []float64{77.2, 87.56, 97.9},
		J:      []float64{0.590551, 0.472441, 0.393701},
		CT:     []float64{0.128786, 0.082423, 0.057238},
		CP:     []float64{0.201869, 0.116828, 0.073645},
		Eta:    []float64{0.377, 0.333310, 0.306},
		Errs:   []error{nil, nil, nil},
	}
}

func TestSweepSVG(t *testing.T) {
	svg := SweepSVG(sampleSweep(), 640, 360)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Fatalf("expected xml header, got %.40q", svg)
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected a complete svg document")
	}
	if n := strings.Count(svg, "<path"); n != 3 {
		t.Errorf("expected 3 curve paths, got %d", n)
	}
	for _, label := range []string{"thrust", "power", "eta"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("expected a %s legend entry", label)
		}
	}
}

func TestSweepSVGSkipsFailedPoints(t *testing.T) {
	res := sampleSweep()
	res.Errs[1] = rotor.ErrRPM

	svg := SweepSVG(res, 640, 360)
	if svg == "" {
		t.Fatal("expected a chart from the surviving points")
	}
	// 2 surviving points make 1 line segment per curve
	if n := strings.Count(svg, " L"); n != 3 {
		t.Errorf("expected 3 segments, got %d", n)
	}
}

func TestSweepSVGTooFewPoints(t *testing.T) {
	if svg := SweepSVG(nil, 640, 360); svg != "" {
		t.Error("expected empty string for nil result")
	}

	one := &metrics.SweepResult{
		RPM:    []float64{5000},
		Thrust: []float64{2.9},
		Torque: []float64{0.1},
		Power:  []float64{87.6},
		J:      []float64{0.47},
		CT:     []float64{0.08},
		CP:     []float64{0.12},
		Eta:    []float64{0.33},
		Errs:   []error{nil},
	}
	if svg := SweepSVG(one, 640, 360); svg != "" {
		t.Error("expected empty string for a single point")
	}
}

func TestWriteSweepSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.svg")

	if err := WriteSweepSVG(path, sampleSweep(), 640, 360); err != nil {
		t.Fatalf("WriteSweepSVG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg content in the written file")
	}

	err = WriteSweepSVG(filepath.Join(t.TempDir(), "empty.svg"), nil, 640, 360)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for nil result, got %v", err)
	}
}
