package store

import (
	"encoding/json"
	"os"

	"github.com/phaniraghava1234/propeller-model/internal/metrics"
)

type ExportData struct {
	ID       string             `json:"id"`
	Kind     string             `json:"kind"`
	Geometry GeometryMeta       `json:"geometry"`
	Flow     FlowMeta           `json:"flow"`
	Coeffs   []float64          `json:"coeffs"`
	Summary  map[string]float64 `json:"summary"`
	Points   int                `json:"points"`
	RPM      []float64          `json:"rpm,omitempty"`
	Thrust   []float64          `json:"thrust,omitempty"`
	Torque   []float64          `json:"torque,omitempty"`
	Power    []float64          `json:"power,omitempty"`
	J        []float64          `json:"j,omitempty"`
	CT       []float64          `json:"ct,omitempty"`
	CP       []float64          `json:"cp,omitempty"`
	Eta      []float64          `json:"eta,omitempty"`
}

func buildExport(meta *RunMetadata, points *metrics.SweepResult) ExportData {
	data := ExportData{
		ID:       meta.ID,
		Kind:     meta.Kind,
		Geometry: meta.Geometry,
		Flow:     meta.Flow,
		Coeffs:   meta.Coeffs,
		Summary:  meta.Summary,
	}
	if points != nil {
		data.Points = points.Len()
		data.RPM = points.RPM
		data.Thrust = points.Thrust
		data.Torque = points.Torque
		data.Power = points.Power
		data.J = points.J
		data.CT = points.CT
		data.CP = points.CP
		data.Eta = points.Eta
	}
	return data
}

// ExportJSON writes a run, with its sweep points when present, as a
// single indented JSON document.
func ExportJSON(path string, meta *RunMetadata, points *metrics.SweepResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(meta, points))
}

// ExportJSONStdout writes the same document to standard output.
func ExportJSONStdout(meta *RunMetadata, points *metrics.SweepResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(meta, points))
}
