package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/phaniraghava1234/propeller-model/internal/metrics"
	"github.com/phaniraghava1234/propeller-model/internal/optim"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type GeometryMeta struct {
	Diameter float64 `json:"diameter"`
	Blades   int     `json:"blades"`
	HubRatio float64 `json:"hub_ratio"`
}

type FlowMeta struct {
	Velocity float64 `json:"velocity"`
	RPM      float64 `json:"rpm,omitempty"`
	Rho      float64 `json:"rho"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Geometry  GeometryMeta       `json:"geometry"`
	Flow      FlowMeta           `json:"flow"`
	Coeffs    []float64          `json:"coeffs"`
	Summary   map[string]float64 `json:"summary"`
}

func geometryMeta(geom rotor.Geometry) GeometryMeta {
	return GeometryMeta{
		Diameter: geom.Diameter,
		Blades:   geom.NumBlades,
		HubRatio: geom.HubRadiusRatio,
	}
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveSweep persists a sweep under a fresh run directory: metadata.json
// plus points.csv with one row per successful operating point. Failed
// points are counted in the summary but not written.
func (s *Store) SaveSweep(kind string, geom rotor.Geometry, velocity, rho float64, coeffs []float64, res *metrics.SweepResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Timestamp: time.Now(),
		Geometry:  geometryMeta(geom),
		Flow:      FlowMeta{Velocity: velocity, Rho: rho},
		Coeffs:    coeffs,
		Summary: map[string]float64{
			"points": float64(res.Len()),
			"failed": float64(res.Failed()),
		},
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"rpm", "thrust", "torque", "power", "j", "ct", "cp", "eta"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < res.Len(); i++ {
		if res.Errs[i] != nil {
			continue
		}
		row := make([]string, 0, len(header))
		for _, val := range []float64{res.RPM[i], res.Thrust[i], res.Torque[i], res.Power[i], res.J[i], res.CT[i], res.CP[i], res.Eta[i]} {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveOptimization persists an optimization outcome as metadata only;
// the optimal coefficients and scalar summary carry everything a later
// evaluation needs.
func (s *Store) SaveOptimization(geom rotor.Geometry, flow rotor.FlowConditions, res optim.Result) (string, error) {
	runID := fmt.Sprintf("optimize_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	converged := 0.0
	if res.Converged {
		converged = 1.0
	}
	feasible := 0.0
	if res.Feasible {
		feasible = 1.0
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "optimize",
		Timestamp: time.Now(),
		Geometry:  geometryMeta(geom),
		Flow:      FlowMeta{Velocity: flow.VelocityInf, RPM: flow.RPM, Rho: flow.Rho},
		Coeffs:    res.Coeffs,
		Summary: map[string]float64{
			"thrust":      res.Thrust,
			"power":       res.Power,
			"objective":   res.Objective,
			"converged":   converged,
			"feasible":    feasible,
			"iterations":  float64(res.Iterations),
			"evaluations": float64(res.Evaluations),
		},
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoints reads a saved sweep back. Rows that fail to parse are
// skipped, matching the tolerant List behavior.
func (s *Store) LoadPoints(runID string) (*metrics.SweepResult, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &metrics.SweepResult{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 8 {
			continue
		}

		vals := make([]float64, 8)
		ok := true
		for j := 0; j < 8; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		res.RPM = append(res.RPM, vals[0])
		res.Thrust = append(res.Thrust, vals[1])
		res.Torque = append(res.Torque, vals[2])
		res.Power = append(res.Power, vals[3])
		res.J = append(res.J, vals[4])
		res.CT = append(res.CT, vals[5])
		res.CP = append(res.CP, vals[6])
		res.Eta = append(res.Eta, vals[7])
		res.Errs = append(res.Errs, nil)
	}

	return res, nil
}
