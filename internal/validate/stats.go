package validate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/metrics"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

// ErrorStats summarizes the disagreement between a predicted and a
// measured sequence.
type ErrorStats struct {
	RMSE float64
	MAE  float64
	R2   float64
}

// Stats computes error statistics for a prediction against measurements
// of the same length.
func Stats(predicted, measured []float64) (ErrorStats, error) {
	if len(predicted) == 0 || len(predicted) != len(measured) {
		return ErrorStats{}, fmt.Errorf("%w: %d predicted vs %d measured", ErrLengthMismatch, len(predicted), len(measured))
	}
	n := float64(len(predicted))
	return ErrorStats{
		RMSE: floats.Distance(predicted, measured, 2) / math.Sqrt(n),
		MAE:  floats.Distance(predicted, measured, 1) / n,
		R2:   stat.RSquaredFrom(predicted, measured, nil),
	}, nil
}

// Comparison holds per-quantity error statistics of model predictions
// against a measured dataset, along with the predictions themselves for
// plotting.
type Comparison struct {
	Points          int
	Thrust          ErrorStats
	Torque          ErrorStats
	CT              *ErrorStats // nil when the dataset has no ct column
	CP              *ErrorStats
	PredictedThrust []float64
	PredictedTorque []float64
}

// Compare evaluates the model at every measured operating point and
// scores the predictions. Rows with invalid flow conditions fail the
// comparison; measured data is expected to be clean.
func Compare(m *disk.Model, coeffs []float64, ds *Dataset, rho float64) (*Comparison, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrBadData)
	}

	n := ds.Len()
	cmp := &Comparison{
		Points:          n,
		PredictedThrust: make([]float64, n),
		PredictedTorque: make([]float64, n),
	}

	var predCT, predCP []float64
	if ds.CT != nil {
		predCT = make([]float64, n)
	}
	if ds.CP != nil {
		predCP = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		flow, err := rotor.NewFlowConditions(ds.V[i], ds.RPM[i], rho)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		perf, err := m.ComputePerformance(coeffs, flow)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cmp.PredictedThrust[i] = perf.Thrust
		cmp.PredictedTorque[i] = perf.Torque

		if predCT != nil || predCP != nil {
			c, err := metrics.Compute(perf.Thrust, perf.Power, m.Geometry(), flow)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			if predCT != nil {
				predCT[i] = c.CT
			}
			if predCP != nil {
				predCP[i] = c.CP
			}
		}
	}

	var err error
	if cmp.Thrust, err = Stats(cmp.PredictedThrust, ds.Thrust); err != nil {
		return nil, err
	}
	if cmp.Torque, err = Stats(cmp.PredictedTorque, ds.Torque); err != nil {
		return nil, err
	}
	if predCT != nil {
		st, err := Stats(predCT, ds.CT)
		if err != nil {
			return nil, err
		}
		cmp.CT = &st
	}
	if predCP != nil {
		st, err := Stats(predCP, ds.CP)
		if err != nil {
			return nil, err
		}
		cmp.CP = &st
	}

	return cmp, nil
}
