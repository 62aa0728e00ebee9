package metrics

import (
	"context"
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

// Point is one evaluated operating point of an rpm sweep. Err carries a
// per-point domain failure so a sweep can continue past it; when Err is
// set the numeric fields are zero.
type Point struct {
	RPM    float64
	Thrust float64
	Torque float64
	Power  float64
	Coefficients
	Err error
}

// SweepResult holds a completed sweep as parallel slices, one entry per
// input rpm in input order.
type SweepResult struct {
	RPM    []float64
	Thrust []float64
	Torque []float64
	Power  []float64
	J      []float64
	CT     []float64
	CP     []float64
	Eta    []float64
	Errs   []error
}

func newSweepResult(n int) *SweepResult {
	return &SweepResult{
		RPM:    make([]float64, n),
		Thrust: make([]float64, n),
		Torque: make([]float64, n),
		Power:  make([]float64, n),
		J:      make([]float64, n),
		CT:     make([]float64, n),
		CP:     make([]float64, n),
		Eta:    make([]float64, n),
		Errs:   make([]error, n),
	}
}

// Len returns the number of operating points in the sweep.
func (r *SweepResult) Len() int { return len(r.RPM) }

// Failed returns how many points carry a per-point error.
func (r *SweepResult) Failed() int {
	n := 0
	for _, err := range r.Errs {
		if err != nil {
			n++
		}
	}
	return n
}

func (r *SweepResult) set(i int, pt Point) {
	r.RPM[i] = pt.RPM
	r.Thrust[i] = pt.Thrust
	r.Torque[i] = pt.Torque
	r.Power[i] = pt.Power
	r.J[i] = pt.J
	r.CT[i] = pt.CT
	r.CP[i] = pt.CP
	r.Eta[i] = pt.Eta
	r.Errs[i] = pt.Err
}

// Point reassembles the i-th operating point.
func (r *SweepResult) Point(i int) Point {
	return Point{
		RPM:    r.RPM[i],
		Thrust: r.Thrust[i],
		Torque: r.Torque[i],
		Power:  r.Power[i],
		Coefficients: Coefficients{
			J:   r.J[i],
			CT:  r.CT[i],
			CP:  r.CP[i],
			Eta: r.Eta[i],
		},
		Err: r.Errs[i],
	}
}

// evalPoint runs the full pipeline for a single rpm: flow validation,
// disk performance, then coefficients.
func evalPoint(m *disk.Model, coeffs []float64, rpm, velocity, rho float64) Point {
	pt := Point{RPM: rpm}

	flow, err := rotor.NewFlowConditions(velocity, rpm, rho)
	if err != nil {
		pt.Err = err
		return pt
	}

	perf, err := m.ComputePerformance(coeffs, flow)
	if err != nil {
		pt.Err = err
		return pt
	}
	pt.Thrust = perf.Thrust
	pt.Torque = perf.Torque
	pt.Power = perf.Power

	c, err := Compute(perf.Thrust, perf.Power, m.Geometry(), flow)
	if err != nil {
		pt.Err = err
		return pt
	}
	pt.Coefficients = c

	return pt
}

// Points returns a lazy sweep over the rpm sequence at fixed loading
// coefficients and flight condition. Each pull evaluates one operating
// point; the sequence is finite and can be ranged over more than once.
func Points(m *disk.Model, coeffs, rpms []float64, velocity, rho float64) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, rpm := range rpms {
			if !yield(i, evalPoint(m, coeffs, rpm, velocity, rho)) {
				return
			}
		}
	}
}

// SweepSequential evaluates the sweep on the calling goroutine.
func SweepSequential(m *disk.Model, coeffs, rpms []float64, velocity, rho float64) *SweepResult {
	res := newSweepResult(len(rpms))
	for i, pt := range Points(m, coeffs, rpms, velocity, rho) {
		res.set(i, pt)
	}
	return res
}

// Sweep evaluates every rpm concurrently. Operating points are mutually
// independent, so workers share only the immutable model and write to
// disjoint indices of the result. Per-point domain failures land in
// Errs; only context cancellation fails the sweep as a whole.
func Sweep(ctx context.Context, m *disk.Model, coeffs, rpms []float64, velocity, rho float64) (*SweepResult, error) {
	res := newSweepResult(len(rpms))

	var wg sync.WaitGroup
	for i := range rpms {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				res.Errs[idx] = err
				return
			}
			res.set(idx, evalPoint(m, coeffs, rpms[idx], velocity, rho))
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// RPMRange builds an ascending rpm sequence from start to end in step
// increments. The end value is included when it lands on a step.
func RPMRange(start, end, step float64) ([]float64, error) {
	if step <= 0 || end < start {
		return nil, fmt.Errorf("%w: start %v, end %v, step %v", ErrRPMRange, start, end, step)
	}
	n := int(math.Floor((end-start)/step+1e-9)) + 1
	rpms := make([]float64, n)
	for i := range rpms {
		rpms[i] = start + float64(i)*step
	}
	return rpms, nil
}
