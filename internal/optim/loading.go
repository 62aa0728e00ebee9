package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

// Objectives supported by Loading.
const (
	// MinPower minimizes shaft power subject to a thrust floor.
	MinPower = "min_power"
	// MaxThrust maximizes thrust subject to a power ceiling.
	MaxThrust = "max_thrust"
)

// Problem states one loading optimization: the objective to pursue, its
// target or limit, the polynomial order, uniform per-coefficient bounds,
// and the backend to run.
type Problem struct {
	Objective    string
	ThrustTarget float64 // newtons, required for MinPower
	PowerLimit   float64 // watts, required for MaxThrust
	Order        int     // polynomial order; Order+1 free coefficients
	Lower        float64
	Upper        float64
	Method       string    // solver backend; DefaultMethod when empty
	Initial      []float64 // starting coefficients; bounds midpoint when nil
}

// Result is the outcome of one loading optimization. Solver shortfalls
// are carried in Converged, Feasible, and Status rather than returned as
// errors, so parameter studies can continue past individual failures.
type Result struct {
	Coeffs      []float64
	Thrust      float64
	Power       float64
	Objective   float64
	Converged   bool
	Feasible    bool
	Iterations  int
	Evaluations int
	Status      string
}

// Loading searches the loading-coefficient box for the stated objective.
// The search is deterministic for identical inputs. Configuration
// problems and provably unreachable targets are returned as errors;
// everything else lands in the Result.
func Loading(ctx context.Context, model *disk.Model, flow rotor.FlowConditions, prob Problem) (Result, error) {
	if model == nil {
		return Result{}, fmt.Errorf("%w: nil model", ErrInvalidConfig)
	}
	if err := flow.Validate(); err != nil {
		return Result{}, err
	}
	if prob.Order < 0 {
		return Result{}, fmt.Errorf("%w: polynomial order %d", ErrInvalidConfig, prob.Order)
	}
	if prob.Lower > prob.Upper {
		return Result{}, fmt.Errorf("%w: inverted bounds [%v, %v]", ErrInvalidConfig, prob.Lower, prob.Upper)
	}

	dim := prob.Order + 1
	bounds := UniformBounds(prob.Lower, prob.Upper, dim)

	x0 := bounds.Midpoint()
	if prob.Initial != nil {
		if len(prob.Initial) != dim {
			return Result{}, fmt.Errorf("%w: initial guess has %d coefficients, want %d", ErrInvalidConfig, len(prob.Initial), dim)
		}
		x0, _ = clampTo(prob.Initial, bounds)
	}

	eval := func(c []float64) (float64, float64) {
		perf, err := model.ComputePerformance(c, flow)
		if err != nil {
			return math.Inf(1), math.Inf(1)
		}
		return perf.Thrust, perf.Power
	}

	var obj CostFunc
	var cons []ConstraintFunc

	switch prob.Objective {
	case MinPower:
		if prob.ThrustTarget <= 0 {
			return Result{}, fmt.Errorf("%w: %q needs a positive thrust target, got %v", ErrInvalidConfig, MinPower, prob.ThrustTarget)
		}
		// Thrust rises with every coefficient, so the upper corner bounds
		// what the box can reach.
		cornerT, _ := eval(corner(bounds.Upper))
		if cornerT < prob.ThrustTarget {
			return Result{}, fmt.Errorf("%w: thrust target %v N, box maximum %.3f N", ErrInfeasibleTarget, prob.ThrustTarget, cornerT)
		}
		obj = func(c []float64) float64 { _, p := eval(c); return p }
		cons = []ConstraintFunc{func(c []float64) float64 { t, _ := eval(c); return t - prob.ThrustTarget }}

	case MaxThrust:
		if prob.PowerLimit <= 0 {
			return Result{}, fmt.Errorf("%w: %q needs a positive power limit, got %v", ErrInvalidConfig, MaxThrust, prob.PowerLimit)
		}
		_, floorP := eval(corner(bounds.Lower))
		if floorP > prob.PowerLimit {
			return Result{}, fmt.Errorf("%w: power limit %v W, box minimum %.3f W", ErrInfeasibleTarget, prob.PowerLimit, floorP)
		}
		obj = func(c []float64) float64 { t, _ := eval(c); return -t }
		cons = []ConstraintFunc{func(c []float64) float64 { _, p := eval(c); return prob.PowerLimit - p }}

	default:
		return Result{}, fmt.Errorf("%w: unknown objective %q", ErrInvalidConfig, prob.Objective)
	}

	method := prob.Method
	if method == "" {
		method = DefaultMethod
	}
	solver, err := NewSolver(method)
	if err != nil {
		return Result{}, err
	}

	sol, err := solver.Solve(ctx, obj, cons, bounds, x0)
	if err != nil {
		return Result{}, err
	}

	perf, err := model.ComputePerformance(sol.X, flow)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Coeffs:      sol.X,
		Thrust:      perf.Thrust,
		Power:       perf.Power,
		Objective:   sol.Objective,
		Converged:   sol.Converged,
		Feasible:    sol.Feasible,
		Iterations:  sol.Iterations,
		Evaluations: sol.Evaluations,
		Status:      sol.Status,
	}, nil
}

func corner(values []float64) []float64 {
	c := make([]float64, len(values))
	copy(c, values)
	return c
}
