package optim

import (
	"context"
	"fmt"
	"math"

	gopt "gonum.org/v1/gonum/optimize"
)

// Penalty solves constrained minimizations with a classical quadratic
// exterior penalty escalated geometrically between simplex restarts.
// Simpler than the augmented Lagrangian backend; the escalating weight
// can condition the landscape badly for very tight constraints.
type Penalty struct {
	MaxRounds        int
	InnerIterations  int
	InnerEvaluations int
	Weight           float64
	Grow             float64
	FeasTol          float64
	BoundWeight      float64
}

// NewPenalty returns the backend with default budgets.
func NewPenalty() *Penalty {
	return &Penalty{
		MaxRounds:        10,
		InnerIterations:  2000,
		InnerEvaluations: 5000,
		Weight:           100.0,
		Grow:             10.0,
		FeasTol:          1e-3,
		BoundWeight:      1e3,
	}
}

func (pn *Penalty) Solve(ctx context.Context, obj CostFunc, cons []ConstraintFunc, bounds Bounds, x0 []float64) (Solution, error) {
	if err := bounds.validate(len(x0)); err != nil {
		return Solution{}, err
	}

	weight := pn.Weight
	x, _ := clampTo(x0, bounds)

	var sol Solution
	prevObj := math.NaN()

	for round := 0; round < pn.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return sol, err
		}

		penalized := func(z []float64) float64 {
			p, dist := clampTo(z, bounds)
			val := obj(p) + pn.BoundWeight*dist
			for _, g := range cons {
				if gi := g(p); gi < 0 {
					val += weight * gi * gi
				}
			}
			return val
		}

		result, err := gopt.Minimize(gopt.Problem{Func: penalized}, x, innerSettings(pn.InnerIterations, pn.InnerEvaluations), &gopt.NelderMead{})
		if result == nil {
			return sol, fmt.Errorf("optim: inner minimize: %w", err)
		}

		x, _ = clampTo(result.Location.X, bounds)
		sol.Iterations += result.Stats.MajorIterations
		sol.Evaluations += result.Stats.FuncEvaluations
		sol.Status = result.Status.String()

		gvals := make([]float64, len(cons))
		for i, g := range cons {
			gvals[i] = g(x)
		}
		viol := maxViolation(gvals)
		f := obj(x)

		sol.X = x
		sol.Objective = f
		sol.Feasible = viol <= pn.FeasTol

		if sol.Feasible && !math.IsNaN(prevObj) && math.Abs(f-prevObj) <= 1e-6*math.Max(1, math.Abs(f)) {
			sol.Converged = true
			return sol, nil
		}

		weight *= pn.Grow
		prevObj = f
	}

	return sol, nil
}
