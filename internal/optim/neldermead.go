package optim

import (
	"context"
	"fmt"
	"math"

	gopt "gonum.org/v1/gonum/optimize"
)

// NelderMead solves constrained minimizations with an augmented
// Lagrangian outer loop around a derivative-free simplex inner search.
// The model is never asked for gradients. Box bounds are enforced by
// projection plus a quadratic keep-in penalty, so the inner search is
// unconstrained.
type NelderMead struct {
	MaxRounds        int     // outer multiplier updates
	InnerIterations  int     // simplex iteration budget per round
	InnerEvaluations int     // objective evaluation budget per round
	Penalty          float64 // initial constraint penalty
	PenaltyGrow      float64 // penalty growth when violation stalls
	FeasTol          float64 // largest violation accepted as feasible
	BoundWeight      float64 // quadratic keep-in weight
}

// NewNelderMead returns the backend with default budgets sized for
// single-digit coefficient counts.
func NewNelderMead() *NelderMead {
	return &NelderMead{
		MaxRounds:        12,
		InnerIterations:  2000,
		InnerEvaluations: 5000,
		Penalty:          10.0,
		PenaltyGrow:      10.0,
		FeasTol:          1e-3,
		BoundWeight:      1e3,
	}
}

func (nm *NelderMead) Solve(ctx context.Context, obj CostFunc, cons []ConstraintFunc, bounds Bounds, x0 []float64) (Solution, error) {
	if err := bounds.validate(len(x0)); err != nil {
		return Solution{}, err
	}

	lambda := make([]float64, len(cons))
	mu := nm.Penalty
	x, _ := clampTo(x0, bounds)

	var sol Solution
	prevViol := math.Inf(1)
	prevObj := math.NaN()

	for round := 0; round < nm.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return sol, err
		}

		augmented := func(z []float64) float64 {
			p, dist := clampTo(z, bounds)
			val := obj(p) + nm.BoundWeight*dist
			for i, g := range cons {
				if s := lambda[i] - mu*g(p); s > 0 {
					val += (s*s - lambda[i]*lambda[i]) / (2 * mu)
				} else {
					val += -lambda[i] * lambda[i] / (2 * mu)
				}
			}
			return val
		}

		result, err := gopt.Minimize(gopt.Problem{Func: augmented}, x, innerSettings(nm.InnerIterations, nm.InnerEvaluations), &gopt.NelderMead{})
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
		sol.Feasible = viol <= nm.FeasTol

		if sol.Feasible && !math.IsNaN(prevObj) && math.Abs(f-prevObj) <= 1e-6*math.Max(1, math.Abs(f)) {
			sol.Converged = true
			return sol, nil
		}

		for i := range lambda {
			lambda[i] = math.Max(0, lambda[i]-mu*gvals[i])
		}
		if viol > 0.25*prevViol {
			mu *= nm.PenaltyGrow
		}
		prevViol = viol
		prevObj = f
	}

	return sol, nil
}

func innerSettings(iterations, evaluations int) *gopt.Settings {
	return &gopt.Settings{
		MajorIterations: iterations,
		FuncEvaluations: evaluations,
		Converger: &gopt.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 200,
		},
	}
}
