package optim

import (
	"context"
	"math"
)

// Grid scans a uniform lattice over the bounding box and keeps the best
// feasible point. It is exhaustive rather than iterative: Levels^dim
// evaluations with no refinement, so it suits coarse landscape surveys
// and sanity checks more than production answers.
type Grid struct {
	Levels  int     // lattice points per axis
	FeasTol float64 // largest violation accepted as feasible
}

// NewGrid returns the backend with a lattice coarse enough to stay
// tractable at single-digit coefficient counts.
func NewGrid() *Grid {
	return &Grid{
		Levels:  5,
		FeasTol: 1e-3,
	}
}

// Solve enumerates the lattice in lexicographic order. The starting point
// is ignored. When no lattice point is feasible, the point with the
// smallest violation is returned with Feasible and Converged false.
func (g *Grid) Solve(ctx context.Context, obj CostFunc, cons []ConstraintFunc, bounds Bounds, x0 []float64) (Solution, error) {
	if err := bounds.validate(len(x0)); err != nil {
		return Solution{}, err
	}
	levels := g.Levels
	if levels < 2 {
		levels = 2
	}

	axes := make([][]float64, len(x0))
	for i := range axes {
		axes[i] = make([]float64, levels)
		step := (bounds.Upper[i] - bounds.Lower[i]) / float64(levels-1)
		for k := range axes[i] {
			axes[i][k] = bounds.Lower[i] + float64(k)*step
		}
		axes[i][levels-1] = bounds.Upper[i]
	}

	sol := Solution{Objective: math.Inf(1), Status: "GridComplete"}
	bestViol := math.Inf(1)

	point := make([]float64, len(x0))
	if err := g.scan(ctx, 0, point, axes, obj, cons, &sol, &bestViol); err != nil {
		return sol, err
	}

	sol.Converged = sol.Feasible
	return sol, nil
}

// scan walks the lattice depth-first, one axis per level.
func (g *Grid) scan(ctx context.Context, depth int, point []float64, axes [][]float64, obj CostFunc, cons []ConstraintFunc, sol *Solution, bestViol *float64) error {
	if depth == len(axes) {
		if err := ctx.Err(); err != nil {
			return err
		}

		gvals := make([]float64, len(cons))
		for i, c := range cons {
			gvals[i] = c(point)
		}
		viol := maxViolation(gvals)
		f := obj(point)
		sol.Iterations++
		sol.Evaluations++

		feasible := viol <= g.FeasTol
		better := false
		if feasible {
			better = !sol.Feasible || f < sol.Objective
		} else if !sol.Feasible {
			better = viol < *bestViol
		}
		if better {
			sol.X = append(sol.X[:0], point...)
			sol.Objective = f
			sol.Feasible = feasible
			*bestViol = viol
		}
		return nil
	}

	for _, v := range axes[depth] {
		point[depth] = v
		if err := g.scan(ctx, depth+1, point, axes, obj, cons, sol, bestViol); err != nil {
			return err
		}
	}
	return nil
}
