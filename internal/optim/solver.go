package optim

import (
	"context"
	"fmt"
	"math"
)

// CostFunc evaluates the scalar objective at a coefficient vector.
type CostFunc func(x []float64) float64

// ConstraintFunc evaluates one inequality constraint; the point is
// feasible when the returned value is >= 0.
type ConstraintFunc func(x []float64) float64

// Bounds is a box constraint, Lower[i] <= x[i] <= Upper[i].
type Bounds struct {
	Lower []float64
	Upper []float64
}

// UniformBounds builds an n-dimensional box with the same interval on
// every axis.
func UniformBounds(lower, upper float64, n int) Bounds {
	b := Bounds{Lower: make([]float64, n), Upper: make([]float64, n)}
	for i := 0; i < n; i++ {
		b.Lower[i] = lower
		b.Upper[i] = upper
	}
	return b
}

// Midpoint returns the center of the box.
func (b Bounds) Midpoint() []float64 {
	x := make([]float64, len(b.Lower))
	for i := range x {
		x[i] = 0.5 * (b.Lower[i] + b.Upper[i])
	}
	return x
}

func (b Bounds) validate(dim int) error {
	if len(b.Lower) != dim || len(b.Upper) != dim {
		return fmt.Errorf("%w: bounds dimension %d/%d, want %d", ErrInvalidConfig, len(b.Lower), len(b.Upper), dim)
	}
	for i := range b.Lower {
		if b.Lower[i] > b.Upper[i] {
			return fmt.Errorf("%w: inverted bounds [%v, %v] at coefficient %d", ErrInvalidConfig, b.Lower[i], b.Upper[i], i)
		}
	}
	return nil
}

// clampTo projects x into the box, returning the projected copy and the
// squared projection distance.
func clampTo(x []float64, b Bounds) ([]float64, float64) {
	p := make([]float64, len(x))
	dist := 0.0
	for i, v := range x {
		w := math.Min(math.Max(v, b.Lower[i]), b.Upper[i])
		d := v - w
		dist += d * d
		p[i] = w
	}
	return p, dist
}

// maxViolation is the largest constraint shortfall at x, zero when x is
// feasible.
func maxViolation(gvals []float64) float64 {
	worst := 0.0
	for _, g := range gvals {
		if v := -g; v > worst {
			worst = v
		}
	}
	return worst
}

// Solution is the outcome of one constrained minimization.
type Solution struct {
	X           []float64
	Objective   float64
	Converged   bool
	Feasible    bool
	Iterations  int
	Evaluations int
	Status      string
}

// Solver is the capability a constrained backend provides: minimize obj
// over the box subject to every constraint being nonnegative, starting
// from x0. Implementations must be deterministic for identical inputs.
type Solver interface {
	Solve(ctx context.Context, obj CostFunc, cons []ConstraintFunc, bounds Bounds, x0 []float64) (Solution, error)
}
