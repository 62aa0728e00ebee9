package optim

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMethod is the solver backend used when a request does not name
// one.
const DefaultMethod = "neldermead"

var solvers = map[string]func() Solver{
	"neldermead": func() Solver { return NewNelderMead() },
	"penalty":    func() Solver { return NewPenalty() },
	"grid":       func() Solver { return NewGrid() },
}

// NewSolver returns a fresh instance of the named backend.
func NewSolver(name string) (Solver, error) {
	fn, ok := solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMethod, name, strings.Join(Methods(), ", "))
	}
	return fn(), nil
}

// Methods lists the registered solver names in sorted order.
func Methods() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
