// Package loading supplies radial loading coefficient vectors: named
// presets for common distributions and least-squares fitting of arbitrary
// shapes onto the polynomial basis.
package loading

import (
	"fmt"
	"sort"
	"strings"
)

// Base coefficient vectors for the named presets, tabulated at 4th order.
// Preset resizes them to other polynomial orders.
var presets = map[string][]float64{
	"uniform":   {2.0, 0.0, 0.0, 0.0, 0.0},
	"linear":    {1.0, 2.0, 0.0, 0.0, 0.0},
	"quadratic": {1.0, 0.5, 2.0, 0.0, 0.0},
	"elliptic":  {0.5, 1.0, 3.0, -1.5, 0.0},
}

// Preset returns a copy of the named loading coefficients resized to
// order+1 entries. Orders above the tabulated one pad with zeros; lower
// orders truncate.
func Preset(name string, order int) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}
	base, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	coeffs := make([]float64, order+1)
	copy(coeffs, base)
	return coeffs, nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
