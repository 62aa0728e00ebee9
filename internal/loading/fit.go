package loading

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// fitSamples is the number of uniform stations on [0, 1] used for
// least-squares shape fits.
const fitSamples = 50

// EllipticShape is the minimum-induced-loss loading shape on the
// normalized radius, x*sqrt(1-x^2).
func EllipticShape(x float64) float64 {
	return x * math.Sqrt(math.Max(1.0-x*x, 0.0))
}

// FitShape projects a radial shape onto the polynomial basis by linear
// least squares over [0, 1], returning order+1 coefficients. Shapes that
// are already polynomials of the requested order are reproduced exactly.
func FitShape(shape func(float64) float64, order int) ([]float64, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrShapeFit)
	}
	if order < 0 || order+1 > fitSamples {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	a := mat.NewDense(fitSamples, order+1, nil)
	b := mat.NewVecDense(fitSamples, nil)
	for i := 0; i < fitSamples; i++ {
		x := float64(i) / float64(fitSamples-1)
		basis := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, basis)
			basis *= x
		}
		b.SetVec(i, shape(x))
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeFit, err)
	}

	coeffs := make([]float64, order+1)
	for j := range coeffs {
		coeffs[j] = sol.AtVec(j)
	}
	return coeffs, nil
}

// Evaluate computes the polynomial loading shape at normalized radius x
// by Horner's rule.
func Evaluate(coeffs []float64, x float64) float64 {
	acc := 0.0
	for j := len(coeffs) - 1; j >= 0; j-- {
		acc = acc*x + coeffs[j]
	}
	return acc
}
