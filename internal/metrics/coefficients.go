package metrics

import (
	"fmt"

	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

// Coefficients are the non-dimensional performance numbers of a single
// operating point.
type Coefficients struct {
	J   float64 // advance ratio, V / (n*D)
	CT  float64 // thrust coefficient, T / (rho*n^2*D^4)
	CP  float64 // power coefficient, P / (rho*n^3*D^5)
	Eta float64 // propulsive efficiency, J*CT/CP
}

// Compute converts dimensional thrust and power into coefficients.
// A stationary rotor (n = 0) has no defined coefficients; that case is
// reported as a domain error, never a silent division.
func Compute(thrust, power float64, geom rotor.Geometry, flow rotor.FlowConditions) (Coefficients, error) {
	n := flow.N()
	if n == 0 {
		return Coefficients{}, fmt.Errorf("%w: rpm %v", ErrZeroRotation, flow.RPM)
	}

	d := geom.Diameter
	d4 := d * d * d * d
	j := flow.VelocityInf / (n * d)
	ct := thrust / (flow.Rho * n * n * d4)
	cp := power / (flow.Rho * n * n * n * d4 * d)

	eta, err := Efficiency(thrust, power, flow.VelocityInf)
	if err != nil {
		return Coefficients{}, err
	}

	return Coefficients{J: j, CT: ct, CP: cp, Eta: eta}, nil
}

// Efficiency is thrust power over shaft power, T*V/P, algebraically equal
// to J*CT/CP. The static no-thrust case (T = P = 0) is zero by convention;
// zero power with nonzero thrust is unphysical and reported as a domain
// error.
func Efficiency(thrust, power, velocity float64) (float64, error) {
	if power == 0 {
		if thrust == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: thrust %v N", ErrZeroPower, thrust)
	}
	return thrust * velocity / power, nil
}
