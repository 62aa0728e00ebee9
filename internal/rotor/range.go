package rotor

import "fmt"

// Calibrated envelope for small propellers. Outside these ranges the
// momentum-theory assumptions degrade; results are advisory only.
const (
	MinDiameter = 0.05
	MaxDiameter = 2.0
	MinRPM      = 100.0
	MaxRPM      = 20000.0
	MaxVelocity = 100.0
)

// CheckOperatingRange reports conditions outside the calibrated envelope.
// It returns one message per violation, or nil when everything is in range.
// Unlike Validate, out-of-range values are warnings, not hard failures.
func CheckOperatingRange(geom Geometry, flow FlowConditions) []string {
	var warnings []string
	if geom.Diameter < MinDiameter || geom.Diameter > MaxDiameter {
		warnings = append(warnings, fmt.Sprintf("diameter %.3f m outside calibrated range [%.2f, %.1f]", geom.Diameter, MinDiameter, MaxDiameter))
	}
	if flow.RPM < MinRPM || flow.RPM > MaxRPM {
		warnings = append(warnings, fmt.Sprintf("rpm %.0f outside calibrated range [%.0f, %.0f]", flow.RPM, MinRPM, MaxRPM))
	}
	if flow.VelocityInf > MaxVelocity {
		warnings = append(warnings, fmt.Sprintf("velocity %.1f m/s above calibrated maximum %.0f", flow.VelocityInf, MaxVelocity))
	}
	return warnings
}
