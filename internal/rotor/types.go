package rotor

import (
	"fmt"
	"math"
)

// Geometry describes the fixed geometric parameters of a propeller.
// Immutable once constructed; derived quantities are computed on demand.
type Geometry struct {
	Diameter       float64 // meters
	NumBlades      int
	HubRadiusRatio float64 // hub radius / tip radius, in (0, 1)
}

func NewGeometry(diameter float64, blades int, hubRatio float64) (Geometry, error) {
	g := Geometry{Diameter: diameter, NumBlades: blades, HubRadiusRatio: hubRatio}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

func (g Geometry) Radius() float64 {
	return g.Diameter / 2.0
}

func (g Geometry) HubRadius() float64 {
	return g.Radius() * g.HubRadiusRatio
}

func (g Geometry) Validate() error {
	if !(g.Diameter > 0) || math.IsInf(g.Diameter, 0) {
		return fmt.Errorf("%w: %v m", ErrDiameter, g.Diameter)
	}
	if g.NumBlades < 2 {
		return fmt.Errorf("%w: %d", ErrBlades, g.NumBlades)
	}
	if !(g.HubRadiusRatio > 0 && g.HubRadiusRatio < 1) {
		return fmt.Errorf("%w: %v", ErrHubRatio, g.HubRadiusRatio)
	}
	return nil
}

// FlowConditions describes a single operating point: free-stream velocity,
// rotational speed, and fluid density. Immutable.
type FlowConditions struct {
	VelocityInf float64 // m/s
	RPM         float64
	Rho         float64 // kg/m^3
}

func NewFlowConditions(velocity, rpm, rho float64) (FlowConditions, error) {
	f := FlowConditions{VelocityInf: velocity, RPM: rpm, Rho: rho}
	if err := f.Validate(); err != nil {
		return FlowConditions{}, err
	}
	return f, nil
}

// N is the rotational speed in revolutions per second.
func (f FlowConditions) N() float64 {
	return f.RPM / 60.0
}

// Omega is the angular velocity in rad/s.
func (f FlowConditions) Omega() float64 {
	return 2.0 * math.Pi * f.N()
}

func (f FlowConditions) Validate() error {
	if f.VelocityInf < 0 || math.IsNaN(f.VelocityInf) || math.IsInf(f.VelocityInf, 0) {
		return fmt.Errorf("%w: %v m/s", ErrVelocity, f.VelocityInf)
	}
	if !(f.RPM > 0) || math.IsInf(f.RPM, 0) {
		return fmt.Errorf("%w: %v", ErrRPM, f.RPM)
	}
	if !(f.Rho > 0) || math.IsInf(f.Rho, 0) {
		return fmt.Errorf("%w: %v kg/m^3", ErrDensity, f.Rho)
	}
	return nil
}
