package disk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

const (
	// DefaultStations is the radial grid resolution.
	DefaultStations = 30

	// DefaultTipLoss is the loading multiplier at the blade tip.
	DefaultTipLoss = 0.95

	// DefaultSwirl relates torque density to thrust density.
	DefaultSwirl = 0.05

	// InductionPasses is the number of effective-velocity correction
	// passes applied when computing induced velocity. Exactly one pass,
	// a fixed modeling simplification.
	InductionPasses = 1

	// EffectiveVelocityFloor keeps the momentum-theory denominator away
	// from zero at hover.
	EffectiveVelocityFloor = 1e-3

	// tipLossOnset is the normalized radius where the taper begins.
	tipLossOnset = 0.7
)

// Config holds the discretization and empirical constants of a Model.
type Config struct {
	Stations int
	TipLoss  float64
	Swirl    float64
}

func DefaultConfig() Config {
	return Config{
		Stations: DefaultStations,
		TipLoss:  DefaultTipLoss,
		Swirl:    DefaultSwirl,
	}
}

// Model evaluates propeller performance on a fixed radial grid. The grid
// spans [hub radius, tip radius] inclusive and is strictly increasing.
type Model struct {
	geom     rotor.Geometry
	stations []float64 // radii, m
	norm     []float64 // r/R
	taper    []float64 // tip-loss multiplier per station
	tipLoss  float64
	swirl    float64
}

// New builds a model with the default configuration.
func New(geom rotor.Geometry) (*Model, error) {
	return NewWithConfig(geom, DefaultConfig())
}

// NewWithConfig builds a model, precomputing the radial grid and the
// tip-loss taper. Geometry changes require a new instance.
func NewWithConfig(geom rotor.Geometry, cfg Config) (*Model, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if cfg.Stations < 2 {
		return nil, fmt.Errorf("%w: %d", ErrStations, cfg.Stations)
	}
	if !(cfg.TipLoss > 0 && cfg.TipLoss <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrTipLoss, cfg.TipLoss)
	}
	if cfg.Swirl < 0 {
		return nil, fmt.Errorf("%w: %v", ErrSwirl, cfg.Swirl)
	}

	m := &Model{
		geom:     geom,
		stations: make([]float64, cfg.Stations),
		norm:     make([]float64, cfg.Stations),
		taper:    make([]float64, cfg.Stations),
		tipLoss:  cfg.TipLoss,
		swirl:    cfg.Swirl,
	}

	hub, tip := geom.HubRadius(), geom.Radius()
	step := (tip - hub) / float64(cfg.Stations-1)
	for i := range m.stations {
		r := hub + float64(i)*step
		if i == cfg.Stations-1 {
			r = tip
		}
		m.stations[i] = r
		m.norm[i] = r / tip
		m.taper[i] = 1.0
		if m.norm[i] > tipLossOnset {
			m.taper[i] = 1.0 - (1.0-cfg.TipLoss)*(m.norm[i]-tipLossOnset)/(1.0-tipLossOnset)
		}
	}

	return m, nil
}

func (m *Model) Geometry() rotor.Geometry { return m.geom }

// Stations returns a copy of the radial grid.
func (m *Model) Stations() []float64 {
	s := make([]float64, len(m.stations))
	copy(s, m.stations)
	return s
}

// Performance holds the integrated results of one evaluation together with
// the radial distributions they were integrated from.
type Performance struct {
	Thrust  float64   // N
	Torque  float64   // N*m
	Power   float64   // W
	Loading []float64 // dT/dr per station, clamped and tapered, N/m
	Induced []float64 // axial induced velocity per station, m/s
}

// ComputePerformance evaluates the loading polynomial at every station,
// resolves induced velocity with a single corrective pass, and integrates
// thrust, swirl torque, and power. All-zero coefficients yield exact zeros.
func (m *Model) ComputePerformance(coeffs []float64, flow rotor.FlowConditions) (*Performance, error) {
	if err := flow.Validate(); err != nil {
		return nil, err
	}

	ns := len(m.stations)
	loading := make([]float64, ns)
	induced := make([]float64, ns)

	veff0 := math.Max(flow.VelocityInf, EffectiveVelocityFloor)
	scale := flow.Rho * veff0 * veff0 * m.geom.Radius()

	for i, x := range m.norm {
		p := 0.0
		for j := len(coeffs) - 1; j >= 0; j-- {
			p = p*x + coeffs[j]
		}
		dT := scale * p

		denom := 4.0 * math.Pi * flow.Rho * m.stations[i]
		w := dT / (denom * veff0)
		for pass := 0; pass < InductionPasses; pass++ {
			veff := math.Max(flow.VelocityInf+0.5*w, EffectiveVelocityFloor)
			w = dT / (denom * veff)
		}
		induced[i] = w

		if dT < 0 {
			dT = 0 // negative local loading is unphysical for a disk
		}
		loading[i] = dT * m.taper[i]
	}

	thrust := integrate.Trapezoidal(m.stations, loading)

	dQ := make([]float64, ns)
	for i := range dQ {
		dQ[i] = m.swirl * loading[i] * m.norm[i]
	}
	torque := integrate.Trapezoidal(m.stations, dQ)

	wAvg := floats.Sum(induced) / float64(ns)
	power := thrust*(flow.VelocityInf+wAvg) + torque*flow.Omega()

	return &Performance{
		Thrust:  thrust,
		Torque:  torque,
		Power:   power,
		Loading: loading,
		Induced: induced,
	}, nil
}
