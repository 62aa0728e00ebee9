package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

func scenario(t *testing.T) (*disk.Model, rotor.FlowConditions) {
	t.Helper()
	geom, err := rotor.NewGeometry(0.254, 2, 0.2)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	m, err := disk.New(geom)
	if err != nil {
		t.Fatalf("disk.New: %v", err)
	}
	flow, err := rotor.NewFlowConditions(10.0, 5000.0, 1.225)
	if err != nil {
		t.Fatalf("NewFlowConditions: %v", err)
	}
	return m, flow
}

func TestLoadingMinPower(t *testing.T) {
	m, flow := scenario(t)

	res, err := Loading(context.Background(), m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
	})
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}

	if !res.Converged {
		t.Errorf("Converged = false (status %s)", res.Status)
	}
	if !res.Feasible {
		t.Errorf("Feasible = false")
	}
	if res.Thrust < 15.0-0.01 {
		t.Errorf("Thrust = %v N, want >= thrust target", res.Thrust)
	}
	// The all-upper corner burns about 1394 W for this rotor; a real
	// minimization must land far below it.
	if res.Power >= 700 {
		t.Errorf("Power = %v W, want well below the corner power", res.Power)
	}
	if len(res.Coeffs) != 6 {
		t.Fatalf("len(Coeffs) = %d, want 6", len(res.Coeffs))
	}
	for i, c := range res.Coeffs {
		if c < 0 || c > 8 {
			t.Errorf("Coeffs[%d] = %v, outside [0, 8]", i, c)
		}
	}
	if res.Evaluations == 0 {
		t.Errorf("Evaluations = 0, want > 0")
	}
}

func TestLoadingMaxThrust(t *testing.T) {
	m, flow := scenario(t)

	res, err := Loading(context.Background(), m, flow, Problem{
		Objective:  MaxThrust,
		PowerLimit: 400.0,
		Order:      5,
		Lower:      0,
		Upper:      8,
	})
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}

	if !res.Converged || !res.Feasible {
		t.Errorf("Converged=%v Feasible=%v, want both true (status %s)", res.Converged, res.Feasible, res.Status)
	}
	if res.Power > 400.0+0.01 {
		t.Errorf("Power = %v W, want within the 400 W limit", res.Power)
	}
	// The elliptic baseline gives 2.9 N; a 400 W budget supports far more.
	if res.Thrust < 10.0 {
		t.Errorf("Thrust = %v N, want the budget exploited", res.Thrust)
	}
}

func TestLoadingWithInitial(t *testing.T) {
	m, flow := scenario(t)

	res, err := Loading(context.Background(), m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
		Initial:      []float64{0.5, 1.0, 3.0, 0.0, 0.0, 0.0},
	})
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}
	if !res.Converged || !res.Feasible {
		t.Errorf("Converged=%v Feasible=%v, want both true (status %s)", res.Converged, res.Feasible, res.Status)
	}
	if res.Thrust < 15.0-0.01 {
		t.Errorf("Thrust = %v N, want >= thrust target", res.Thrust)
	}
}

func TestLoadingPenaltyMethod(t *testing.T) {
	m, flow := scenario(t)

	res, err := Loading(context.Background(), m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
		Method:       "penalty",
	})
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}
	if !res.Converged || !res.Feasible {
		t.Errorf("Converged=%v Feasible=%v, want both true (status %s)", res.Converged, res.Feasible, res.Status)
	}
	if res.Thrust < 15.0-0.01 {
		t.Errorf("Thrust = %v N, want >= thrust target", res.Thrust)
	}
}

func TestLoadingGridMethod(t *testing.T) {
	m, flow := scenario(t)

	res, err := Loading(context.Background(), m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
		Method:       "grid",
	})
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}
	if !res.Converged || !res.Feasible {
		t.Fatalf("Converged=%v Feasible=%v, want both true (status %s)", res.Converged, res.Feasible, res.Status)
	}
	if res.Thrust < 15.0-0.01 {
		t.Errorf("Thrust = %v N, want >= thrust target", res.Thrust)
	}
	if res.Evaluations != 15625 {
		t.Errorf("Evaluations = %d, want 5^6 lattice points", res.Evaluations)
	}
}

func TestLoadingDeterministic(t *testing.T) {
	m, flow := scenario(t)
	prob := Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
	}

	a, err := Loading(context.Background(), m, flow, prob)
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}
	b, err := Loading(context.Background(), m, flow, prob)
	if err != nil {
		t.Fatalf("Loading: %v", err)
	}

	if a.Evaluations != b.Evaluations {
		t.Errorf("Evaluations differ between identical runs: %d vs %d", a.Evaluations, b.Evaluations)
	}
	for i := range a.Coeffs {
		if a.Coeffs[i] != b.Coeffs[i] {
			t.Errorf("Coeffs[%d] differ between identical runs: %v vs %v", i, a.Coeffs[i], b.Coeffs[i])
		}
	}
}

func TestLoadingInfeasibleTarget(t *testing.T) {
	m, flow := scenario(t)

	_, err := Loading(context.Background(), m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 1000.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
	})
	if !errors.Is(err, ErrInfeasibleTarget) {
		t.Fatalf("error = %v, want ErrInfeasibleTarget", err)
	}
}

func TestLoadingInvalidConfig(t *testing.T) {
	m, flow := scenario(t)

	cases := []struct {
		name string
		prob Problem
		want error
	}{
		{"negative order", Problem{Objective: MinPower, ThrustTarget: 15, Order: -1, Lower: 0, Upper: 8}, ErrInvalidConfig},
		{"inverted bounds", Problem{Objective: MinPower, ThrustTarget: 15, Order: 5, Lower: 8, Upper: 0}, ErrInvalidConfig},
		{"missing thrust target", Problem{Objective: MinPower, Order: 5, Lower: 0, Upper: 8}, ErrInvalidConfig},
		{"missing power limit", Problem{Objective: MaxThrust, Order: 5, Lower: 0, Upper: 8}, ErrInvalidConfig},
		{"unknown objective", Problem{Objective: "max_efficiency", ThrustTarget: 15, Order: 5, Lower: 0, Upper: 8}, ErrInvalidConfig},
		{"initial guess length", Problem{Objective: MinPower, ThrustTarget: 15, Order: 5, Lower: 0, Upper: 8, Initial: []float64{1, 2}}, ErrInvalidConfig},
		{"unknown method", Problem{Objective: MinPower, ThrustTarget: 15, Order: 5, Lower: 0, Upper: 8, Method: "slsqp"}, ErrUnknownMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Loading(context.Background(), m, flow, tc.prob); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadingCanceled(t *testing.T) {
	m, flow := scenario(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Loading(ctx, m, flow, Problem{
		Objective:    MinPower,
		ThrustTarget: 15.0,
		Order:        5,
		Lower:        0,
		Upper:        8,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
