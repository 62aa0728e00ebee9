// Package disk implements a radial actuator disk propeller model with a
// parametric loading distribution.
//
// The disk maps polynomial loading coefficients and an operating point to
// integrated performance:
//
//   - [Model]: owns the geometry and the precomputed radial station grid
//   - [Performance]: integrated thrust/torque/power plus the per-station
//     loading and induced-velocity distributions
//
// # Model
//
// Thrust loading per unit radius is a polynomial in normalized radius,
// dimensionalized by the effective axial velocity:
//
//	dT/dr = rho * Vref^2 * R * sum_i c_i * (r/R)^i
//
// Axial induced velocity follows linearized momentum theory,
// w = (dT/dr) / (4*pi*rho*Veff*r), where Veff starts at the free-stream
// velocity and is corrected exactly [InductionPasses] times with
// Veff = Vinf + w/2. The single pass is a deliberate speed/accuracy
// tradeoff, not a converged momentum balance; an iterative blade-element
// extension would replace the constant with a convergence loop. Negative
// loading is clamped to zero before integration, and an empirical tip-loss
// taper reduces loading outboard of 70% radius.
//
// # Thread Safety
//
// A Model is immutable after construction and safe for concurrent use.
// ComputePerformance allocates its result arrays per call.
package disk
