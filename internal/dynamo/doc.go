// Package dynamo provides core simulation primitives for driven dynamical
// systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for driven ODE systems (dX/dt = f(X, u, t))
//   - [Drive]: scalar input signal u(t), queried pointwise by integrators
//   - [Integrator]: numerical stepping interface
//   - [Simulator]: orchestrates simulation runs over a uniform time grid
//
// # Example
//
//	dyn := activation.New()
//	integ := integrators.NewRK4()
//	sim := dynamo.New(dyn, integ, excite.NewPulse(1.0, 0.2))
//	result, _ := sim.Run(ctx, dynamo.State{0}, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Each run recomputes independently
// from its initial state; reuse across goroutines requires separate
// instances.
package dynamo
