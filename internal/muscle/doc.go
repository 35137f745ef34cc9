// Package muscle defines the muscle-mechanics stepper consumed by the
// simulation and a minimal built-in implementation.
//
// The activation core only depends on the [Model] interface: one
// Step(activation, dt) per grid interval, returning forces and series
// element state, plus a readable contractile element velocity. Real
// Hill-type constitutive behavior (force-length, force-velocity curves)
// belongs to an external library and is out of scope here; [Linear] stands
// in so the rest of the lab is usable end to end.
package muscle
