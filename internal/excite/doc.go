// Package excite provides neural excitation signals u(t) that drive the
// activation dynamics.
//
// Each signal implements the [dynamo.Drive] contract as a pure function of
// time:
//
//   - [Pulse]: single rectangular pulse (the canonical stimulus)
//   - [Train]: repeated rectangular pulses
//   - [Ramp]: linear rise to a plateau
//   - [Constant]: step to a sustained level
//
// Signals carry no state and are total over all real t. The onset is fixed
// at [DefaultStart] (0.2 time units) so all scenarios share the same
// pre-stimulus baseline.
package excite
