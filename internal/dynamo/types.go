package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Drive is the neural input signal, queried pointwise in time. Integrators
// call U at every stage evaluation rather than sampling the signal up front,
// so pulse edges land where the signal says they do.
type Drive interface {
	U(t float64) float64
}

type System interface {
	Derive(x State, u float64, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, drive Drive, t float64, dt float64) State
}

type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn System, x State, drive Drive, t, dt, tol float64) (State, float64, error)
}

type Metric interface {
	Name() string
	Observe(x State, u float64, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, u float64, t float64)
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.0001,
		Duration:      1.0,
		ValidateState: true,
	}
}

type Result struct {
	States     []State
	Drives     []float64
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Trace extracts the i-th state component across all recorded samples.
func (r *Result) Trace(i int) []float64 {
	out := make([]float64, len(r.States))
	for j, s := range r.States {
		if i < len(s) {
			out[j] = s[i]
		}
	}
	return out
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
