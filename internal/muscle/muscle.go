package muscle

// StepResult carries the outputs of one musculotendon step.
type StepResult struct {
	Force     float64 // total musculotendon force
	CEForce   float64 // contractile element force
	IsoFactor float64 // isometric force factor at current length
	SEEForce  float64 // series elastic element force
	SEELength float64 // series elastic element length
}

// Model is the muscle-mechanics stepper consumed by the simulation. The
// activation dynamics treat it as a black box: one Step per grid interval,
// driven by the current activation sample.
type Model interface {
	Step(activation, dt float64) StepResult
	CEVelocity() float64
	MaxForce() float64
	Reset()
}

// ForceTraces accumulates per-step muscle outputs aligned with the
// activation grid.
type ForceTraces struct {
	Force      []float64
	CEForce    []float64
	IsoFactor  []float64
	SEEForce   []float64
	SEELength  []float64
	CEVelocity []float64
}

func NewForceTraces(capacity int) *ForceTraces {
	return &ForceTraces{
		Force:      make([]float64, 0, capacity),
		CEForce:    make([]float64, 0, capacity),
		IsoFactor:  make([]float64, 0, capacity),
		SEEForce:   make([]float64, 0, capacity),
		SEELength:  make([]float64, 0, capacity),
		CEVelocity: make([]float64, 0, capacity),
	}
}

func (ft *ForceTraces) Append(r StepResult, ceVel float64) {
	ft.Force = append(ft.Force, r.Force)
	ft.CEForce = append(ft.CEForce, r.CEForce)
	ft.IsoFactor = append(ft.IsoFactor, r.IsoFactor)
	ft.SEEForce = append(ft.SEEForce, r.SEEForce)
	ft.SEELength = append(ft.SEELength, r.SEELength)
	ft.CEVelocity = append(ft.CEVelocity, ceVel)
}

// Run steps the model over an entire activation trace. The trace is
// read-only input; the model owns all mechanical state.
func Run(m Model, activations []float64, dt float64) *ForceTraces {
	ft := NewForceTraces(len(activations))
	for _, a := range activations {
		r := m.Step(a, dt)
		ft.Append(r, m.CEVelocity())
	}
	return ft
}
