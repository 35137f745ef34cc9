package muscle

// Linear is a deliberately simple built-in stepper: an activation-scaled
// force generator behind a first-order lag, in series with a linearly
// elastic tendon at fixed musculotendon length. It exists so the TUI, plot
// export, and tests run without an external muscle-mechanics library; it
// makes no claim to physiological force-length or force-velocity behavior.
type Linear struct {
	Fmax      float64 // maximum isometric force
	TauForce  float64 // force development lag
	Stiffness float64 // series element stiffness
	SlackLen  float64 // series element slack length
	MTULength float64 // fixed total musculotendon length

	force   float64
	ceLen   float64
	prevLen float64
	lastDt  float64
}

func NewLinear() *Linear {
	m := &Linear{
		Fmax:      1000.0,
		TauForce:  0.01,
		Stiffness: 50000.0,
		SlackLen:  0.20,
		MTULength: 0.50,
	}
	m.Reset()
	return m
}

func (m *Linear) Reset() {
	m.force = 0
	m.ceLen = m.MTULength - m.SlackLen
	m.prevLen = m.ceLen
	m.lastDt = 0
}

func (m *Linear) Step(activation, dt float64) StepResult {
	target := activation * m.Fmax
	m.force += (target - m.force) * dt / m.TauForce

	seeLen := m.SlackLen + m.force/m.Stiffness
	m.prevLen = m.ceLen
	m.ceLen = m.MTULength - seeLen
	m.lastDt = dt

	iso := 0.0
	if m.Fmax > 0 {
		iso = m.force / m.Fmax
	}

	return StepResult{
		Force:     m.force,
		CEForce:   m.force,
		IsoFactor: iso,
		SEEForce:  m.force,
		SEELength: seeLen,
	}
}

func (m *Linear) CEVelocity() float64 {
	if m.lastDt == 0 {
		return 0
	}
	return (m.ceLen - m.prevLen) / m.lastDt
}

func (m *Linear) MaxForce() float64 { return m.Fmax }
