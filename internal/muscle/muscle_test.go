package muscle

import (
	"math"
	"testing"
)

func TestLinearForceTracksActivation(t *testing.T) {
	m := NewLinear()

	// hold full activation long past the force lag
	var r StepResult
	for i := 0; i < 10000; i++ {
		r = m.Step(1.0, 0.0001)
	}

	if math.Abs(r.Force-m.Fmax) > 0.01*m.Fmax {
		t.Errorf("expected force near Fmax %.1f, got %.1f", m.Fmax, r.Force)
	}
	if math.Abs(r.IsoFactor-1.0) > 0.01 {
		t.Errorf("expected iso factor near 1, got %f", r.IsoFactor)
	}
}

func TestLinearZeroActivationZeroForce(t *testing.T) {
	m := NewLinear()

	for i := 0; i < 100; i++ {
		r := m.Step(0.0, 0.0001)
		if r.Force != 0 {
			t.Fatalf("force appeared without activation: %f", r.Force)
		}
	}
	if m.CEVelocity() != 0 {
		t.Errorf("expected no fiber motion at rest, got %f", m.CEVelocity())
	}
}

func TestLinearCEShortensUnderRisingForce(t *testing.T) {
	m := NewLinear()

	// as force develops the tendon stretches, so the fiber shortens
	for i := 0; i < 50; i++ {
		m.Step(1.0, 0.0001)
	}
	if m.CEVelocity() >= 0 {
		t.Errorf("expected negative fiber velocity during force rise, got %f", m.CEVelocity())
	}
}

func TestLinearSEELength(t *testing.T) {
	m := NewLinear()

	r := m.Step(0.0, 0.0001)
	if r.SEELength != m.SlackLen {
		t.Errorf("unloaded tendon should sit at slack length, got %f", r.SEELength)
	}

	for i := 0; i < 10000; i++ {
		r = m.Step(1.0, 0.0001)
	}
	wantStretch := m.Fmax / m.Stiffness
	if math.Abs(r.SEELength-(m.SlackLen+wantStretch)) > 0.01*wantStretch {
		t.Errorf("expected tendon length near %f, got %f", m.SlackLen+wantStretch, r.SEELength)
	}
}

func TestLinearReset(t *testing.T) {
	m := NewLinear()
	for i := 0; i < 100; i++ {
		m.Step(1.0, 0.0001)
	}
	m.Reset()

	r := m.Step(0.0, 0.0001)
	if r.Force != 0 {
		t.Errorf("expected zero force after reset, got %f", r.Force)
	}
	if m.CEVelocity() != 0 {
		t.Errorf("expected zero fiber velocity after reset, got %f", m.CEVelocity())
	}
}

func TestRunAlignsWithActivationGrid(t *testing.T) {
	activations := []float64{0, 0, 0.5, 1.0, 1.0, 0.5, 0}
	traces := Run(NewLinear(), activations, 0.0001)

	if len(traces.Force) != len(activations) {
		t.Fatalf("expected %d force samples, got %d", len(activations), len(traces.Force))
	}
	if len(traces.CEVelocity) != len(activations) {
		t.Fatalf("expected %d velocity samples, got %d", len(activations), len(traces.CEVelocity))
	}
	if traces.Force[0] != 0 {
		t.Errorf("expected zero force before activation, got %f", traces.Force[0])
	}
	if traces.Force[4] <= traces.Force[2] {
		t.Errorf("force should grow under sustained activation: %v", traces.Force)
	}
}
