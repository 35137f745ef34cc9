package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/musclelab/internal/dynamo"
)

// feed pumps a synthetic activation trace through a metric on a uniform grid.
func feed(m dynamo.Metric, values []float64, dt float64) {
	for i, v := range values {
		m.Observe(dynamo.State{v}, 0, float64(i)*dt)
	}
}

func TestPeak(t *testing.T) {
	p := NewPeak()
	feed(p, []float64{0, 0.3, 0.9, 0.4, 0.1}, 0.1)

	if p.Value() != 0.9 {
		t.Errorf("expected peak 0.9, got %f", p.Value())
	}

	p.Reset()
	if p.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", p.Value())
	}
}

func TestRiseTime(t *testing.T) {
	r := NewRiseTime(0.2, 1.0, 0.9)

	// crosses 0.9 at t=0.4, onset at 0.2
	times := []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5}
	values := []float64{0.0, 0.0, 0.0, 0.5, 0.95, 1.0}
	for i := range times {
		r.Observe(dynamo.State{values[i]}, 0, times[i])
	}

	if math.Abs(r.Value()-0.2) > 1e-12 {
		t.Errorf("expected rise time 0.2, got %f", r.Value())
	}
}

func TestRiseTimeNeverReached(t *testing.T) {
	r := NewRiseTime(0.2, 1.0, 0.9)
	feed(r, []float64{0, 0.1, 0.2, 0.3}, 0.1)

	if !math.IsNaN(r.Value()) {
		t.Errorf("expected NaN when level never reached, got %f", r.Value())
	}
}

func TestRiseTimeIgnoresPreOnset(t *testing.T) {
	r := NewRiseTime(0.5, 1.0, 0.9)

	// high value before onset must not count
	r.Observe(dynamo.State{0.95}, 0, 0.1)
	if !math.IsNaN(r.Value()) {
		t.Error("pre-onset crossing should not register")
	}
	r.Observe(dynamo.State{0.95}, 0, 0.6)
	if math.Abs(r.Value()-0.1) > 1e-12 {
		t.Errorf("expected rise time 0.1, got %f", r.Value())
	}
}

func TestDecayTime(t *testing.T) {
	d := NewDecayTime(0.3, 0.1)

	// value at offset is 1.0; falls to 0.1*1.0 at t=0.6
	times := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	values := []float64{0.5, 0.9, 1.0, 0.6, 0.3, 0.08, 0.02}
	for i := range times {
		d.Observe(dynamo.State{values[i]}, 0, times[i])
	}

	if math.Abs(d.Value()-0.3) > 1e-12 {
		t.Errorf("expected decay time 0.3, got %f", d.Value())
	}
}

func TestDecayTimeNeverFalls(t *testing.T) {
	d := NewDecayTime(0.1, 0.1)
	feed(d, []float64{1.0, 0.9, 0.8, 0.7}, 0.1)

	if !math.IsNaN(d.Value()) {
		t.Errorf("expected NaN when trace never decays far enough, got %f", d.Value())
	}
}

func TestImpulse(t *testing.T) {
	im := NewImpulse()

	// constant 0.5 for 1s: rectangle sum over (n-1) intervals
	n := 11
	for i := 0; i < n; i++ {
		im.Observe(dynamo.State{0.5}, 0, float64(i)*0.1)
	}

	if math.Abs(im.Value()-0.5) > 1e-12 {
		t.Errorf("expected impulse 0.5, got %f", im.Value())
	}

	im.Reset()
	if im.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", im.Value())
	}
}

func TestBoundsViolations(t *testing.T) {
	b := NewBoundsViolations()
	feed(b, []float64{0, 0.5, 1.0, 1.1, -0.2, 0.3}, 0.1)

	if b.Value() != 2 {
		t.Errorf("expected 2 violations, got %f", b.Value())
	}

	// numerical slack: tiny overshoot does not count
	b.Reset()
	feed(b, []float64{1 + 1e-12, -1e-12}, 0.1)
	if b.Value() != 0 {
		t.Errorf("expected slack to absorb rounding, got %f violations", b.Value())
	}
}
