package experiment

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/musclelab/internal/config"
)

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()
	stim := config.StimulusConfig{Amplitude: 1.0, Duration: 0.2}

	for _, name := range []string{"pulse", "train", "ramp", "constant"} {
		if _, err := reg.GetExcitation(name, stim); err != nil {
			t.Errorf("excitation %q: %v", name, err)
		}
	}
	for _, name := range []string{"euler", "rk4", "rk45"} {
		if _, err := reg.GetIntegrator(name); err != nil {
			t.Errorf("integrator %q: %v", name, err)
		}
	}
	if _, err := reg.GetMuscle("linear"); err != nil {
		t.Errorf("muscle linear: %v", err)
	}

	if _, err := reg.GetExcitation("square", stim); err == nil {
		t.Error("expected error for unknown excitation")
	} else if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error should name the available signals, got: %v", err)
	}
	if _, err := reg.GetIntegrator("rk9"); err == nil {
		t.Error("expected error for unknown integrator")
	}
	if _, err := reg.GetMuscle("hill"); err == nil {
		t.Error("expected error for unknown muscle model")
	}
}

func TestListExcitations(t *testing.T) {
	got := NewRegistry().ListExcitations()
	want := []string{"constant", "pulse", "ramp", "train"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected sorted signal names %v, got %v", want, got)
	}
}

func TestSetupRejectsInvalidScenario(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		mod  func(*config.Config)
	}{
		{"amplitude above 1", func(c *config.Config) { c.Stimulus.Amplitude = 1.5 }},
		{"negative amplitude", func(c *config.Config) { c.Stimulus.Amplitude = -0.5 }},
		{"zero duration", func(c *config.Config) { c.Duration = 0 }},
		{"negative dt", func(c *config.Config) { c.Dt = -0.0001 }},
		{"unknown excitation", func(c *config.Config) { c.Excitation = "square" }},
		{"unknown integrator", func(c *config.Config) { c.Integrator = "midpoint" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mod(cfg)
			if err := New(cfg).Setup(reg); err == nil {
				t.Error("expected setup to fail, got nil")
			}
		})
	}
}

func TestRunBeforeSetup(t *testing.T) {
	e := New(config.DefaultConfig())
	if _, err := e.Run(context.Background()); err == nil {
		t.Error("expected error when running before setup")
	}
}

func TestRunProducesAlignedOutcome(t *testing.T) {
	cfg := config.DefaultConfig()
	e := New(cfg)
	if err := e.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	out, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	wantSamples := int(cfg.Duration/cfg.Dt+0.5) + 1
	if len(out.Activation.Times) != wantSamples {
		t.Errorf("expected %d activation samples, got %d", wantSamples, len(out.Activation.Times))
	}
	if len(out.Forces.Force) != wantSamples {
		t.Errorf("expected %d force samples, got %d", wantSamples, len(out.Forces.Force))
	}

	// defaults produce a full contraction-relaxation cycle
	if out.Activation.Metrics["peak_activation"] < 0.99 {
		t.Errorf("expected near-maximal peak, got %f", out.Activation.Metrics["peak_activation"])
	}
	rise := out.Activation.Metrics["rise_time"]
	if math.IsNaN(rise) || rise > 0.01 {
		t.Errorf("expected millisecond-scale rise time, got %f", rise)
	}
	decay := out.Activation.Metrics["decay_time"]
	if math.IsNaN(decay) || decay < 0.05 || decay > 0.5 {
		t.Errorf("expected tens-of-milliseconds decay time, got %f", decay)
	}
	if out.Activation.Metrics["bounds_violations"] != 0 {
		t.Errorf("activation left [0,1]: %f violations", out.Activation.Metrics["bounds_violations"])
	}
}

func TestRampScenarioSkipsPulseDuration(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Excitation = "ramp"
	cfg.Stimulus.Rise = 0.5
	cfg.Stimulus.Amplitude = 0.8
	cfg.Stimulus.Duration = 0 // ramps have no pulse width

	e := New(cfg)
	if err := e.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	out, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.Activation.Metrics["peak_activation"] <= 0 {
		t.Error("ramp drive produced no activation")
	}
}
