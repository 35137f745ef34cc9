package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/musclelab/internal/activation"
	"github.com/san-kum/musclelab/internal/config"
	"github.com/san-kum/musclelab/internal/dynamo"
	"github.com/san-kum/musclelab/internal/muscle"
)

// Experiment runs one complete scenario: validate, solve the activation
// ODE over the grid, then feed every activation sample through the muscle
// stepper.
type Experiment struct {
	cfg       *config.Config
	simulator *dynamo.Simulator
	drive     dynamo.Drive
	mus       muscle.Model
}

// Outcome bundles the activation solve with the muscle pass.
type Outcome struct {
	Activation *dynamo.Result
	Forces     *muscle.ForceTraces
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(reg *Registry) error {
	scen := activation.Scenario{
		PulseAmplitude: e.cfg.Stimulus.Amplitude,
		PulseDuration:  e.cfg.Stimulus.Duration,
		TotalDuration:  e.cfg.Duration,
		Dt:             e.cfg.Dt,
	}
	if e.cfg.Excitation == "ramp" || e.cfg.Excitation == "constant" {
		// these signals have no pulse duration; skip that check
		scen.PulseDuration = 0
	}
	if err := scen.Validate(); err != nil {
		return err
	}

	drive, err := reg.GetExcitation(e.cfg.Excitation, e.cfg.Stimulus)
	if err != nil {
		return err
	}

	integ, err := reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	mus, err := reg.GetMuscle(e.cfg.Muscle)
	if err != nil {
		return err
	}

	e.drive = drive
	e.mus = mus
	e.simulator = dynamo.New(activation.New(), integ, drive)
	for _, m := range reg.DefaultMetrics(e.cfg.Stimulus) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Outcome, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := dynamo.Config{
		Dt:            e.cfg.Dt,
		Duration:      e.cfg.Duration,
		ValidateState: true,
	}

	result, err := e.simulator.Run(ctx, dynamo.State{0}, simCfg)
	if err != nil {
		return nil, err
	}

	e.mus.Reset()
	forces := muscle.Run(e.mus, result.Trace(0), e.cfg.Dt)

	return &Outcome{Activation: result, Forces: forces}, nil
}

// Simulator exposes the underlying simulator for adding observers.
func (e *Experiment) Simulator() *dynamo.Simulator {
	return e.simulator
}
