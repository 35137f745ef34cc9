package dynamo

import (
	"context"
	"fmt"
)

// Simulator advances a System over a uniform time grid, driven by a Drive.
// The loop is strictly sequential; each run starts fresh from the supplied
// initial state.
type Simulator struct {
	dyn        System
	integrator Integrator
	drive      Drive
	metrics    []Metric
	observers  []Observer
}

func New(dyn System, integrator Integrator, drive Drive) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		drive:      drive,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		States:  make([]State, 0, steps+1),
		Drives:  make([]float64, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0

	result.States = append(result.States, x.Clone())
	result.Drives = append(result.Drives, s.drive.U(t))
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := s.drive.U(t)

		for _, m := range s.metrics {
			m.Observe(x, u, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, u, t)
		}

		newX := s.integrator.Step(s.dyn, x, s.drive, t, cfg.Dt)

		if cfg.ValidateState && !newX.IsValid() {
			return result, SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
		}

		x = newX
		// grid time, not accumulated dt, to keep samples aligned
		t = float64(i+1) * cfg.Dt
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Drives = append(result.Drives, s.drive.U(t))
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps without recording; callback returning false stops
// the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 State, cfg Config, callback func(State, float64, float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	x := x0.Clone()
	steps := int(cfg.Duration/cfg.Dt + 0.5)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		u := s.drive.U(t)

		if !callback(x, u, t) {
			return nil
		}

		x = s.integrator.Step(s.dyn, x, s.drive, t, cfg.Dt)

		if cfg.ValidateState && !x.IsValid() {
			return SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
		}
	}

	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
