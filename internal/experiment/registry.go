package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/musclelab/internal/config"
	"github.com/san-kum/musclelab/internal/dynamo"
	"github.com/san-kum/musclelab/internal/excite"
	"github.com/san-kum/musclelab/internal/integrators"
	"github.com/san-kum/musclelab/internal/metrics"
	"github.com/san-kum/musclelab/internal/muscle"
)

type Registry struct {
	excitations map[string]func(config.StimulusConfig) dynamo.Drive
	integrators map[string]func() dynamo.Integrator
	muscles     map[string]func() muscle.Model
}

func NewRegistry() *Registry {
	r := &Registry{
		excitations: make(map[string]func(config.StimulusConfig) dynamo.Drive),
		integrators: make(map[string]func() dynamo.Integrator),
		muscles:     make(map[string]func() muscle.Model),
	}

	r.excitations["pulse"] = func(s config.StimulusConfig) dynamo.Drive {
		return excite.NewPulse(s.Amplitude, s.Duration)
	}
	r.excitations["train"] = func(s config.StimulusConfig) dynamo.Drive {
		return excite.NewTrain(s.Amplitude, s.Duration, s.Period)
	}
	r.excitations["ramp"] = func(s config.StimulusConfig) dynamo.Drive {
		return excite.NewRamp(s.Amplitude, s.Rise)
	}
	r.excitations["constant"] = func(s config.StimulusConfig) dynamo.Drive {
		return excite.NewConstant(s.Amplitude)
	}

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() dynamo.Integrator { return integrators.NewRK45() }

	r.muscles["linear"] = func() muscle.Model { return muscle.NewLinear() }

	return r
}

func (r *Registry) GetExcitation(name string, s config.StimulusConfig) (dynamo.Drive, error) {
	fn, ok := r.excitations[name]
	if !ok {
		return nil, fmt.Errorf("unknown excitation: %s (available: %v)", name, r.ListExcitations())
	}
	return fn(s), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetMuscle(name string) (muscle.Model, error) {
	fn, ok := r.muscles[name]
	if !ok {
		return nil, fmt.Errorf("unknown muscle model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListExcitations() []string {
	names := make([]string, 0, len(r.excitations))
	for name := range r.excitations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics wires the standard trace metrics for a pulse scenario.
func (r *Registry) DefaultMetrics(s config.StimulusConfig) []dynamo.Metric {
	onset := excite.DefaultStart
	return []dynamo.Metric{
		metrics.NewPeak(),
		metrics.NewRiseTime(onset, s.Amplitude, 0.9),
		metrics.NewDecayTime(onset+s.Duration, 0.1),
		metrics.NewImpulse(),
		metrics.NewBoundsViolations(),
	}
}
