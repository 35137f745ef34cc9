package activation

import "fmt"

// Scenario bundles the user-adjustable stimulus parameters for a single
// run. Pulse onset is fixed; see excite.DefaultStart.
type Scenario struct {
	PulseAmplitude float64
	PulseDuration  float64
	TotalDuration  float64
	Dt             float64
}

// Validate fails fast on physically meaningless inputs before any solving
// happens. Numerical failures during the solve are surfaced separately by
// the simulator.
func (s Scenario) Validate() error {
	if s.PulseAmplitude < 0 || s.PulseAmplitude > 1 {
		return fmt.Errorf("pulse amplitude must be in [0,1], got %f", s.PulseAmplitude)
	}
	if s.PulseDuration < 0 {
		return fmt.Errorf("pulse duration must be non-negative, got %f", s.PulseDuration)
	}
	if s.TotalDuration <= 0 {
		return fmt.Errorf("total duration must be positive, got %f", s.TotalDuration)
	}
	if s.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", s.Dt)
	}
	return nil
}
