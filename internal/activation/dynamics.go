package activation

import (
	"fmt"

	"github.com/san-kum/musclelab/internal/dynamo"
)

// Default time constants for excitation-contraction coupling. Activation is
// roughly two orders of magnitude faster than deactivation.
const (
	DefaultTauAct   = 0.001
	DefaultTauDeact = 0.080
)

// Dynamics is the first-order Hill activation model
//
//	da/dt = (u - a) / tau(a, u)
//
// with a state-dependent, asymmetric time constant:
//
//	tau = TauAct * (0.5 + 1.5a)    when u > a  (activating)
//	tau = TauDeact / (0.5 + 1.5a)  when u <= a (deactivating)
//
// The branch is a function of the current state and drive, so it is
// re-selected at every derivative evaluation. The right-hand side is
// Lipschitz but non-smooth at u == a; the true discontinuities are the
// pulse edges of u itself.
type Dynamics struct {
	TauAct   float64
	TauDeact float64
}

func New() *Dynamics {
	return &Dynamics{
		TauAct:   DefaultTauAct,
		TauDeact: DefaultTauDeact,
	}
}

func (d *Dynamics) StateDim() int { return 1 }

func (d *Dynamics) Derive(x dynamo.State, u float64, t float64) dynamo.State {
	a := x[0]
	return dynamo.State{(u - a) / d.Tau(a, u)}
}

// Tau returns the effective time constant for the given activation and
// drive. Both branches scale with (0.5 + 1.5a), which keeps tau strictly
// positive for a in [0,1].
func (d *Dynamics) Tau(a, u float64) float64 {
	f := 0.5 + 1.5*a
	if u > a {
		return d.TauAct * f
	}
	return d.TauDeact / f
}

// SteadyState is the fixed point of the ODE for a constant drive: da/dt = 0
// exactly at a = u.
func (d *Dynamics) SteadyState(u float64) float64 { return u }

func (d *Dynamics) GetParams() map[string]float64 {
	return map[string]float64{
		"tau_act":   d.TauAct,
		"tau_deact": d.TauDeact,
	}
}

func (d *Dynamics) SetParam(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, value)
	}
	switch name {
	case "tau_act":
		d.TauAct = value
	case "tau_deact":
		d.TauDeact = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
