package excite

// DefaultStart is the fixed onset time of the neural drive. Every signal in
// this package stays at zero until this time so traces share a common
// pre-stimulus baseline.
const DefaultStart = 0.2

// Pulse is a rectangular excitation: Amplitude on the open interval
// (Start, Start+Duration), zero everywhere else. It is pure and stateless;
// the value is recomputed at every query.
type Pulse struct {
	Amplitude float64
	Duration  float64
	Start     float64
}

func NewPulse(amplitude, duration float64) *Pulse {
	return &Pulse{
		Amplitude: amplitude,
		Duration:  duration,
		Start:     DefaultStart,
	}
}

func (p *Pulse) U(t float64) float64 {
	if t > p.Start && t < p.Start+p.Duration {
		return p.Amplitude
	}
	return 0
}

// Sample evaluates the signal over a time grid. The result is used for
// plotting and diagnostics only; integrators query U directly so that the
// pulse edges are not smeared by grid alignment.
func Sample(sig interface{ U(t float64) float64 }, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = sig.U(t)
	}
	return out
}
