package excite

import "math"

// Train is a sequence of identical rectangular pulses at a fixed rate,
// approximating repeated stimulation. Pulses start at Start and repeat
// every Period until the end of the run.
type Train struct {
	Amplitude float64
	Width     float64
	Period    float64
	Start     float64
}

func NewTrain(amplitude, width, period float64) *Train {
	return &Train{
		Amplitude: amplitude,
		Width:     width,
		Period:    period,
		Start:     DefaultStart,
	}
}

func (tr *Train) U(t float64) float64 {
	if t <= tr.Start || tr.Period <= 0 {
		return 0
	}
	phase := math.Mod(t-tr.Start, tr.Period)
	if phase > 0 && phase < tr.Width {
		return tr.Amplitude
	}
	return 0
}

// Ramp rises linearly from zero at Start to Amplitude over Rise time, then
// holds.
type Ramp struct {
	Amplitude float64
	Rise      float64
	Start     float64
}

func NewRamp(amplitude, rise float64) *Ramp {
	return &Ramp{
		Amplitude: amplitude,
		Rise:      rise,
		Start:     DefaultStart,
	}
}

func (r *Ramp) U(t float64) float64 {
	if t <= r.Start {
		return 0
	}
	if r.Rise <= 0 || t >= r.Start+r.Rise {
		return r.Amplitude
	}
	return r.Amplitude * (t - r.Start) / r.Rise
}

// Constant holds Amplitude from Start onward.
type Constant struct {
	Amplitude float64
	Start     float64
}

func NewConstant(amplitude float64) *Constant {
	return &Constant{Amplitude: amplitude, Start: DefaultStart}
}

func (c *Constant) U(t float64) float64 {
	if t <= c.Start {
		return 0
	}
	return c.Amplitude
}
