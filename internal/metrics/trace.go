package metrics

import (
	"math"

	"github.com/san-kum/musclelab/internal/dynamo"
)

// Peak records the maximum activation seen during a run.
type Peak struct {
	max float64
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_activation" }

func (p *Peak) Observe(x dynamo.State, u float64, t float64) {
	if len(x) > 0 && x[0] > p.max {
		p.max = x[0]
	}
}

func (p *Peak) Value() float64 { return p.max }
func (p *Peak) Reset()         { p.max = 0 }

// RiseTime measures the time from stimulus onset until activation first
// reaches a fraction of the steady level. NaN if the level is never
// reached.
type RiseTime struct {
	onset    float64
	level    float64
	fraction float64
	reached  bool
	at       float64
}

func NewRiseTime(onset, level, fraction float64) *RiseTime {
	return &RiseTime{onset: onset, level: level, fraction: fraction}
}

func (r *RiseTime) Name() string { return "rise_time" }

func (r *RiseTime) Observe(x dynamo.State, u float64, t float64) {
	if r.reached || len(x) == 0 || t < r.onset {
		return
	}
	if x[0] >= r.fraction*r.level && r.level > 0 {
		r.reached = true
		r.at = t
	}
}

func (r *RiseTime) Value() float64 {
	if !r.reached {
		return math.NaN()
	}
	return r.at - r.onset
}

func (r *RiseTime) Reset() {
	r.reached = false
	r.at = 0
}

// DecayTime measures the time from stimulus offset until activation falls
// to a fraction of its value at offset. NaN if it never falls that far
// within the run.
type DecayTime struct {
	offset   float64
	fraction float64
	atOffset float64
	fell     bool
	at       float64
}

func NewDecayTime(offset, fraction float64) *DecayTime {
	return &DecayTime{offset: offset, fraction: fraction}
}

func (d *DecayTime) Name() string { return "decay_time" }

func (d *DecayTime) Observe(x dynamo.State, u float64, t float64) {
	if len(x) == 0 || d.fell {
		return
	}
	if t <= d.offset {
		d.atOffset = x[0]
		return
	}
	if d.atOffset > 0 && x[0] <= d.fraction*d.atOffset {
		d.fell = true
		d.at = t
	}
}

func (d *DecayTime) Value() float64 {
	if !d.fell {
		return math.NaN()
	}
	return d.at - d.offset
}

func (d *DecayTime) Reset() {
	d.atOffset = 0
	d.fell = false
	d.at = 0
}

// Impulse integrates activation over time (trapezoid-free running sum; the
// grid is fine enough that rectangle accumulation is adequate).
type Impulse struct {
	sum   float64
	prevT float64
	first bool
}

func NewImpulse() *Impulse { return &Impulse{first: true} }

func (im *Impulse) Name() string { return "activation_impulse" }

func (im *Impulse) Observe(x dynamo.State, u float64, t float64) {
	if len(x) == 0 {
		return
	}
	if im.first {
		im.first = false
		im.prevT = t
		return
	}
	im.sum += x[0] * (t - im.prevT)
	im.prevT = t
}

func (im *Impulse) Value() float64 { return im.sum }

func (im *Impulse) Reset() {
	im.sum = 0
	im.prevT = 0
	im.first = true
}

// BoundsViolations counts samples where activation leaves [0,1] by more
// than a small numerical slack.
type BoundsViolations struct {
	count float64
}

func NewBoundsViolations() *BoundsViolations { return &BoundsViolations{} }

func (b *BoundsViolations) Name() string { return "bounds_violations" }

func (b *BoundsViolations) Observe(x dynamo.State, u float64, t float64) {
	const slack = 1e-9
	if len(x) > 0 && (x[0] < -slack || x[0] > 1+slack) {
		b.count++
	}
}

func (b *BoundsViolations) Value() float64 { return b.count }
func (b *BoundsViolations) Reset()         { b.count = 0 }
