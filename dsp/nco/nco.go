package nco

import (
	"math"

	"github.com/cwbudde/algo-channel/dsp/core"
)

// Oscillator is a phase-accumulating complex oscillator.
//
// The zero value is a valid oscillator at zero frequency and zero phase.
type Oscillator struct {
	theta  float64 // instantaneous phase in (-pi, pi]
	dtheta float64 // phase increment in radians/sample
}

// New creates an oscillator with zero frequency and zero phase.
func New() *Oscillator {
	return &Oscillator{}
}

// SetFrequency sets the phase increment in radians/sample.
// The running phase is not changed.
func (o *Oscillator) SetFrequency(dtheta float64) {
	o.dtheta = dtheta
}

// AdjustFrequency adds delta to the phase increment.
func (o *Oscillator) AdjustFrequency(delta float64) {
	o.dtheta += delta
}

// SetPhase sets the instantaneous phase in radians.
func (o *Oscillator) SetPhase(theta float64) {
	o.theta = core.WrapPhase(theta)
}

// AdjustPhase adds delta to the instantaneous phase.
func (o *Oscillator) AdjustPhase(delta float64) {
	o.theta = core.WrapPhase(o.theta + delta)
}

// Frequency returns the phase increment in radians/sample.
func (o *Oscillator) Frequency() float64 { return o.dtheta }

// Phase returns the instantaneous phase in (-pi, pi].
func (o *Oscillator) Phase() float64 { return o.theta }

// Reset sets phase and frequency back to zero.
func (o *Oscillator) Reset() {
	o.theta = 0
	o.dtheta = 0
}

// Step advances the phase by one sample.
func (o *Oscillator) Step() {
	o.theta = core.WrapPhase(o.theta + o.dtheta)
}

// Value returns e^{j*phase} without advancing.
func (o *Oscillator) Value() complex128 {
	s, c := math.Sincos(o.theta)
	return complex(c, s)
}

// MixUp returns x * e^{j*phase} and advances the phase.
func (o *Oscillator) MixUp(x complex128) complex128 {
	y := x * o.Value()
	o.Step()
	return y
}

// MixDown returns x * e^{-j*phase} and advances the phase.
func (o *Oscillator) MixDown(x complex128) complex128 {
	s, c := math.Sincos(o.theta)
	y := x * complex(c, -s)
	o.Step()
	return y
}

// MixBlockUp mixes src into dst. dst must be at least len(src) long.
func (o *Oscillator) MixBlockUp(dst, src []complex128) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = o.MixUp(x)
	}
}

// MixBlockDown mixes src into dst at the negative frequency.
// dst must be at least len(src) long.
func (o *Oscillator) MixBlockDown(dst, src []complex128) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = o.MixDown(x)
	}
}
