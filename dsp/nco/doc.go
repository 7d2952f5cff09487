// Package nco provides a numerically-controlled oscillator for complex
// baseband mixing.
//
// An [Oscillator] keeps a running phase and a per-sample phase increment.
// Each mix operation multiplies the input by e^{+-j*phase} and then
// advances the phase by the increment, so consecutive calls trace a
// continuous trajectory.
package nco
