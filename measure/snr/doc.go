// Package snr measures signal power and signal-to-noise ratio of impaired
// complex baseband buffers against a clean reference.
//
// [Measure] fits the impaired buffer as y = g*x + n by least squares, so a
// flat channel gain or phase rotation is attributed to the signal and only
// the residual counts as noise.
package snr
