// Package fir provides a direct-form complex FIR filter runtime.
//
// A [Filter] applies a fixed set of complex coefficients to a stream of
// complex baseband samples using a circular-buffer delay line. It is meant
// for the short tap counts used to model multipath channels.
//
// Processing is split into [Filter.Push], which shifts a sample into the
// delay line, and [Filter.Output], which evaluates the convolution sum for
// the current delay-line contents. [Filter.ProcessSample] does both.
package fir
