package fir

import (
	"math"
	"math/cmplx"
)

// Filter implements a direct-form FIR filter with complex coefficients.
type Filter struct {
	coeffs []complex128
	delay  []complex128
	pos    int // index of the most recent sample
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
// An empty slice yields a single zero tap.
func New(coeffs []complex128) *Filter {
	if len(coeffs) == 0 {
		coeffs = []complex128{0}
	}
	c := make([]complex128, len(coeffs))
	copy(c, coeffs)
	return &Filter{
		coeffs: c,
		delay:  make([]complex128, len(c)),
		pos:    len(c) - 1,
	}
}

// Push shifts x into the delay line.
func (f *Filter) Push(x complex128) {
	f.pos++
	if f.pos >= len(f.delay) {
		f.pos = 0
	}
	f.delay[f.pos] = x
}

// Output evaluates the filter for the current delay-line contents
// without modifying state.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) Output() complex128 {
	var y complex128
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	return y
}

// ProcessSample pushes x and returns the filtered output.
func (f *Filter) ProcessSample(x complex128) complex128 {
	f.Push(x)
	return f.Output()
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []complex128) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least len(src) long.
func (f *Filter) ProcessBlockTo(dst, src []complex128) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = len(f.delay) - 1
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.coeffs)
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []complex128 {
	c := make([]complex128, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response H(e^{jw}) at the
// normalized angular frequency w in radians/sample.
func (f *Filter) Response(w float64) complex128 {
	var h complex128
	for k, c := range f.coeffs {
		h += c * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at w radians/sample.
func (f *Filter) MagnitudeDB(w float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(w)))
}

// Energy returns sum |h[k]|^2, the power gain for white input.
func (f *Filter) Energy() float64 {
	var e float64
	for _, c := range f.coeffs {
		e += real(c)*real(c) + imag(c)*imag(c)
	}
	return e
}
