package cfo

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-channel/dsp/core"
)

const defaultPadFactor = 4

// Errors returned by the estimators.
var (
	ErrEmpty        = errors.New("cfo: input is empty")
	ErrInvalidOrder = errors.New("cfo: modulation order must be >= 1")
)

// Result holds a carrier frequency offset estimate.
type Result struct {
	Frequency float64 // radians/sample in (-pi, pi]
	Bin       int     // index of the peak bin
	FFTSize   int
	Magnitude float64 // |X[Bin]| normalized by the input length
}

// Hz converts the estimate to Hz at sampleRate.
func (r Result) Hz(sampleRate float64) float64 {
	return core.RadiansPerSampleToHz(r.Frequency, sampleRate)
}

// Estimate returns the dominant tone frequency of x.
func Estimate(x []complex128) (Result, error) {
	if len(x) == 0 {
		return Result{}, ErrEmpty
	}

	n := nextPow2(len(x) * defaultPadFactor)
	in := make([]complex128, n)
	copy(in, x)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("cfo: fft plan: %w", err)
	}
	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return Result{}, fmt.Errorf("cfo: fft: %w", err)
	}

	peak := 0
	peakMag := 0.0
	for k, v := range bins {
		if m := cmplx.Abs(v); m > peakMag {
			peak, peakMag = k, m
		}
	}

	delta := 0.0
	if n >= 3 {
		a := cmplx.Abs(bins[(peak-1+n)%n])
		b := peakMag
		c := cmplx.Abs(bins[(peak+1)%n])
		if den := a - 2*b + c; den != 0 {
			delta = 0.5 * (a - c) / den
		}
	}

	return Result{
		Frequency: core.WrapPhase(2 * math.Pi * (float64(peak) + delta) / float64(n)),
		Bin:       peak,
		FFTSize:   n,
		Magnitude: peakMag / float64(len(x)),
	}, nil
}

// EstimateMPSK estimates the carrier offset of an M-PSK signal. The
// returned frequency is ambiguous modulo 2*pi/order.
func EstimateMPSK(x []complex128, order int) (Result, error) {
	if order < 1 {
		return Result{}, ErrInvalidOrder
	}
	if len(x) == 0 {
		return Result{}, ErrEmpty
	}

	raised := make([]complex128, len(x))
	for i, v := range x {
		raised[i] = cmplx.Pow(v, complex(float64(order), 0))
	}

	r, err := Estimate(raised)
	if err != nil {
		return Result{}, err
	}
	r.Frequency /= float64(order)
	return r, nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
