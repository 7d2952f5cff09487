package snr

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-channel/dsp/core"
)

// Errors returned by SNR measurement functions.
var (
	ErrEmpty          = errors.New("snr: input is empty")
	ErrLengthMismatch = errors.New("snr: reference and impaired lengths differ")
	ErrZeroReference  = errors.New("snr: reference has zero power")
)

// Result holds the outcome of an SNR measurement.
type Result struct {
	Gain        complex128 // least-squares complex gain from reference to impaired
	SignalPower float64    // mean power of Gain*reference
	NoisePower  float64    // mean power of the residual
	SNR         float64    // linear power ratio
	SNRDB       float64    // SNR in dB
}

// MeanPower returns the mean of |x[i]|^2. It returns 0 for an empty slice.
func MeanPower(x []complex128) float64 {
	if len(x) == 0 {
		return 0
	}

	n := len(x)
	re := make([]float64, n)
	im := make([]float64, n)
	core.SplitComplex(re, im, x)
	vecmath.Power(re, re, im)

	var sum float64
	for _, p := range re {
		sum += p
	}
	return sum / float64(n)
}

// MeanPowerDB returns MeanPower in dB.
func MeanPowerDB(x []complex128) float64 {
	return core.LinearPowerToDB(MeanPower(x))
}

// Measure estimates the SNR of impaired relative to reference.
func Measure(reference, impaired []complex128) (Result, error) {
	if len(reference) == 0 || len(impaired) == 0 {
		return Result{}, ErrEmpty
	}
	if len(reference) != len(impaired) {
		return Result{}, ErrLengthMismatch
	}

	var cross complex128
	var refEnergy float64
	for i, x := range reference {
		cross += impaired[i] * complex(real(x), -imag(x))
		refEnergy += real(x)*real(x) + imag(x)*imag(x)
	}
	if refEnergy == 0 {
		return Result{}, ErrZeroReference
	}
	g := cross / complex(refEnergy, 0)

	residual := make([]complex128, len(impaired))
	for i, x := range reference {
		residual[i] = impaired[i] - g*x
	}

	n := float64(len(reference))
	signal := (real(g)*real(g) + imag(g)*imag(g)) * refEnergy / n
	noise := MeanPower(residual)

	r := Result{
		Gain:        g,
		SignalPower: signal,
		NoisePower:  noise,
	}
	if noise == 0 {
		r.SNR = math.Inf(1)
		r.SNRDB = math.Inf(1)
		return r, nil
	}
	r.SNR = signal / noise
	r.SNRDB = core.LinearPowerToDB(r.SNR)
	return r, nil
}
