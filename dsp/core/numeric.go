package core

import (
	"math"
	"math/cmplx"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The tolerance is absolute for small values and relative for large ones.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// ComplexNearlyEqual reports whether |a-b| <= eps.
func ComplexNearlyEqual(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	return cmplx.Abs(a-b) <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// WrapPhase maps phi into the interval (-pi, pi].
func WrapPhase(phi float64) float64 {
	if phi > -math.Pi && phi <= math.Pi {
		return phi
	}
	phi = math.Mod(phi+math.Pi, 2*math.Pi)
	if phi <= 0 {
		phi += 2 * math.Pi
	}
	phi -= math.Pi
	if phi <= -math.Pi {
		return math.Pi
	}
	return phi
}

// HzToRadiansPerSample converts a frequency in Hz to a normalized angular
// frequency in radians/sample.
func HzToRadiansPerSample(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// RadiansPerSampleToHz is the inverse of [HzToRadiansPerSample].
func RadiansPerSampleToHz(omega, sampleRate float64) float64 {
	return omega * sampleRate / (2 * math.Pi)
}
