package testutil

import (
	"math"
	"math/rand"
)

// DeterministicTone generates a complex exponential amplitude*e^{j*omega*n}.
func DeterministicTone(omega, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		s, c := math.Sincos(omega * float64(i))
		out[i] = complex(amplitude*c, amplitude*s)
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed.
// Real and imaginary parts are uniform in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value complex128, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// SequenceSource replays a fixed list of normal variates, cycling when exhausted.
// It satisfies noise.Source.
type SequenceSource struct {
	Values []float64
	pos    int
}

// NormFloat64 returns the next value of the sequence.
func (s *SequenceSource) NormFloat64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos]
	s.pos = (s.pos + 1) % len(s.Values)
	return v
}

// Draws returns how many values have been consumed modulo len(Values).
func (s *SequenceSource) Draws() int { return s.pos }
