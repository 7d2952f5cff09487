// Package signal generates deterministic complex baseband test signals.
package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-channel/dsp/core"
	"github.com/cwbudde/algo-channel/dsp/noise"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise and symbol generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed changes the random seed.
func (g *Generator) SetSeed(seed uint64) { g.seed = seed }

// Seed returns the random seed.
func (g *Generator) Seed() uint64 { return g.seed }

// ComplexTone generates amplitude*e^{j*2*pi*freqHz*n/sampleRate}.
// Negative frequencies rotate clockwise.
func (g *Generator) ComplexTone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]complex128, samples)
	step := g.cfg.RadiansPerSample(freqHz)
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = complex(amplitude*c, amplitude*s)
	}
	return out, nil
}

// ComplexNoise generates circularly-symmetric Gaussian noise with total
// power stdDev^2.
func (g *Generator) ComplexNoise(stdDev float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if stdDev < 0 {
		return nil, fmt.Errorf("noise standard deviation must be >= 0: %f", stdDev)
	}
	out := make([]complex128, samples)
	noise.Fill(out, noise.NewGaussian(g.seed), stdDev)
	return out, nil
}

// QPSK generates random unit-power QPSK symbols (+-1 +-j)/sqrt(2).
func (g *Generator) QPSK(symbols int) ([]complex128, error) {
	if symbols <= 0 {
		return nil, fmt.Errorf("qpsk symbols must be > 0: %d", symbols)
	}
	rng := rand.New(rand.NewPCG(g.seed, g.seed+1))
	const a = math.Sqrt2 / 2
	out := make([]complex128, symbols)
	for i := range out {
		bits := rng.IntN(4)
		re, im := a, a
		if bits&1 != 0 {
			re = -a
		}
		if bits&2 != 0 {
			im = -a
		}
		out[i] = complex(re, im)
	}
	return out, nil
}

// Impulse generates a unit impulse at pos.
func (g *Generator) Impulse(pos, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}
	out := make([]complex128, samples)
	out[pos] = 1
	return out, nil
}

// Normalize scales data to target peak magnitude and returns a new slice.
func Normalize(data []complex128, targetPeak float64) ([]complex128, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	n := len(data)
	re := make([]float64, n)
	im := make([]float64, n)
	mag := make([]float64, n)
	core.SplitComplex(re, im, data)
	vecmath.Magnitude(mag, re, im)

	maxAbs := 0.0
	for _, v := range mag {
		if v > maxAbs {
			maxAbs = v
		}
	}

	out := make([]complex128, n)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	vecmath.ScaleBlock(re, re, scale)
	vecmath.ScaleBlock(im, im, scale)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}
