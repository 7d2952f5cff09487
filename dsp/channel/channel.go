package channel

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cwbudde/algo-channel/dsp/core"
	"github.com/cwbudde/algo-channel/dsp/noise"
)

const (
	// MaxMultipathLength is the largest accepted multipath filter length.
	MaxMultipathLength = 1000

	// RandomTapScale scales the Gaussian draws of synthesized echo taps.
	RandomTapScale = 0.05
)

var (
	// ErrEmptyMultipath is returned when a zero-length multipath filter is
	// requested. The call is ignored and the previous configuration is kept.
	ErrEmptyMultipath = errors.New("channel: multipath filter length is zero")

	// ErrMultipathTooLong is returned when the requested multipath filter
	// length exceeds MaxMultipathLength. Nothing is modified.
	ErrMultipathTooLong = errors.New("channel: multipath filter length exceeds maximum")

	// ErrInvalidMultipath is returned for negative lengths or coefficient
	// slices shorter than the requested length.
	ErrInvalidMultipath = errors.New("channel: invalid multipath coefficients")
)

// Oscillator is the carrier mixer used by the carrier-offset stage.
// MixUp rotates x by the current phase and advances the phase by the
// configured frequency.
type Oscillator interface {
	SetFrequency(dtheta float64)
	SetPhase(theta float64)
	MixUp(x complex128) complex128
}

// Filter is the streaming convolution engine used by the multipath stage.
type Filter interface {
	Push(x complex128)
	Output() complex128
}

// FilterFactory builds a Filter from a coefficient slice. Implementations
// must copy coeffs if they retain it.
type FilterFactory func(coeffs []complex128) Filter

type awgnStage struct {
	enabled      bool
	noiseFloorDB float64
	snrDB        float64
	gain         float64 // signal gain applied before adding noise
	nstd         float64 // noise standard deviation
}

type carrierStage struct {
	enabled bool
	dphi    float64 // frequency offset in radians/sample
	phi     float64 // phase offset in radians
	osc     Oscillator
}

type multipathStage struct {
	enabled bool
	coeffs  []complex128
	filter  Filter
}

// Channel applies multipath, carrier offset and AWGN impairments to complex
// baseband samples.
type Channel struct {
	awgn      awgnStage
	carrier   carrierStage
	multipath multipathStage

	src       noise.Source
	newFilter FilterFactory
	logger    *log.Logger
}

// New creates a channel with every stage disabled. The carrier oscillator
// starts at zero frequency and phase, and the multipath coefficients are
// the identity [1].
func New(opts ...Option) *Channel {
	cfg := applyOptions(opts)

	cfg.oscillator.SetFrequency(0)
	cfg.oscillator.SetPhase(0)

	return &Channel{
		carrier: carrierStage{osc: cfg.oscillator},
		multipath: multipathStage{
			coeffs: []complex128{1},
		},
		src:       cfg.source,
		newFilter: cfg.newFilter,
		logger:    cfg.logger,
	}
}

// Close releases the owned oscillator and multipath filter. The channel
// must not be used afterwards.
func (c *Channel) Close() {
	c.carrier.osc = nil
	c.multipath.filter = nil
	c.multipath.coeffs = nil
	c.src = nil
}

// AddAWGN enables the noise stage. Both arguments are in dB:
//
//	nstd = 10^(noiseFloorDB/20)
//	gain = 10^((snrDB+noiseFloorDB)/20)
//
// Values are not range checked. Calling AddAWGN again replaces the previous
// noise settings.
func (c *Channel) AddAWGN(noiseFloorDB, snrDB float64) {
	c.awgn = awgnStage{
		enabled:      true,
		noiseFloorDB: noiseFloorDB,
		snrDB:        snrDB,
		nstd:         core.DBToLinear(noiseFloorDB),
		gain:         core.DBToLinear(snrDB + noiseFloorDB),
	}
}

// AddCarrierOffset enables the carrier stage with a frequency offset in
// radians/sample and a phase offset in radians. The oscillator is
// reprogrammed immediately, which restarts the phase trajectory at phase.
func (c *Channel) AddCarrierOffset(frequency, phase float64) {
	c.carrier.enabled = true
	c.carrier.dphi = frequency
	c.carrier.phi = phase

	c.carrier.osc.SetFrequency(c.carrier.dphi)
	c.carrier.osc.SetPhase(c.carrier.phi)
}

// AddCarrierOffsetHz is like AddCarrierOffset with the frequency offset
// given in Hz at sampleRate.
func (c *Channel) AddCarrierOffsetHz(freqHz, sampleRate, phase float64) {
	c.AddCarrierOffset(core.HzToRadiansPerSample(freqHz, sampleRate), phase)
}

// AddMultipath enables the multipath stage with the first n coefficients
// of h. If h is nil, n taps are synthesized: tap 0 is 1 (line of sight)
// and the remaining taps are complex Gaussian draws scaled by RandomTapScale.
//
// n == 0 is ignored and reported with ErrEmptyMultipath. n greater than
// MaxMultipathLength fails with ErrMultipathTooLong. In both cases the
// existing configuration is left untouched. On success the filter is
// rebuilt from scratch, so its delay line starts empty.
func (c *Channel) AddMultipath(h []complex128, n int) error {
	switch {
	case n == 0:
		if c.logger != nil {
			c.logger.Printf("warning: %v (ignoring)", ErrEmptyMultipath)
		}
		return ErrEmptyMultipath
	case n > MaxMultipathLength:
		return fmt.Errorf("%w: %d > %d", ErrMultipathTooLong, n, MaxMultipathLength)
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrInvalidMultipath, n)
	case h != nil && len(h) < n:
		return fmt.Errorf("%w: %d coefficients, want %d", ErrInvalidMultipath, len(h), n)
	}

	coeffs := make([]complex128, n)
	if h == nil {
		c.randomTaps(coeffs)
	} else {
		copy(coeffs, h[:n])
	}

	c.multipath.enabled = true
	c.multipath.coeffs = coeffs

	// The previous filter is discarded, never updated in place.
	c.multipath.filter = c.newFilter(c.multipath.coeffs)

	return nil
}

// AddRandomMultipath is AddMultipath(nil, n).
func (c *Channel) AddRandomMultipath(n int) error {
	return c.AddMultipath(nil, n)
}

func (c *Channel) randomTaps(dst []complex128) {
	dst[0] = 1
	for i := 1; i < len(dst); i++ {
		re := c.src.NormFloat64()
		im := c.src.NormFloat64()
		dst[i] = complex(RandomTapScale*re, RandomTapScale*im)
	}
}

// ProcessSample runs one sample through the enabled stages.
func (c *Channel) ProcessSample(x complex128) complex128 {
	y := x

	if c.multipath.enabled {
		c.multipath.filter.Push(y)
		y = c.multipath.filter.Output()
	}

	if c.carrier.enabled {
		y = c.carrier.osc.MixUp(y)
	}

	if c.awgn.enabled {
		y *= complex(c.awgn.gain, 0)
		y += complex(c.awgn.nstd, 0) * noise.Circular(c.src)
	}

	return y
}

// Execute processes src into dst and returns the number of samples written,
// which is always len(src). dst must be at least len(src) long and may
// alias src.
func (c *Channel) Execute(dst, src []complex128) int {
	if len(src) == 0 {
		return 0
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = c.ProcessSample(x)
	}
	return len(src)
}

// ProcessInPlace applies the channel to buf in place.
func (c *Channel) ProcessInPlace(buf []complex128) {
	c.Execute(buf, buf)
}

// Process returns a newly allocated impaired copy of src.
func (c *Channel) Process(src []complex128) []complex128 {
	dst := make([]complex128, len(src))
	c.Execute(dst, src)
	return dst
}

// AWGNEnabled reports whether the noise stage is active.
func (c *Channel) AWGNEnabled() bool { return c.awgn.enabled }

// NoiseFloorDB returns the configured noise floor in dB.
func (c *Channel) NoiseFloorDB() float64 { return c.awgn.noiseFloorDB }

// SNRDB returns the configured signal-to-noise ratio in dB.
func (c *Channel) SNRDB() float64 { return c.awgn.snrDB }

// Gain returns the linear signal gain of the noise stage.
func (c *Channel) Gain() float64 { return c.awgn.gain }

// NoiseStdDev returns the linear noise standard deviation.
func (c *Channel) NoiseStdDev() float64 { return c.awgn.nstd }

// CarrierEnabled reports whether the carrier stage is active.
func (c *Channel) CarrierEnabled() bool { return c.carrier.enabled }

// CarrierFrequency returns the configured frequency offset in radians/sample.
func (c *Channel) CarrierFrequency() float64 { return c.carrier.dphi }

// CarrierPhase returns the configured phase offset in radians. It does not
// track the oscillator's running phase.
func (c *Channel) CarrierPhase() float64 { return c.carrier.phi }

// MultipathEnabled reports whether the multipath stage is active.
func (c *Channel) MultipathEnabled() bool { return c.multipath.enabled }

// Coefficients returns a copy of the multipath coefficients.
func (c *Channel) Coefficients() []complex128 {
	h := make([]complex128, len(c.multipath.coeffs))
	copy(h, c.multipath.coeffs)
	return h
}

// String describes the enabled stages.
func (c *Channel) String() string {
	var b strings.Builder
	b.WriteString("channel:")
	if !c.multipath.enabled && !c.carrier.enabled && !c.awgn.enabled {
		b.WriteString(" pass-through")
		return b.String()
	}
	if c.multipath.enabled {
		fmt.Fprintf(&b, " multipath(taps=%d)", len(c.multipath.coeffs))
	}
	if c.carrier.enabled {
		fmt.Fprintf(&b, " carrier(dphi=%.4f, phi=%.4f)", c.carrier.dphi, c.carrier.phi)
	}
	if c.awgn.enabled {
		fmt.Fprintf(&b, " awgn(nstd=%.4f, gain=%.4f)", c.awgn.nstd, c.awgn.gain)
	}
	return b.String()
}
