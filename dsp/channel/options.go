package channel

import (
	"log"

	"github.com/cwbudde/algo-channel/dsp/filter/fir"
	"github.com/cwbudde/algo-channel/dsp/nco"
	"github.com/cwbudde/algo-channel/dsp/noise"
)

const defaultSeed = 1

// Option configures a Channel at construction time.
type Option func(*config)

type config struct {
	source     noise.Source
	oscillator Oscillator
	newFilter  FilterFactory
	logger     *log.Logger
}

func defaultConfig() config {
	return config{
		newFilter: func(coeffs []complex128) Filter { return fir.New(coeffs) },
	}
}

// WithSource sets the Gaussian source used for AWGN and random multipath taps.
func WithSource(src noise.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.source = src
		}
	}
}

// WithSeed uses a [noise.Gaussian] seeded with seed. It replaces any source
// set earlier in the option list.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.source = noise.NewGaussian(seed)
	}
}

// WithOscillator replaces the default [nco.Oscillator] used by the carrier stage.
func WithOscillator(osc Oscillator) Option {
	return func(cfg *config) {
		if osc != nil {
			cfg.oscillator = osc
		}
	}
}

// WithFilterFactory replaces the constructor used to build the multipath filter.
func WithFilterFactory(factory FilterFactory) Option {
	return func(cfg *config) {
		if factory != nil {
			cfg.newFilter = factory
		}
	}
}

// WithLogger reports ignored configuration calls to logger.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.source == nil {
		cfg.source = noise.NewGaussian(defaultSeed)
	}
	if cfg.oscillator == nil {
		cfg.oscillator = nco.New()
	}
	return cfg
}
