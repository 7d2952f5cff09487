// Package noise provides Gaussian random-variate sources for channel
// simulation.
//
// Sources carry their own state. Nothing in this package touches the
// process-wide generators of math/rand, so two sources built from the same
// seed always produce the same sequence.
package noise

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces independent standard normal variates (mean 0, variance 1).
type Source interface {
	NormFloat64() float64
}

// Gaussian is a seeded standard normal source. It is not safe for
// concurrent use; create one per goroutine.
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian creates a standard normal source seeded with seed.
func NewGaussian(seed uint64) *Gaussian {
	return &Gaussian{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		},
	}
}

// NormFloat64 returns the next standard normal variate.
func (g *Gaussian) NormFloat64() float64 {
	return g.dist.Rand()
}

// Circular returns a circularly-symmetric complex Gaussian draw with unit
// total power: (n1 + j*n2) / sqrt(2).
func Circular(src Source) complex128 {
	re := src.NormFloat64()
	im := src.NormFloat64()
	return complex(re*math.Sqrt2/2, im*math.Sqrt2/2)
}

// Fill writes len(dst) circular complex draws scaled by stdDev into dst.
func Fill(dst []complex128, src Source, stdDev float64) {
	for i := range dst {
		dst[i] = complex(stdDev, 0) * Circular(src)
	}
}
