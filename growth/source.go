package growth

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrDegenerateDistribution is returned when a normal distribution would be
// built from a negative or non-finite deviation, or a non-finite mean.
var ErrDegenerateDistribution = errors.New("growth: degenerate normal distribution")

// Source is the randomness a layer consumes. *rand.Rand from math/rand/v2
// satisfies it; tests may supply scripted implementations.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
}

// NewSource returns a PCG generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fork derives an independent generator from src.
func fork(src Source) *rand.Rand {
	return rand.New(rand.NewPCG(src.Uint64(), src.Uint64()))
}

// bernoulli returns true with probability p. p <= 0 never succeeds and
// p >= 1 always does.
func bernoulli(src Source, p float64) bool {
	return src.Float64() < p
}

// Normal is a normal distribution. A zero deviation is a point mass at Mean.
type Normal struct {
	Mean   float64
	StdDev float64
}

// NewNormal validates and returns a normal distribution.
func NewNormal(mean, stdDev float64) (Normal, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return Normal{}, fmt.Errorf("%w: mean %v", ErrDegenerateDistribution, mean)
	}
	if math.IsNaN(stdDev) || math.IsInf(stdDev, 0) || stdDev < 0 {
		return Normal{}, fmt.Errorf("%w: standard deviation %v", ErrDegenerateDistribution, stdDev)
	}
	return Normal{Mean: mean, StdDev: stdDev}, nil
}

// Sample draws one value from src.
func (n Normal) Sample(src Source) float64 {
	return n.Mean + n.StdDev*src.NormFloat64()
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
