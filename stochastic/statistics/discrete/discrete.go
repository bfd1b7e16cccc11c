// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package discrete holds what all discrete distributions share: the
// random source, domain bookkeeping, probability checks and error kinds.
package discrete

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// pmfEps is the tolerance for a probability mass function to sum to one.
const pmfEps = 1e-9

// Source produces uniform random numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Distribution is a discrete distribution over integer support values.
type Distribution interface {
	Pdf(x int) float64
	Cdf(x int) float64
	InverseCdf(p float64) (int, error)
	Probability(x1, x2 int) float64
	ProbabilityOf(x int) (float64, error)
	Mean() float64
	Variance() float64
	Std() float64
	Sample() int
	SetCdfStart(start float64)
	fmt.Stringer
}

// Base is the bookkeeping embedded by discrete distributions.
type Base struct {
	src   Source
	valid bool

	// domain of the random variable, [varLow, varHigh)
	varLow, varHigh int

	// range of the cumulative distribution function, [cdfLow, cdfHigh]
	cdfLow, cdfHigh float64
}

// NewBase creates the bookkeeping for a distribution drawing from src.
func NewBase(src Source) Base {
	return Base{src: src}
}

// NextDouble draws the next uniform random number from the source.
func (b *Base) NextDouble() float64 {
	return b.src.Float64()
}

// Source returns the random source.
func (b *Base) Source() Source {
	return b.src
}

// SetSource replaces the random source.
func (b *Base) SetSource(src Source) {
	b.src = src
}

// Valid reports whether the distribution holds usable parameters.
func (b *Base) Valid() bool {
	return b.valid
}

func (b *Base) SetValid(valid bool) {
	b.valid = valid
}

// SetVariableBounds records the domain [low, high) of the random variable.
func (b *Base) SetVariableBounds(low, high int) {
	b.varLow, b.varHigh = low, high
}

func (b *Base) VariableBounds() (int, int) {
	return b.varLow, b.varHigh
}

// SetCdfBounds records the range [low, high] of the cdf.
func (b *Base) SetCdfBounds(low, high float64) {
	b.cdfLow, b.cdfHigh = low, high
}

func (b *Base) CdfBounds() (float64, float64) {
	return b.cdfLow, b.cdfHigh
}

// CheckProbability checks that p is a probability in (0,1].
func CheckProbability(p float64) error {
	if math.IsNaN(p) || p <= 0.0 || p > 1.0 {
		return errors.Wrapf(ErrInvalidProbability, "probability (%v) is not in (0,1]", p)
	}
	return nil
}

// CheckPMF checks if the given probability mass function (pmf) of a
// discrete finite random variable is valid.  A valid pmf has all
// probabilities in the range [0,1], and the sum of all probabilities
// must be 1.
func CheckPMF(f []float64) error {
	total := 0.0
	for i := range len(f) {
		x := f[i]
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return errors.Wrapf(ErrInvalidProbability, "probability (%v) at position %v of the pmf", x, i)
		}
		total += x
	}
	if math.Abs(total-1.0) > pmfEps {
		return errors.Newf("total is not one (%v)", total)
	}
	return nil
}
