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

// Package discrete_empirical implements a discrete distribution whose
// probabilities are given empirically for a finite set of integer values.
package discrete_empirical

import (
	"math"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/vector"
	"github.com/cockroachdb/errors"
)

// Distribution is a discrete empirical distribution. The probabilities
// passed at construction are normalized to sum to one.
//
// A Distribution is not safe for concurrent use. Mean and Variance fill
// their caches on first use, so even read-only sharing between goroutines
// needs external synchronization.
type Distribution struct {
	discrete.Base
	ix       *index
	cdfStart float64
	mean     *float64
	variance *float64
}

var _ discrete.Distribution = (*Distribution)(nil)

// New creates a distribution over values where values[i] has weight i of
// weights. Every weight must be a probability in (0,1]; the weights are
// rescaled by their sum.
func New(src discrete.Source, values []int, weights vector.Vector) (*Distribution, error) {
	if src == nil {
		return nil, errors.Wrap(discrete.ErrInvalidArgument, "random source is missing")
	}
	d := &Distribution{Base: discrete.NewBase(src)}
	if err := d.SetParameters(values, weights); err != nil {
		return nil, err
	}
	return d, nil
}

// SetParameters replaces the distribution by the one given by values and
// weights. On failure the previous parameters are kept.
func (d *Distribution) SetParameters(values []int, weights vector.Vector) error {
	if weights == nil || len(values) != weights.Size() {
		return errors.Wrap(discrete.ErrInvalidArgument, "values and weights must be the same size")
	}
	if len(values) == 0 {
		return errors.Wrap(discrete.ErrInvalidArgument, "values and weights are empty")
	}
	for i, w := range weights.Elements() {
		if i < 0 || i >= len(values) {
			return errors.Wrapf(discrete.ErrInvalidArgument, "weight position %v is out of range", i)
		}
		if err := discrete.CheckProbability(w); err != nil {
			return errors.Wrapf(err, "weight of value %v", values[i])
		}
	}

	scale := 1.0 / weights.Sum(0)
	ix := newIndex(len(values))
	for i, w := range weights.Elements() {
		ix.add(&element{x: values[i], probability: w * scale})
	}
	ix.sort()

	d.SetValid(false)
	d.ix = ix
	d.mean = nil
	d.variance = nil
	d.SetVariableBounds(0, len(values))
	d.SetCdfBounds(0.0, 1.0)
	d.SetValid(true)
	return nil
}

// Len returns the number of elements including duplicate values.
func (d *Distribution) Len() int {
	if d.ix == nil {
		return 0
	}
	return d.ix.len()
}

// Support returns the support values in ascending order.
func (d *Distribution) Support() []int {
	support := make([]int, 0, d.Len())
	for _, el := range d.elements() {
		support = append(support, el.x)
	}
	return support
}

// Values returns the distinct support values in ascending order.
func (d *Distribution) Values() []int {
	values := make([]int, 0, d.Len())
	for i, el := range d.elements() {
		if i == 0 || el.x != values[len(values)-1] {
			values = append(values, el.x)
		}
	}
	return values
}

func (d *Distribution) elements() []*element {
	if d.ix == nil {
		return nil
	}
	return d.ix.elements
}

// Pdf returns the probability of x, or zero if x is not a support value.
// For a duplicated value only the probability given last is reported.
func (d *Distribution) Pdf(x int) float64 {
	if d.ix == nil {
		return 0.0
	}
	el := d.ix.find(x)
	if el == nil {
		return 0.0
	}
	return el.probability
}

// Cdf returns the cumulative probability of all values <= x shifted by
// the cdf start.
func (d *Distribution) Cdf(x int) float64 {
	sum := d.cdfStart
	for _, el := range d.elements() {
		if el.x > x {
			break
		}
		sum += el.probability
	}
	return sum
}

// InverseCdf is not supported.
func (d *Distribution) InverseCdf(p float64) (int, error) {
	return 0, errors.Wrap(discrete.ErrNotImplemented, "inverse cdf of an empirical distribution")
}

// Probability returns the probability of a value in [x1, x2].
func (d *Distribution) Probability(x1, x2 int) float64 {
	sum := 0.0
	for _, el := range d.elements() {
		if el.x < x1 {
			continue
		}
		if el.x > x2 {
			break
		}
		sum += el.probability
	}
	return sum
}

// ProbabilityOf is not supported.
func (d *Distribution) ProbabilityOf(x int) (float64, error) {
	return 0.0, errors.Wrap(discrete.ErrNotImplemented, "single argument probability of an empirical distribution")
}

// SetCdfStart sets the offset added to every Cdf result.
func (d *Distribution) SetCdfStart(start float64) {
	d.cdfStart = start
}

func (d *Distribution) CdfStart() float64 {
	return d.cdfStart
}

// Sample draws a support value. If rounding keeps the running sum below
// the random number, the largest value is returned.
func (d *Distribution) Sample() int {
	elements := d.elements()
	if len(elements) == 0 {
		return 0
	}
	r := d.NextDouble()
	sum := 0.0
	for _, el := range elements {
		sum += el.probability
		if r <= sum {
			return el.x
		}
	}
	return elements[len(elements)-1].x
}

// Mean returns the expected value. It is computed once.
func (d *Distribution) Mean() float64 {
	if d.mean == nil {
		mean := 0.0
		for _, el := range d.elements() {
			mean += el.probability * float64(el.x)
		}
		d.mean = &mean
	}
	return *d.mean
}

// Variance returns the variance. It is computed once.
func (d *Distribution) Variance() float64 {
	if d.variance == nil {
		mean := d.Mean()
		variance := 0.0
		for _, el := range d.elements() {
			del := float64(el.x) - mean
			variance += el.probability * del * del
		}
		d.variance = &variance
	}
	return *d.variance
}

// Std returns the standard deviation.
func (d *Distribution) Std() float64 {
	return math.Sqrt(d.Variance())
}

// Equal reports whether both distributions have the same values with
// exactly the same probabilities in ascending order.
func (d *Distribution) Equal(other *Distribution) bool {
	if other == nil {
		return false
	}
	a, b := d.elements(), other.elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].x != b[i].x || a[i].probability != b[i].probability {
			return false
		}
	}
	return true
}

func (d *Distribution) String() string {
	var sb strings.Builder
	sb.WriteString("EmpiricalDistribution(")
	for i, el := range d.elements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(el.x))
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(el.probability, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
