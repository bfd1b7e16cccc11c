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

// Package vector provides the weight vectors consumed when constructing
// discrete distributions.
package vector

import (
	"iter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is a finite sequence of weights.
type Vector interface {
	// Size returns the number of positions.
	Size() int
	// Sum returns the sum of all weights from position offset onwards.
	Sum(offset int) float64
	// Elements yields each (index, weight) pair exactly once.
	Elements() iter.Seq2[int, float64]
}

// Dense is a Vector backed by a gonum dense vector.
type Dense struct {
	v *mat.VecDense
}

// NewDense creates a dense vector holding a copy of weights.
func NewDense(weights []float64) *Dense {
	if len(weights) == 0 {
		return &Dense{}
	}
	data := make([]float64, len(weights))
	copy(data, weights)
	return &Dense{v: mat.NewVecDense(len(data), data)}
}

// FromVecDense wraps an existing gonum vector without copying.
func FromVecDense(v *mat.VecDense) *Dense {
	return &Dense{v: v}
}

func (d *Dense) Size() int {
	if d.v == nil {
		return 0
	}
	return d.v.Len()
}

func (d *Dense) Sum(offset int) float64 {
	n := d.Size()
	if offset < 0 {
		offset = 0
	}
	if offset >= n {
		return 0.0
	}
	raw := d.v.RawVector()
	if raw.Inc == 1 {
		return floats.Sum(raw.Data[offset:n])
	}
	sum := 0.0
	for i := offset; i < n; i++ {
		sum += d.v.AtVec(i)
	}
	return sum
}

func (d *Dense) Elements() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := range d.Size() {
			if !yield(i, d.v.AtVec(i)) {
				return
			}
		}
	}
}

// At returns the weight at position i.
func (d *Dense) At(i int) float64 {
	return d.v.AtVec(i)
}
