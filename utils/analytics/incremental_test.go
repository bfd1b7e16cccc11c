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

package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementalStats_String(t *testing.T) {
	obj := IncrementalStats{
		count: 10,
		min:   0,
		max:   0,
		ksum:  0,
		c:     0,
		m1:    0,
		m2:    0,
		m3:    0,
		m4:    0,
	}

	str, err := json.Marshal(obj) //nolint:staticcheck // SA9005: ignore for test comparison
	assert.NoError(t, err)
	assert.Equal(t, string(str), obj.String())
}

func TestIncrementalStats_Empty(t *testing.T) {
	s := NewIncrementalStats()
	assert.Equal(t, uint64(0), s.Count())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.Skewness())
	assert.Equal(t, 0.0, s.Kurtosis())
}

func TestIncrementalStats_Moments(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := NewIncrementalStats()
	for _, x := range data {
		s.Update(x)
	}

	assert.Equal(t, uint64(8), s.Count())
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.InDelta(t, 40.0, s.Sum(), 1e-12)
	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
	assert.InDelta(t, 4.0, s.Variance(), 1e-12)
	assert.InDelta(t, 2.0, s.StandardDeviation(), 1e-12)

	// reference values computed from the central moments directly
	m2, m3, m4 := 0.0, 0.0, 0.0
	for _, x := range data {
		d := x - 5.0
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	n := float64(len(data))
	assert.InDelta(t, math.Sqrt(n)*m3/math.Pow(m2, 1.5), s.Skewness(), 1e-9)
	assert.InDelta(t, n*m4/(m2*m2)-3.0, s.Kurtosis(), 1e-9)
}

func TestIncrementalStats_Constant(t *testing.T) {
	s := NewIncrementalStats()
	for range 100 {
		s.Update(3.5)
	}
	assert.Equal(t, 3.5, s.Min())
	assert.Equal(t, 3.5, s.Max())
	assert.InDelta(t, 3.5, s.Mean(), 1e-12)
	assert.InDelta(t, 0.0, s.Variance(), 1e-12)
	assert.Equal(t, 0.0, s.Skewness())
}

func TestIncrementalStats_Negative(t *testing.T) {
	s := NewIncrementalStats()
	s.Update(-1)
	s.Update(-3)
	assert.Equal(t, -3.0, s.Min())
	assert.Equal(t, -1.0, s.Max())
	assert.InDelta(t, -2.0, s.Mean(), 1e-12)
}
