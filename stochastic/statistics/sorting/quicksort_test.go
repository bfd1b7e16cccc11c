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

package sorting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func intCompare(a, b int) int {
	if a < b {
		return Less
	}
	if b < a {
		return Greater
	}
	return Equal
}

// TestQuickSort_Basic checks small inputs including the empty and singleton case.
func TestQuickSort_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{7}, []int{7}},
		{"pair", []int{2, 1}, []int{1, 2}},
		{"sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{"reversed", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
		{"duplicates", []int{3, 1, 3, 1, 2}, []int{1, 1, 2, 3, 3}},
		{"negative", []int{0, -5, 5, -10}, []int{-10, -5, 0, 5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			QuickSort(test.input, intCompare)
			assert.Equal(t, test.want, test.input)
		})
	}
}

// TestQuickSort_Random compares the result against the standard slices sort.
func TestQuickSort_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	for _, n := range []int{11, 12, 13, 50, 1000, 10000} {
		s := make([]int, n)
		for i := range s {
			s[i] = rg.Intn(n/2+1) - n/4
		}
		want := slices.Clone(s)
		slices.Sort(want)

		QuickSort(s, intCompare)

		assert.True(t, slices.IsSortedFunc(s, intCompare), "n=%d", n)
		assert.Equal(t, want, s, "n=%d", n)
	}
}

// TestQuickSort_AllEqual makes sure that runs of equal keys terminate.
func TestQuickSort_AllEqual(t *testing.T) {
	s := make([]int, 500)
	for i := range s {
		s[i] = 42
	}
	QuickSort(s, intCompare)
	assert.True(t, IsSorted(s, intCompare))
}

// TestQuickSort_Descending uses a reversed comparator.
func TestQuickSort_Descending(t *testing.T) {
	s := []int{5, 1, 4, 2, 3, 9, 8, 7, 6, 0, 10, 11, 12, 13}
	desc := func(a, b int) int { return intCompare(b, a) }
	QuickSort(s, desc)
	assert.Equal(t, []int{13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, s)
}

// TestQuickSort_Struct sorts records by a key and ignores the payload.
func TestQuickSort_Struct(t *testing.T) {
	type pair struct {
		key   int
		value string
	}
	s := []pair{{3, "c"}, {1, "a"}, {2, "b"}}
	QuickSort(s, func(a, b pair) int { return intCompare(a.key, b.key) })
	assert.Equal(t, []pair{{1, "a"}, {2, "b"}, {3, "c"}}, s)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{}, intCompare))
	assert.True(t, IsSorted([]int{1, 1, 2}, intCompare))
	assert.False(t, IsSorted([]int{2, 1}, intCompare))
}
