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

// Package sorting provides an in-place sort driven by a pluggable
// three-way comparator.
package sorting

// Results of a three-way comparison.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// insertionCutoff is the range length below which insertion sort is used.
const insertionCutoff = 12

// Comparator compares a and b and returns Less, Equal or Greater.
// Any negative (positive) result is treated as Less (Greater).
type Comparator[T any] func(a, b T) int

// QuickSort reorders s in place so that cmp(s[i], s[i+1]) <= Equal for all i.
// The sort is not stable.
func QuickSort[T any](s []T, cmp Comparator[T]) {
	quickSort(s, 0, len(s)-1, cmp)
}

// IsSorted reports whether s is ordered with respect to cmp.
func IsSorted[T any](s []T, cmp Comparator[T]) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > Equal {
			return false
		}
	}
	return true
}

func quickSort[T any](s []T, lo, hi int, cmp Comparator[T]) {
	for hi-lo >= insertionCutoff {
		p := partition(s, lo, hi, cmp)
		// recurse into the smaller half to bound the stack depth
		if p-lo < hi-p {
			quickSort(s, lo, p-1, cmp)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi, cmp)
			hi = p - 1
		}
	}
	insertionSort(s, lo, hi, cmp)
}

// partition places the median of s[lo], s[mid], s[hi] at its final position
// and returns that position. Elements left of it compare <= the pivot,
// elements right of it compare >= the pivot.
func partition[T any](s []T, lo, hi int, cmp Comparator[T]) int {
	mid := lo + (hi-lo)/2
	if cmp(s[mid], s[lo]) < Equal {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if cmp(s[hi], s[lo]) < Equal {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if cmp(s[hi], s[mid]) < Equal {
		s[hi], s[mid] = s[mid], s[hi]
	}
	// s[lo] <= s[mid] <= s[hi]; park the pivot next to the upper sentinel
	s[mid], s[hi-1] = s[hi-1], s[mid]
	pivot := s[hi-1]

	i, j := lo, hi-1
	for {
		for i++; cmp(s[i], pivot) < Equal; i++ {
		}
		for j--; cmp(pivot, s[j]) < Equal; j-- {
		}
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[i], s[hi-1] = s[hi-1], s[i]
	return i
}

func insertionSort[T any](s []T, lo, hi int, cmp Comparator[T]) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && cmp(s[j], s[j-1]) < Equal; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
