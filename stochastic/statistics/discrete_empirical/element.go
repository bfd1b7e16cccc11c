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

package discrete_empirical

import "github.com/0xsoniclabs/aida-prob/stochastic/statistics/sorting"

// element is a support value with its normalized probability. Two elements
// are the same key when their values are equal, regardless of probability.
type element struct {
	x           int
	probability float64
}

// key identifies the element in the lookup index.
func (e *element) key() int {
	return e.x
}

// compareElements orders elements by ascending support value.
func compareElements(a, b *element) int {
	switch {
	case a.x < b.x:
		return sorting.Less
	case b.x < a.x:
		return sorting.Greater
	default:
		return sorting.Equal
	}
}
