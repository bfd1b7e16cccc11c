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

// index keeps the elements of a distribution twice: as a sequence ordered
// by support value and as a lookup keyed by support value. Duplicate values
// stay in the sequence while the lookup keeps the element inserted last.
type index struct {
	elements []*element
	lookup   map[int]*element
}

func newIndex(capacity int) *index {
	return &index{
		elements: make([]*element, 0, capacity),
		lookup:   make(map[int]*element, capacity),
	}
}

// add appends el to the sequence and indexes it by its value.
func (ix *index) add(el *element) {
	ix.elements = append(ix.elements, el)
	ix.lookup[el.key()] = el
}

// sort establishes ascending order of the sequence.
func (ix *index) sort() {
	sorting.QuickSort(ix.elements, compareElements)
}

// find returns the element indexed for x, or nil.
func (ix *index) find(x int) *element {
	return ix.lookup[x]
}

func (ix *index) len() int {
	return len(ix.elements)
}
