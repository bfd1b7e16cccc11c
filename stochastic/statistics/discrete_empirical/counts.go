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

import (
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/vector"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FromCounts creates a distribution from observed frequencies of values.
// Values with a zero count are not part of the support.
func FromCounts(src discrete.Source, counts map[int]uint64) (*Distribution, error) {
	keys := maps.Keys(counts)
	slices.Sort(keys)

	total := uint64(0)
	for _, k := range keys {
		total += counts[k]
	}
	if total == 0 {
		return nil, errors.Wrap(discrete.ErrInvalidArgument, "no observations in counts")
	}

	values := make([]int, 0, len(keys))
	weights := make([]float64, 0, len(keys))
	for _, k := range keys {
		if counts[k] == 0 {
			continue
		}
		values = append(values, k)
		weights = append(weights, float64(counts[k])/float64(total))
	}
	return New(src, values, vector.NewDense(weights))
}
