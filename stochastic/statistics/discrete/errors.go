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

package discrete

import "github.com/cockroachdb/errors"

// Error kinds reported by discrete distributions. Callers test for them
// with errors.Is.
var (
	// ErrInvalidArgument reports malformed construction input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidProbability reports a weight outside of (0,1].
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrNotImplemented reports a query the distribution does not support.
	ErrNotImplemented = errors.New("not implemented")
)
