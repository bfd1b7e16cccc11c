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

package utils

import "github.com/urfave/cli/v2"

var (
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	DbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "sqlite3 database receiving the results",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "disable printing results to the console",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random number generator; negative values derive a seed from the clock",
		Value: -1,
	}
	SampleCountFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of random samples to draw",
		Value: 100000,
	}
	CdfStartFlag = cli.Float64Flag{
		Name:  "cdf-start",
		Usage: "offset added to cumulative probabilities",
		Value: 0.0,
	}
	AtFlag = cli.IntFlag{
		Name:  "at",
		Usage: "support value for point queries",
	}
	LowerFlag = cli.IntFlag{
		Name:  "lower",
		Usage: "lower end of the queried interval (inclusive)",
	}
	UpperFlag = cli.IntFlag{
		Name:  "upper",
		Usage: "upper end of the queried interval (inclusive)",
	}
)
