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

import (
	"fmt"
	"time"

	"github.com/0xsoniclabs/aida-prob/logger"
	"github.com/urfave/cli/v2"
)

// ArgumentMode determines which positional arguments a command expects.
type ArgumentMode int

const (
	NoArgs       ArgumentMode = iota // no positional arguments
	InputFileArg                     // exactly one input file
)

// Config summarizes the flags and arguments of a command.
type Config struct {
	InputFile string // distribution input

	LogLevel    string  // level of the logging
	Output      string  // output path of reports or charts
	DbPath      string  // sqlite3 database for sample results
	Quiet       bool    // disable console output
	RandomSeed  int64   // seed of the random number generator
	SampleCount int     // number of samples to draw
	CdfStart    float64 // offset of cumulative probabilities
	At          int     // support value of point queries
	Lower       int     // lower end of the queried interval
	Upper       int     // upper end of the queried interval
}

// NewConfig creates the configuration of a command from its context.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := &Config{
		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
		Output:      ctx.Path(OutputFlag.Name),
		DbPath:      ctx.Path(DbFlag.Name),
		Quiet:       ctx.Bool(QuietFlag.Name),
		RandomSeed:  ctx.Int64(RandomSeedFlag.Name),
		SampleCount: ctx.Int(SampleCountFlag.Name),
		CdfStart:    ctx.Float64(CdfStartFlag.Name),
		At:          ctx.Int(AtFlag.Name),
		Lower:       ctx.Int(LowerFlag.Name),
		Upper:       ctx.Int(UpperFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelDefault
	}

	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, fmt.Errorf("command takes no arguments, got %v", ctx.Args().Len())
		}
	case InputFileArg:
		if ctx.Args().Len() != 1 {
			return nil, fmt.Errorf("command requires exactly one input file, got %v arguments", ctx.Args().Len())
		}
		cfg.InputFile = ctx.Args().Get(0)
	default:
		return nil, fmt.Errorf("unknown argument mode %v", mode)
	}

	if cfg.SampleCount < 0 {
		return nil, fmt.Errorf("number of samples must not be negative (%v)", cfg.SampleCount)
	}
	return cfg, nil
}

// LogLevelDefault is used when no log level is configured.
const LogLevelDefault = "INFO"

// Seed returns the configured random seed, or one derived from the
// clock for negative values.
func (cfg *Config) Seed() int64 {
	if cfg.RandomSeed < 0 {
		return time.Now().UnixNano()
	}
	return cfg.RandomSeed
}
