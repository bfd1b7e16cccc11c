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

package prob

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/0xsoniclabs/aida-prob/logger"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete_empirical"
	"github.com/0xsoniclabs/aida-prob/utils"
	"github.com/urfave/cli/v2"
)

// QueryCommand data structure for the query app.
var QueryCommand = cli.Command{
	Action:    queryAction,
	Name:      "query",
	Usage:     "compute point, cumulative and interval probabilities",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&utils.AtFlag,
		&utils.LowerFlag,
		&utils.UpperFlag,
		&utils.CdfStartFlag,
		&utils.OutputFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The query command requires one argument:
<input-file>

It reports pdf and cdf at the value given by --at and the
probability of the interval [--lower, --upper].`,
}

func queryAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Query")

	d, err := loadDistribution(cfg.InputFile, rand.New(rand.NewSource(cfg.Seed())))
	if err != nil {
		return err
	}
	d.SetCdfStart(cfg.CdfStart)
	if cfg.Lower > cfg.Upper {
		log.Warningf("Interval [%v, %v] is empty", cfg.Lower, cfg.Upper)
	}

	report := queryReport(d, cfg)
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, func() string { return report }).
		AddPrinterToFile(cfg.Output, func() string { return report })
	defer func(printers *utils.Printers) {
		err = errors.Join(err, printers.Close())
	}(printers)
	return printers.Print()
}

func queryReport(d *discrete_empirical.Distribution, cfg *utils.Config) string {
	return fmt.Sprintf("pdf(%d) = %v\ncdf(%d) = %v\nP(%d <= X <= %d) = %v\n",
		cfg.At, d.Pdf(cfg.At),
		cfg.At, d.Cdf(cfg.At),
		cfg.Lower, cfg.Upper, d.Probability(cfg.Lower, cfg.Upper))
}
