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
	"strings"

	"github.com/0xsoniclabs/aida-prob/logger"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete_empirical"
	"github.com/0xsoniclabs/aida-prob/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// InspectCommand data structure for the inspect app.
var InspectCommand = cli.Command{
	Action:    inspectAction,
	Name:      "inspect",
	Usage:     "print probabilities and moments of a distribution",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&utils.CdfStartFlag,
		&utils.OutputFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The inspect command requires one argument:
<input-file>

<input-file> is a JSON file (optionally gzipped) with either
"values" and "weights" or "counts" of a discrete distribution.`,
}

// inspectAction prints a table of all support values.
func inspectAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Inspect")

	d, err := loadDistribution(cfg.InputFile, rand.New(rand.NewSource(cfg.Seed())))
	if err != nil {
		return err
	}
	d.SetCdfStart(cfg.CdfStart)
	log.Infof("Loaded %v support values from %v", d.Len(), cfg.InputFile)

	report := inspectReport(d)
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, func() string { return report }).
		AddPrinterToFile(cfg.Output, func() string { return report })
	defer func(printers *utils.Printers) {
		err = errors.Join(err, printers.Close())
	}(printers)
	return printers.Print()
}

// inspectReport renders the distribution as a table followed by its moments.
func inspectReport(d *discrete_empirical.Distribution) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Value", "Pdf", "Mass", "Cdf"})
	for _, x := range d.Values() {
		tw.AppendRow(table.Row{x, d.Pdf(x), d.Probability(x, x), d.Cdf(x)})
	}
	tw.AppendFooter(table.Row{"Elements", d.Len(), "", ""})

	var sb strings.Builder
	sb.WriteString(tw.Render())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("mean: %v\nvariance: %v\nstd: %v\n", d.Mean(), d.Variance(), d.Std()))
	return sb.String()
}
