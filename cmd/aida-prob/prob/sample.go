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
	"time"

	"github.com/0xsoniclabs/aida-prob/logger"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete_empirical"
	"github.com/0xsoniclabs/aida-prob/utils"
	"github.com/0xsoniclabs/aida-prob/utils/analytics"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	sampleCreateTable = "CREATE TABLE IF NOT EXISTS samples (value INTEGER, probability REAL, count INTEGER, frequency REAL)"
	sampleInsert      = "INSERT INTO samples (value, probability, count, frequency) VALUES (?, ?, ?, ?)"
)

// SampleCommand data structure for the sample app.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draw random samples and compare frequencies with probabilities",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&utils.SampleCountFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&utils.DbFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command requires one argument:
<input-file>

It draws --samples values and reports the observed frequencies.
With --db the frequencies are inserted into a sqlite3 table.`,
}

// sampleResult holds the outcome of a sampling run.
type sampleResult struct {
	counts map[int]uint64
	stats  *analytics.IncrementalStats
}

// drawSamples draws n samples from d.
func drawSamples(d *discrete_empirical.Distribution, n int) sampleResult {
	res := sampleResult{
		counts: map[int]uint64{},
		stats:  analytics.NewIncrementalStats(),
	}
	for range n {
		x := d.Sample()
		res.counts[x]++
		res.stats.Update(float64(x))
	}
	return res
}

// frequency returns the observed frequency of x.
func (r sampleResult) frequency(x int) float64 {
	if r.stats.Count() == 0 {
		return 0.0
	}
	return float64(r.counts[x]) / float64(r.stats.Count())
}

// rows produces one database row per support value.
func (r sampleResult) rows(d *discrete_empirical.Distribution) [][]any {
	values := d.Values()
	rows := make([][]any, 0, len(values))
	for _, x := range values {
		rows = append(rows, []any{x, d.Probability(x, x), r.counts[x], r.frequency(x)})
	}
	return rows
}

func sampleAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sample")

	seed := cfg.Seed()
	d, err := loadDistribution(cfg.InputFile, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	log.Infof("Draw %v samples with seed %v", cfg.SampleCount, seed)

	start := time.Now()
	res := drawSamples(d, cfg.SampleCount)
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Sampling finished in %vh %vm %vs", hours, minutes, seconds)

	report := sampleReport(d, res)
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, func() string { return report }).
		AddPrinterToFile(cfg.Output, func() string { return report })
	defer func(printers *utils.Printers) {
		err = errors.Join(err, printers.Close())
	}(printers)
	if _, err = printers.AddPrinterToSqlite3(cfg.DbPath, sampleCreateTable, sampleInsert, func() [][]any {
		return res.rows(d)
	}); err != nil {
		return fmt.Errorf("cannot open sample database; %w", err)
	}
	return printers.Print()
}

// sampleReport compares observed frequencies and moments with the distribution.
func sampleReport(d *discrete_empirical.Distribution, res sampleResult) string {
	p := message.NewPrinter(language.English)

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Value", "Probability", "Count", "Frequency"})
	for _, x := range d.Values() {
		tw.AppendRow(table.Row{x, d.Probability(x, x), p.Sprintf("%d", res.counts[x]), res.frequency(x)})
	}
	tw.AppendFooter(table.Row{"Samples", "", p.Sprintf("%d", res.stats.Count()), ""})

	var sb strings.Builder
	sb.WriteString(tw.Render())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("mean: %v (sampled %v)\n", d.Mean(), res.stats.Mean()))
	sb.WriteString(fmt.Sprintf("std: %v (sampled %v)\n", d.Std(), res.stats.StandardDeviation()))
	sb.WriteString(fmt.Sprintf("sample statistics: %v\n", res.stats))
	return sb.String()
}
