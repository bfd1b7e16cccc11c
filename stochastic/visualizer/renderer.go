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

// Package visualizer renders discrete distributions as HTML charts.
package visualizer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/0xsoniclabs/aida-prob/stochastic"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Distribution is what the renderer needs from a distribution.
type Distribution interface {
	discrete.Distribution
	Values() []int
}

// CDFPoints returns the points (x, cdf(x)) of the cumulative distribution
// function at all support values. If there are more than
// stochastic.NumECDFPoints points, the line is reduced with the
// Visvalingam-Whyatt algorithm.
func CDFPoints(d Distribution) [][2]float64 {
	ls := orb.LineString{}
	for _, x := range d.Values() {
		ls = append(ls, orb.Point{float64(x), d.Cdf(x)})
	}
	if len(ls) > stochastic.NumECDFPoints {
		// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
		simplifier := simplify.VisvalingamKeep(stochastic.NumECDFPoints)
		ls = simplifier.Simplify(ls).(orb.LineString)
	}
	points := make([][2]float64, len(ls))
	for i := range ls {
		points[i] = [2]float64(ls[i])
	}
	return points
}

// convertMassData converts the probability masses to bar data.
func convertMassData(d Distribution, support []int) ([]string, []opts.BarData) {
	labels := make([]string, 0, len(support))
	items := make([]opts.BarData, 0, len(support))
	for _, x := range support {
		labels = append(labels, strconv.Itoa(x))
		items = append(items, opts.BarData{Value: d.Probability(x, x)})
	}
	return labels, items
}

// convertCDFData converts CDF points to chart points.
func convertCDFData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

func toolbox() charts.GlobalOpts {
	return charts.WithToolboxOpts(opts.Toolbox{
		Show: true,
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  true,
				Title: "Save",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show: true,
			},
		},
	})
}

// newMassChart creates a bar chart of the probability masses.
func newMassChart(title string, d Distribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
	}),
		toolbox(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("mean %.4g, std %.4g", d.Mean(), d.Std()),
		}))
	labels, items := convertMassData(d, d.Values())
	bar.SetXAxis(labels).AddSeries("Probability Mass", items)
	return bar
}

// newCDFChart creates a line chart of the cumulative distribution function.
func newCDFChart(title string, d Distribution) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		toolbox(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.AddSeries("Cumulative Probability", convertCDFData(CDFPoints(d)))
	return chart
}

// Render writes an HTML page showing the probability masses and the
// cumulative distribution function of d.
func Render(w io.Writer, title string, d Distribution) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(
		newMassChart(title, d),
		newCDFChart(title+": CDF", d),
	)
	return page.Render(w)
}
