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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete_empirical"
	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/vector"
	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
)

// InputJSON is the input file of a distribution. Either values and
// weights or counts are given.
type InputJSON struct {
	Values  []int          `json:"values,omitempty"`
	Weights []float64      `json:"weights,omitempty"`
	Counts  map[int]uint64 `json:"counts,omitempty"`
}

// tomlInput is the TOML form of InputJSON. TOML keys are strings, so
// counts are keyed by the decimal support value.
type tomlInput struct {
	Values  []int             `toml:"values"`
	Weights []float64         `toml:"weights"`
	Counts  map[string]uint64 `toml:"counts"`
}

func (in *tomlInput) convert() (*InputJSON, error) {
	res := &InputJSON{Values: in.Values, Weights: in.Weights}
	if len(in.Counts) > 0 {
		res.Counts = make(map[int]uint64, len(in.Counts))
		for key, count := range in.Counts {
			x, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("invalid support value %q in counts; %w", key, err)
			}
			res.Counts[x] = count
		}
	}
	return res, nil
}

// readInput reads an input file; files ending in .gz are decompressed.
// Files named *.toml or *.toml.gz are TOML, all others JSON.
func readInput(filename string) (input *InputJSON, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file %v; %w", filename, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)

	var reader io.Reader = file
	if strings.HasSuffix(filename, ".gz") {
		var gzipReader *gzip.Reader
		gzipReader, err = gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("cannot create gzip reader for %v; %w", filename, err)
		}
		defer func(r *gzip.Reader) {
			err = errors.Join(err, r.Close())
		}(gzipReader)
		reader = gzipReader
	}

	if strings.HasSuffix(strings.TrimSuffix(filename, ".gz"), ".toml") {
		raw := &tomlInput{}
		if _, err := toml.NewDecoder(reader).Decode(raw); err != nil {
			return nil, fmt.Errorf("cannot decode input file %v; %w", filename, err)
		}
		return raw.convert()
	}

	input = &InputJSON{}
	if err := json.NewDecoder(reader).Decode(input); err != nil {
		return nil, fmt.Errorf("cannot decode input file %v; %w", filename, err)
	}
	return input, nil
}

// newDistribution creates the distribution described by the input.
func (in *InputJSON) newDistribution(src discrete.Source) (*discrete_empirical.Distribution, error) {
	if len(in.Counts) > 0 {
		if len(in.Values) > 0 || len(in.Weights) > 0 {
			return nil, fmt.Errorf("input must either have counts or values and weights")
		}
		return discrete_empirical.FromCounts(src, in.Counts)
	}
	return discrete_empirical.New(src, in.Values, vector.NewDense(in.Weights))
}

// loadDistribution reads filename and creates its distribution.
func loadDistribution(filename string, src discrete.Source) (*discrete_empirical.Distribution, error) {
	input, err := readInput(filename)
	if err != nil {
		return nil, err
	}
	d, err := input.newDistribution(src)
	if err != nil {
		return nil, fmt.Errorf("invalid distribution in %v; %w", filename, err)
	}
	return d, nil
}
