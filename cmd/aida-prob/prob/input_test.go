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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/aida-prob/stochastic/statistics/discrete"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSource float64

func (s constSource) Float64() float64 { return float64(s) }

// writeInputFile writes content into a file named name in a temporary directory.
func writeInputFile(t *testing.T, name string, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

// writeGzipInputFile writes a gzip compressed file.
func writeGzipInputFile(t *testing.T, name string, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	file, err := os.Create(filename)
	require.NoError(t, err)
	w := gzip.NewWriter(file)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())
	return filename
}

const testInput = `{"values": [1, 2, 3], "weights": [0.25, 0.5, 0.25]}`

func TestInput_LoadValuesAndWeights(t *testing.T) {
	filename := writeInputFile(t, "dist.json", testInput)
	d, err := loadDistribution(filename, constSource(0.5))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 0.5, d.Pdf(2))
	assert.Equal(t, 0.75, d.Cdf(2))
}

func TestInput_LoadCounts(t *testing.T) {
	filename := writeInputFile(t, "dist.json", `{"counts": {"4": 1, "7": 3, "9": 0}}`)
	d, err := loadDistribution(filename, constSource(0.5))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 7}, d.Values())
	assert.Equal(t, 0.25, d.Pdf(4))
	assert.Equal(t, 0.75, d.Pdf(7))
	assert.Equal(t, 0.0, d.Pdf(9))
}

func TestInput_LoadGzip(t *testing.T) {
	filename := writeGzipInputFile(t, "dist.json.gz", testInput)
	d, err := loadDistribution(filename, constSource(0.5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, d.Values())
}

func TestInput_LoadToml(t *testing.T) {
	filename := writeInputFile(t, "dist.toml", "values = [3, 1, 2]\nweights = [0.25, 0.25, 0.5]\n")
	d, err := loadDistribution(filename, constSource(0.5))
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 2, 3}, d.Values()); diff != "" {
		t.Errorf("unexpected support (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.5, d.Pdf(2))
}

func TestInput_LoadTomlCounts(t *testing.T) {
	filename := writeGzipInputFile(t, "dist.toml.gz", "[counts]\n-2 = 1\n8 = 1\n")
	d, err := loadDistribution(filename, constSource(0.5))
	require.NoError(t, err)
	if diff := cmp.Diff([]int{-2, 8}, d.Values()); diff != "" {
		t.Errorf("unexpected support (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.5, d.Pdf(-2))
}

func TestInput_TomlCountsNeedIntegerKeys(t *testing.T) {
	filename := writeInputFile(t, "dist.toml", "[counts]\nabc = 1\n")
	_, err := loadDistribution(filename, constSource(0.5))
	assert.ErrorContains(t, err, "invalid support value")
}

func TestInput_BrokenGzipIsRejected(t *testing.T) {
	filename := writeInputFile(t, "dist.json.gz", testInput)
	_, err := loadDistribution(filename, constSource(0.5))
	assert.ErrorContains(t, err, "gzip")
}

func TestInput_MissingFile(t *testing.T) {
	_, err := loadDistribution(filepath.Join(t.TempDir(), "missing.json"), constSource(0.5))
	assert.ErrorContains(t, err, "cannot open input file")
}

func TestInput_MalformedJson(t *testing.T) {
	filename := writeInputFile(t, "dist.json", `{"values": [1,`)
	_, err := loadDistribution(filename, constSource(0.5))
	assert.ErrorContains(t, err, "cannot decode input file")
}

func TestInput_CountsAndWeightsAreExclusive(t *testing.T) {
	filename := writeInputFile(t, "dist.json", `{"values": [1], "weights": [1], "counts": {"1": 2}}`)
	_, err := loadDistribution(filename, constSource(0.5))
	assert.ErrorContains(t, err, "either have counts or values and weights")
}

func TestInput_InvalidDistributions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", `{}`, discrete.ErrInvalidArgument},
		{"mismatch", `{"values": [1, 2], "weights": [1]}`, discrete.ErrInvalidArgument},
		{"zero weight", `{"values": [1, 2], "weights": [0, 1]}`, discrete.ErrInvalidProbability},
		{"weight above one", `{"values": [1], "weights": [1.5]}`, discrete.ErrInvalidProbability},
		{"zero counts", `{"counts": {"1": 0}}`, discrete.ErrInvalidArgument},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			filename := writeInputFile(t, "dist.json", test.content)
			_, err := loadDistribution(filename, constSource(0.5))
			assert.ErrorIs(t, err, test.want)
		})
	}
}
