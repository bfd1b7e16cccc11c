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
	"os"
	"path/filepath"

	"github.com/0xsoniclabs/aida-prob/logger"
	"github.com/0xsoniclabs/aida-prob/stochastic/visualizer"
	"github.com/0xsoniclabs/aida-prob/utils"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "render probability masses and cdf as an HTML page",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<input-file>

The page is written to --output (default ./distribution.html).`,
}

func visualizeAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	d, err := loadDistribution(cfg.InputFile, rand.New(rand.NewSource(cfg.Seed())))
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = "./distribution.html"
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot create output file %v; %w", cfg.Output, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)

	log.Noticef("Write chart file %v", cfg.Output)
	return visualizer.Render(file, filepath.Base(cfg.InputFile), d)
}
