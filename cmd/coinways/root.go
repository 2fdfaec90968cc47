// Copyright 2025 go-coinways Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ajroetker/go-coinways/ways"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	mode     string
	workers  int
	maxCells uint64
	verbose  bool

	logger *zap.Logger
}

// problem is one (target, maxCoins, coins) input.
type problem struct {
	target   int64
	maxCoins int64
	coins    []int64
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "coinways",
		Short:         "Count bounded coin combinations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&opts.mode, "mode", "auto", "fold strategy: auto, sequential, parallel or group")
	fs.IntVar(&opts.workers, "workers", 0, "workers for parallel and group modes (0 = GOMAXPROCS)")
	fs.Uint64Var(&opts.maxCells, "max-cells", ways.DefaultMaxCells, "largest DP table to allocate, in cells (0 = no limit)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log kernel activity to stderr")

	root.AddCommand(
		newSolveCmd(opts),
		newBenchCmd(opts),
		newVerifyCmd(opts),
		newInfoCmd(),
		newInteractiveCmd(opts),
		newWasmCmd(opts),
	)
	return root
}

func (o *globalOptions) setup() error {
	var err error
	if o.verbose {
		o.logger, err = zap.NewDevelopment()
	} else {
		o.logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	ways.SetLogger(o.logger)
	return nil
}

// folder returns the Folder selected by --mode and a function releasing it.
func (o *globalOptions) folder() (ways.Folder, func(), error) {
	if o.mode == "auto" {
		if o.workers == 0 {
			return ways.DefaultFolder(), func() {}, nil
		}
		return ways.NewFolder(ways.CurrentMode(), o.workers)
	}
	mode, err := ways.ParseMode(o.mode)
	if err != nil {
		return nil, nil, err
	}
	return ways.NewFolder(mode, o.workers)
}

// solver builds a Solver for f honouring --max-cells.
func (o *globalOptions) solver(f ways.Folder) *ways.Solver {
	return ways.New(ways.WithFolder(f), ways.WithMaxCells(o.maxCells))
}

// addProblemFlags registers --target, --max-coins and --coins on fs.
func addProblemFlags(fs *pflag.FlagSet, p *problem) {
	fs.Int64Var(&p.target, "target", 0, "amount to make")
	fs.Int64Var(&p.maxCoins, "max-coins", 0, "largest number of coins allowed")
	fs.Int64SliceVar(&p.coins, "coins", nil, "comma-separated coin denominations")
}

// validate checks p the way every entry point must before calling the kernel.
func (p *problem) validate() error {
	return ways.ValidateInputs(p.target, p.maxCoins, p.coins)
}
