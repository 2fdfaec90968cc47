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
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-coinways/internal/reference"
	"github.com/ajroetker/go-coinways/ways"
)

// benchResult is the outcome of one timed variant.
type benchResult struct {
	name  string
	count uint64
	best  time.Duration
}

// benchVariant solves one problem and returns its count.
type benchVariant struct {
	name  string
	solve func(p *problem) (uint64, error)
}

func newBenchCmd(opts *globalOptions) *cobra.Command {
	p := &problem{}
	runs := 3
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every fold strategy against the coin-count-major baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			variants, closeFn, err := opts.benchVariants()
			if err != nil {
				return err
			}
			defer closeFn()

			results, err := runBench(p, variants, runs)
			if err != nil {
				return err
			}
			return printBench(cmd.OutOrStdout(), p, results)
		},
	}
	addProblemFlags(cmd.Flags(), p)
	cmd.Flags().IntVar(&runs, "runs", runs, "timed runs per variant; the fastest is reported")
	return cmd
}

func (o *globalOptions) benchVariants() ([]benchVariant, func(), error) {
	var (
		variants []benchVariant
		closers  []func()
	)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	for _, mode := range []ways.Mode{ways.ModeSequential, ways.ModeParallel, ways.ModeGroup} {
		f, closeFn, err := ways.NewFolder(mode, o.workers)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, closeFn)
		s := o.solver(f)
		variants = append(variants, benchVariant{
			name: mode.String(),
			solve: func(p *problem) (uint64, error) {
				return s.Solve(int(p.target), int(p.maxCoins), p.coins)
			},
		})
	}
	variants = append(variants, benchVariant{
		name: "k-major",
		solve: func(p *problem) (uint64, error) {
			if _, err := ways.TableCells(int(p.target), int(p.maxCoins), o.maxCells); err != nil {
				return 0, err
			}
			return reference.KMajor(int(p.target), int(p.maxCoins), p.coins), nil
		},
	})
	return variants, closeAll, nil
}

func runBench(p *problem, variants []benchVariant, runs int) ([]benchResult, error) {
	runs = max(runs, 1)
	results := make([]benchResult, 0, len(variants))
	for _, v := range variants {
		// Warm up on a small instance.
		if _, err := v.solve(&problem{target: 100, maxCoins: 10, coins: p.coins}); err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}

		times := make([]time.Duration, runs)
		var count uint64
		for i := range runs {
			start := time.Now()
			n, err := v.solve(p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", v.name, err)
			}
			times[i] = time.Since(start)
			count = n
		}
		results = append(results, benchResult{name: v.name, count: count, best: lo.Min(times)})
	}
	return results, nil
}

func printBench(w io.Writer, p *problem, results []benchResult) error {
	fmt.Fprintf(w, "Target: %d, MaxCoins: %d, Coins: %v\n\n", p.target, p.maxCoins, p.coins)

	baseline, hasBaseline := lo.Find(results, func(r benchResult) bool { return r.name == "k-major" })
	for _, r := range results {
		line := fmt.Sprintf("%-12s %12.6fs  count=%d", r.name, r.best.Seconds(), r.count)
		if hasBaseline && r.best > 0 {
			line += fmt.Sprintf("  speedup=%.2fx", baseline.best.Seconds()/r.best.Seconds())
		}
		fmt.Fprintln(w, line)
	}

	counts := lo.Uniq(lo.Map(results, func(r benchResult, _ int) uint64 { return r.count }))
	if len(counts) != 1 {
		fmt.Fprintln(w, "\nConsistency: FAIL")
		return fmt.Errorf("variants disagree: %v", counts)
	}
	fmt.Fprintln(w, "\nConsistency: OK")
	return nil
}
