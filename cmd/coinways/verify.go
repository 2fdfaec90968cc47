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

	"github.com/ajroetker/go-coinways/internal/reference"
)

// Brute force is exponential in the number of coins; keep verify inputs small.
const (
	maxVerifyTarget = 200
	maxVerifyCoins  = 8
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	p := &problem{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every fold strategy against brute-force enumeration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			if p.target > maxVerifyTarget || len(p.coins) > maxVerifyCoins {
				return fmt.Errorf("verify supports target <= %d and at most %d coins", maxVerifyTarget, maxVerifyCoins)
			}

			variants, closeFn, err := opts.benchVariants()
			if err != nil {
				return err
			}
			defer closeFn()

			want := reference.BruteForce(int(p.target), int(p.maxCoins), p.coins)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %d\n", "brute-force", want)

			var mismatches int
			for _, v := range variants {
				got, err := v.solve(p)
				if err != nil {
					return fmt.Errorf("%s: %w", v.name, err)
				}
				status := "ok"
				if got != want {
					status = "MISMATCH"
					mismatches++
				}
				fmt.Fprintf(out, "%-12s %d %s\n", v.name, got, status)
			}
			if mismatches > 0 {
				return fmt.Errorf("%d variant(s) disagree with brute force", mismatches)
			}
			return nil
		},
	}
	addProblemFlags(cmd.Flags(), p)
	return cmd
}
