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
)

func newSolveCmd(opts *globalOptions) *cobra.Command {
	p := &problem{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the number of ways to make --target with at most --max-coins coins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			f, closeFn, err := opts.folder()
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := opts.solver(f).Solve(int(p.target), int(p.maxCoins), p.coins)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	addProblemFlags(cmd.Flags(), p)
	return cmd
}
