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
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-coinways/wasmhost"
)

func newWasmCmd(opts *globalOptions) *cobra.Command {
	var (
		modulePath string
		funcName   string
		rawArgs    []int64
	)
	cmd := &cobra.Command{
		Use:   "wasm",
		Short: "Call a function of a wasm module that imports coinways.solve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if modulePath == "" {
				return errors.New("--module is required")
			}
			wasm, err := os.ReadFile(modulePath)
			if err != nil {
				return fmt.Errorf("read module: %w", err)
			}

			f, closeFn, err := opts.folder()
			if err != nil {
				return err
			}
			defer closeFn()

			params := lo.Map(rawArgs, func(v int64, _ int) uint64 { return uint64(v) })
			results, err := wasmhost.Run(cmd.Context(), wasm, funcName, opts.solver(f), params...)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&modulePath, "module", "", "path to a core wasm module")
	fs.StringVar(&funcName, "func", "run", "exported function to call")
	fs.Int64SliceVar(&rawArgs, "args", nil, "comma-separated integer arguments")
	return cmd
}
