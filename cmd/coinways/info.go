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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-coinways/ways"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the default fold strategy and host capabilities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := ways.Capabilities()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode:        %s\n", ways.CurrentName())
			fmt.Fprintf(out, "workers:     %d\n", ways.CurrentWorkers())
			fmt.Fprintf(out, "arch:        %s (%d CPUs)\n", info.Arch, info.NumCPU)
			fmt.Fprintf(out, "cache line:  %d bytes\n", info.CacheLineSize)
			features := "none"
			if len(info.Features) > 0 {
				features = strings.Join(info.Features, ",")
			}
			fmt.Fprintf(out, "features:    %s\n", features)
		},
	}
}
