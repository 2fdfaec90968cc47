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

// Command coinways counts bounded coin combinations from the command line.
//
// Usage:
//
//	coinways solve --target 1000 --max-coins 15 --coins 10,50,100,500
//	coinways bench --target 100000 --max-coins 1000 --coins 10,50,100,500
//	coinways verify --target 12 --max-coins 6 --coins 1,2,3,5
//	coinways info
//	coinways interactive
//	coinways wasm --module guest.wasm --func run --args 100,10,0,3
//
// Global flags select the fold strategy (--mode), the worker count
// (--workers), the table size limit (--max-cells) and debug logging
// (--verbose). COINWAYS_SEQUENTIAL and COINWAYS_WORKERS are honoured when
// --mode is auto.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
