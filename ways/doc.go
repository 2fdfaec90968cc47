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

// Package ways counts the ways to make a target amount from an ordered list
// of coin denominations, each usable any number of times, with at most a given
// number of coins in total.
//
// # Table Layout
//
// The kernel keeps dp[amount][coinCount] in one []uint64 with amount as the
// outer index. The fold's inner loop walks coin counts for a fixed amount, so
// it reads and writes two contiguous rows.
//
// # Fold Strategies
//
// Denominations are folded one at a time, in input order. Within one fold,
// dp[v] depends only on dp[v-coin], so amounts in different residue classes
// modulo coin are independent. Three Folders implement the step:
//
//   - SequentialFolder: one ascending pass on the calling goroutine
//   - ParallelFolder: residue classes on a persistent workerpool.Pool
//   - GroupFolder: residue classes on an errgroup with a goroutine limit
//
// All three produce the same table bit for bit. The default is chosen per
// build: sequential on wasm, parallel elsewhere. COINWAYS_SEQUENTIAL=1 forces
// sequential and COINWAYS_WORKERS sets the pool size.
//
// # Example
//
//	n, err := ways.Solve(100, 10, []int64{10, 50, 100})
//	// n == 4: 100, 50+50, 50+5×10, 10×10
//
// # Overflow
//
// Counts are uint64 and wrap silently. A result is exact only while the true
// count is below 2^64.
package ways
