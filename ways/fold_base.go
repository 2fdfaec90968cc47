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

package ways

// BaseFold folds one denomination into t on the calling goroutine.
//
// Amounts are visited in ascending order from coin to target, so dp[v-coin]
// already includes this coin's contribution when dp[v] reads it; a coin may
// be used any number of times. For every such v:
//
//	dp[v][k] += dp[v-coin][k-1]   for k in [1, maxCoins]
//
// A coin larger than the target, or a non-positive coin, leaves t unchanged.
func BaseFold(t *Table, coin int64) {
	c, ok := t.foldable(coin)
	if !ok {
		return
	}
	for v := c; v <= t.target; v++ {
		addShifted(t.Row(v), t.Row(v-c))
	}
}

// addShifted performs dst[k] += src[k-1] for k in [1, len(dst)).
// dst and src must be distinct rows of the same length.
func addShifted(dst, src []uint64) {
	n := len(dst) - 1
	if n <= 0 {
		return
	}
	d := dst[1 : n+1 : n+1]
	s := src[:n:n]

	// Process 4 counters at a time
	var i int
	for ; i+4 <= n; i += 4 {
		dd := d[i : i+4 : i+4]
		ss := s[i : i+4 : i+4]
		dd[0] += ss[0]
		dd[1] += ss[1]
		dd[2] += ss[2]
		dd[3] += ss[3]
	}

	for ; i < n; i++ {
		d[i] += s[i]
	}
}
