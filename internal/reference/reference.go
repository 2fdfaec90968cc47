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

// Package reference holds slow, obviously-correct counters used as oracles
// and benchmark baselines for package ways.
package reference

// KMajor counts with the table laid out coin-count-major, dp[k][v]: for each
// coin and each k ascending, row k gains row k-1 shifted by the coin value.
// It is the layout the amount-major kernel is benchmarked against.
func KMajor(target, maxCoins int, coins []int64) uint64 {
	width := target + 1
	dp := make([]uint64, (maxCoins+1)*width)
	dp[0] = 1

	for _, coin := range coins {
		if coin <= 0 || coin > int64(target) {
			continue
		}
		c := int(coin)
		for k := 1; k <= maxCoins; k++ {
			cur := dp[k*width : (k+1)*width]
			prev := dp[(k-1)*width : k*width]
			for v := c; v <= target; v++ {
				cur[v] += prev[v-c]
			}
		}
	}

	var total uint64
	for k := 0; k <= maxCoins; k++ {
		total += dp[k*width+target]
	}
	return total
}

// BruteForce enumerates how many times each coin index is used and counts
// the assignments whose value is target and whose size is at most maxCoins.
// Exponential; keep inputs small.
func BruteForce(target, maxCoins int, coins []int64) uint64 {
	var count func(i int, remaining int64, budget int) uint64
	count = func(i int, remaining int64, budget int) uint64 {
		if i == len(coins) {
			if remaining == 0 {
				return 1
			}
			return 0
		}
		c := coins[i]
		if c <= 0 {
			return count(i+1, remaining, budget)
		}
		var total uint64
		for n := 0; n <= budget && int64(n)*c <= remaining; n++ {
			total += count(i+1, remaining-int64(n)*c, budget-n)
		}
		return total
	}
	return count(0, int64(target), maxCoins)
}
