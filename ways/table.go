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

import (
	"math"
	"math/bits"
)

// DefaultMaxCells caps the table at 8 GiB of counters unless the solver is
// configured otherwise.
const DefaultMaxCells uint64 = 1 << 30

// maxAllocCells is the largest []uint64 length whose byte size fits in an int.
const maxAllocCells = uint64(math.MaxInt / 8)

// Table is the DP grid dp[amount][coinCount] flattened amount-major into one
// buffer. A row holds every coin count for one amount, so the fold's inner
// loop walks contiguous memory.
//
// Cell (v, k) is the number of ways to reach amount v with exactly k coins
// using the denominations folded so far. Counts wrap at 64 bits.
type Table struct {
	cells    []uint64
	target   int
	maxCoins int
	stride   int
}

// TableCells returns the cell count of a table for amounts [0, target] and
// coin counts [0, maxCoins], or an *AllocationError if such a table cannot be
// built. A maxCells of 0 disables the size limit; the overflow checks always
// apply.
func TableCells(target, maxCoins int, maxCells uint64) (uint64, error) {
	allocErr := func(reason string) error {
		return &AllocationError{Target: target, MaxCoins: maxCoins, Limit: maxCells, Reason: reason}
	}
	if target < 0 || maxCoins < 0 {
		return 0, allocErr("negative dimension")
	}

	hi, cells := bits.Mul64(uint64(target)+1, uint64(maxCoins)+1)
	if hi != 0 || cells > maxAllocCells {
		return 0, allocErr("cell count overflows")
	}
	if maxCells > 0 && cells > maxCells {
		return 0, allocErr("cell count exceeds limit")
	}
	return cells, nil
}

// NewTable allocates a zeroed table for amounts [0, target] and coin counts
// [0, maxCoins] and seeds dp[0][0] = 1. Sizes are checked by TableCells.
func NewTable(target, maxCoins int, maxCells uint64) (*Table, error) {
	cells, err := TableCells(target, maxCoins, maxCells)
	if err != nil {
		return nil, err
	}

	t := &Table{
		cells:    make([]uint64, cells),
		target:   target,
		maxCoins: maxCoins,
		stride:   maxCoins + 1,
	}
	t.cells[0] = 1
	return t, nil
}

// Target returns the largest amount in the table.
func (t *Table) Target() int { return t.target }

// MaxCoins returns the largest coin count in the table.
func (t *Table) MaxCoins() int { return t.maxCoins }

// Stride returns the row length, maxCoins+1.
func (t *Table) Stride() int { return t.stride }

// Len returns the number of cells.
func (t *Table) Len() int { return len(t.cells) }

// Index returns the buffer offset of cell (v, k).
func (t *Table) Index(v, k int) int { return v*t.stride + k }

// At returns dp[v][k].
func (t *Table) At(v, k int) uint64 { return t.cells[t.Index(v, k)] }

// Row returns the cells of amount v. The slice is capped so appends cannot
// spill into the next row.
func (t *Table) Row(v int) []uint64 {
	base := v * t.stride
	return t.cells[base : base+t.stride : base+t.stride]
}

// Reduce returns Σ_k dp[target][k], wrapping on overflow.
func (t *Table) Reduce() uint64 {
	var total uint64
	for _, n := range t.Row(t.target) {
		total += n
	}
	return total
}

// foldable converts coin to a row step. Non-positive coins and coins above
// the target leave the table unchanged.
func (t *Table) foldable(coin int64) (int, bool) {
	if coin <= 0 || coin > int64(t.target) {
		return 0, false
	}
	return int(coin), true
}
