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
	"iter"
	"unsafe"
)

// ResidueClass is the set of amounts a single worker owns while one coin is
// folded: First, First+Step, ..., First+(Count-1)*Step. Every amount in the
// class is congruent to Rem modulo Step, and so is every amount it reads
// (v-Step), so classes never share cells.
type ResidueClass struct {
	Rem   int
	First int
	Count int
	Step  int
}

// Amounts yields the amounts of the class in ascending order.
func (r ResidueClass) Amounts() iter.Seq[int] {
	return func(yield func(int) bool) {
		v := r.First
		for range r.Count {
			if !yield(v) {
				return
			}
			v += r.Step
		}
	}
}

// Partition splits the amounts [coin, target] into residue classes modulo
// coin, ordered by residue. Classes with no amount in range are omitted, so
// at most min(coin, target-coin+1) classes are returned. Returns nil when
// coin does not fit in [1, target].
func Partition(coin int64, target int) []ResidueClass {
	if coin <= 0 || coin > int64(target) {
		return nil
	}
	c := int(coin)
	n := min(c, target-c+1)
	classes := make([]ResidueClass, n)
	for rem := range n {
		first := c + rem
		classes[rem] = ResidueClass{
			Rem:   rem,
			First: first,
			Count: (target-first)/c + 1,
			Step:  c,
		}
	}
	return classes
}

// foldResidue applies the fold recurrence to one residue class in ascending
// amount order.
func foldResidue(t *Table, rc ResidueClass) {
	v := rc.First
	for range rc.Count {
		addShifted(t.Row(v), t.Row(v-rc.Step))
		v += rc.Step
	}
}

// residueBatch returns how many consecutive residue classes one task should
// take. Residues r and r+1 own adjacent rows, so when a row is shorter than a
// cache line, batching them keeps shared lines on one worker.
func residueBatch(stride int) int {
	rowBytes := stride * int(unsafe.Sizeof(uint64(0)))
	line := cacheLineSize()
	if rowBytes >= line {
		return 1
	}
	return (line + rowBytes - 1) / rowBytes
}
