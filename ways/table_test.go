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
	"errors"
	"math"
	"testing"
)

func TestNewTableSeed(t *testing.T) {
	sizes := []struct{ target, maxCoins int }{
		{0, 0}, {0, 5}, {5, 0}, {7, 3}, {100, 10},
	}
	for _, size := range sizes {
		tab, err := NewTable(size.target, size.maxCoins, DefaultMaxCells)
		if err != nil {
			t.Fatalf("NewTable(%d, %d): %v", size.target, size.maxCoins, err)
		}
		if got, want := tab.Len(), (size.target+1)*(size.maxCoins+1); got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
		if tab.Stride() != size.maxCoins+1 {
			t.Errorf("Stride() = %d, want %d", tab.Stride(), size.maxCoins+1)
		}
		for v := 0; v <= size.target; v++ {
			for k := 0; k <= size.maxCoins; k++ {
				want := uint64(0)
				if v == 0 && k == 0 {
					want = 1
				}
				if got := tab.At(v, k); got != want {
					t.Errorf("%dx%d: dp[%d][%d] = %d, want %d", size.target, size.maxCoins, v, k, got, want)
				}
			}
		}
	}
}

func TestTableLayout(t *testing.T) {
	tab, err := NewTable(4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Index(2, 1) != 2*4+1 {
		t.Errorf("Index(2, 1) = %d, want 9", tab.Index(2, 1))
	}

	row := tab.Row(2)
	if len(row) != 4 || cap(row) != 4 {
		t.Errorf("Row(2) len/cap = %d/%d, want 4/4", len(row), cap(row))
	}
	row[3] = 42
	if tab.At(2, 3) != 42 {
		t.Errorf("Row(2) does not alias dp[2][*]")
	}
	if tab.At(3, 0) != 0 {
		t.Errorf("write to Row(2) leaked into Row(3)")
	}
}

func TestReduce(t *testing.T) {
	tab, err := NewTable(3, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	row := tab.Row(3)
	row[0], row[1], row[2] = 1, 2, 3
	if got := tab.Reduce(); got != 6 {
		t.Errorf("Reduce() = %d, want 6", got)
	}

	row[0], row[1], row[2] = math.MaxUint64, 2, 0
	if got := tab.Reduce(); got != 1 {
		t.Errorf("Reduce() with wraparound = %d, want 1", got)
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name             string
		target, maxCoins int
		limit            uint64
	}{
		{"negative target", -1, 3, 0},
		{"negative max coins", 3, -1, 0},
		{"multiplication overflow", math.MaxInt, 1, 0},
		{"byte size overflow", math.MaxInt / 8, 1, 0},
		{"over limit", 1000, 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := NewTable(tt.target, tt.maxCoins, tt.limit)
			if tab != nil {
				t.Errorf("NewTable returned a table")
			}
			if !errors.Is(err, ErrAllocation) {
				t.Fatalf("err = %v, want ErrAllocation", err)
			}
			var ae *AllocationError
			if !errors.As(err, &ae) || ae.Target != tt.target || ae.MaxCoins != tt.maxCoins {
				t.Errorf("err = %#v, want AllocationError for %d/%d", err, tt.target, tt.maxCoins)
			}
		})
	}
}

func TestNewTableAtLimit(t *testing.T) {
	if _, err := NewTable(9, 9, 100); err != nil {
		t.Errorf("NewTable at exactly the limit: %v", err)
	}
}
