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
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-coinways/ways/workerpool"
)

// foldClass is the per-class step run by the parallel folds. Tests replace
// it to inject worker failures.
var foldClass = foldResidue

// ParallelFold folds one denomination into t by running each residue class
// modulo coin as an independent task on pool. It produces exactly the table
// BaseFold produces.
//
// The partition is derived from coin on every call. ParallelFold returns only
// after every task has finished, so no worker touches t afterwards. If any
// task fails the result is a *FoldError and t must be discarded.
//
// Falls back to running the classes in order on the calling goroutine when
// pool is nil.
func ParallelFold(pool *workerpool.Pool, t *Table, coin int64) error {
	classes := Partition(coin, t.target)
	if len(classes) == 0 {
		return nil
	}

	if pool == nil {
		err := workerpool.Guard(0, func() error {
			for _, rc := range classes {
				foldClass(t, rc)
			}
			return nil
		})
		if err != nil {
			return &FoldError{Mode: ModeParallel, Coin: coin, Cause: err}
		}
		return nil
	}

	err := pool.ParallelForAtomicBatched(len(classes), residueBatch(t.stride), func(start, end int) error {
		for _, rc := range classes[start:end] {
			foldClass(t, rc)
		}
		return nil
	})
	if err != nil {
		return &FoldError{Mode: ModeParallel, Coin: coin, Cause: err}
	}
	return nil
}

// GroupFold is ParallelFold scheduled on an errgroup instead of a persistent
// pool: one goroutine per batch of residue classes, at most limit running at
// once. A limit <= 0 uses GOMAXPROCS.
func GroupFold(t *Table, coin int64, limit int) error {
	classes := Partition(coin, t.target)
	if len(classes) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(limit)

	batch := residueBatch(t.stride)
	for start := 0; start < len(classes); start += batch {
		chunk := classes[start:min(start+batch, len(classes))]
		g.Go(func() error {
			return workerpool.Guard(start, func() error {
				for _, rc := range chunk {
					foldClass(t, rc)
				}
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return &FoldError{Mode: ModeGroup, Coin: coin, Cause: err}
	}
	return nil
}
