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
	"fmt"

	"github.com/ajroetker/go-coinways/ways/workerpool"
)

// Mode identifies a fold strategy.
type Mode int

const (
	// ModeSequential folds on the calling goroutine.
	ModeSequential Mode = iota

	// ModeParallel folds residue classes on a persistent worker pool.
	ModeParallel

	// ModeGroup folds residue classes on per-fold goroutines bounded by an
	// errgroup limit.
	ModeGroup
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	case ModeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// ParseMode parses the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "seq":
		return ModeSequential, nil
	case "parallel", "par":
		return ModeParallel, nil
	case "group":
		return ModeGroup, nil
	}
	return 0, fmt.Errorf("ways: unknown mode %q", s)
}

// Folder applies one denomination's fold step to a table. All
// implementations share Table and produce identical tables.
type Folder interface {
	Fold(t *Table, coin int64) error
	Mode() Mode
}

// SequentialFolder runs BaseFold.
type SequentialFolder struct{}

func (SequentialFolder) Fold(t *Table, coin int64) error {
	BaseFold(t, coin)
	return nil
}

func (SequentialFolder) Mode() Mode { return ModeSequential }

// ParallelFolder runs ParallelFold on Pool.
type ParallelFolder struct {
	Pool *workerpool.Pool
}

func (f *ParallelFolder) Fold(t *Table, coin int64) error {
	return ParallelFold(f.Pool, t, coin)
}

func (f *ParallelFolder) Mode() Mode { return ModeParallel }

// GroupFolder runs GroupFold with Limit concurrent goroutines.
type GroupFolder struct {
	Limit int
}

func (f GroupFolder) Fold(t *Table, coin int64) error {
	return GroupFold(t, coin, f.Limit)
}

func (f GroupFolder) Mode() Mode { return ModeGroup }

// NewFolder returns a Folder for mode using the given number of workers
// (<= 0 means GOMAXPROCS). The returned close function releases a pool
// created for ModeParallel and is a no-op otherwise.
func NewFolder(mode Mode, workers int) (Folder, func(), error) {
	switch mode {
	case ModeSequential:
		return SequentialFolder{}, func() {}, nil
	case ModeParallel:
		pool := workerpool.New(workers)
		return &ParallelFolder{Pool: pool}, pool.Close, nil
	case ModeGroup:
		return GroupFolder{Limit: workers}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("ways: unknown mode %d", mode)
}
