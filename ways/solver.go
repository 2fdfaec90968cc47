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
	"fmt"

	"go.uber.org/zap"
)

// State is the lifecycle stage of one solve.
type State int

const (
	// StateAllocated: the table exists and holds only the seed.
	StateAllocated State = iota
	// StateFolding: at least one coin has been folded.
	StateFolding
	// StateReduced: the count has been taken; terminal.
	StateReduced
)

func (s State) String() string {
	switch s {
	case StateAllocated:
		return "allocated"
	case StateFolding:
		return "folding"
	case StateReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

var errReduced = errors.New("ways: table already reduced")

// Option configures a Solver.
type Option func(*Solver)

// WithFolder sets the fold strategy. The caller keeps ownership of any pool
// behind it.
func WithFolder(f Folder) Option {
	return func(s *Solver) { s.folder = f }
}

// WithMaxCells caps the table size; 0 disables the cap.
func WithMaxCells(n uint64) Option {
	return func(s *Solver) { s.maxCells = n }
}

// WithLogger sets the solver's logger instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// Solver counts bounded coin combinations with a fixed fold strategy.
// A Solver holds no per-call state and is safe for concurrent use if its
// Folder is.
type Solver struct {
	folder   Folder
	logger   *zap.Logger
	maxCells uint64
}

// New returns a Solver using DefaultFolder, DefaultMaxCells and the package
// logger unless overridden.
func New(opts ...Option) *Solver {
	s := &Solver{maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(s)
	}
	if s.folder == nil {
		s.folder = DefaultFolder()
	}
	if s.logger == nil {
		s.logger = Logger()
	}
	return s
}

// Folder returns the solver's fold strategy.
func (s *Solver) Folder() Folder {
	return s.folder
}

// Solve returns the number of ways to make target from coins using at most
// maxCoins coins: Σ_{k=0..maxCoins} dp[target][k].
//
// Each coin index is a separate denomination that may be used any number of
// times; duplicates in coins are counted as distinct denominations. Coins are
// folded in order. The count is exact only while it fits in 64 bits; larger
// counts wrap.
//
// The only kernel errors are *AllocationError and *FoldError. Inputs are not
// otherwise validated; use ValidateInputs at API boundaries.
func (s *Solver) Solve(target, maxCoins int, coins []int64) (uint64, error) {
	r, err := s.start(target, maxCoins)
	if err != nil {
		return 0, err
	}
	for _, coin := range coins {
		if err := r.fold(coin); err != nil {
			return 0, err
		}
	}
	return r.reduce()
}

// run is one solve: a fresh table moving Allocated -> Folding -> Reduced.
type run struct {
	table  *Table
	folder Folder
	logger *zap.Logger
	state  State
}

func (s *Solver) start(target, maxCoins int) (*run, error) {
	t, err := NewTable(target, maxCoins, s.maxCells)
	if err != nil {
		s.logger.Debug("table allocation failed", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("table allocated",
		zap.Int("target", target),
		zap.Int("max_coins", maxCoins),
		zap.Int("cells", t.Len()))
	return &run{table: t, folder: s.folder, logger: s.logger, state: StateAllocated}, nil
}

func (r *run) fold(coin int64) error {
	if r.state == StateReduced {
		return errReduced
	}
	r.state = StateFolding
	if err := r.folder.Fold(r.table, coin); err != nil {
		r.logger.Warn("fold failed",
			zap.Int64("coin", coin),
			zap.Stringer("mode", r.folder.Mode()),
			zap.Error(err))
		return err
	}
	r.logger.Debug("folded", zap.Int64("coin", coin), zap.Stringer("mode", r.folder.Mode()))
	return nil
}

func (r *run) reduce() (uint64, error) {
	if r.state == StateReduced {
		return 0, errReduced
	}
	r.state = StateReduced
	n := r.table.Reduce()
	r.table = nil
	r.logger.Debug("reduced", zap.Uint64("count", n))
	return n, nil
}

// Solve counts with a Solver using the default folder for this build.
func Solve(target, maxCoins int, coins []int64) (uint64, error) {
	return New().Solve(target, maxCoins, coins)
}

// SolveSequential counts on the calling goroutine.
func SolveSequential(target, maxCoins int, coins []int64) (uint64, error) {
	return New(WithFolder(SequentialFolder{})).Solve(target, maxCoins, coins)
}

// SolveParallel counts with residue classes spread over workers goroutines
// (<= 0 means GOMAXPROCS). The pool lives for the duration of the call.
func SolveParallel(target, maxCoins int, coins []int64, workers int) (uint64, error) {
	f, closeFn, err := NewFolder(ModeParallel, workers)
	if err != nil {
		return 0, fmt.Errorf("ways: %w", err)
	}
	defer closeFn()
	return New(WithFolder(f)).Solve(target, maxCoins, coins)
}
