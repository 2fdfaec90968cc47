// Copyright 2025 The go-coinways Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// fan-out/fan-in steps of the counting kernel. A Pool is created once and
// reused for every coin of every solve, so a fold step costs one barrier
// instead of a goroutine spawn per residue class.
//
// Tasks report failure by returning an error or by panicking. A panic is
// captured as a *PanicError. The first failure stops workers from picking up
// further batches, and the combined failures are returned once every worker
// that was already running has reached the barrier.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, coin := range coins {
//	    err := pool.ParallelForAtomicBatched(len(classes), batch, func(start, end int) error {
//	        return foldClasses(classes[start:end])
//	    })
//	    if err != nil {
//	        return err
//	    }
//	}
package workerpool

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// PanicError is returned when a task panics. Task is the first index of the
// batch the task was processing.
type PanicError struct {
	Value any
	Stack []byte
	Task  int
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: task %d panicked: %v", e.Task, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Guard runs fn and converts a panic into a *PanicError tagged with task.
func Guard(task int, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Task: task, Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// failures collects task errors from concurrent workers.
type failures struct {
	mu     sync.Mutex
	err    error
	failed atomic.Bool
}

func (f *failures) add(err error) {
	if err == nil {
		return
	}
	f.failed.Store(true)
	f.mu.Lock()
	f.err = multierr.Append(f.err, err)
	f.mu.Unlock()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. Blocks until all started work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int) error) error {
	return p.ParallelForAtomicBatched(n, 1, func(start, end int) error {
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	})
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing. Each grab takes batchSize consecutive indices, so neighbouring
// indices are processed by the same worker.
//
// fn receives (start, end) indices where work should process [start, end).
// Once any batch fails no new batches are started; the returned error combines
// every failure observed.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 || p.closed.Load() {
		for start := 0; start < n; start += batchSize {
			end := min(start+batchSize, n)
			if err := Guard(start, func() error { return fn(start, end) }); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextBatch atomic.Int64
		fails     failures
		wg        sync.WaitGroup
	)
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !fails.failed.Load() {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fails.add(Guard(start, func() error { return fn(start, end) }))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return fails.err
}
