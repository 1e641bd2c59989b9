// Copyright 2025 go-wavecodec Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for encoding
// independent coefficient rows in parallel. A Pool is created once, typically
// by a pipeline.Compressor, and reused for every signal it compresses.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(len(rows), func(i int) error {
//	    payloads[i] = codec.AppendRow(nil, rows[i], true)
//	    return nil
//	})
//
// A nil or closed *Pool runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu keeps Close from closing workC while a call is still sending.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
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

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the workers after pending work completes. Calling Close
// more than once is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// dispatch runs body on up to n workers and waits for all of them. It
// reports false without running anything when the pool cannot be used, in
// which case the caller runs sequentially.
func (p *Pool) dispatch(n int, body func()) bool {
	if p == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	workers := min(p.numWorkers, n)
	if p.closed || workers <= 1 {
		return false
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: body, barrier: &wg}
	}
	wg.Wait()
	return true
}

// ParallelFor calls fn over [0, n) split into one contiguous chunk per
// worker and blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunkSize := (n + p.NumWorkers() - 1) / p.NumWorkers()
	var nextChunk atomic.Int32
	ran := p.dispatch(n, func() {
		start := int(nextChunk.Add(1)-1) * chunkSize
		if start < n {
			fn(start, min(start+chunkSize, n))
		}
	})
	if !ran {
		fn(0, n)
	}
}

// Run calls fn for every index in [0, n), handing out indices one at a time
// so that uneven items balance across workers. It blocks until all calls
// have returned and reports the first error seen. Once an error is seen no
// new indices are started.
func (p *Pool) Run(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	var (
		nextIdx  atomic.Int32
		failed   atomic.Bool
		errOnce  sync.Once
		firstErr error
	)
	ran := p.dispatch(n, func() {
		for !failed.Load() {
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(idx); err != nil {
				errOnce.Do(func() { firstErr = err })
				failed.Store(true)
			}
		}
	})
	if ran {
		return firstErr
	}

	for i := range n {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}
