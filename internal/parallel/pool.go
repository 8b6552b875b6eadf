// Package parallel runs independent per-tile work on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// Pool is a fixed set of worker goroutines pulling from a shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu orders submissions against Close so nothing is queued after the
	// workers have drained the queue and exited.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 4x workers keeps every worker busy while the submitter refills.
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), queueSize),
		done:    make(chan struct{}),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case work := <-p.queue:
			work()
		case <-p.done:
			p.drain()
			return
		}
	}
}

func (p *Pool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// ExecuteAll runs every item and waits for the submitted ones to finish.
// When ctx is cancelled, remaining items are not submitted and ctx.Err() is
// returned once the already queued items completed.
func (p *Pool) ExecuteAll(ctx context.Context, work []func()) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrClosed
	}

	var (
		completion sync.WaitGroup
		err        error
	)

submit:
	for _, fn := range work {
		if err = ctx.Err(); err != nil {
			break
		}

		completion.Add(1)
		wrapped := func() {
			defer completion.Done()
			fn()
		}

		select {
		case p.queue <- wrapped:
		case <-ctx.Done():
			completion.Done()
			err = ctx.Err()
			break submit
		}
	}
	p.mu.RUnlock()

	completion.Wait()
	return err
}

// Close stops the workers after the queued work ran. Close is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}
