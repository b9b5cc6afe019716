// worker/pool.go
package worker

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolClosed = errors.New("worker pool closed")

type Job[T any] func(ctx context.Context) T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed set of goroutines and publishes their
// outputs on Results. Results must be drained or workers block once the
// results buffer is full.
type Pool[T any] struct {
	ctx     context.Context
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount workers. ctx is handed to every job.
func NewPool[T any](ctx context.Context, workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		ctx:     ctx,
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		output := job.fn(p.ctx)
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
		}
	}
}

// Submit queues a job, blocking while the job buffer is full.
func (p *Pool[T]) Submit(id string, fn Job[T]) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
	return nil
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs, waits for queued jobs to finish and then closes
// the results channel. It is safe to call more than once.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.results)
}
