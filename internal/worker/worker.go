// Package worker implements the bounded-concurrency primitive the
// orchestrator uses to fan out per-file parse/extract/analyze work: a fixed
// number of goroutines pull tasks from a channel, and Wait aggregates every
// task's error into one.
package worker

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Pool runs submitted tasks across a fixed number of goroutines.
type Pool struct {
	tasks   chan func() error
	wg      sync.WaitGroup
	mu      sync.Mutex
	errs    *multierror.Error
	stopped chan struct{}
	once    sync.Once
}

// NewWorkerPool starts size worker goroutines ready to accept tasks. size is
// clamped to at least 1.
func NewWorkerPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		tasks:   make(chan func() error),
		stopped: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)

		go p.run()
	}

	return p
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			if err := task(); err != nil {
				p.mu.Lock()
				p.errs = multierror.Append(p.errs, err)
				p.mu.Unlock()
			}
		case <-p.stopped:
			return
		}
	}
}

// Submit enqueues a task to run on the pool. Submit after Stop is a no-op.
func (p *Pool) Submit(task func() error) {
	select {
	case p.tasks <- task:
	case <-p.stopped:
	}
}

// Wait blocks until every submitted task has completed and returns their
// aggregated error, or nil if every task succeeded. Wait closes the task
// queue and lets every worker exit, so it is called once per pool: a Submit
// or a second Wait afterwards panics. Calling Stop afterwards is safe.
func (p *Pool) Wait() error {
	close(p.tasks)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.errs.ErrorOrNil()
}

// Stop signals every worker goroutine to exit, for use when the caller is
// abandoning the pool (e.g. on cancellation) without having called Wait.
// Calling Stop after Wait, or more than once, is safe.
func (p *Pool) Stop() {
	p.once.Do(func() { close(p.stopped) })
}
