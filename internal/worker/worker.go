package worker

import (
	"context"
	"sync"
)

// Task is a unit of background work, such as a best-effort map-image fetch.
// The context is canceled when the pool stops.
type Task func(ctx context.Context)

// Pool runs tasks on a fixed set of workers.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{jobs: make(chan Task), ctx: ctx, cancel: cancel}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job(p.ctx)
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop waits for queued tasks to finish, then cancels the shared context.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
}
