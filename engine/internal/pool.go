package internal

import "sync"

// Pool fans queued work out to a fixed number of goroutines. Callers Queue
// items and CloseWait for the queue to drain; collecting results is the
// caller's concern.
type Pool[W any] struct {
	work chan W
	wg   sync.WaitGroup
}

// NewPool starts width workers applying fn to queued items.
func NewPool[W any](width int, fn func(W)) *Pool[W] {
	p := &Pool[W]{work: make(chan W, width)}
	p.wg.Add(width)
	for i := 0; i < width; i++ {
		go func() {
			defer p.wg.Done()
			for item := range p.work {
				fn(item)
			}
		}()
	}
	return p
}

// Queue submits an item to the pool, blocking while the queue is full.
func (p *Pool[W]) Queue(item W) {
	p.work <- item
}

// CloseWait marks the queue complete and blocks until all queued work has
// been applied.
func (p *Pool[W]) CloseWait() {
	close(p.work)
	p.wg.Wait()
}
