// Package worker runs position jobs on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// Item is one position queued for a pool.
type Item struct {
	Index    int
	Position string
}

// Result carries the value computed for the item at Index. Done is false
// when the pool was stopped before the item ran.
type Result[T any] struct {
	Index int
	Value T
	Done  bool
}

type settings struct {
	workers int
	buffer  int
}

// Option configures a Pool.
type Option func(*settings)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the queue and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.buffer = n
		}
	}
}

// Pool applies a function to queued items on a fixed number of goroutines.
// Defaults: 1 worker, buffer size of 10.
type Pool[T any] struct {
	fn      func(Item) T
	workers int
	items   chan Item
	results chan Result[T]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool creates a pool that runs fn for each submitted item. Call Start
// before submitting.
func NewPool[T any](fn func(Item) T, opts ...Option) *Pool[T] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T]{
		fn:      fn,
		workers: s.workers,
		items:   make(chan Item, s.buffer),
		results: make(chan Result[T], s.buffer),
	}
}

// Start launches the workers.
func (p *Pool[T]) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool[T]) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			p.results <- Result[T]{Index: item.Index}
			continue
		}
		p.results <- Result[T]{Index: item.Index, Value: p.fn(item), Done: true}
	}
}

// Submit queues item, blocking while the queue is full. It fails with the
// context's error if ctx is already done or ends first.
func (p *Pool[T]) Submit(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers pass over queued items without running them. Items
// submitted afterwards come back with Done unset.
func (p *Pool[T]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[T]) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
// The results channel must be drained concurrently.
func (p *Pool[T]) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool[T]) NumWorkers() int {
	return p.workers
}

// Ordered drains results into a slice indexed by Result.Index. Indexes
// must be 0..n-1; results outside that range are dropped.
func Ordered[T any](results <-chan Result[T], n int) []Result[T] {
	out := make([]Result[T], n)
	for r := range results {
		if r.Index >= 0 && r.Index < n {
			out[r.Index] = r
		}
	}
	return out
}
