package treelist

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

// maxPendingLoads bounds the request stack. The oldest request is dropped
// when it is full.
const maxPendingLoads = 100

// FetchFunc returns the child values of parent. It runs on a worker goroutine.
type FetchFunc[T any] func(ctx context.Context, parent T) ([]T, error)

type loadRequest[T any] struct {
	item  *Item[T]
	value T
}

// Loader fills item children in the background. Requests are served newest
// first so that the rows the user just expanded load before older ones.
// Results are applied through a Queue on the List's goroutine.
type Loader[T any] struct {
	// Expandable reports whether a loaded child may have children of its own.
	Expandable func(value T) bool
	// OnLoaded is called on the List's goroutine after item was filled.
	OnLoaded func(item *Item[T], err error)

	fetch FetchFunc[T]
	queue *Queue

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reqLock  sync.Mutex
	reqCond  *sync.Cond
	requests []loadRequest[T]
	pending  map[*Item[T]]bool
	closed   bool
}

// NewLoader starts workers goroutines that run fetch and post results to q.
func NewLoader[T any](q *Queue, workers int, fetch FetchFunc[T]) *Loader[T] {
	ctx, cancel := context.WithCancel(context.Background())
	ld := &Loader[T]{
		fetch:    fetch,
		queue:    q,
		ctx:      ctx,
		cancel:   cancel,
		requests: make([]loadRequest[T], 0, maxPendingLoads),
		pending:  make(map[*Item[T]]bool),
	}
	ld.reqCond = sync.NewCond(&ld.reqLock)

	for range max(workers, 1) {
		ld.wg.Add(1)
		go ld.worker()
	}
	return ld
}

// Request schedules loading the children of it. It must be called on the
// List's goroutine. Requests for an item already queued are ignored.
func (ld *Loader[T]) Request(it *Item[T]) error {
	if it == nil {
		return fmt.Errorf("load children: nil item: %w", ErrInvalidArgument)
	}
	ld.reqLock.Lock()
	defer ld.reqLock.Unlock()
	if ld.closed {
		return fmt.Errorf("load children: loader closed: %w", ErrInvalidState)
	}
	if ld.pending[it] {
		return nil
	}
	if len(ld.requests) >= maxPendingLoads {
		delete(ld.pending, ld.requests[0].item)
		ld.requests = ld.requests[1:]
	}
	ld.pending[it] = true
	ld.requests = append(ld.requests, loadRequest[T]{item: it, value: it.Value})
	ld.reqCond.Signal()
	return nil
}

// IsPending reports whether a load of it is queued or running.
func (ld *Loader[T]) IsPending(it *Item[T]) bool {
	ld.reqLock.Lock()
	defer ld.reqLock.Unlock()
	return ld.pending[it]
}

// Close stops the workers and waits for them. Results of fetches still
// running are discarded.
func (ld *Loader[T]) Close() {
	ld.reqLock.Lock()
	if ld.closed {
		ld.reqLock.Unlock()
		return
	}
	ld.closed = true
	ld.requests = nil
	ld.cancel()
	ld.reqCond.Broadcast()
	ld.reqLock.Unlock()

	ld.wg.Wait()
}

func (ld *Loader[T]) worker() {
	defer ld.wg.Done()
	for {
		ld.reqLock.Lock()
		for len(ld.requests) == 0 && !ld.closed {
			ld.reqCond.Wait()
		}
		if ld.closed {
			ld.reqLock.Unlock()
			return
		}
		last := len(ld.requests) - 1
		req := ld.requests[last]
		ld.requests = ld.requests[:last]
		ld.reqLock.Unlock()

		values, err := ld.fetch(ld.ctx, req.value)
		if ld.ctx.Err() != nil {
			return
		}
		ld.queue.Post(func() {
			ld.apply(req.item, values, err)
		})
	}
}

// apply runs on the List's goroutine.
func (ld *Loader[T]) apply(it *Item[T], values []T, err error) {
	ld.reqLock.Lock()
	delete(ld.pending, it)
	closed := ld.closed
	ld.reqLock.Unlock()
	if closed {
		return
	}

	if err != nil {
		fyne.LogError("Failed to load children", err)
	} else {
		children := make([]*Item[T], 0, len(values))
		for _, v := range values {
			child := NewItem(v)
			if ld.Expandable != nil {
				child.SetExpandable(ld.Expandable(v))
			}
			children = append(children, child)
		}
		c := it.Children()
		c.Clear()
		if err = c.Add(children...); err != nil {
			fyne.LogError("Failed to add loaded children", err)
		}
		if len(values) == 0 {
			it.SetExpandable(false)
		}
	}
	if ld.OnLoaded != nil {
		ld.OnLoaded(it, err)
	}
}
