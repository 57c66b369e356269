package treelist

import "sync"

// Queue collects functions posted from any goroutine so they can be run on
// the goroutine that owns a List. It is the only type in this package that
// is safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	notify  func()
}

// NewQueue returns a queue that calls notify whenever work is posted to an
// empty queue. A fyne host passes a function that schedules Drain with fyne.Do.
func NewQueue(notify func()) *Queue {
	return &Queue{notify: notify}
}

// Post schedules f to run on the next Drain.
func (q *Queue) Post(f func()) {
	if f == nil {
		return
	}
	q.mu.Lock()
	first := len(q.pending) == 0
	q.pending = append(q.pending, f)
	q.mu.Unlock()

	if first && q.notify != nil {
		q.notify()
	}
}

// Drain runs every function posted so far, in order, and returns how many
// ran. Functions posted while draining run on the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	work := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, f := range work {
		f()
	}
	return len(work)
}

// Len returns the number of functions waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
