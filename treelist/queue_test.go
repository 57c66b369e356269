package treelist

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestQueue_DrainRunsInOrder(t *testing.T) {
	var notified int
	q := NewQueue(func() { notified++ })

	var got []int
	for i := 0; i < 3; i++ {
		q.Post(func() { got = append(got, i) })
	}
	q.Post(nil)

	if notified != 1 {
		t.Errorf("Expected one notification for a burst, got %d", notified)
	}
	if q.Len() != 3 {
		t.Errorf("Expected 3 pending, got %d", q.Len())
	}
	if n := q.Drain(); n != 3 {
		t.Errorf("Expected 3 functions to run, got %d", n)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("Expected 0,1,2, got %v", got)
	}

	// An empty queue notifies again
	q.Post(func() {})
	if notified != 2 {
		t.Errorf("Expected a second notification, got %d", notified)
	}
}

func TestQueue_PostDuringDrain(t *testing.T) {
	q := NewQueue(nil)
	ran := 0
	q.Post(func() {
		ran++
		q.Post(func() { ran++ })
	})

	if n := q.Drain(); n != 1 || ran != 1 {
		t.Errorf("Expected only the first function to run, got n=%d ran=%d", n, ran)
	}
	if n := q.Drain(); n != 1 || ran != 2 {
		t.Errorf("Expected the posted function on the next drain, got n=%d ran=%d", n, ran)
	}
}

func TestQueue_ConcurrentPosts(t *testing.T) {
	var notified atomic.Int32
	q := NewQueue(func() { notified.Add(1) })

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Post(func() {})
			}
		}()
	}
	wg.Wait()

	if n := q.Drain(); n != 800 {
		t.Errorf("Expected 800 functions, got %d", n)
	}
	if notified.Load() != 1 {
		t.Errorf("Expected one notification, got %d", notified.Load())
	}
}
