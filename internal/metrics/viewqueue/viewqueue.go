// Package viewqueue aggregates book detail views off the request path.
// Events go through a buffered channel into batching workers so a burst
// of browsing never blocks a handler; when the buffer fills, events are
// dropped (acceptable for dashboard metrics).
package viewqueue

import (
	"sync"
	"time"
)

type event struct {
	bookID string
}

// Queue fans view events into per-book counters.
type Queue struct {
	ch   chan event
	done chan struct{}
	wg   sync.WaitGroup

	mu     sync.Mutex
	counts map[string]int64
}

const (
	batchSize  = 100
	flushEvery = 250 * time.Millisecond
)

// Start spins up workers reading from a buffer of size buf.
// Suggested: buf=10000, workers=2.
func Start(buf, workers int) *Queue {
	q := &Queue{
		ch:     make(chan event, buf),
		done:   make(chan struct{}),
		counts: make(map[string]int64),
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue records a view without blocking; a full buffer drops the event.
func (q *Queue) Enqueue(bookID string) {
	if bookID == "" {
		return
	}
	select {
	case q.ch <- event{bookID: bookID}:
	default:
	}
}

// Count returns the views recorded for one book so far.
func (q *Queue) Count(bookID string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.counts[bookID]
}

// Counts returns a snapshot of every per-book counter.
func (q *Queue) Counts() map[string]int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make(map[string]int64, len(q.counts))
	for k, v := range q.counts {
		out[k] = v
	}
	return out
}

// Shutdown stops the workers after draining whatever is buffered.
func (q *Queue) Shutdown() {
	close(q.done)
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	tk := time.NewTicker(flushEvery)
	defer tk.Stop()

	batch := make([]event, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		q.mu.Lock()
		for _, ev := range batch {
			q.counts[ev.bookID]++
		}
		q.mu.Unlock()
		batch = batch[:0]
	}

	for {
		select {
		case <-q.done:
			for {
				select {
				case ev := <-q.ch:
					batch = append(batch, ev)
					if len(batch) >= batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case ev := <-q.ch:
			batch = append(batch, ev)
			if len(batch) >= batchSize {
				flush()
			}
		case <-tk.C:
			flush()
		}
	}
}
