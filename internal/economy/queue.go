package economy

import "sync"

// taskQueue serializes access to the backing file. Every mutating operation
// collapses onto this single queue regardless of which logical key it touches:
// the document is one file, and two interleaved load→mutate→save cycles would
// lose the first writer's update.
//
// Tasks run strictly in submission order. A failed task surfaces its error to
// its own submitter only; later tasks still run.
type taskQueue struct {
	mu   sync.Mutex
	tail chan struct{}
}

func newTaskQueue() *taskQueue {
	return &taskQueue{}
}

// Do runs fn after every previously submitted task has finished, then returns
// fn's result to the caller.
func (q *taskQueue) Do(fn func() error) error {
	q.mu.Lock()
	prev := q.tail
	done := make(chan struct{})
	q.tail = done
	q.mu.Unlock()

	if prev != nil {
		<-prev
	}
	defer close(done)

	return fn()
}
