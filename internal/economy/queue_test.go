package economy

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueue_RunsInSubmissionOrder(t *testing.T) {
	q := newTaskQueue()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	for i := 1; i <= 3; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Do(func() error {
				// The first task sleeps; later ones must still wait their turn.
				if i == 1 {
					time.Sleep(50 * time.Millisecond)
				}
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// Give each goroutine time to enqueue before the next.
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestTaskQueue_ErrorDoesNotPoisonQueue(t *testing.T) {
	q := newTaskQueue()

	errBoom := errors.New("boom")
	err := q.Do(func() error { return errBoom })
	assert.ErrorIs(t, err, errBoom)

	ran := false
	err = q.Do(func() error {
		ran = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestTaskQueue_ReturnsOwnResult(t *testing.T) {
	q := newTaskQueue()

	errA := errors.New("a")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = q.Do(func() error { return errA })
	}()
	wg.Wait()

	assert.NoError(t, q.Do(func() error { return nil }))
}
