// Package channel implements the unbounded FIFO queues that connect an
// intcode machine to its host.
//
// A Queue carries arbitrary-precision integers in arrival order. The
// machine side pops input values and pushes output values one at a
// time; the host side batches text in and out with PushText and
// DrainText.
package channel

import (
	"iter"
	"math/big"
)

// Queue is an unbounded first-in first-out channel of integers. The
// zero value is an empty queue ready for use.
type Queue struct {
	values []*big.Int
}

// Push appends value to the back of the queue. The queue takes
// ownership; the caller must not mutate value afterward.
func (q *Queue) Push(value *big.Int) {
	q.values = append(q.values, value)
}

// PushInt64 appends a small integer to the back of the queue.
func (q *Queue) PushInt64(value int64) {
	q.Push(big.NewInt(value))
}

// Pop removes and returns the value at the front of the queue.
func (q *Queue) Pop() (value *big.Int, ok bool) {
	if len(q.values) == 0 {
		return
	}

	value = q.values[0]
	q.values = q.values[1:]
	ok = true
	return
}

// Len returns the count of queued values.
func (q *Queue) Len() int {
	return len(q.values)
}

// Reset discards all queued values.
func (q *Queue) Reset() {
	q.values = nil
}

// Drain pops every queued value in arrival order.
func (q *Queue) Drain() iter.Seq[*big.Int] {
	return func(yield func(value *big.Int) bool) {
		for {
			value, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}
