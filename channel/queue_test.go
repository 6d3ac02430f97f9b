package channel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.Equal(0, q.Len())

	q.PushInt64(1)
	q.PushInt64(-2)
	q.PushInt64(3)
	assert.Equal(3, q.Len())

	for _, want := range []int64{1, -2, 3} {
		value, ok := q.Pop()
		assert.True(ok)
		assert.Equal(want, value.Int64())
	}

	assert.Equal(0, q.Len())
}

func TestQueuePop_Empty(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	value, ok := q.Pop()
	assert.False(ok)
	assert.Nil(value)
}

func TestQueueWideValues(t *testing.T) {
	assert := assert.New(t)

	wide, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	assert.True(ok)

	q := &Queue{}
	q.Push(wide)

	value, ok := q.Pop()
	assert.True(ok)
	assert.Equal(wide.String(), value.String())
	assert.False(value.IsInt64())
}

func TestQueueReset(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushInt64(1)
	q.PushInt64(2)

	q.Reset()
	assert.Equal(0, q.Len())

	_, ok := q.Pop()
	assert.False(ok)
}

func TestQueueDrain(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	for n := range int64(5) {
		q.PushInt64(n * 10)
	}

	var values []int64
	for value := range q.Drain() {
		values = append(values, value.Int64())
	}
	assert.Equal([]int64{0, 10, 20, 30, 40}, values)
	assert.Equal(0, q.Len())
}

func TestQueueDrain_Break(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	for n := range int64(5) {
		q.PushInt64(n)
	}

	// Breaking out keeps the unvisited values queued.
	for value := range q.Drain() {
		if value.Int64() == 1 {
			break
		}
	}
	assert.Equal(3, q.Len())

	value, ok := q.Pop()
	assert.True(ok)
	assert.Equal(int64(2), value.Int64())
}
