package channel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushText(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushText("Hi\n")
	assert.Equal(3, q.Len())

	for _, want := range []int64{'H', 'i', '\n'} {
		value, ok := q.Pop()
		assert.True(ok)
		assert.Equal(want, value.Int64())
	}
}

func TestDrainText(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushText("Walking...\n")
	assert.Equal("Walking...\n", q.DrainText())
	assert.Equal(0, q.Len())

	// Draining an empty queue yields no text.
	assert.Equal("", q.DrainText())
}

func TestDrainText_StopsPastAscii(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushText("ok\n")
	q.PushInt64(19357761)
	q.PushText("more")

	assert.Equal("ok\n", q.DrainText())

	// The non-character value and everything behind it stay queued.
	assert.Equal(5, q.Len())
	value, ok := q.Pop()
	assert.True(ok)
	assert.Equal(int64(19357761), value.Int64())
	assert.Equal("more", q.DrainText())
}

func TestDrainText_Boundaries(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushInt64(0)
	q.PushInt64(ASCII_MAX)
	q.PushInt64(ASCII_MAX + 1)

	assert.Equal("\x00\x7f", q.DrainText())
	assert.Equal(1, q.Len())
}

func TestDrainText_StopsAtNegative(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.PushInt64(-1)
	q.PushText("after")

	assert.Equal("", q.DrainText())
	assert.Equal(6, q.Len())
}

func TestDrainText_StopsAtWide(t *testing.T) {
	assert := assert.New(t)

	wide, ok := new(big.Int).SetString("18446744073709551614", 10)
	assert.True(ok)

	q := &Queue{}
	q.Push(wide)

	assert.Equal("", q.DrainText())
	assert.Equal(1, q.Len())
}
