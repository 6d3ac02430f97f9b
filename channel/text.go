package channel

import (
	"strings"
)

// ASCII_MAX is the highest queued value the text helpers treat as a
// character.
const ASCII_MAX = 127

// PushText appends one value per byte of text to the back of the queue.
func (q *Queue) PushText(text string) {
	for n := range len(text) {
		q.PushInt64(int64(text[n]))
	}
}

// DrainText pops the longest prefix of values in the range
// [0, ASCII_MAX] and returns them as text. The first value outside the
// range, and everything after it, stays queued.
func (q *Queue) DrainText() string {
	var text strings.Builder

	for len(q.values) > 0 {
		front := q.values[0]
		if !front.IsInt64() {
			break
		}
		code := front.Int64()
		if code < 0 || code > ASCII_MAX {
			break
		}

		text.WriteByte(byte(code))
		q.values = q.values[1:]
	}

	return text.String()
}
