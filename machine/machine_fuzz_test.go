package machine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pow10(n int) (value int64) {
	value = 1
	for range n {
		value *= 10
	}

	return
}

func FuzzDecode(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(99))
	f.Add(int64(1002))
	f.Add(int64(21101))
	f.Add(int64(20999))
	f.Add(int64(0))
	f.Add(int64(-42))

	f.Fuzz(func(t *testing.T, word int64) {
		assert := assert.New(t)

		inst, err := Decode(big.NewInt(word))
		if err != nil {
			assert.ErrorIs(err, ErrOpcode(0))
			return
		}

		// The low two digits are the opcode, sign intact.
		assert.Equal(word%100, int64(inst.Op))

		for n := range inst.Op.Arity() {
			mode, err := inst.Mode(n)

			digit := (word / 100) / pow10(n) % 10
			if err != nil {
				assert.ErrorIs(err, ErrParamMode(0))
				assert.True(digit < 0 || digit > 2)
				continue
			}

			assert.Equal(ParamMode(digit), mode)
		}
	})
}
