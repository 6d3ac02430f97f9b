package machine

import (
	"errors"
	"math/big"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrWriteImmediate = errors.New(f("attempted to write in immediate mode"))
)

// ErrOpcode reports an instruction word whose low digits name no operation.
type ErrOpcode int64

func (err ErrOpcode) Error() string {
	return f("unexpected opcode: %v", int64(err))
}

func (err ErrOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcode)
	return
}

// ErrParamMode reports a parameter mode digit with no addressing mode.
type ErrParamMode int64

func (err ErrParamMode) Error() string {
	return f("unexpected param mode code: %v", int64(err))
}

func (err ErrParamMode) Is(target error) (ok bool) {
	_, ok = target.(ErrParamMode)
	return
}

// ErrAddress reports a memory access outside the allocated cells.
type ErrAddress struct {
	Addr  *big.Int
	Cells int
}

func (err *ErrAddress) Error() string {
	return f("address %v outside memory of %v cells", err.Addr, err.Cells)
}

func (err *ErrAddress) Is(target error) (ok bool) {
	_, ok = target.(*ErrAddress)
	return
}

// ErrParseNumber reports a program token that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrProgramSize reports a program listing longer than the memory.
type ErrProgramSize struct {
	Words int
	Cells int
}

func (err *ErrProgramSize) Error() string {
	return f("program of %v words exceeds %v memory cells", err.Words, err.Cells)
}

// ErrFault locates an execution error at its instruction pointer.
type ErrFault struct {
	Ip  int
	Err error
}

func (err *ErrFault) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
