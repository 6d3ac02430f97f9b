package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Plan file errors
	ErrPlanMissing = errors.New(f("no 'plan' list defined"))
	ErrPlanList    = errors.New(f("'plan' is not a list of strings"))
	ErrModeString  = errors.New(f("'mode' is not a string"))

	// Instruction shape errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
)

// ErrMnemonic reports an unknown springscript instruction.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not a springscript instruction", string(err))
}

func (err ErrMnemonic) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonic)
	return
}

// ErrRegister reports a register not usable in its position.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a usable register", string(err))
}

func (err ErrRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrRegister)
	return
}

// ErrMode reports an unknown droid mode command.
type ErrMode string

func (err ErrMode) Error() string {
	return f("'%v' is not a droid mode", string(err))
}

func (err ErrMode) Is(target error) (ok bool) {
	_, ok = target.(ErrMode)
	return
}

// ErrPlanLimit reports a plan too long for the droid's script buffer.
type ErrPlanLimit int

func (err ErrPlanLimit) Error() string {
	return f("plan of %v instructions exceeds the limit of %v", int(err), PLAN_LIMIT)
}

func (err ErrPlanLimit) Is(target error) (ok bool) {
	_, ok = target.(ErrPlanLimit)
	return
}

// ErrSyntax locates a plan validation error on its line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
