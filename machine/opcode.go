package machine

import (
	"math/big"
	"strings"
)

// Opcode selects the operation of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD         = Opcode(1)  // add
	OP_MULTIPLY    = Opcode(2)  // mul
	OP_INPUT       = Opcode(3)  // in
	OP_OUTPUT      = Opcode(4)  // out
	OP_JUMP_TRUE   = Opcode(5)  // jt
	OP_JUMP_FALSE  = Opcode(6)  // jf
	OP_LESS_THAN   = Opcode(7)  // lt
	OP_EQUALS      = Opcode(8)  // eq
	OP_ADJUST_BASE = Opcode(9)  // arb
	OP_HALT        = Opcode(99) // halt
)

// Arity returns the opcode's fixed parameter count.
func (op Opcode) Arity() (count int) {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		count = 3
	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		count = 2
	case OP_INPUT, OP_OUTPUT, OP_ADJUST_BASE:
		count = 1
	}

	return
}

// ParamMode selects how a raw parameter resolves to a value or cell.
type ParamMode int

//go:generate go tool stringer -linecomment -type=ParamMode
const (
	MODE_POSITION  = ParamMode(0) // pos
	MODE_IMMEDIATE = ParamMode(1) // imm
	MODE_RELATIVE  = ParamMode(2) // rel
)

// Status reports why a step or run returned to the caller.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING      = Status(0) // running
	STATUS_WAIT_INPUT   = Status(1) // wait-input
	STATUS_WROTE_OUTPUT = Status(2) // wrote-output
	STATUS_HALT         = Status(3) // halt
)

var (
	big10  = big.NewInt(10)
	big100 = big.NewInt(100)
)

// Instruction is the decoded view of a single instruction word. The
// opcode lives in the two lowest decimal digits; the remaining digits
// hold one addressing mode per parameter.
type Instruction struct {
	Op Opcode

	modes *big.Int
}

// Decode splits an instruction word into its opcode and mode digits.
// Mode digits are not validated here; each parameter's digit is checked
// when Mode is called for it.
func Decode(word *big.Int) (inst Instruction, err error) {
	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(word, big100, rem)

	op := Opcode(rem.Int64())
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_INPUT, OP_OUTPUT, OP_JUMP_TRUE,
		OP_JUMP_FALSE, OP_LESS_THAN, OP_EQUALS, OP_ADJUST_BASE, OP_HALT:
	default:
		err = ErrOpcode(rem.Int64())
		return
	}

	inst = Instruction{
		Op:    op,
		modes: quo,
	}

	return
}

// Mode returns the addressing mode of parameter n, counted from zero.
func (inst Instruction) Mode(n int) (mode ParamMode, err error) {
	digit := new(big.Int).Set(inst.modes)
	for range n {
		digit.Quo(digit, big10)
	}
	digit.Rem(digit, big10)

	switch value := digit.Int64(); value {
	case 0:
		mode = MODE_POSITION
	case 1:
		mode = MODE_IMMEDIATE
	case 2:
		mode = MODE_RELATIVE
	default:
		err = ErrParamMode(value)
	}

	return
}

// String returns the opcode with the mode of each of its parameters.
func (inst Instruction) String() (out string) {
	parts := make([]string, 1, 4)
	parts[0] = inst.Op.String()

	for n := range inst.Op.Arity() {
		mode, err := inst.Mode(n)
		if err != nil {
			parts = append(parts, "?")
			continue
		}
		parts = append(parts, mode.String())
	}

	out = strings.Join(parts, ".")

	return
}
