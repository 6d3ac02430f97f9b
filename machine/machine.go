package machine

import (
	"log"
	"math/big"

	"github.com/ezrec/intcode/channel"
)

// Machine is a single intcode execution context.
type Machine struct {
	Verbose bool // Set to enable verbose instruction tracing.

	Memory Memory  // Program and data cells.
	Ip     int     // Current instruction pointer.
	Base   big.Int // Relative addressing base.

	prog *Program
}

// New creates a machine with prog loaded at address zero. A cells count
// of zero allocates MEMORY_DEFAULT_CAPACITY cells.
func New(prog *Program, cells int) (m *Machine, err error) {
	mem, err := NewMemory(prog, cells)
	if err != nil {
		return
	}

	m = &Machine{
		Memory: mem,
		prog:   prog,
	}

	return
}

// Reset reloads the program image and clears the instruction pointer
// and the relative base.
func (m *Machine) Reset() (err error) {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	mem, err := NewMemory(m.prog, m.Memory.Cells())
	if err != nil {
		return
	}

	m.Memory = mem
	m.Ip = 0
	m.Base.SetInt64(0)

	return
}

// resolve computes the cell address named by a positional or relative
// parameter.
func (m *Machine) resolve(mode ParamMode, param *big.Int) (addr int, err error) {
	target := new(big.Int).Set(param)
	if mode == MODE_RELATIVE {
		target.Add(target, &m.Base)
	}

	if target.Sign() < 0 || !target.IsInt64() || target.Int64() >= int64(m.Memory.Cells()) {
		err = &ErrAddress{Addr: target, Cells: m.Memory.Cells()}
		return
	}

	addr = int(target.Int64())
	return
}

// readParam reads a parameter value through its addressing mode.
func (m *Machine) readParam(mode ParamMode, param *big.Int) (value *big.Int, err error) {
	if mode == MODE_IMMEDIATE {
		value = new(big.Int).Set(param)
		return
	}

	addr, err := m.resolve(mode, param)
	if err != nil {
		return
	}

	value, err = m.Memory.Load(addr)
	return
}

// writeParam writes a value through a parameter's addressing mode.
// Immediate parameters name no cell and cannot be written.
func (m *Machine) writeParam(mode ParamMode, param, value *big.Int) (err error) {
	if mode == MODE_IMMEDIATE {
		err = ErrWriteImmediate
		return
	}

	addr, err := m.resolve(mode, param)
	if err != nil {
		return
	}

	err = m.Memory.Store(addr, value)
	return
}

// param reads parameter n of the instruction at the current ip.
func (m *Machine) param(inst Instruction, n int) (value *big.Int, err error) {
	mode, err := inst.Mode(n)
	if err != nil {
		return
	}

	raw, err := m.Memory.Load(m.Ip + 1 + n)
	if err != nil {
		return
	}

	value, err = m.readParam(mode, raw)
	return
}

// store writes a value through parameter n of the instruction at the
// current ip.
func (m *Machine) store(inst Instruction, n int, value *big.Int) (err error) {
	mode, err := inst.Mode(n)
	if err != nil {
		return
	}

	raw, err := m.Memory.Load(m.Ip + 1 + n)
	if err != nil {
		return
	}

	err = m.writeParam(mode, raw, value)
	return
}

// jump validates and takes a computed jump target. Targets past the
// end of memory are caught by the next instruction fetch.
func (m *Machine) jump(target *big.Int) (err error) {
	if target.Sign() < 0 || !target.IsInt64() {
		err = &ErrAddress{Addr: target, Cells: m.Memory.Cells()}
		return
	}

	m.Ip = int(target.Int64())
	return
}

// Step executes the instruction at the current ip, popping input
// values from in and pushing output values to out. An input
// instruction with nothing queued leaves the machine untouched and
// reports STATUS_WAIT_INPUT; pushing a value and stepping again
// completes that same instruction.
func (m *Machine) Step(in, out *channel.Queue) (status Status, err error) {
	word, err := m.Memory.Load(m.Ip)
	if err != nil {
		return
	}

	inst, err := Decode(word)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%5d: %v", m.Ip, inst)
	}

	switch inst.Op {
	case OP_ADD, OP_MULTIPLY:
		var lhs, rhs *big.Int
		lhs, err = m.param(inst, 0)
		if err != nil {
			return
		}
		rhs, err = m.param(inst, 1)
		if err != nil {
			return
		}
		value := new(big.Int)
		if inst.Op == OP_ADD {
			value.Add(lhs, rhs)
		} else {
			value.Mul(lhs, rhs)
		}
		err = m.store(inst, 2, value)
		if err != nil {
			return
		}
		m.Ip += 4

	case OP_INPUT:
		value, ok := in.Pop()
		if !ok {
			status = STATUS_WAIT_INPUT
			return
		}
		err = m.store(inst, 0, value)
		if err != nil {
			return
		}
		m.Ip += 2

	case OP_OUTPUT:
		var value *big.Int
		value, err = m.param(inst, 0)
		if err != nil {
			return
		}
		out.Push(value)
		m.Ip += 2
		status = STATUS_WROTE_OUTPUT

	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		var cond *big.Int
		cond, err = m.param(inst, 0)
		if err != nil {
			return
		}
		taken := cond.Sign() != 0
		if inst.Op == OP_JUMP_FALSE {
			taken = !taken
		}
		if !taken {
			m.Ip += 3
			break
		}
		var target *big.Int
		target, err = m.param(inst, 1)
		if err != nil {
			return
		}
		err = m.jump(target)
		if err != nil {
			return
		}

	case OP_LESS_THAN, OP_EQUALS:
		var lhs, rhs *big.Int
		lhs, err = m.param(inst, 0)
		if err != nil {
			return
		}
		rhs, err = m.param(inst, 1)
		if err != nil {
			return
		}
		cmp := lhs.Cmp(rhs)
		hit := cmp < 0
		if inst.Op == OP_EQUALS {
			hit = cmp == 0
		}
		value := big.NewInt(0)
		if hit {
			value.SetInt64(1)
		}
		err = m.store(inst, 2, value)
		if err != nil {
			return
		}
		m.Ip += 4

	case OP_ADJUST_BASE:
		var value *big.Int
		value, err = m.param(inst, 0)
		if err != nil {
			return
		}
		m.Base.Add(&m.Base, value)
		m.Ip += 2

	case OP_HALT:
		status = STATUS_HALT
	}

	return
}

// Run steps the machine until it suspends or halts. Execution errors
// are wrapped in an ErrFault naming the faulting instruction pointer.
func (m *Machine) Run(in, out *channel.Queue) (status Status, err error) {
	for {
		ip := m.Ip

		status, err = m.Step(in, out)
		if err != nil {
			err = &ErrFault{Ip: ip, Err: err}
			return
		}

		if status != STATUS_RUNNING {
			return
		}
	}
}
