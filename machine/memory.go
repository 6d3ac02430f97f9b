package machine

import (
	"math/big"
)

const (
	// MEMORY_DEFAULT_CAPACITY is the number of cells allocated when no
	// explicit capacity is given.
	MEMORY_DEFAULT_CAPACITY = 65536
)

// Memory is a fixed-capacity block of arbitrary-precision cells. Cells
// beyond the loaded program hold zero. Capacity never changes after
// allocation; the addressable range is [0, Cells()).
type Memory struct {
	cells []big.Int
}

// NewMemory allocates zeroed cells seeded with the program image. A
// cells count of zero allocates MEMORY_DEFAULT_CAPACITY cells.
func NewMemory(prog *Program, cells int) (mem Memory, err error) {
	if cells <= 0 {
		cells = MEMORY_DEFAULT_CAPACITY
	}

	if prog.Size() > cells {
		err = &ErrProgramSize{Words: prog.Size(), Cells: cells}
		return
	}

	mem.cells = make([]big.Int, cells)
	for n := range prog.Words {
		mem.cells[n].Set(&prog.Words[n])
	}

	return
}

// Cells returns the allocated capacity.
func (mem *Memory) Cells() int {
	return len(mem.cells)
}

// Load returns a copy of the cell at addr. Callers may mutate the
// returned value without disturbing memory.
func (mem *Memory) Load(addr int) (value *big.Int, err error) {
	if addr < 0 || addr >= len(mem.cells) {
		err = &ErrAddress{Addr: big.NewInt(int64(addr)), Cells: len(mem.cells)}
		return
	}

	value = new(big.Int).Set(&mem.cells[addr])
	return
}

// Store copies value into the cell at addr.
func (mem *Memory) Store(addr int, value *big.Int) (err error) {
	if addr < 0 || addr >= len(mem.cells) {
		err = &ErrAddress{Addr: big.NewInt(int64(addr)), Cells: len(mem.cells)}
		return
	}

	mem.cells[addr].Set(value)
	return
}
