// Package machine implements the intcode virtual machine.
//
// A Machine owns a fixed block of arbitrary-precision memory cells, an
// instruction pointer, and a relative addressing base. Each Step decodes
// the word at the instruction pointer into one of ten opcodes with up to
// three addressed parameters, performs its effect, and reports a Status.
// The machine suspends cooperatively: an input instruction with nothing
// queued and every completed output instruction hand control back to the
// caller, which resumes by calling Step or Run again.
//
// Programs arrive as comma-separated decimal integers and may carry
// values wider than 64 bits; memory cells, parameters, and channel
// values are big.Int throughout.
package machine
