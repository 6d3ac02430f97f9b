// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script models and validates springscript plans before a
// droid session transmits them.
//
// A plan is a short list of AND, OR and NOT instructions followed by a
// mode command. Each instruction reads a sensor or writable register
// and writes one of the writable registers T or J. WALK mode exposes
// sensors A through D; RUN mode extends them through I.
package script

import (
	"slices"
	"strings"
)

const (
	MODE_WALK = "WALK" // Sensors A through D.
	MODE_RUN  = "RUN"  // Sensors A through I.

	PLAN_LIMIT = 15 // Most instructions a droid will store.
)

// Registers every instruction may write, and every mode may read.
const writable = "TJ"

// Sensor registers readable in each mode.
var modeSensors = map[string]string{
	MODE_WALK: "ABCD",
	MODE_RUN:  "ABCDEFGHI",
}

// Mnemonics the droid understands.
var mnemonics = map[string]bool{
	"AND": true,
	"OR":  true,
	"NOT": true,
}

// Plan is a springscript listing and the mode command that launches it.
type Plan struct {
	Lines []string // Instructions, one per line.
	Mode  string   // Mode command transmitted after the listing.
}

// Default returns the survey plan used when no plan file is given: jump
// when the ground ahead is missing, or when a hole two or three tiles
// out has ground on its far side.
func Default() *Plan {
	return &Plan{
		Lines: []string{
			"NOT C T",
			"AND D T",
			"NOT A J",
			"OR T J",
		},
		Mode: MODE_WALK,
	}
}

// Commands returns the lines to transmit, the mode command last.
func (plan *Plan) Commands() (lines []string) {
	lines = slices.Clone(plan.Lines)
	lines = append(lines, plan.Mode)
	return
}

// Validate checks the plan against the droid's script constraints.
func (plan *Plan) Validate() (err error) {
	sensors, ok := modeSensors[plan.Mode]
	if !ok {
		err = ErrMode(plan.Mode)
		return
	}

	if len(plan.Lines) > PLAN_LIMIT {
		err = ErrPlanLimit(len(plan.Lines))
		return
	}

	for n, line := range plan.Lines {
		err = validateLine(line, sensors)
		if err != nil {
			err = &ErrSyntax{LineNo: n + 1, Line: line, Err: err}
			return
		}
	}

	return
}

// validateLine checks a single MNEMONIC SRC DST instruction.
func validateLine(line string, sensors string) (err error) {
	words := strings.Fields(line)

	if len(words) < 3 {
		err = ErrOperandMissing
		return
	}
	if len(words) > 3 {
		err = ErrOperandExtra
		return
	}

	if !mnemonics[words[0]] {
		err = ErrMnemonic(words[0])
		return
	}

	err = validateRegister(words[1], sensors+writable)
	if err != nil {
		return
	}

	err = validateRegister(words[2], writable)
	return
}

// validateRegister checks a register name against an allowed set.
func validateRegister(word string, allowed string) (err error) {
	if len(word) == 1 && strings.Contains(allowed, word) {
		return
	}

	err = ErrRegister(word)
	return
}
