// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package droid drives a springdroid survey program over a pair of
// intcode channels.
package droid

import (
	"io"
	"math/big"

	"github.com/ezrec/intcode/channel"
	"github.com/ezrec/intcode/machine"
	"github.com/ezrec/intcode/script"
)

// Session is one conversation with a springdroid program: await its
// input prompt, transmit a plan, then run the survey to completion.
type Session struct {
	Verbose bool      // If set, enables verbose machine tracing.
	Log     io.Writer // If set, receives droid text and echoed commands.

	Machine *machine.Machine // The droid's intcode machine.
	Input   *channel.Queue   // Host to machine channel.
	Output  *channel.Queue   // Machine to host channel.
}

// NewSession creates a session around a loaded program. A cells count
// of zero allocates the default memory capacity.
func NewSession(prog *machine.Program, cells int) (ses *Session, err error) {
	m, err := machine.New(prog, cells)
	if err != nil {
		return
	}

	ses = &Session{
		Machine: m,
		Input:   &channel.Queue{},
		Output:  &channel.Queue{},
	}

	return
}

// echo writes session text to the log.
func (ses *Session) echo(text string) {
	if ses.Log == nil || len(text) == 0 {
		return
	}

	io.WriteString(ses.Log, text)
}

// RunUntilInput resumes the machine until it asks for input. Output
// suspensions accumulate in the output queue. A halt before the input
// request is an error.
func (ses *Session) RunUntilInput() (err error) {
	ses.Machine.Verbose = ses.Verbose

	for {
		var status machine.Status
		status, err = ses.Machine.Run(ses.Input, ses.Output)
		if err != nil {
			return
		}

		switch status {
		case machine.STATUS_WAIT_INPUT:
			return
		case machine.STATUS_HALT:
			err = ErrUnexpectedHalt
			return
		}
	}
}

// RunUntilHalt resumes the machine until it halts. Output suspensions
// accumulate in the output queue. An input request with the plan
// already consumed is an error.
func (ses *Session) RunUntilHalt() (err error) {
	ses.Machine.Verbose = ses.Verbose

	for {
		var status machine.Status
		status, err = ses.Machine.Run(ses.Input, ses.Output)
		if err != nil {
			return
		}

		switch status {
		case machine.STATUS_HALT:
			return
		case machine.STATUS_WAIT_INPUT:
			err = ErrUnexpectedInput
			return
		}
	}
}

// Feed queues newline-terminated command lines and echoes each to the
// log as it is queued.
func (ses *Session) Feed(lines ...string) {
	for _, line := range lines {
		entry := line + "\n"
		ses.Input.PushText(entry)
		ses.echo(entry)
	}
}

// Survey validates the plan, transmits it to the droid, and runs the
// survey to completion. Droid text drains to the log as it appears. The
// trailing value outside the text range, when the droid reports one, is
// the survey result; a nil result means the droid ended with text only.
func (ses *Session) Survey(plan *script.Plan) (result *big.Int, err error) {
	err = plan.Validate()
	if err != nil {
		return
	}

	err = ses.RunUntilInput()
	if err != nil {
		return
	}
	ses.echo(ses.Output.DrainText())

	ses.Feed(plan.Commands()...)

	err = ses.RunUntilHalt()
	if err != nil {
		return
	}
	ses.echo(ses.Output.DrainText())

	result, _ = ses.Output.Pop()
	return
}
