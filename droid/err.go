package droid

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Session protocol errors
	ErrUnexpectedHalt  = errors.New(f("unexpected halt"))
	ErrUnexpectedInput = errors.New(f("unexpected wait for input"))
)
