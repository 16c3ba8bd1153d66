package mvm

import (
	"errors"
	"fmt"
)

// List of load and execution errors
var (
	ErrProgramTooLong   = errors.New("program too long")
	ErrMalformedProgram = errors.New("malformed program")
	ErrEmptyProgram     = errors.New("empty programs not allowed")
	ErrRuntime          = errors.New("runtime error")
	ErrStepLimit        = errors.New("step limit reached")
)

// RuntimeError is returned when the machine reaches a cell it cannot execute
// or encrypt.
type RuntimeError struct {
	CP   Value // address of the offending cell
	Cell Value // its content
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%v: cell %d holds %d", ErrRuntime, e.CP.Uint16(), e.Cell.Uint16())
}

// Unwrap makes errors.Is(err, ErrRuntime) hold.
func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}
