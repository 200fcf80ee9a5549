package main

import (
	"errors"
	"fmt"
)

// FormatError reports an input line that does not contain exactly three
// unsigned integers. Found counts the tokens that did parse; tokens that
// failed to parse are not counted.
type FormatError struct {
	Line  int // 1-based input line number
	Found int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d does not contain exactly 3 numbers (found %d)", e.Line, e.Found)
}

// InvalidDivisorError reports a zero divisor. Zero is rejected at parse
// time because it would fault the modulo during evaluation.
type InvalidDivisorError struct {
	Line int // 1-based input line number
}

func (e *InvalidDivisorError) Error() string {
	return fmt.Sprintf("line %d contains a zero divisor", e.Line)
}

// WriteError reports a failure while writing one rendered result line.
type WriteError struct {
	Position int // 1-based position in the sorted result list
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing result %d: %v", e.Position, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// VerifyError reports a mismatch between the written output file and the
// computed results. Position is the 1-based output line, or 0 when the
// whole file is wrong (for example a line count mismatch).
type VerifyError struct {
	Position int
	Reason   string
}

func (e *VerifyError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("output verification failed: %s", e.Reason)
	}
	return fmt.Sprintf("output verification failed at line %d: %s", e.Position, e.Reason)
}

// IsFormatError reports whether err is or wraps a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsInvalidDivisorError reports whether err is or wraps an InvalidDivisorError.
func IsInvalidDivisorError(err error) bool {
	var de *InvalidDivisorError
	return errors.As(err, &de)
}

// IsWriteError reports whether err is or wraps a WriteError.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
