// Package ipperr defines the single error type that carries an IPPcode22
// exit code through the loader and the execution engine up to the CLI
// boundary, the same flat code/message pairing the original Python
// interpreter keeps in its err_nums table, just represented as a Go error
// instead of a dict lookup at the exit call site.
package ipperr

import (
	"errors"
	"fmt"
)

// Error is a failure tagged with the process exit code it must produce.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an *Error with the given exit code and formatted message.
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts an *Error from err, if any is present in its chain.
func AsError(err error) (*Error, bool) {
	var ferr *Error
	ok := errors.As(err, &ferr)
	return ferr, ok
}

// Short descriptions keyed by exit code, used as a fallback when a failure
// is not an *Error (e.g. the engine's step-limit error) and so carries no
// exit code of its own.
var shortMessages = map[int]string{
	10: "invalid command-line usage",
	11: "could not open a named file",
	31: "XML could not be parsed",
	32: "unexpected XML structure or unknown opcode",
	52: "undefined or duplicate label",
	53: "invalid operand types",
	54: "reference to an undefined variable",
	55: "access to an invalid or empty frame",
	56: "empty stack or use of an uninitialized value",
	57: "division by zero or invalid EXIT value",
	58: "string operation index out of range",
}

// ShortMessage returns the generic one-line description for code, or "" if
// code is not one of the interpreter's defined exit codes.
func ShortMessage(code int) string { return shortMessages[code] }
